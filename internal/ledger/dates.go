package ledger

import (
	"fmt"
	"time"
)

// FormatDateAdded renders t as "12th March, 1921".
func FormatDateAdded(t time.Time) string {
	day := t.Day()
	return fmt.Sprintf("%d%s %s, %d", day, ordinal(day), t.Month().String(), t.Year())
}

func ordinal(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
