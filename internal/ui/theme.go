package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/smallheath/internal/graph"
	"github.com/DaanHessen/smallheath/internal/ledger"
	"github.com/DaanHessen/smallheath/internal/theme"
)

type palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentAlt  lipgloss.Color
	Particle   lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Danger     lipgloss.Color
	BarEmpty   lipgloss.Color
}

// paletteFor maps the effective theme onto terminal colours. It is rebuilt on
// every render so persona and stealth changes show immediately.
func paletteFor(t theme.Theme) palette {
	bg := hexColor(t.Background, "#0a0a0a")
	return palette{
		Background: lipgloss.Color(bg),
		Surface:    lipgloss.Color(blendOnto(t.Surface, bg)),
		Text:       lipgloss.Color("#e8e2d6"),
		Muted:      lipgloss.Color("#8a8478"),
		Accent:     lipgloss.Color(hexColor(t.Accent, "#c9a86c")),
		AccentAlt:  lipgloss.Color(hexColor(t.AccentLight, "#d4b87c")),
		Particle:   lipgloss.Color(blendOnto(t.Particle, bg)),
		Border:     lipgloss.Color("#3a3530"),
		Success:    lipgloss.Color("#4ade80"),
		Warning:    lipgloss.Color("#f59e0b"),
		Danger:     lipgloss.Color("#ef4444"),
		BarEmpty:   lipgloss.Color("#262220"),
	}
}

func (p palette) tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		BorderBottom(true).
		Foreground(p.Accent).
		Bold(true)
	s.Cell = s.Cell.Foreground(p.Text)
	s.Selected = s.Selected.Foreground(p.Background).Background(p.Accent).Bold(false)
	return s
}

func (p palette) statusColor(s ledger.Status) lipgloss.Color {
	switch s {
	case ledger.StatusInStock:
		return p.Success
	case ledger.StatusLow:
		return p.Warning
	default:
		return p.Danger
	}
}

func (p palette) kindColor(k graph.Kind) lipgloss.Color {
	switch k {
	case graph.Family:
		return lipgloss.Color("#c9a86c")
	case graph.Ally:
		return p.Success
	case graph.Enemy:
		return p.Danger
	default:
		return lipgloss.Color("#888888")
	}
}

func (p palette) moodColor(mood string) lipgloss.Color {
	switch mood {
	case "victory":
		return p.Success
	case "loss", "war":
		return p.Danger
	case "betrayal":
		return p.Warning
	case "alliance":
		return lipgloss.Color("#60a5fa")
	default:
		return p.Muted
	}
}

// hexColor accepts "#rrggbb" or "rgba(r, g, b, a)" and returns "#rrggbb".
func hexColor(css, fallback string) string {
	css = strings.TrimSpace(css)
	if strings.HasPrefix(css, "#") && (len(css) == 7 || len(css) == 4) {
		return css
	}
	r, g, b, _, ok := parseRGBA(css)
	if !ok {
		return fallback
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// blendOnto flattens a translucent css colour over the background hex.
func blendOnto(css, bgHex string) string {
	r, g, b, a, ok := parseRGBA(css)
	if !ok {
		return hexColor(css, bgHex)
	}
	br, bgG, bb, okBg := parseHex(bgHex)
	if !okBg {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	mix := func(fg, back int) int { return int(float64(fg)*a + float64(back)*(1-a) + 0.5) }
	return fmt.Sprintf("#%02x%02x%02x", mix(r, br), mix(g, bgG), mix(b, bb))
}

func parseRGBA(css string) (r, g, b int, a float64, ok bool) {
	open, end := strings.IndexByte(css, '('), strings.LastIndexByte(css, ')')
	if open < 0 || end < open || !strings.HasPrefix(css, "rgb") {
		return 0, 0, 0, 0, false
	}
	parts := strings.Split(css[open+1:end], ",")
	if len(parts) < 3 {
		return 0, 0, 0, 0, false
	}
	ch := make([]int, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return 0, 0, 0, 0, false
		}
		ch[i] = v
	}
	a = 1
	if len(parts) > 3 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return 0, 0, 0, 0, false
		}
		a = min(max(f, 0), 1)
	}
	return ch[0], ch[1], ch[2], a, true
}

func parseHex(h string) (r, g, b int, ok bool) {
	if len(h) != 7 || h[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(h[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
