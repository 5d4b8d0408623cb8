package text

import (
	"fmt"
	"strings"

	"github.com/DaanHessen/smallheath/internal/graph"
	"github.com/DaanHessen/smallheath/internal/ledger"
	"github.com/DaanHessen/smallheath/internal/lore"
)

// Dossier is the markdown for a roster card.
func Dossier(p lore.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", p.Name)
	fmt.Fprintf(&b, "**%s** · Status: **%s**\n\n", p.Role, p.Status)
	fmt.Fprintf(&b, "> %s\n\n", p.Quote)
	b.WriteString("```\n")
	b.WriteString(meter("Loyalty", p.Loyalty) + "\n")
	b.WriteString(meter("Danger", p.Danger) + "\n")
	b.WriteString(meter("Intelligence", p.Intelligence) + "\n")
	b.WriteString("```\n\n")
	b.WriteString(p.Backstory + "\n")
	return b.String()
}

// Era is the markdown for an expanded timeline entry.
func Era(e lore.Era) string {
	var b strings.Builder
	if e.Season != "" {
		fmt.Fprintf(&b, "_%s_\n\n", e.Season)
	}
	fmt.Fprintf(&b, "## %s · %s\n\n", e.Year, e.Title)
	fmt.Fprintf(&b, "**%s** %s\n\n", moodLabel(e.Mood), e.Description)
	if e.Quote != "" {
		fmt.Fprintf(&b, "> %s\n\n", e.Quote)
	}
	b.WriteString(e.Detail + "\n")
	return b.String()
}

func moodLabel(m string) string {
	switch m {
	case "victory":
		return "Victory."
	case "loss":
		return "Loss."
	case "betrayal":
		return "Betrayal."
	case "alliance":
		return "Alliance."
	case "war":
		return "War."
	default:
		return ""
	}
}

// Territory is the markdown for the selected map location.
func Territory(t lore.Territory, routes []lore.Route) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", t.Name)
	fmt.Fprintf(&b, "**%s** · influence %s · threat %d%%\n\n", capitalize(t.Type), t.Influence, t.Threat)
	b.WriteString(t.Description + "\n\n")
	if t.Lore != "" {
		fmt.Fprintf(&b, "> %s\n\n", t.Lore)
	}
	if t.Personnel != "" {
		fmt.Fprintf(&b, "In charge: **%s**\n\n", t.Personnel)
	}
	fmt.Fprintf(&b, "Holdings valued at **£%d**.", t.Value)
	if n := len(t.Revenue); n > 1 {
		fmt.Fprintf(&b, " Revenue %+d over %d months.", t.Revenue[n-1]-t.Revenue[0], n)
	}
	b.WriteString("\n")
	if len(routes) > 0 {
		b.WriteString("\n### Routes\n\n")
		for _, r := range routes {
			fmt.Fprintf(&b, "- %s (%s, %s)\n", r.Label, r.Cargo, r.Status)
		}
	}
	return b.String()
}

// Character is the markdown for a selected node on the relationship web.
func Character(c lore.Character, w lore.World, conns []graph.Edge) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", c.Name)
	fmt.Fprintf(&b, "**%s**", c.Role)
	if len(c.Aliases) > 0 {
		fmt.Fprintf(&b, " · aka %s", strings.Join(c.Aliases, ", "))
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "> %s\n\n", c.Quote)
	if len(conns) > 0 {
		b.WriteString("### Connections\n\n")
		for _, e := range conns {
			other, ok := w.Character(e.Other(c.ID))
			name := e.Other(c.ID)
			if ok {
				name = other.Name
			}
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", name, e.Kind, e.Label)
		}
	}
	return b.String()
}

// Report is the markdown summary of the stock report.
func Report(r ledger.Report, suppliers []lore.Supplier) string {
	var b strings.Builder
	b.WriteString("## Stock Report\n\n")
	fmt.Fprintf(&b, "%d lots, %d in stock, %d out of stock. %d bottles worth **£%d**.\n\n",
		r.TotalItems, r.InStock, r.OutOfStock, r.Stats.TotalBottles, r.Stats.TotalValue)
	b.WriteString("### By location\n\n")
	for _, lt := range r.ByLocation {
		fmt.Fprintf(&b, "- %s: %d bottles in %d lots\n", lt.Location, lt.Bottles, lt.Items)
	}
	if len(r.LowOrOut) > 0 {
		b.WriteString("\n### Needs attention\n\n")
		for _, rec := range r.LowOrOut {
			fmt.Fprintf(&b, "- %s (%s) at %s: %d left\n", rec.Name, rec.Status.Label(), rec.Location, rec.Quantity)
		}
	}
	if len(suppliers) > 0 {
		b.WriteString("\n### Suppliers\n\n")
		for _, s := range suppliers {
			fmt.Fprintf(&b, "- **%s**, %s (%s), trust %d%%\n", s.Name, s.Role, s.Location, s.Trust)
		}
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
