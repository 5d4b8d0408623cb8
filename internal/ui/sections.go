package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/smallheath/internal/graph"
	"github.com/DaanHessen/smallheath/internal/ledger"
	"github.com/DaanHessen/smallheath/internal/lore"
	"github.com/DaanHessen/smallheath/internal/nav"
	"github.com/DaanHessen/smallheath/internal/text"
)

func (m model) sectionView(p palette, s nav.Section) string {
	w := m.world()
	switch s {
	case nav.Ledger:
		return m.ledgerView(p, w)
	case nav.Inventory:
		return m.inv.view(p, m.contentWidth()-2)
	case nav.Map:
		return m.mapView(p, w)
	case nav.Relationships:
		return m.networkView(p, w)
	case nav.Timeline:
		return m.timelineView(p, w)
	case nav.Dossier:
		return m.dossierView(w)
	case nav.Reports:
		return m.md(text.Report(m.deps.Ledger.Report(), lore.Suppliers()))
	default:
		return m.homeView(p, w)
	}
}

func (m model) md(s string) string { return text.Must(m.deps.Renderer, s, m.contentWidth()-2) }

func heading(p palette, s string) string {
	return lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Render(strings.ToUpper(s))
}

// pounds formats n with thousands separators.
func pounds(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-£" + s
	}
	return "£" + s
}

func statCards(p palette, st ledger.Stats) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		Width(18)
	value := lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	label := lipgloss.NewStyle().Foreground(p.Muted)
	cards := []string{
		card.Render(value.Render(pounds(st.TotalValue)) + "\n" + label.Render("Total value")),
		card.Render(value.Render(strconv.Itoa(st.TotalBottles)) + "\n" + label.Render("Bottles")),
		card.Render(value.Render(strconv.Itoa(st.Territories)) + "\n" + label.Render("Territories")),
		card.Render(value.Render(strconv.Itoa(st.ActiveShipments)) + "\n" + label.Render("Active shipments")),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m model) homeView(p palette, w lore.World) string {
	var b strings.Builder
	t := m.deps.Personas.Theme()
	b.WriteString(heading(p, t.FullName) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render(t.Title) + "\n\n")
	if len(w.Quotes) > 0 {
		q := w.Quotes[m.quote%len(w.Quotes)]
		b.WriteString(lipgloss.NewStyle().Foreground(p.Text).Italic(true).Width(m.contentWidth()-4).Render(`"`+q+`"`) + "\n\n")
	}
	b.WriteString(statCards(p, m.deps.Ledger.Stats()) + "\n\n")
	b.WriteString(heading(p, "The family") + "\n")
	name := lipgloss.NewStyle().Foreground(p.Text).Width(22)
	role := lipgloss.NewStyle().Foreground(p.Muted)
	for _, prof := range w.Roster {
		b.WriteString(name.Render(prof.Name) + role.Render(prof.Role) + "\n")
	}
	return b.String()
}

func (m model) ledgerView(p palette, w lore.World) string {
	var b strings.Builder
	b.WriteString(heading(p, "The Ledger") + "\n\n")
	b.WriteString(statCards(p, m.deps.Ledger.Stats()) + "\n\n")

	b.WriteString(heading(p, "Recent entries") + "\n")
	recs := m.deps.Ledger.List()
	if len(recs) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render("The ledger is empty.") + "\n")
	}
	for _, r := range recs[:min(len(recs), 4)] {
		dot := lipgloss.NewStyle().Foreground(p.statusColor(r.Status)).Render("●")
		fmt.Fprintf(&b, "%s %-24s %s  %s\n", dot, r.Name,
			lipgloss.NewStyle().Foreground(p.Muted).Render(fmt.Sprintf("%-12s %3d btl", r.BarrelNumber, r.Quantity)),
			lipgloss.NewStyle().Foreground(p.AccentAlt).Render(pounds(r.Quantity*ledger.BottlePrice(r.Age))))
	}

	b.WriteString("\n" + heading(p, "Empire feed") + "\n")
	for _, e := range w.Events {
		mark := lipgloss.NewStyle().Foreground(eventColor(p, e.Type)).Render("▌")
		fmt.Fprintf(&b, "%s %s %s\n", mark, e.Text, lipgloss.NewStyle().Foreground(p.Muted).Render(e.When))
	}
	return b.String()
}

func eventColor(p palette, kind string) lipgloss.Color {
	switch kind {
	case "success":
		return p.Success
	case "danger":
		return p.Danger
	case "warning":
		return p.Warning
	default:
		return p.AccentAlt
	}
}

func (m model) mapView(p palette, w lore.World) string {
	var b strings.Builder
	sum := w.Summary()
	b.WriteString(heading(p, "Territory Map") + "  ")
	b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render(fmt.Sprintf("%d territories · %d held · %d contested · %s",
		sum.Total, sum.HighInfluence, sum.Contested, pounds(sum.TotalValue))) + "\n\n")

	g := w.TerritoryMap()
	sel := ""
	if m.mapSel >= 0 && m.mapSel < len(w.Territories) {
		sel = w.Territories[m.mapSel].ID
	}
	b.WriteString(plot(p, g, sel, m.contentWidth()-4, 8) + "\n\n")

	name := lipgloss.NewStyle().Width(34)
	for i, t := range w.Territories {
		style := name.Foreground(p.Text)
		marker := "  "
		if i == m.mapSel {
			style, marker = name.Foreground(p.Accent).Bold(true), "▸ "
		}
		threat := lipgloss.NewStyle().Foreground(threatColor(p, t.Threat)).Render(fmt.Sprintf("threat %3d%%", t.Threat))
		fmt.Fprintf(&b, "%s%d %s %-7s %s\n", marker, i+1, style.Render(t.Name), t.Influence, threat)
	}
	if sel != "" {
		t := w.Territories[m.mapSel]
		b.WriteString("\n" + m.md(text.Territory(t, w.RoutesFor(t.ID))))
	}
	return b.String()
}

func threatColor(p palette, threat int) lipgloss.Color {
	switch {
	case threat >= 60:
		return p.Danger
	case threat >= 30:
		return p.Warning
	default:
		return p.Success
	}
}

func (m model) networkView(p palette, w lore.World) string {
	var b strings.Builder
	b.WriteString(heading(p, "Relationships") + "\n\n")
	g := w.Network()
	sel := ""
	if m.netSel >= 0 && m.netSel < len(w.Characters) {
		sel = w.Characters[m.netSel].ID
	}
	b.WriteString(plot(p, g, sel, m.contentWidth()-4, 10) + "\n\n")

	lit, _ := g.Partition(sel)
	isLit := make(map[string]bool, len(lit))
	for _, id := range lit {
		isLit[id] = true
	}
	for i, c := range w.Characters {
		style := lipgloss.NewStyle().Width(22).Foreground(p.Muted).Faint(true)
		if isLit[c.ID] {
			style = style.Foreground(p.Text).Faint(false)
		}
		marker := "  "
		if i == m.netSel {
			style, marker = style.Foreground(p.Accent).Bold(true), "▸ "
		}
		b.WriteString(marker + style.Render(c.Name) + lipgloss.NewStyle().Foreground(p.Muted).Render(c.Role) + "\n")
	}

	b.WriteString("\n")
	for _, k := range []graph.Kind{graph.Family, graph.Ally, graph.Enemy, graph.Neutral} {
		b.WriteString(lipgloss.NewStyle().Foreground(p.kindColor(k)).Render("■ "+string(k)) + "  ")
	}
	b.WriteString("\n")

	if sel != "" {
		c := w.Characters[m.netSel]
		b.WriteString("\n" + m.md(text.Character(c, w, g.Connections(c.ID))))
	}
	return b.String()
}

// plot scatters the graph's nodes onto a w×h character board, numbered in node order.
func plot(p palette, g *graph.Graph, selected string, w, h int) string {
	w, h = max(w, 10), max(h, 3)
	grid := make([][]string, h)
	for y := range grid {
		grid[y] = make([]string, w)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	lit, _ := g.Partition(selected)
	isLit := make(map[string]bool, len(lit))
	for _, id := range lit {
		isLit[id] = true
	}
	minX, minY, maxX, maxY := g.Bounds()
	scale := func(v, lo, hi float64, n int) int {
		if hi <= lo {
			return n / 2
		}
		return int((v - lo) / (hi - lo) * float64(n-1))
	}
	for i, n := range g.Nodes() {
		x, y := scale(n.X, minX, maxX, w), scale(n.Y, minY, maxY, h)
		style := lipgloss.NewStyle().Foreground(p.Muted).Faint(true)
		if isLit[n.ID] {
			style = lipgloss.NewStyle().Foreground(p.Text)
		}
		glyph := strconv.FormatInt(int64(i+1), 36)
		if n.ID == selected {
			style = lipgloss.NewStyle().Foreground(p.Background).Background(p.Accent).Bold(true)
		}
		grid[y][x] = style.Render(glyph)
	}
	lines := make([]string, h)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.Border).Render(strings.Join(lines, "\n"))
}

func (m model) timelineView(p palette, w lore.World) string {
	var b strings.Builder
	b.WriteString(heading(p, "Timeline") + "\n\n")
	for i, e := range w.Eras {
		dot := lipgloss.NewStyle().Foreground(p.moodColor(e.Mood)).Render("◆")
		style := lipgloss.NewStyle().Foreground(p.Muted)
		if i == m.eraIdx {
			style = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
		}
		fmt.Fprintf(&b, "%s %s  %s\n", dot, style.Render(e.Year), style.Render(e.Title))
		if i == m.eraIdx {
			if m.eraOpen {
				b.WriteString(m.md(text.Era(e)) + "\n")
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(p.Text).PaddingLeft(8).Render(e.Description) + "\n")
			}
		}
	}
	return b.String()
}

func (m model) dossierView(w lore.World) string {
	if len(w.Roster) == 0 {
		return ""
	}
	i := m.dossierIdx % len(w.Roster)
	return fmt.Sprintf("File %d of %d\n\n", i+1, len(w.Roster)) + m.md(text.Dossier(w.Roster[i]))
}
