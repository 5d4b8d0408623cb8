package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/DaanHessen/smallheath/internal/ledger"
)

type invMode int

const (
	invBrowse invMode = iota
	invSearch
	invForm
	invConfirm
)

// inventory is the CRUD table over the ledger.
type inventory struct {
	table    table.Model
	search   textinput.Model
	form     recordForm
	mode     invMode
	location string
	status   ledger.Status
	rows     []ledger.Record
	deleteID string
	onMutate func(op string, bottles int)
}

func newInventory() inventory {
	search := textinput.New()
	search.Placeholder = "search name, origin, distillery, barrel..."
	search.Prompt = "/ "
	search.CharLimit = 64
	search.Width = 40
	t := table.New(
		table.WithColumns(inventoryColumns(96)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	return inventory{table: t, search: search}
}

func inventoryColumns(width int) []table.Column {
	name := max(width-78, 16)
	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Barrel", Width: 12},
		{Title: "Distillery", Width: 22},
		{Title: "Age", Width: 4},
		{Title: "Qty", Width: 5},
		{Title: "Location", Width: 15},
		{Title: "Status", Width: 9},
	}
}

func (inv *inventory) resize(width, height int) {
	inv.table.SetColumns(inventoryColumns(width))
	inv.table.SetHeight(max(height-8, 4))
	inv.search.Width = max(width-8, 20)
}

// refresh re-queries the ledger with the current search and filters.
func (inv *inventory) refresh(l *ledger.Manager) {
	inv.rows = l.Filter(inv.search.Value(), inv.location, inv.status)
	rows := make([]table.Row, 0, len(inv.rows))
	for _, r := range inv.rows {
		rows = append(rows, table.Row{
			r.Name, r.BarrelNumber, r.Distillery,
			strconv.Itoa(r.Age), strconv.Itoa(r.Quantity),
			r.Location, r.Status.Label(),
		})
	}
	inv.table.SetRows(rows)
	if c := inv.table.Cursor(); c >= len(rows) {
		inv.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (inv *inventory) mutated(op string, l *ledger.Manager) {
	inv.refresh(l)
	if inv.onMutate != nil {
		inv.onMutate(op, l.Stats().TotalBottles)
	}
}

func (inv *inventory) selected() (ledger.Record, bool) {
	c := inv.table.Cursor()
	if c < 0 || c >= len(inv.rows) {
		return ledger.Record{}, false
	}
	return inv.rows[c], true
}

// capturing reports whether the page owns every keystroke: a text field or the delete prompt.
func (inv *inventory) capturing() bool { return inv.mode != invBrowse }

// update handles a key on the inventory page. The returned string is a status line.
func (inv *inventory) update(ctx context.Context, l *ledger.Manager, msg tea.KeyMsg) (tea.Cmd, string) {
	switch inv.mode {
	case invSearch:
		return inv.updateSearch(l, msg)
	case invForm:
		return inv.updateForm(ctx, l, msg)
	case invConfirm:
		return inv.updateConfirm(ctx, l, msg)
	}

	switch msg.String() {
	case "/":
		inv.mode = invSearch
		return inv.search.Focus(), ""
	case "a":
		inv.form = newRecordForm(ledger.Record{Status: ledger.StatusInStock, Location: ledger.LocationWarehouseA}, "")
		inv.mode = invForm
		return inv.form.focusCurrent(), ""
	case "e", "enter":
		r, ok := inv.selected()
		if !ok {
			return nil, "Nothing selected."
		}
		inv.form = newRecordForm(r, r.ID)
		inv.mode = invForm
		return inv.form.focusCurrent(), ""
	case "d", "delete":
		r, ok := inv.selected()
		if !ok {
			return nil, "Nothing selected."
		}
		inv.deleteID = r.ID
		inv.mode = invConfirm
		return nil, fmt.Sprintf("Strike %q from the ledger? y/n", r.Name)
	case "l":
		inv.location = cycle(append([]string{""}, ledger.Locations...), inv.location)
		inv.refresh(l)
		return nil, "Location: " + orAll(inv.location)
	case "t":
		statuses := []string{""}
		for _, s := range ledger.AllStatuses {
			statuses = append(statuses, string(s))
		}
		inv.status = ledger.Status(cycle(statuses, string(inv.status)))
		inv.refresh(l)
		return nil, "Status: " + orAll(inv.status.Label())
	case "x":
		inv.location, inv.status = "", ""
		inv.search.SetValue("")
		inv.refresh(l)
		return nil, "Filters cleared."
	case "R":
		l.Reset(ctx)
		inv.mutated("reset", l)
		return nil, "Ledger restored to the original collection."
	}
	var cmd tea.Cmd
	inv.table, cmd = inv.table.Update(msg)
	return cmd, ""
}

func (inv *inventory) updateSearch(l *ledger.Manager, msg tea.KeyMsg) (tea.Cmd, string) {
	switch msg.String() {
	case "enter":
		inv.mode = invBrowse
		inv.search.Blur()
		return nil, fmt.Sprintf("%d lots match.", len(inv.rows))
	case "esc":
		inv.mode = invBrowse
		inv.search.Blur()
		inv.search.SetValue("")
		inv.refresh(l)
		return nil, ""
	}
	var cmd tea.Cmd
	inv.search, cmd = inv.search.Update(msg)
	inv.refresh(l)
	return cmd, ""
}

func (inv *inventory) updateConfirm(ctx context.Context, l *ledger.Manager, msg tea.KeyMsg) (tea.Cmd, string) {
	id := inv.deleteID
	inv.mode, inv.deleteID = invBrowse, ""
	if msg.String() != "y" {
		return nil, "Kept."
	}
	if !l.Delete(ctx, id) {
		return nil, "Already gone."
	}
	inv.mutated("delete", l)
	return nil, "Struck from the ledger."
}

func (inv *inventory) updateForm(ctx context.Context, l *ledger.Manager, msg tea.KeyMsg) (tea.Cmd, string) {
	switch msg.String() {
	case "esc":
		inv.mode = invBrowse
		return nil, "Discarded."
	case "tab", "down":
		return inv.form.move(1), ""
	case "shift+tab", "up":
		return inv.form.move(-1), ""
	case "left":
		if inv.form.cycleChoice(-1) {
			return nil, ""
		}
	case "right":
		if inv.form.cycleChoice(1) {
			return nil, ""
		}
	case "enter":
		f, err := inv.form.fields()
		if err != nil {
			inv.form.err = err.Error()
			return nil, ""
		}
		inv.mode = invBrowse
		if inv.form.editID == "" {
			r := l.Add(ctx, f)
			inv.mutated("add", l)
			return nil, fmt.Sprintf("Entered %s as %s.", r.Name, r.ID)
		}
		if !l.Update(ctx, inv.form.editID, ledger.PatchFrom(f)) {
			return nil, "That lot no longer exists."
		}
		inv.mutated("update", l)
		return nil, "Updated " + f.Name + "."
	}
	return inv.form.updateCurrent(msg), ""
}

func (inv inventory) view(p palette, width int) string {
	var b strings.Builder
	title := lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(p.Muted)

	if inv.mode == invForm {
		return inv.form.view(p)
	}

	b.WriteString(title.Render("INVENTORY") + "  " +
		muted.Render(fmt.Sprintf("%d lots · location %s · status %s", len(inv.rows), orAll(inv.location), orAll(inv.status.Label()))))
	b.WriteString("\n")
	if inv.mode == invSearch || inv.search.Value() != "" {
		b.WriteString(inv.search.View() + "\n")
	}
	b.WriteString("\n")
	if len(inv.rows) == 0 {
		b.WriteString(muted.Render("No lots match. The ledger is silent.") + "\n")
	} else {
		t := inv.table
		t.SetStyles(p.tableStyles())
		b.WriteString(t.View() + "\n")
		if r, ok := inv.selected(); ok {
			dot := lipgloss.NewStyle().Foreground(p.statusColor(r.Status)).Render("●")
			line := fmt.Sprintf("%s %s · %s · %s, %d yrs · added %s", dot, r.Name, r.Origin, r.Distillery, r.Age, r.DateAdded)
			if r.Notes != "" {
				line += " · " + r.Notes
			}
			b.WriteString("\n" + lipgloss.NewStyle().Width(width).Foreground(p.Text).Render(line) + "\n")
		}
	}
	return b.String()
}

func cycle(options []string, cur string) string {
	for i, o := range options {
		if o == cur {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}

type formField struct {
	label   string
	input   textinput.Model
	choices []string
}

// recordForm edits one ledger record. editID is empty when adding.
type recordForm struct {
	inputs []formField
	focus  int
	editID string
	err    string
}

const (
	fName = iota
	fOrigin
	fDistillery
	fBarrel
	fAge
	fQuantity
	fLocation
	fStatus
	fNotes
)

func newRecordForm(r ledger.Record, editID string) recordForm {
	statuses := make([]string, 0, len(ledger.AllStatuses))
	for _, s := range ledger.AllStatuses {
		statuses = append(statuses, string(s))
	}
	mk := func(label, value string, choices []string) formField {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 80
		in.Width = 40
		in.SetValue(value)
		return formField{label: label, input: in, choices: choices}
	}
	num := func(n int) string {
		if n == 0 && editID == "" {
			return ""
		}
		return strconv.Itoa(n)
	}
	return recordForm{
		editID: editID,
		inputs: []formField{
			fName:       mk("Name", r.Name, nil),
			fOrigin:     mk("Origin", r.Origin, nil),
			fDistillery: mk("Distillery", r.Distillery, nil),
			fBarrel:     mk("Barrel No.", r.BarrelNumber, nil),
			fAge:        mk("Age (years)", num(r.Age), nil),
			fQuantity:   mk("Quantity", num(r.Quantity), nil),
			fLocation:   mk("Location", r.Location, ledger.Locations),
			fStatus:     mk("Status", string(r.Status), statuses),
			fNotes:      mk("Notes", r.Notes, nil),
		},
	}
}

func (f *recordForm) focusCurrent() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].input.Blur()
	}
	if f.inputs[f.focus].choices != nil {
		return nil
	}
	return f.inputs[f.focus].input.Focus()
}

func (f *recordForm) move(delta int) tea.Cmd {
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.focusCurrent()
}

func (f *recordForm) cycleChoice(delta int) bool {
	fld := &f.inputs[f.focus]
	if fld.choices == nil {
		return false
	}
	idx := 0
	for i, c := range fld.choices {
		if c == fld.input.Value() {
			idx = i
		}
	}
	idx = (idx + delta + len(fld.choices)) % len(fld.choices)
	fld.input.SetValue(fld.choices[idx])
	return true
}

func (f *recordForm) updateCurrent(msg tea.KeyMsg) tea.Cmd {
	fld := &f.inputs[f.focus]
	if fld.choices != nil {
		return nil
	}
	var cmd tea.Cmd
	fld.input, cmd = fld.input.Update(msg)
	f.err = ""
	return cmd
}

func (f recordForm) value(i int) string { return strings.TrimSpace(f.inputs[i].input.Value()) }

// fields validates the form. Empty numbers read as zero.
func (f recordForm) fields() (ledger.Fields, error) {
	out := ledger.Fields{
		Name:         f.value(fName),
		Origin:       f.value(fOrigin),
		Distillery:   f.value(fDistillery),
		BarrelNumber: f.value(fBarrel),
		Location:     f.value(fLocation),
		Status:       ledger.Status(f.value(fStatus)),
		Notes:        f.value(fNotes),
	}
	if out.Name == "" {
		return out, errors.New("a lot needs a name")
	}
	var err error
	if out.Age, err = atoiOrZero(f.value(fAge)); err != nil {
		return out, errors.New("age must be a whole number")
	}
	if out.Quantity, err = atoiOrZero(f.value(fQuantity)); err != nil {
		return out, errors.New("quantity must be a whole number")
	}
	if !out.Status.Valid() {
		out.Status = ledger.StatusInStock
	}
	return out, nil
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func (f recordForm) view(p palette) string {
	var b strings.Builder
	heading := "NEW ENTRY"
	if f.editID != "" {
		heading = "AMEND ENTRY " + f.editID
	}
	b.WriteString(lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Render(heading) + "\n\n")
	label := lipgloss.NewStyle().Width(14).Foreground(p.Muted)
	active := label.Foreground(p.Accent)
	for i, fld := range f.inputs {
		l := label
		if i == f.focus {
			l = active
		}
		val := fld.input.View()
		if fld.choices != nil {
			val = "‹ " + fld.input.Value() + " ›"
			if i == f.focus {
				val = lipgloss.NewStyle().Foreground(p.AccentAlt).Render(val)
			}
		}
		b.WriteString(l.Render(fld.label) + val + "\n")
	}
	if f.err != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(p.Danger).Render(f.err) + "\n")
	}
	b.WriteString("\n" + lipgloss.NewStyle().Foreground(p.Muted).Render("tab next · ←/→ choose · enter save · esc discard"))
	return b.String()
}
