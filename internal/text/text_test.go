package text

import (
	"errors"
	"strings"
	"testing"

	"github.com/DaanHessen/smallheath/internal/ledger"
	"github.com/DaanHessen/smallheath/internal/lore"
	"github.com/DaanHessen/smallheath/internal/theme"
)

type brokenRenderer struct{}

func (brokenRenderer) Render(string, int) (string, error) { return "", errors.New("no terminal") }

func TestFallbackUsedOnError(t *testing.T) {
	r := WithFallback(brokenRenderer{}, NewPlain())
	got, err := r.Render("## Title\n\n**bold** words", 40)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Title\n\nbold words" {
		t.Fatalf("unexpected fallback output %q", got)
	}
	if s, _ := WithFallback(nil, NewPlain()).Render("# x", 40); s != "x" {
		t.Fatalf("nil primary: %q", s)
	}
}

func TestMustReturnsMarkdownWhenAllFail(t *testing.T) {
	if got := Must(brokenRenderer{}, "# raw", 40); got != "# raw" {
		t.Fatalf("got %q", got)
	}
}

func TestGlamourRendersText(t *testing.T) {
	r := NewGlamour("notty")
	got, err := r.Render("## Watery Lane\n\nNumber 6.", 60)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "Watery Lane") || !strings.Contains(got, "Number 6.") {
		t.Fatalf("rendered text lost content: %q", got)
	}
}

func TestMarkdownBuilders(t *testing.T) {
	w := lore.For(theme.Thomas)
	d := Dossier(w.Roster[0])
	if !strings.Contains(d, "## Thomas Shelby") || !strings.Contains(d, "Loyalty") {
		t.Fatalf("dossier: %s", d)
	}
	e := Era(w.Eras[4])
	if !strings.Contains(e, "1922 · Shattered Grace") || !strings.Contains(e, "> \"I have no one.\"") {
		t.Fatalf("era: %s", e)
	}
	terr, _ := w.Territory("4")
	tm := Territory(terr, w.RoutesFor("4"))
	if !strings.Contains(tm, "### Routes") || !strings.Contains(tm, "Revenue +2400 over 6 months") {
		t.Fatalf("territory: %s", tm)
	}
	c, _ := w.Character("grace")
	cm := Character(c, w, w.Network().Connections("grace"))
	if !strings.Contains(cm, "**Thomas Shelby** (ally)") {
		t.Fatalf("character: %s", cm)
	}
	rep := Report(ledger.BuildReport(ledger.Seed()), lore.Suppliers())
	if !strings.Contains(rep, "Warehouse A: 73 bottles in 2 lots") || !strings.Contains(rep, "Camden Distillery") {
		t.Fatalf("report: %s", rep)
	}
}

func TestMeterClamps(t *testing.T) {
	if got := meter("x", 140); strings.Count(got, "█") != 10 {
		t.Fatalf("meter over 100: %q", got)
	}
	if got := meter("x", -5); strings.Count(got, "░") != 10 {
		t.Fatalf("meter under 0: %q", got)
	}
}

func TestPlainKeepsUnderscores(t *testing.T) {
	got, err := NewPlain().Render("_Ledger I_\n\nOld_Tom stored in sh_1921", 60)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Ledger I\n\nOld_Tom stored in sh_1921"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	rep := ledger.BuildReport([]ledger.Record{{Name: "Garrison_Gold", Status: ledger.StatusLow, Location: ledger.LocationWarehouseA, Quantity: 2}})
	got, _ = NewPlain().Render(Report(rep, nil), 60)
	if !strings.Contains(got, "Garrison_Gold") {
		t.Fatalf("record name mangled:\n%s", got)
	}
}
