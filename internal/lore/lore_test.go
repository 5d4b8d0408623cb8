package lore

import (
	"testing"

	"github.com/DaanHessen/smallheath/internal/theme"
)

func TestForPersona(t *testing.T) {
	if w := For(theme.Thomas); w.Persona != theme.Thomas || len(w.Characters) != 10 || len(w.Territories) != 7 {
		t.Fatalf("thomas world: %d characters, %d territories", len(w.Characters), len(w.Territories))
	}
	if w := For(theme.Luca); w.Persona != theme.Luca || len(w.Characters) != 9 || len(w.Territories) != 6 {
		t.Fatalf("luca world: %d characters, %d territories", len(w.Characters), len(w.Territories))
	}
	if For("grace").Persona != theme.Thomas {
		t.Fatal("unknown persona should see the default world")
	}
}

func TestReferencesResolve(t *testing.T) {
	for _, p := range []theme.Persona{theme.Thomas, theme.Luca} {
		w := For(p)
		net := w.Network()
		for _, e := range net.Edges() {
			if _, ok := net.Node(e.From); !ok {
				t.Fatalf("%s: relationship from unknown %q", p, e.From)
			}
			if _, ok := net.Node(e.To); !ok {
				t.Fatalf("%s: relationship to unknown %q", p, e.To)
			}
		}
		for _, r := range w.Routes {
			if _, ok := w.Territory(r.From); !ok {
				t.Fatalf("%s: route %s from unknown territory", p, r.ID)
			}
			if _, ok := w.Territory(r.To); !ok {
				t.Fatalf("%s: route %s to unknown territory", p, r.ID)
			}
		}
	}
}

func TestNetworkSelection(t *testing.T) {
	net := For(theme.Thomas).Network()
	lit, dimmed := net.Partition("grace")
	if len(lit) != 2 || len(dimmed) != 8 {
		t.Fatalf("grace: lit=%v dimmed=%v", lit, dimmed)
	}
	if got := len(net.ConnectedIDs("thomas")); got != 10 {
		t.Fatalf("thomas touches everyone, got %d", got)
	}
}

func TestSummary(t *testing.T) {
	got := For(theme.Thomas).Summary()
	want := TerritorySummary{Total: 7, HighInfluence: 3, Contested: 3, TotalValue: 76900}
	if got != want {
		t.Fatalf("thomas summary: got %+v want %+v", got, want)
	}
	got = For(theme.Luca).Summary()
	want = TerritorySummary{Total: 6, HighInfluence: 3, Contested: 1, TotalValue: 167000}
	if got != want {
		t.Fatalf("luca summary: got %+v want %+v", got, want)
	}
	if Summarize(nil) != (TerritorySummary{}) {
		t.Fatal("empty summary")
	}
}

func TestRoutesFor(t *testing.T) {
	w := For(theme.Thomas)
	if got := w.RoutesFor("4"); len(got) != 3 {
		t.Fatalf("charlie's yard routes: %d", len(got))
	}
	if got := w.TerritoryMap().Connections("7"); len(got) != 2 {
		t.Fatalf("docks connections: %d", len(got))
	}
}
