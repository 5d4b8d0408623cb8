package nav

import "testing"

func TestHomeToMapScenario(t *testing.T) {
	m := New(Home)
	if eff := m.Fire(Requested{Target: Map}); eff != BeginTransition {
		t.Fatalf("request: got %v", eff)
	}
	if !m.Active() || m.Current() != Home {
		t.Fatalf("content should not swap before peak: current=%s", m.Current())
	}
	if p, ok := m.Pending(); !ok || p != Map {
		t.Fatalf("pending: got %q %v", p, ok)
	}
	if eff := m.Fire(Peaked{}); eff != SwapContent {
		t.Fatalf("peak: got %v", eff)
	}
	if m.Current() != Map || !m.Active() {
		t.Fatal("after peak content shows target while the effect settles")
	}
	if _, ok := m.Pending(); ok {
		t.Fatal("pending should clear at peak")
	}
	if eff := m.Fire(Completed{}); eff != EndTransition {
		t.Fatalf("complete: got %v", eff)
	}
	if m.Active() || m.Current() != Map {
		t.Fatalf("expected idle on map, got %#v", m.State())
	}
}

func TestRequestCurrentIsNoop(t *testing.T) {
	m := New(Ledger)
	if eff := m.Fire(Requested{Target: Ledger}); eff != None || m.Active() {
		t.Fatal("requesting the current section should do nothing")
	}
}

func TestRequestsDroppedWhileActive(t *testing.T) {
	m := New(Home)
	m.Fire(Requested{Target: Map})
	if eff := m.Fire(Requested{Target: Dossier}); eff != None {
		t.Fatalf("request during transition: got %v", eff)
	}
	if p, _ := m.Pending(); p != Map {
		t.Fatalf("pending replaced: %s", p)
	}
	m.Fire(Peaked{})
	if eff := m.Fire(Requested{Target: Dossier}); eff != None {
		t.Fatalf("request while settling: got %v", eff)
	}
	m.Fire(Completed{})
	if m.Current() != Map {
		t.Fatalf("dropped request leaked through: %s", m.Current())
	}
	if eff := m.Fire(Requested{Target: Dossier}); eff != BeginTransition {
		t.Fatal("idle machine should accept requests again")
	}
}

func TestCompletedBeforePeakCommits(t *testing.T) {
	m := New(Home)
	m.Fire(Requested{Target: Timeline})
	if eff := m.Fire(Completed{}); eff != SwapContent {
		t.Fatalf("got %v", eff)
	}
	if m.Active() || m.Current() != Timeline {
		t.Fatalf("expected idle on timeline, got %#v", m.State())
	}
}

func TestStrayEventsIgnored(t *testing.T) {
	m := New(Home)
	for _, ev := range []Event{Peaked{}, Completed{}, Requested{Target: "cellar"}} {
		if eff := m.Fire(ev); eff != None {
			t.Fatalf("%T on idle: got %v", ev, eff)
		}
	}
	m.Fire(Requested{Target: Reports})
	m.Fire(Peaked{})
	if eff := m.Fire(Peaked{}); eff != None {
		t.Fatalf("second peak: got %v", eff)
	}
}

func TestNewFallsBackToHome(t *testing.T) {
	if New("cellar").Current() != Home {
		t.Fatal("unknown initial section should start at home")
	}
}

func TestNextPrevCycle(t *testing.T) {
	s := Home
	for range AllSections {
		s = Next(s)
	}
	if s != Home {
		t.Fatalf("next did not cycle: %s", s)
	}
	if Prev(Home) != Reports || Next(Reports) != Home {
		t.Fatal("wrap-around broken")
	}
	if Ledger.Label() != "The Ledger" || Section("x").Label() != "x" {
		t.Fatal("labels")
	}
}
