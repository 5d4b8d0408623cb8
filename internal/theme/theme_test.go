package theme

import "testing"

func TestResolveStealthOverride(t *testing.T) {
	r := Default()
	for _, p := range r.Personas() {
		base := r.Resolve(p, false)
		dark := r.Resolve(p, true)
		if base.Accent == stealth.Accent {
			t.Fatalf("%s: base accent should not be the stealth accent", p)
		}
		if dark.Accent != "#e5e5e5" || dark.AccentLight != "#ffffff" || dark.AccentRGB != "229, 229, 229" {
			t.Fatalf("%s: stealth accent not applied: %+v", p, dark)
		}
		if dark.Background != "#000000" || dark.Surface != "rgba(20, 20, 20, 0.9)" || dark.Particle != "rgba(200, 200, 200, 0.3)" {
			t.Fatalf("%s: stealth background not applied: %+v", p, dark)
		}
		if dark.Quote != base.Quote || dark.Author != base.Author || dark.FullName != base.FullName || dark.Title != base.Title {
			t.Fatalf("%s: stealth must not touch persona text", p)
		}
	}
}

func TestResolveDoesNotMutateRegistry(t *testing.T) {
	r := Default()
	_ = r.Resolve(Thomas, true)
	if got := r.Resolve(Thomas, false).Accent; got != "#c9a86c" {
		t.Fatalf("registry mutated by stealth resolve: accent %s", got)
	}
}

func TestParseAndDefault(t *testing.T) {
	r := Default()
	if r.Default() != Thomas {
		t.Fatalf("default persona = %s", r.Default())
	}
	if p, ok := r.Parse("luca"); !ok || p != Luca {
		t.Fatalf("Parse(luca) = %s %v", p, ok)
	}
	if _, ok := r.Parse("arthur"); ok {
		t.Fatal("Parse accepted unknown persona")
	}
	if got := r.Resolve("arthur", false); got.Name != "Thomas" {
		t.Fatalf("unknown persona should resolve to default theme, got %s", got.Name)
	}
}

func TestNextCycles(t *testing.T) {
	r := Default()
	if r.Next(Thomas) != Luca || r.Next(Luca) != Thomas {
		t.Fatal("two-persona cycle broken")
	}
	three := NewRegistry(Entry{Persona: "a"}, Entry{Persona: "b"}, Entry{Persona: "c"})
	p := Persona("a")
	for i := 0; i < 3; i++ {
		p = three.Next(p)
	}
	if p != "a" {
		t.Fatalf("three-persona cycle ended at %s", p)
	}
	if three.Next("zzz") != "a" {
		t.Fatal("unknown persona should cycle to default")
	}
}

func TestAttributes(t *testing.T) {
	r := Default()
	th := r.Resolve(Luca, true)
	attrs := Attributes(Luca, true, th)
	if attrs["data-character"] != "luca" || attrs["data-stealth"] != "true" {
		t.Fatalf("data attributes wrong: %v", attrs)
	}
	if attrs["--accent"] != th.Accent || attrs["--bg"] != th.Background || attrs["--particle-color"] != th.Particle {
		t.Fatalf("css attributes out of sync with theme: %v", attrs)
	}
	if len(attrs) != 8 {
		t.Fatalf("expected 8 attributes, got %d", len(attrs))
	}
}
