package fx

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestStreamDeterminism(t *testing.T) {
	s1 := NewStream(SeedFromString("small heath")).Intn(1000000)
	s2 := NewStream(SeedFromString("small heath")).Intn(1000000)
	if s1 != s2 {
		t.Fatalf("streams differ: %d vs %d", s1, s2)
	}
	c1 := NewStream(SeedFromString("x")).Child("y").Intn(1000000)
	c2 := NewStream(SeedFromString("x")).Child("y").Intn(1000000)
	if c1 != c2 {
		t.Fatalf("child streams differ: %d vs %d", c1, c2)
	}
	if NewStream(1).Intn(0) != 0 {
		t.Fatal("Intn(0) should be 0")
	}
	for i := 0; i < 100; i++ {
		if f := NewStream(uint64(i)).Float64(); f < 0 || f >= 1 {
			t.Fatalf("float out of range: %v", f)
		}
	}
}

func TestFieldDeterministicAndBounded(t *testing.T) {
	a := NewField("thomas", 40, 12, 30)
	b := NewField("thomas", 40, 12, 30)
	if !reflect.DeepEqual(a.At(7), b.At(7)) {
		t.Fatal("same seed gave different fields")
	}
	if reflect.DeepEqual(a.At(0), NewField("luca", 40, 12, 30).At(0)) {
		t.Fatal("different seeds gave identical fields")
	}
	for frame := 0; frame < 50; frame++ {
		for _, e := range a.At(frame) {
			if e.X < 0 || e.X >= 40 || e.Y < 0 || e.Y >= 12 {
				t.Fatalf("frame %d: ember out of bounds %+v", frame, e)
			}
		}
	}
}

func TestRenderShape(t *testing.T) {
	f := NewField("luca", 20, 5, 10)
	lines := f.Render(3, nil)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if utf8.RuneCountInString(l) != 20 {
			t.Fatalf("line width %d: %q", utf8.RuneCountInString(l), l)
		}
	}
	painted := f.Render(3, func(Ember) string { return "x" })
	if reflect.DeepEqual(lines, painted) {
		t.Fatal("paint func ignored")
	}
}

func TestZeroSizeField(t *testing.T) {
	f := NewField("x", 0, 0, 3)
	if got := f.Render(1, nil); len(got) != 1 {
		t.Fatalf("degenerate field should clamp to 1x1, got %d lines", len(got))
	}
}
