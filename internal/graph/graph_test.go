package graph

import "testing"

func sample() *Graph {
	return New(
		[]Node{{ID: "a", X: 0, Y: 0}, {ID: "b", X: 10, Y: 5}, {ID: "c", X: -3, Y: 8}, {ID: "d", X: 4, Y: -2}},
		[]Edge{
			{From: "a", To: "b", Kind: Family, Label: "brothers"},
			{From: "c", To: "a", Kind: Enemy, Label: "feud"},
		},
	)
}

func TestConnectedIDsIncludesSelf(t *testing.T) {
	g := sample()
	ids := g.ConnectedIDs("a")
	for _, want := range []string{"a", "b", "c"} {
		if _, ok := ids[want]; !ok {
			t.Fatalf("missing %s in %v", want, ids)
		}
	}
	if _, ok := ids["d"]; ok {
		t.Fatal("unconnected node included")
	}
	if len(g.ConnectedIDs("d")) != 0 {
		t.Fatal("isolated node should have an empty set")
	}
}

func TestConnectedIDsSymmetric(t *testing.T) {
	g := sample()
	for _, x := range []string{"a", "b", "c", "d"} {
		for y := range g.ConnectedIDs(x) {
			if _, ok := g.ConnectedIDs(y)[x]; !ok {
				t.Fatalf("%s in connected(%s) but not the reverse", y, x)
			}
		}
	}
}

func TestConnections(t *testing.T) {
	g := sample()
	if got := g.Connections("a"); len(got) != 2 || got[0].Label != "brothers" {
		t.Fatalf("connections(a): %+v", got)
	}
	if got := g.Connections("c"); len(got) != 1 || got[0].Other("c") != "a" {
		t.Fatalf("connections(c): %+v", got)
	}
	if got := g.Neighbours("a"); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("neighbours(a): %v", got)
	}
}

func TestPartition(t *testing.T) {
	g := sample()
	lit, dimmed := g.Partition("")
	if len(lit) != 4 || len(dimmed) != 0 {
		t.Fatalf("no selection: lit=%v dimmed=%v", lit, dimmed)
	}
	lit, dimmed = g.Partition("b")
	if len(lit) != 2 || len(dimmed) != 2 {
		t.Fatalf("select b: lit=%v dimmed=%v", lit, dimmed)
	}
	seen := map[string]bool{}
	for _, id := range append(lit, dimmed...) {
		if seen[id] {
			t.Fatalf("%s in both halves", id)
		}
		seen[id] = true
	}
	lit, _ = g.Partition("d")
	if len(lit) != 1 || lit[0] != "d" {
		t.Fatalf("isolated selection should light only itself: %v", lit)
	}
}

func TestEdgeLitAndBounds(t *testing.T) {
	e := Edge{From: "a", To: "b"}
	if !EdgeLit(e, "") || !EdgeLit(e, "b") || EdgeLit(e, "c") {
		t.Fatal("edge highlight")
	}
	minX, minY, maxX, maxY := sample().Bounds()
	if minX != -3 || minY != -2 || maxX != 10 || maxY != 8 {
		t.Fatalf("bounds: %v %v %v %v", minX, minY, maxX, maxY)
	}
}
