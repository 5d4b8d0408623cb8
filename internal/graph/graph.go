// Package graph holds small positioned graphs: the relationship web and the
// territory map are both nodes on a board joined by labelled edges.
package graph

import "sort"

type Kind string

const (
	Family  Kind = "family"
	Ally    Kind = "ally"
	Enemy   Kind = "enemy"
	Neutral Kind = "neutral"
)

// Node is a vertex placed on a board. X and Y are board coordinates.
type Node struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Edge is undirected for connectivity purposes; From and To keep the
// orientation the data was written in.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Kind  Kind   `json:"kind"`
	Label string `json:"label"`
}

// Touches reports whether id is either endpoint.
func (e Edge) Touches(id string) bool { return e.From == id || e.To == id }

// Other returns the endpoint opposite id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

type Graph struct {
	nodes []Node
	edges []Edge
	index map[string]int
}

// New builds a graph. Edges naming unknown nodes are kept; they simply never
// show up in Partition.
func New(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		nodes: append([]Node{}, nodes...),
		edges: append([]Edge{}, edges...),
		index: make(map[string]int, len(nodes)),
	}
	for i, n := range g.nodes {
		g.index[n.ID] = i
	}
	return g
}

func (g *Graph) Nodes() []Node { return append([]Node{}, g.nodes...) }
func (g *Graph) Edges() []Edge { return append([]Edge{}, g.edges...) }

func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Connections returns the edges with id as either endpoint, in data order.
func (g *Graph) Connections(id string) []Edge {
	out := []Edge{}
	for _, e := range g.edges {
		if e.Touches(id) {
			out = append(out, e)
		}
	}
	return out
}

// ConnectedIDs is the set of endpoints of Connections(id). It contains id
// itself whenever any edge touches it.
func (g *Graph) ConnectedIDs(id string) map[string]struct{} {
	ids := map[string]struct{}{}
	for _, e := range g.Connections(id) {
		ids[e.From] = struct{}{}
		ids[e.To] = struct{}{}
	}
	return ids
}

// Neighbours returns the ids adjacent to id, sorted.
func (g *Graph) Neighbours(id string) []string {
	out := []string{}
	for other := range g.ConnectedIDs(id) {
		if other != id {
			out = append(out, other)
		}
	}
	sort.Strings(out)
	return out
}

// Partition splits all node ids into highlighted and dimmed around selected.
// An empty selection lights everything. The two slices never overlap and
// keep node order.
func (g *Graph) Partition(selected string) (lit, dimmed []string) {
	lit, dimmed = []string{}, []string{}
	if selected == "" {
		for _, n := range g.nodes {
			lit = append(lit, n.ID)
		}
		return lit, dimmed
	}
	conn := g.ConnectedIDs(selected)
	conn[selected] = struct{}{}
	for _, n := range g.nodes {
		if _, ok := conn[n.ID]; ok {
			lit = append(lit, n.ID)
		} else {
			dimmed = append(dimmed, n.ID)
		}
	}
	return lit, dimmed
}

// EdgeLit reports whether e should be highlighted for selected.
func EdgeLit(e Edge, selected string) bool {
	return selected == "" || e.Touches(selected)
}

// Bounds returns the bounding box of all node positions.
func (g *Graph) Bounds() (minX, minY, maxX, maxY float64) {
	for i, n := range g.nodes {
		if i == 0 {
			minX, maxX, minY, maxY = n.X, n.X, n.Y, n.Y
			continue
		}
		minX, maxX = min(minX, n.X), max(maxX, n.X)
		minY, maxY = min(minY, n.Y), max(maxY, n.Y)
	}
	return minX, minY, maxX, maxY
}
