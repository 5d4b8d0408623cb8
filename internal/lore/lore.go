// Package lore is the static world each persona sees: the relationship web,
// the territory map with its supply routes, the empire feed, the timeline
// and the dossier roster.
package lore

import (
	"github.com/DaanHessen/smallheath/internal/graph"
	"github.com/DaanHessen/smallheath/internal/theme"
)

type Character struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Initials string   `json:"initials"`
	Quote    string   `json:"quote"`
	Aliases  []string `json:"aliases"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
}

type Influence string

const (
	InfluenceHigh   Influence = "high"
	InfluenceMedium Influence = "medium"
	InfluenceLow    Influence = "low"
)

type Territory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Influence   Influence `json:"influenceLevel"`
	Value       int       `json:"inventoryValue"`
	Description string    `json:"description"`
	Lore        string    `json:"lore,omitempty"`
	Personnel   string    `json:"personnel,omitempty"`
	Threat      int       `json:"threatLevel"`
	Revenue     []int     `json:"revenueHistory,omitempty"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
}

type Route struct {
	ID     string `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Cargo  string `json:"cargoType"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

// Active reports whether goods are moving on the route.
func (r Route) Active() bool { return r.Status == "active" }

type Event struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
	When string `json:"timestamp"`
}

// Era is one entry on the timeline.
type Era struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Season      string `json:"season,omitempty"`
	Description string `json:"description"`
	Mood        string `json:"mood"`
	Quote       string `json:"quote,omitempty"`
	Detail      string `json:"detail"`
}

// Profile is a dossier card.
type Profile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	Initials     string `json:"initials"`
	Loyalty      int    `json:"loyalty"`
	Danger       int    `json:"danger"`
	Intelligence int    `json:"intelligence"`
	Quote        string `json:"quote"`
	Backstory    string `json:"backstory"`
}

type Supplier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Trust       int    `json:"trustLevel"`
	Location    string `json:"location"`
}

type World struct {
	Persona       theme.Persona `json:"persona"`
	Characters    []Character   `json:"characters"`
	Relationships []graph.Edge  `json:"relationships"`
	Territories   []Territory   `json:"territories"`
	Routes        []Route       `json:"routes"`
	Events        []Event       `json:"events"`
	Eras          []Era         `json:"eras"`
	Roster        []Profile     `json:"roster"`
	Quotes        []string      `json:"quotes"`
}

// For returns the world seen by p. Unknown personas see the Shelby world.
func For(p theme.Persona) World {
	if p == theme.Luca {
		return lucaWorld()
	}
	return thomasWorld()
}

// Network is the relationship web as a graph.
func (w World) Network() *graph.Graph {
	nodes := make([]graph.Node, 0, len(w.Characters))
	for _, c := range w.Characters {
		nodes = append(nodes, graph.Node{ID: c.ID, Label: c.Name, X: c.X, Y: c.Y})
	}
	return graph.New(nodes, w.Relationships)
}

// TerritoryMap is the territories joined by supply routes. Edge kinds carry the cargo type.
func (w World) TerritoryMap() *graph.Graph {
	nodes := make([]graph.Node, 0, len(w.Territories))
	for _, t := range w.Territories {
		nodes = append(nodes, graph.Node{ID: t.ID, Label: t.Name, X: t.X, Y: t.Y})
	}
	edges := make([]graph.Edge, 0, len(w.Routes))
	for _, r := range w.Routes {
		edges = append(edges, graph.Edge{From: r.From, To: r.To, Kind: graph.Kind(r.Cargo), Label: r.Label})
	}
	return graph.New(nodes, edges)
}

func (w World) Character(id string) (Character, bool) {
	for _, c := range w.Characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

func (w World) Territory(id string) (Territory, bool) {
	for _, t := range w.Territories {
		if t.ID == id {
			return t, true
		}
	}
	return Territory{}, false
}

// RoutesFor returns the supply routes touching the territory with id.
func (w World) RoutesFor(id string) []Route {
	out := []Route{}
	for _, r := range w.Routes {
		if r.From == id || r.To == id {
			out = append(out, r)
		}
	}
	return out
}

type TerritorySummary struct {
	Total         int `json:"total"`
	HighInfluence int `json:"high"`
	Contested     int `json:"contested"`
	TotalValue    int `json:"value"`
}

// Summarize counts territories. Medium influence counts as contested.
func Summarize(ts []Territory) TerritorySummary {
	s := TerritorySummary{Total: len(ts)}
	for _, t := range ts {
		switch t.Influence {
		case InfluenceHigh:
			s.HighInfluence++
		case InfluenceMedium:
			s.Contested++
		}
		s.TotalValue += t.Value
	}
	return s
}

func (w World) Summary() TerritorySummary { return Summarize(w.Territories) }

// Suppliers are the trading partners listed on the reports page.
func Suppliers() []Supplier {
	return []Supplier{
		{ID: "1", Name: "Camden Distillery", Role: "Primary Source", Description: "The source of the finest grain spirits in London. Our longest-standing partnership, dating back to 1915.", Trust: 95, Location: "London"},
		{ID: "2", Name: "The Garrison Pub", Role: "Distribution Hub", Description: "Our primary distribution center for the south of Birmingham. The heart of our local operations.", Trust: 100, Location: "Small Heath, Birmingham"},
		{ID: "3", Name: "Solomon's Imports", Role: "Overseas Partner", Description: "Overseas connections for rare and exotic spirits. Handles all international shipments.", Trust: 75, Location: "London Docks"},
	}
}
