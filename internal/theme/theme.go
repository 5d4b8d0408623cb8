// Package theme holds the persona palettes and the stealth override.
package theme

// Persona identifies whose narrative and palette is active.
type Persona string

const (
	Thomas Persona = "thomas"
	Luca   Persona = "luca"
)

// Theme is the resolved bundle of colors and copy every view draws with.
type Theme struct {
	Name        string `json:"name"`
	FullName    string `json:"fullName"`
	Title       string `json:"title"`
	Accent      string `json:"accent"`
	AccentLight string `json:"accentLight"`
	AccentRGB   string `json:"accentRgb"`
	Background  string `json:"bg"`
	Surface     string `json:"surface"`
	Quote       string `json:"splashQuote"`
	Author      string `json:"splashAuthor"`
	Particle    string `json:"particleColor"`
}

// stealth replaces the color fields of whichever persona is active.
var stealth = Theme{
	Accent:      "#e5e5e5",
	AccentLight: "#ffffff",
	AccentRGB:   "229, 229, 229",
	Background:  "#000000",
	Surface:     "rgba(20, 20, 20, 0.9)",
	Particle:    "rgba(200, 200, 200, 0.3)",
}

// Registry is an ordered set of persona themes. The first entry is the default.
type Registry struct {
	order  []Persona
	themes map[Persona]Theme
}

// NewRegistry builds a registry; later duplicates of a persona replace earlier ones.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{themes: make(map[Persona]Theme, len(entries))}
	for _, e := range entries {
		if _, seen := r.themes[e.Persona]; !seen {
			r.order = append(r.order, e.Persona)
		}
		r.themes[e.Persona] = e.Theme
	}
	return r
}

// Entry pairs a persona with its base theme.
type Entry struct {
	Persona Persona
	Theme   Theme
}

// Default is the registry shipped with the app.
func Default() *Registry {
	return NewRegistry(
		Entry{Thomas, Theme{
			Name:        "Thomas",
			FullName:    "Thomas Shelby",
			Title:       "Shelby Company Limited",
			Accent:      "#c9a86c",
			AccentLight: "#d4b87c",
			AccentRGB:   "201, 168, 108",
			Background:  "#0a0a0a",
			Surface:     "rgba(26, 26, 26, 0.6)",
			Quote:       "I'm not a traitor to my class. I am just an extreme example of what a working man can achieve.",
			Author:      "Thomas Shelby",
			Particle:    "rgba(201, 168, 108, 0.4)",
		}},
		Entry{Luca, Theme{
			Name:        "Luca",
			FullName:    "Luca Changretta",
			Title:       "Changretta Famiglia",
			Accent:      "#8b0000",
			AccentLight: "#c0392b",
			AccentRGB:   "139, 0, 0",
			Background:  "#0d0505",
			Surface:     "rgba(40, 10, 10, 0.6)",
			Quote:       "Vendetta. It's the only thing I understand.",
			Author:      "Luca Changretta",
			Particle:    "rgba(200, 30, 30, 0.5)",
		}},
	)
}

func (r *Registry) Personas() []Persona { return append([]Persona(nil), r.order...) }

// Default returns the persona used when nothing valid is stored.
func (r *Registry) Default() Persona {
	if len(r.order) == 0 {
		return ""
	}
	return r.order[0]
}

// Parse reports whether s names a registered persona.
func (r *Registry) Parse(s string) (Persona, bool) {
	p := Persona(s)
	_, ok := r.themes[p]
	return p, ok
}

// Next cycles to the persona after p. Unknown personas map to the default.
func (r *Registry) Next(p Persona) Persona {
	for i, q := range r.order {
		if q == p {
			return r.order[(i+1)%len(r.order)]
		}
	}
	return r.Default()
}

// Resolve combines a persona with the stealth flag. Pure; callers should not cache the result
// across persona or stealth changes.
func (r *Registry) Resolve(p Persona, stealthOn bool) Theme {
	t, ok := r.themes[p]
	if !ok {
		t = r.themes[r.Default()]
	}
	if stealthOn {
		t.Accent = stealth.Accent
		t.AccentLight = stealth.AccentLight
		t.AccentRGB = stealth.AccentRGB
		t.Background = stealth.Background
		t.Surface = stealth.Surface
		t.Particle = stealth.Particle
	}
	return t
}

// Attributes are the document-level presentation attributes external
// consumers (stylesheets, the HTTP API) read for the current state.
func Attributes(p Persona, stealthOn bool, t Theme) map[string]string {
	s := "false"
	if stealthOn {
		s = "true"
	}
	return map[string]string{
		"data-character":   string(p),
		"data-stealth":     s,
		"--accent":         t.Accent,
		"--accent-light":   t.AccentLight,
		"--accent-rgb":     t.AccentRGB,
		"--bg":             t.Background,
		"--surface":        t.Surface,
		"--particle-color": t.Particle,
	}
}
