// Package text turns lore into markdown and renders markdown for the terminal.
package text

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
)

// Renderer turns markdown into terminal text wrapped at width.
type Renderer interface {
	Render(md string, width int) (string, error)
}

// glamourRenderer keeps one term renderer per wrap width.
type glamourRenderer struct {
	style string
	mu    sync.Mutex
	byW   map[int]*glamour.TermRenderer
}

// NewGlamour returns a glamour-backed renderer. An empty style picks one from the terminal.
func NewGlamour(style string) Renderer {
	return &glamourRenderer{style: style, byW: map[int]*glamour.TermRenderer{}}
}

func (g *glamourRenderer) Render(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	g.mu.Lock()
	r, ok := g.byW[width]
	if !ok {
		styleOpt := glamour.WithAutoStyle()
		if g.style != "" {
			styleOpt = glamour.WithStandardStyle(g.style)
		}
		var err error
		r, err = glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
		if err != nil {
			g.mu.Unlock()
			return "", errors.Wrap(err, "glamour renderer")
		}
		g.byW[width] = r
	}
	g.mu.Unlock()
	out, err := r.Render(md)
	if err != nil {
		return "", errors.Wrap(err, "glamour render")
	}
	return strings.Trim(out, "\n"), nil
}

// plainRenderer strips markdown markers and leaves the words.
type plainRenderer struct{}

func NewPlain() Renderer { return plainRenderer{} }

func (plainRenderer) Render(md string, width int) (string, error) {
	lines := strings.Split(md, "\n")
	for i, l := range lines {
		l = strings.TrimLeft(l, "#")
		l = strings.TrimPrefix(strings.TrimSpace(l), "> ")
		l = strings.TrimSpace(strings.ReplaceAll(l, "**", ""))
		// only whole-line italics; underscores inside names are kept
		if len(l) > 1 && l[0] == '_' && l[len(l)-1] == '_' {
			l = l[1 : len(l)-1]
		}
		lines[i] = l
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// WithFallback returns a renderer that prefers primary and falls back on error.
func WithFallback(primary, fallback Renderer) Renderer {
	return &fallbackRenderer{p: primary, f: fallback}
}

type fallbackRenderer struct{ p, f Renderer }

func (r *fallbackRenderer) Render(md string, width int) (string, error) {
	if r.p == nil {
		return r.f.Render(md, width)
	}
	if s, err := r.p.Render(md, width); err == nil {
		return s, nil
	}
	return r.f.Render(md, width)
}

// Must renders md and returns the plain markdown if every renderer fails.
func Must(r Renderer, md string, width int) string {
	s, err := r.Render(md, width)
	if err != nil {
		return md
	}
	return s
}

func meter(label string, v int) string {
	filled := v / 10
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return fmt.Sprintf("%-12s %s%s %3d", label, strings.Repeat("█", filled), strings.Repeat("░", 10-filled), v)
}
