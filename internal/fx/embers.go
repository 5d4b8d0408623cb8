package fx

import (
	"strconv"
	"strings"
)

var glyphs = []rune{'·', '∙', '•', '*', '\''}

// Ember is one particle at a given frame.
type Ember struct {
	X, Y   int
	Glyph  rune
	Bright bool
}

type seedEmber struct {
	x, y, speed, phase int
	glyph              rune
	bright             bool
}

// Field is a fixed set of embers rising through a w×h board.
type Field struct {
	w, h   int
	embers []seedEmber
}

// NewField places n embers. The same seed and size always give the same field.
func NewField(seed string, w, h, n int) Field {
	f := Field{w: max(w, 1), h: max(h, 1)}
	root := NewStream(SeedFromString(seed))
	for i := 0; i < n; i++ {
		s := root.Child("ember:" + strconv.Itoa(i))
		f.embers = append(f.embers, seedEmber{
			x:      s.Intn(f.w),
			y:      s.Intn(f.h),
			speed:  1 + s.Intn(2),
			phase:  s.Intn(8),
			glyph:  glyphs[s.Intn(len(glyphs))],
			bright: s.Float64() < 0.25,
		})
	}
	return f
}

// At returns ember positions for frame. Embers rise and wrap to the bottom;
// they sway one column either side.
func (f Field) At(frame int) []Ember {
	out := make([]Ember, 0, len(f.embers))
	for _, e := range f.embers {
		y := mod(e.y-frame*e.speed, f.h)
		sway := mod((frame+e.phase)/4, 4)
		if sway == 3 {
			sway = 1
		}
		x := mod(e.x+sway-1, f.w)
		out = append(out, Ember{X: x, Y: y, Glyph: e.glyph, Bright: e.bright})
	}
	return out
}

// Render draws frame as h lines of w cells. paint styles an ember glyph; nil leaves it bare.
func (f Field) Render(frame int, paint func(Ember) string) []string {
	grid := make([][]string, f.h)
	for y := range grid {
		grid[y] = make([]string, f.w)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, e := range f.At(frame) {
		if paint != nil {
			grid[e.Y][e.X] = paint(e)
		} else {
			grid[e.Y][e.X] = string(e.Glyph)
		}
	}
	lines := make([]string, f.h)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return lines
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
