// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/cubature/domain"
	"github.com/katalvlaran/cubature/scheme"
)

// Glyphs used by Render.
const (
	GlyphOutline = '·'
	GlyphSmall   = '∙'
	GlyphMedium  = '•'
	GlyphLarge   = '●'
)

// Styles holds the lipgloss styles of each element.
type Styles struct {
	Title    lipgloss.Style
	Outline  lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Legend   lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Outline:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7a89")),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true),
		Legend:   lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles returns unstyled elements, for pipes and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Title: plain, Outline: plain, Positive: plain, Negative: plain, Legend: plain}
}

// Options configures Render.
type Options struct {
	Width, Height int
	Styles        Styles
}

// Option is a functional option for Render and Show.
type Option func(*Options)

// DefaultOptions is a 48×20 grid with DefaultStyles.
func DefaultOptions() Options {
	return Options{Width: 48, Height: 20, Styles: DefaultStyles()}
}

// WithSize sets the grid size in cells. Panics if either side is < 2.
func WithSize(width, height int) Option {
	return func(o *Options) {
		if width < 2 || height < 2 {
			panic("plot: grid must be at least 2×2")
		}
		o.Width, o.Height = width, height
	}
}

// WithStyles replaces the palette.
func WithStyles(s Styles) Option {
	return func(o *Options) { o.Styles = s }
}

type kind uint8

const (
	empty kind = iota
	outline
	positive
	negative
)

type cell struct {
	r    rune
	k    kind
	size float64 // |w| of the marker occupying the cell
}

// grid maps physical coordinates onto a Width×Height character raster,
// row 0 at the top.
type grid struct {
	o      Options
	bounds domain.Rectangle
	cells  [][]cell
}

func newGrid(o Options, b domain.Rectangle) *grid {
	g := &grid{o: o, bounds: b, cells: make([][]cell, o.Height)}
	for i := range g.cells {
		g.cells[i] = make([]cell, o.Width)
	}

	return g
}

func (g *grid) locate(p domain.Point) (row, col int) {
	span := func(lo, hi float64) float64 {
		if hi == lo {
			return 1
		}
		return hi - lo
	}
	col = int(math.Round((p.X - g.bounds.X0) / span(g.bounds.X0, g.bounds.X1) * float64(g.o.Width-1)))
	row = int(math.Round((g.bounds.Y1 - p.Y) / span(g.bounds.Y0, g.bounds.Y1) * float64(g.o.Height-1)))

	return min(max(row, 0), g.o.Height-1), min(max(col, 0), g.o.Width-1)
}

// trace marks the four edges of q, sampled densely enough to leave no gaps.
func (g *grid) trace(q domain.Quadrilateral) {
	steps := 2 * (g.o.Width + g.o.Height)
	for i := range q {
		a, b := q[i], q[(i+1)%4]
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			row, col := g.locate(domain.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
			if g.cells[row][col].k == empty {
				g.cells[row][col] = cell{r: GlyphOutline, k: outline}
			}
		}
	}
}

// mark places a weight marker; the larger |w| wins a shared cell.
func (g *grid) mark(p domain.Point, w, maxAbs float64) {
	row, col := g.locate(p)
	c := &g.cells[row][col]
	if c.k >= positive && c.size >= math.Abs(w) {
		return
	}
	k := positive
	if w < 0 {
		k = negative
	}
	*c = cell{r: Glyph(w, maxAbs), k: k, size: math.Abs(w)}
}

func (g *grid) String() string {
	st := g.o.Styles
	var sb strings.Builder
	for i, row := range g.cells {
		for _, c := range row {
			switch c.k {
			case outline:
				sb.WriteString(st.Outline.Render(string(c.r)))
			case positive:
				sb.WriteString(st.Positive.Render(string(c.r)))
			case negative:
				sb.WriteString(st.Negative.Render(string(c.r)))
			default:
				sb.WriteByte(' ')
			}
		}
		if i+1 < len(g.cells) {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Glyph returns the marker for weight w given the largest |w| of the scheme.
func Glyph(w, maxAbs float64) rune {
	if maxAbs <= 0 {
		return GlyphSmall
	}
	switch r := math.Abs(w) / maxAbs; {
	case r < 1.0/3:
		return GlyphSmall
	case r < 2.0/3:
		return GlyphMedium
	}

	return GlyphLarge
}

// Render draws s mapped onto q. A nil scheme draws the outline only.
func Render(q domain.Quadrilateral, s *scheme.Scheme, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := newGrid(o, q.Bounds())
	g.trace(q)

	title := "domain"
	legend := ""
	if s != nil {
		maxAbs, neg := 0.0, 0
		for _, w := range s.Weights() {
			maxAbs = math.Max(maxAbs, math.Abs(w))
			if w < 0 {
				neg++
			}
		}
		for xi, w := range s.All() {
			g.mark(q.Map(xi), w, maxAbs)
		}
		title = s.Name()
		legend = fmt.Sprintf("%d points, degree %d, %d negative weights, max |w| %.4g",
			s.Len(), s.Degree(), neg, maxAbs)
	}

	parts := []string{o.Styles.Title.Render(title), g.String()}
	if legend != "" {
		parts = append(parts, o.Styles.Legend.Render(legend))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Show writes Render(q, s, opts...) followed by a newline to w.
func Show(w io.Writer, q domain.Quadrilateral, s *scheme.Scheme, opts ...Option) error {
	_, err := fmt.Fprintln(w, Render(q, s, opts...))

	return err
}
