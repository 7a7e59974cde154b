// SPDX-License-Identifier: MIT
package plot_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/cubature/domain"
	"github.com/katalvlaran/cubature/plot"
	"github.com/katalvlaran/cubature/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unit = domain.Rectangle{X0: 0, X1: 1, Y0: 0, Y1: 1}.Quadrilateral()

func plain() plot.Option { return plot.WithStyles(plot.PlainStyles()) }

func TestGlyph(t *testing.T) {
	assert.Equal(t, plot.GlyphSmall, plot.Glyph(0.1, 1))
	assert.Equal(t, plot.GlyphMedium, plot.Glyph(-0.5, 1))
	assert.Equal(t, plot.GlyphLarge, plot.Glyph(1, 1))
	assert.Equal(t, plot.GlyphLarge, plot.Glyph(-0.7, 1))
	assert.Equal(t, plot.GlyphSmall, plot.Glyph(1, 0))
}

func TestRender_Centroid(t *testing.T) {
	s, err := scheme.Stroud(1)
	require.NoError(t, err)
	out := plot.Render(unit, s, plain(), plot.WithSize(21, 11))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1+11+1)
	assert.True(t, strings.HasPrefix(lines[0], "Stroud C2 1-1"))
	assert.Equal(t, 1, strings.Count(out, string(plot.GlyphLarge)))
	assert.Equal(t, plot.GlyphLarge, []rune(lines[1+5])[10], "centre cell")
	assert.Contains(t, out, string(plot.GlyphOutline))
	assert.Contains(t, lines[12], "1 points, degree 1, 0 negative weights")
}

// TestRender_NegativeWeights uses the open Newton–Cotes rule with two
// interior nodes' negative middle weight.
func TestRender_NegativeWeights(t *testing.T) {
	l, err := scheme.NewtonCotesOpen(2)
	require.NoError(t, err)
	s, err := scheme.FromLine(l)
	require.NoError(t, err)

	out := plot.Render(unit, s, plain(), plot.WithSize(41, 21))
	assert.Equal(t, 4, strings.Count(out, string(plot.GlyphLarge)))  // 16/9 corners
	assert.Equal(t, 4, strings.Count(out, string(plot.GlyphMedium))) // −8/9 edges
	assert.Equal(t, 1, strings.Count(out, string(plot.GlyphSmall)))  // 4/9 centre
	assert.Contains(t, out, "9 points, degree 3, 4 negative weights")
}

func TestRender_OutlineOnly(t *testing.T) {
	q := domain.Quadrilateral{{X: 0, Y: 0}, {X: 2, Y: 0.5}, {X: 2.5, Y: 1.5}, {X: 0.5, Y: 1}}
	out := plot.Render(q, nil, plain())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1+20)
	assert.True(t, strings.HasPrefix(lines[0], "domain"))
	assert.NotContains(t, out, string(plot.GlyphLarge))
	// every grid row touches the outline: the ring spans the full bounding box
	for _, line := range lines[1:] {
		assert.Contains(t, line, string(plot.GlyphOutline))
	}
}

func TestShow(t *testing.T) {
	s, err := scheme.Stroud(2)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, plot.Show(&buf, unit, s, plain()))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Equal(t, 4, strings.Count(buf.String(), string(plot.GlyphLarge)))
}

func TestWithSize_Panics(t *testing.T) {
	require.Panics(t, func() { plot.Render(unit, nil, plot.WithSize(1, 5)) })
}
