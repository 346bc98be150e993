package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilexagri/website/internal/analysis"
)

func entries() []analysis.ChartEntry {
	return analysis.Derive(analysis.Of(
		"Nitrogen (N)", "10.0",
		"Phosphorus (P2O5)", "20.0",
		"Zinc (Zn)", "0.5",
		"Boron (B)", "",
	))
}

func TestRenderWritesSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(entries(), &buf))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Phosphorus")
	// zinc is under the label threshold
	assert.NotContains(t, out, "Zinc")
}

func TestRenderNothingToPlot(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Render(nil, &buf), ErrNothingToPlot)

	zero := analysis.Derive(analysis.Of("Nitrogen (N)", "0"))
	assert.ErrorIs(t, Render(zero, &buf), ErrNothingToPlot)
	assert.Zero(t, buf.Len())
}

func TestCacheRendersOnce(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)

	first, err := c.SVG("a/b", entries())
	require.NoError(t, err)
	// a second call with different data still returns the cached render
	second, err := c.SVG("a/b", nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len())

	_, err = c.SVG("a/empty", nil)
	assert.ErrorIs(t, err, ErrNothingToPlot)
	assert.Equal(t, 1, c.Len())
}

func TestCacheEvicts(t *testing.T) {
	c, err := NewCache(1)
	require.NoError(t, err)

	_, err = c.SVG("one", entries())
	require.NoError(t, err)
	_, err = c.SVG("two", entries())
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}
