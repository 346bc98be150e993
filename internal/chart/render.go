package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ilexagri/website/internal/analysis"
)

var ErrNothingToPlot = errors.New("no positive nutrient values to plot")

const (
	size = 420
	// slices smaller than this share of the total are left unlabelled; the
	// legend next to the chart names them
	minLabelShare = 0.08
)

// Render writes a pie chart of entries to w as SVG. Entries with a value of
// zero or less cannot be drawn and are skipped.
func Render(entries []analysis.ChartEntry, w io.Writer) error {
	total := 0.0
	for _, e := range entries {
		if e.Value > 0 {
			total += e.Value
		}
	}
	if total <= 0 {
		return ErrNothingToPlot
	}

	values := make([]gochart.Value, 0, len(entries))
	for _, e := range entries {
		if e.Value <= 0 {
			continue
		}
		label := ""
		if e.Value/total >= minLabelShare {
			label = e.DisplayLabel
		}
		fill := hexColor(e.Color())
		values = append(values, gochart.Value{
			Value: e.Value,
			Label: label,
			Style: gochart.Style{
				FillColor:   fill,
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
				FontColor:   drawing.ColorWhite,
				FontSize:    11,
			},
		})
	}

	pie := gochart.PieChart{
		Width:  size,
		Height: size,
		Background: gochart.Style{
			FillColor: drawing.ColorTransparent,
		},
		Canvas: gochart.Style{
			FillColor: drawing.ColorTransparent,
		},
		Values: values,
	}
	if err := pie.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}
