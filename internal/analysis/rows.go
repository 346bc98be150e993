package analysis

import (
	"math"
	"strconv"
)

// Row is one line of the analysis table printed under the chart.
type Row struct {
	Label     string
	Amount    string
	Disclosed bool
}

const notDisclosed = "Not disclosed"

// Rows lists every authored nutrient, including the ones the chart leaves
// out. Values that do not parse are shown verbatim.
func Rows(a Analysis) []Row {
	rows := make([]Row, 0, len(a))
	for _, n := range a {
		row := Row{Label: n.Label, Amount: notDisclosed}
		if n.Value != nil {
			row.Disclosed = true
			if v, ok := ParsePercent(*n.Value); ok {
				row.Amount = FormatPercent(v) + " w/w"
			} else {
				row.Amount = *n.Value
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatPercent prints v with at most two decimals and a percent sign.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + "%"
}
