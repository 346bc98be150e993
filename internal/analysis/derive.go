package analysis

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ChartEntry is one slice of the nutrient pie chart.
type ChartEntry struct {
	DisplayLabel string  `json:"displayLabel"`
	FullLabel    string  `json:"fullLabel"`
	Value        float64 `json:"value"`
	ColorIndex   int     `json:"colorIndex"`
}

// Color returns the palette colour for the entry.
func (e ChartEntry) Color() string {
	return Palette[e.ColorIndex%len(Palette)]
}

// Derive turns an analysis into chart entries sorted by value, largest first.
// Undisclosed and non-numeric values are dropped. Colours are assigned in
// authored order before sorting, so a nutrient keeps its colour regardless of
// where it lands in the chart. Equal values keep their authored order.
func Derive(a Analysis) []ChartEntry {
	entries := make([]ChartEntry, 0, len(a))
	for _, n := range a {
		if n.Value == nil {
			continue
		}
		v, ok := ParsePercent(*n.Value)
		if !ok {
			continue
		}
		entries = append(entries, ChartEntry{
			DisplayLabel: DisplayLabel(n.Label),
			FullLabel:    n.Label,
			Value:        v,
			ColorIndex:   len(entries) % len(Palette),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	return entries
}

// Total sums the entry values.
func Total(entries []ChartEntry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Value
	}
	return sum
}

var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParsePercent reads the leading number of raw, ignoring surrounding
// whitespace and any trailing unit ("20%", "10.5 w/w"). It reports false when
// raw has no numeric prefix or the number is not finite.
func ParsePercent(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
