package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveDropsUndisclosedAndSortsDescending(t *testing.T) {
	a := Of(
		"Nitrogen (N)", "10.0",
		"Phosphorus (P2O5)", "20.0",
		"Boron (B)", "",
	)

	got := Derive(a)

	require.Len(t, got, 2)
	assert.Equal(t, "Phosphorus", got[0].DisplayLabel)
	assert.Equal(t, "Phosphorus (P2O5)", got[0].FullLabel)
	assert.Equal(t, 20.0, got[0].Value)
	assert.Equal(t, "Nitrogen", got[1].DisplayLabel)
	assert.Equal(t, 10.0, got[1].Value)
}

func TestDeriveDropsNonNumericValues(t *testing.T) {
	a := Of(
		"Potassium (K2O)", "trace",
		"Calcium (Ca)", "5",
		"Sulphur (S)", "  ",
		"Magnesium (MgO)", "2.5%",
	)

	got := Derive(a)

	require.Len(t, got, 2)
	assert.Equal(t, "Calcium", got[0].DisplayLabel)
	assert.Equal(t, "Magnesium", got[1].DisplayLabel)
	assert.Equal(t, 2.5, got[1].Value)
}

func TestDeriveKeepsAuthoredOrderForTies(t *testing.T) {
	a := Of(
		"Zinc (Zn)", "1.0",
		"Copper (Cu)", "3.0",
		"Manganese (Mn)", "1.0",
		"Iron (Fe)", "1.0",
	)

	got := Derive(a)

	labels := make([]string, 0, len(got))
	for _, e := range got {
		labels = append(labels, e.DisplayLabel)
	}
	assert.Equal(t, []string{"Copper", "Zinc", "Manganese", "Iron"}, labels)
}

func TestDeriveAssignsColoursBeforeSorting(t *testing.T) {
	a := Of(
		"A", "1",
		"B", "",
		"C", "3",
		"D", "2",
	)

	got := Derive(a)

	require.Len(t, got, 3)
	byLabel := map[string]ChartEntry{}
	for _, e := range got {
		byLabel[e.FullLabel] = e
	}
	assert.Equal(t, 0, byLabel["A"].ColorIndex)
	assert.Equal(t, 1, byLabel["C"].ColorIndex)
	assert.Equal(t, 2, byLabel["D"].ColorIndex)
	assert.Equal(t, Palette[1], byLabel["C"].Color())
}

func TestDeriveCyclesPalette(t *testing.T) {
	n := len(Palette)*2 + 3
	pairs := make([]string, 0, n*2)
	for i := 0; i < n; i++ {
		pairs = append(pairs, fmt.Sprintf("Nutrient %02d", i), fmt.Sprintf("%d", n-i))
	}

	got := Derive(Of(pairs...))

	require.Len(t, got, n)
	for i, e := range got {
		// values were authored descending, so sorted order equals authored order
		assert.Equal(t, i%len(Palette), e.ColorIndex, e.FullLabel)
		assert.Equal(t, Palette[i%len(Palette)], e.Color())
	}
}

func TestDeriveIncludesEveryValidEntryOnce(t *testing.T) {
	a := Of(
		"Nitrogen (N)", "8",
		"Phosphorus (P2O5)", "abc",
		"Potassium (K2O)", "8",
		"Boron (B)", "",
		"Molybdenum (Mo)", "0.01",
	)

	got := Derive(a)

	seen := map[string]int{}
	for _, e := range got {
		seen[e.FullLabel]++
	}
	assert.Equal(t, map[string]int{
		"Nitrogen (N)":    1,
		"Potassium (K2O)": 1,
		"Molybdenum (Mo)": 1,
	}, seen)
}

func TestDeriveEmpty(t *testing.T) {
	assert.Empty(t, Derive(nil))
	assert.Empty(t, Derive(Of("Boron (B)", "")))
}

func TestDeriveReturnsFreshSlices(t *testing.T) {
	a := Of("Nitrogen (N)", "10")
	first := Derive(a)
	first[0].Value = 99

	second := Derive(a)
	assert.Equal(t, 10.0, second[0].Value)
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"10.0", 10, true},
		{" 4.5 ", 4.5, true},
		{"20%", 20, true},
		{".5", 0.5, true},
		{"1e2", 100, true},
		{"-3", -3, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"NaN", 0, false},
		{"1e999", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePercent(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-9, tt.raw)
		}
	}
}

func TestTotal(t *testing.T) {
	entries := Derive(Of("A", "1.5", "B", "2.5"))
	assert.InDelta(t, 4.0, Total(entries), 1e-9)
}
