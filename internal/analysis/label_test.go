package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayLabel(t *testing.T) {
	tests := map[string]string{
		"Phosphorus (P2O5)":            "Phosphorus",
		"Nitrogen (N)":                 "Nitrogen",
		"Potassium":                    "Potassium",
		"Water Soluble (WS) Magnesium": "Water Soluble Magnesium",
		"Phosphite (HPO3) (as P2O5)":   "Phosphite",
		"Boron (B (as borate))":        "Boron",
		"  Copper  (Cu)  ":             "Copper",
		"(N)":                          "",
		"Sulphur (SO3":                 "Sulphur (SO3",
	}
	for in, want := range tests {
		assert.Equal(t, want, DisplayLabel(in), in)
	}
}

func TestDisplayLabelNeverKeepsParenthesisedText(t *testing.T) {
	inputs := []string{
		"Zinc (Zn) (chelated)",
		"Iron ((Fe)) EDTA",
		"Manganese (Mn) total (w/w)",
	}
	for _, in := range inputs {
		out := DisplayLabel(in)
		assert.False(t, innerParens.MatchString(out), out)
		assert.False(t, strings.Contains(out, "  "), out)
		assert.Equal(t, out, DisplayLabel(out))
	}
}
