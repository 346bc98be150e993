package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAnalysisYAMLKeepsAuthoredOrder(t *testing.T) {
	src := `
Phosphorus (P2O5): "20.0"
Nitrogen (N): 10.0
Boron (B): null
Iron (Fe): ~
Molybdenum (Mo):
`
	var a Analysis
	require.NoError(t, yaml.Unmarshal([]byte(src), &a))

	require.Len(t, a, 5)
	assert.Equal(t, "Phosphorus (P2O5)", a[0].Label)
	assert.Equal(t, "20.0", *a[0].Value)
	assert.Equal(t, "10.0", *a[1].Value)
	for _, n := range a[2:] {
		assert.False(t, n.Disclosed(), n.Label)
	}
}

func TestAnalysisYAMLRejectsBadShapes(t *testing.T) {
	var a Analysis
	assert.Error(t, yaml.Unmarshal([]byte(`[1, 2]`), &a))
	assert.Error(t, yaml.Unmarshal([]byte("N: [1]"), &a))
	assert.ErrorContains(t, yaml.Unmarshal([]byte("N: 1\nN: 2"), &a), "duplicate")
}

func TestAnalysisJSONKeepsAuthoredOrder(t *testing.T) {
	a := Of("Zinc (Zn)", "1", "Boron (B)", "", "Copper (Cu)", "2")

	b, err := json.Marshal(a)
	require.NoError(t, err)

	assert.Equal(t, `{"Zinc (Zn)":"1","Boron (B)":null,"Copper (Cu)":"2"}`, string(b))
}

func TestRows(t *testing.T) {
	rows := Rows(Of(
		"Nitrogen (N)", "10.0",
		"Boron (B)", "",
		"Calcium (Ca)", "trace",
		"Zinc (Zn)", "0.125",
	))

	require.Len(t, rows, 4)
	assert.Equal(t, Row{Label: "Nitrogen (N)", Amount: "10% w/w", Disclosed: true}, rows[0])
	assert.Equal(t, Row{Label: "Boron (B)", Amount: "Not disclosed"}, rows[1])
	assert.Equal(t, Row{Label: "Calcium (Ca)", Amount: "trace", Disclosed: true}, rows[2])
	assert.Equal(t, "0.13% w/w", rows[3].Amount)
}
