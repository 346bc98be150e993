package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	catalogDir = ""
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "serve")
	assert.Contains(t, out, "catalog")
}

func TestSlugCommand(t *testing.T) {
	out, err := execute(t, "slug", "Crop", "Rooter®", "Plus")
	require.NoError(t, err)
	assert.Equal(t, "crop-rooter-plus\n", out)
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "/products/the-ilex-phosphite-range/crop-rooter-plus")
	assert.Contains(t, out, "Foliar NPK Range")
}

func TestAnalysisCommand(t *testing.T) {
	out, err := execute(t, "analysis", "the-ilex-phosphite-range", "ilex-calcium-phos")
	require.NoError(t, err)
	assert.Contains(t, out, "Phosphorus")
	assert.Contains(t, out, "3 nutrient(s) not charted")

	_, err = execute(t, "analysis", "the-ilex-phosphite-range", "nope")
	assert.Error(t, err)
}

func TestServeRequiresContactEndpoint(t *testing.T) {
	t.Setenv("CONTACT_FORM_ENDPOINT", "")
	_, err := execute(t, "serve")
	assert.ErrorContains(t, err, "CONTACT_FORM_ENDPOINT")
}
