package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/storefront-qa/plangen/internal/config"
	"github.com/storefront-qa/plangen/pkg/workbook"
)

const fixtureJSON = `{"tests":{"passed":[{"name":"P1: Add product to cart","category":"cart","status":"passed"}],"failed":[]}}`

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test-results.json")
	output := filepath.Join(dir, "test-plan-output.xlsx")
	require.NoError(t, os.WriteFile(input, []byte(fixtureJSON), 0o644))

	var stdout, stderr strings.Builder
	code := run([]string{"-input", input, "-output", output, "-no-color"}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "Test plan generated successfully: "+output)

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(workbook.SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTitle, title)

	// Header row sits below the ten prerequisite rows.
	header, err := f.GetCellValue(workbook.SheetName, "A11")
	require.NoError(t, err)
	assert.Equal(t, "SL No", header)

	get := func(cell string) string {
		v, err := f.GetCellValue(workbook.SheetName, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "1", get("A12"))
	assert.Equal(t, "Positive", get("B12"))
	assert.Equal(t, "Add product to cart", get("C12"))
	assert.True(t, strings.HasPrefix(get("D12"), "1. Navigate to product detail page"))
	assert.Contains(t, get("E12"), "Product ID: SNOW-123")
	assert.Equal(t, "Product is added to cart successfully", get("F12"))
	assert.Equal(t, "Test passed successfully", get("G12"))
	assert.Equal(t, "", get("H12"))
	assert.Equal(t, "2", get("I12"))

	rows, err := f.GetRows(workbook.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 12, "ten banner rows, header, one data row")

	styleID, err := f.GetCellStyle(workbook.SheetName, "A12")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(strings.Join(style.Fill.Color, ",")), "E2EFDA", "passed row gets the pass fill")
}

func TestRun_MissingInput(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"-input", filepath.Join(t.TempDir(), "absent.json"), "-output", filepath.Join(t.TempDir(), "out.xlsx")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "plangen: ")
}

func TestRun_MalformedInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(input, []byte("{nope"), 0o644))

	var stdout, stderr strings.Builder
	code := run([]string{"-input", input, "-output", filepath.Join(dir, "out.xlsx")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "parsing results")
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"-bogus"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
}

func TestRun_UnexpectedArgument(t *testing.T) {
	var stdout, stderr strings.Builder
	code := run([]string{"stray"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "unexpected argument")
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "results.json")
	output := filepath.Join(dir, "plan.xlsx")
	require.NoError(t, os.WriteFile(input, []byte(fixtureJSON), 0o644))

	cfgPath := filepath.Join(dir, ".plangen.yaml")
	cfgBody := "input: " + input + "\noutput: " + output + "\ntitle: Custom Plan Title\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0o644))

	var stdout, stderr strings.Builder
	code := run([]string{"-config", cfgPath, "-no-color"}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(workbook.SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Custom Plan Title", title)
}
