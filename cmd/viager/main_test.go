package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("VIAGER_TABLES_FILE", "")
	t.Setenv("VIAGER_LOG_LEVEL", "warn")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deals.yaml")
	out, _, err := execute(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example deals written to")
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "viager", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"calculate", "validate", "example", "compare", "solve", "sensitivity", "diseases", "market", "serve", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "viager dev"))
}

func TestExampleAndValidate(t *testing.T) {
	path := writeExample(t)

	out, _, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (2 deals: paris_single, lyon_couple)")
}

func TestValidate_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("deals:\n  - name: broken\n    property_price: -1\n"), 0o644))

	_, _, err := execute(t, "validate", path)
	assert.Error(t, err)
}

func TestCalculate_Console(t *testing.T) {
	path := writeExample(t)

	out, _, err := execute(t, "calculate", path, "--deal", "paris_single")
	require.NoError(t, err)
	assert.Contains(t, out, "271 960 €")
	assert.Contains(t, out, "+16.1%")
	assert.Contains(t, out, "263 mois")
	assert.Contains(t, out, "RENTABLE")
}

func TestCalculate_JSONFillsDepartmentAverage(t *testing.T) {
	path := writeExample(t)

	out, _, err := execute(t, "calculate", path, "--deal", "lyon_couple", "--format", "json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "lyon_couple", result["dealName"])
	assert.Equal(t, true, result["isCouple"])
	assert.Equal(t, "4800", result["avgPriceM2"])
}

func TestCalculate_UnknownFormat(t *testing.T) {
	path := writeExample(t)

	_, _, err := execute(t, "calculate", path, "--format", "xml")
	assert.Error(t, err)
}

func TestCalculate_UnknownDeal(t *testing.T) {
	path := writeExample(t)

	_, _, err := execute(t, "calculate", path, "--deal", "nowhere")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	path := writeExample(t)

	out, _, err := execute(t, "compare", path, "--base", "paris_single", "--deals", "lyon_couple", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "paris_single")
	assert.Contains(t, out, "lyon_couple")

	_, _, err = execute(t, "compare", path)
	assert.ErrorContains(t, err, "nothing to compare")

	out, _, err = execute(t, "compare", "--list-templates")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestSolve(t *testing.T) {
	path := writeExample(t)

	out, _, err := execute(t, "solve", path, "--deal", "paris_single", "--target", "max_rente")
	require.NoError(t, err)
	assert.Contains(t, out, "BREAK-EVEN SOLVER RESULTS")
	assert.Contains(t, out, "Monthly Rente:")

	_, _, err = execute(t, "solve", path, "--target", "min_rente")
	assert.Error(t, err)
}

func TestSolve_AllJSON(t *testing.T) {
	path := writeExample(t)

	out, _, err := execute(t, "solve", path, "--deal", "paris_single", "--format", "json")
	require.NoError(t, err)

	var multi map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &multi))
	assert.Equal(t, "paris_single", multi["deal_name"])
	assert.NotEmpty(t, multi["results"])
}

func TestSensitivity(t *testing.T) {
	path := writeExample(t)

	out, _, err := execute(t, "sensitivity", path, "--deal", "paris_single", "--param", "rente", "--min", "400", "--max", "1200", "--steps", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "SENSITIVITY ANALYSIS: RENTE")
	assert.Contains(t, out, "Deal: paris_single")

	_, _, err = execute(t, "sensitivity", path, "--param", "inflation")
	assert.ErrorContains(t, err, "unknown parameter")

	_, _, err = execute(t, "sensitivity", path, "--steps", "0")
	assert.Error(t, err)
}

func TestDiseases(t *testing.T) {
	out, _, err := execute(t, "diseases")
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "none")

	out, _, err = execute(t, "diseases", "--json")
	require.NoError(t, err)
	var diseases []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &diseases))
	assert.NotEmpty(t, diseases)
}

func TestMarket(t *testing.T) {
	out, _, err := execute(t, "market", "75011")
	require.NoError(t, err)
	assert.Contains(t, out, "(75)")
	assert.Contains(t, out, "Legend")

	out, _, err = execute(t, "market", "23000")
	require.NoError(t, err)
	assert.Contains(t, out, "using national references")
}
