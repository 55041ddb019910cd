package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBuiltinCatalog(t *testing.T) {
	scenario := &Scenario{
		Name:        "builtin",
		Description: "Built-in catalog conversions",
		Steps: []Step{
			{Parse: "1500 m", To: "km", Expect: "1.5 km"},
			{Parse: "36 km/h", To: "m/s", Expect: "10 m/s"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Records, 2)

	assert.Equal(t, "Distance", result.Records[0].Family)
	assert.Equal(t, 1.5, result.Records[0].Value)
	assert.Equal(t, "Velocity", result.Records[1].Family)
	assert.Equal(t, 10.0, result.Records[1].Value)
}

func TestRunExpectationMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "mismatch",
		Description: "Expectation that cannot hold",
		Steps: []Step{
			{Parse: "1500 m", To: "km", Expect: "2 km"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `got "1.5 km"`)
	assert.Contains(t, result.Errors[0], `expected "2 km"`)
	// The record is still collected; only the expectation failed.
	assert.Len(t, result.Records, 1)
}

func TestRunUnknownSymbol(t *testing.T) {
	scenario := &Scenario{
		Name:        "unknown_symbol",
		Description: "Symbol registered in no family",
		Steps: []Step{
			{Parse: "5 xyz"},
			{Parse: "5 kg", To: "g", Expect: "5000 g"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "steps[0]")
	assert.Contains(t, result.Errors[0], "in any family")
	// The failing step produces no record; later steps still run.
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Mass", result.Records[0].Family)
}

func TestRunUnknownTargetUnit(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong_target",
		Description: "Target unit from another family",
		Steps: []Step{
			{Parse: "5 kg", To: "mi"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `family Mass has no unit "mi"`)
}

func TestRunBadCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.cue"), []byte(`
package catalog

quantity: Bad: {
	canonical: "m"
	units: {
		m:  {}
		km: {}
	}
}
`), 0644))

	scenario := &Scenario{
		Name:        "bad_catalog",
		Description: "Catalog that fails declaration rules",
		Catalog:     dir,
		Steps:       []Step{{Parse: "1 m"}},
	}

	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling catalog")
	assert.Contains(t, err.Error(), "factor is required")
}
