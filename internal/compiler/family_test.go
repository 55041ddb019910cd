package compiler

import (
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFamilyBasic(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		quantity: Pressure: {
			canonical: "Pa"

			units: {
				Pa:  {aliases: ["pascals"]}
				kPa: {factor: 1.0e3}
				bar: {factor: 1.0e5, aliases: ["bars"]}
			}

			display: [
				{min: 1.0, unit: "bar"},
				{min: 1.0, unit: "kPa"},
				{min: 0.0, unit: "Pa"},
			]
		}
	`)

	require.NoError(t, v.Err())
	famVal := v.LookupPath(cue.ParsePath("quantity.Pressure"))

	fam, err := CompileFamily("Pressure", famVal)
	require.NoError(t, err)

	assert.Equal(t, "Pressure", fam.Name())
	assert.Equal(t, "Pa", fam.Canonical().Symbol())
	assert.Len(t, fam.Units(), 3)

	bar, ok := fam.Unit("bars")
	require.True(t, ok)
	assert.Equal(t, "bar", bar.Symbol())

	got, err := fam.Convert(2.5, "bar", "kPa")
	require.NoError(t, err)
	assert.Equal(t, 250.0, got)

	display := fam.DisplaySteps()
	require.Len(t, display, 3)
	assert.Equal(t, "bar", display[0].Unit.Symbol())
	assert.Equal(t, 0.0, display[2].Min)
}

func TestCompileCatalogMultipleFamilies(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		quantity: {
			Data: {
				canonical: "B"
				units: {
					B:  {aliases: ["bytes"]}
					kB: {factor: 1.0e3}
					MB: {factor: 1.0e6}
				}
			}
			Frequency: {
				canonical: "Hz"
				units: {
					Hz:  {}
					kHz: {factor: 1.0e3}
				}
			}
		}
	`)

	require.NoError(t, v.Err())
	families, err := CompileCatalog(v)
	require.NoError(t, err)

	require.Len(t, families, 2)
	assert.Equal(t, "Data", families[0].Name())
	assert.Equal(t, "Frequency", families[1].Name())
}

func TestCompileFamilyMissingCanonical(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		quantity: Bad: {
			units: {x: {factor: 2.0}}
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileFamily("Bad", v.LookupPath(cue.ParsePath("quantity.Bad")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "canonical")
	assert.Contains(t, err.Error(), "required")
}

func TestCompileFamilyCanonicalNotDeclared(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		quantity: Bad: {
			canonical: "m"
			units: {
				km: {factor: 1.0e3}
			}
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileFamily("Bad", v.LookupPath(cue.ParsePath("quantity.Bad")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"m"`)
	assert.Contains(t, err.Error(), "not declared")
}

func TestCompileFamilyCanonicalFactorNotOne(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		quantity: Bad: {
			canonical: "m"
			units: {
				m: {factor: 2.0}
			}
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileFamily("Bad", v.LookupPath(cue.ParsePath("quantity.Bad")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "factor 1")
}

func TestCompileFamilyMissingFactor(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		quantity: Bad: {
			canonical: "m"
			units: {
				m:  {}
				km: {}
			}
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileFamily("Bad", v.LookupPath(cue.ParsePath("quantity.Bad")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "factor is required")
	assert.Contains(t, err.Error(), "Bad.units.km")
}

func TestCompileFamilyZeroFactor(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		quantity: Bad: {
			canonical: "m"
			units: {
				m:  {}
				km: {factor: 0.0}
			}
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileFamily("Bad", v.LookupPath(cue.ParsePath("quantity.Bad")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-zero")
}

func TestCompileFamilyDuplicateAlias(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		quantity: Bad: {
			canonical: "m"
			units: {
				m:  {aliases: ["meters"]}
				km: {factor: 1.0e3, aliases: ["meters"]}
			}
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileFamily("Bad", v.LookupPath(cue.ParsePath("quantity.Bad")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "meters")
}

func TestCompileFamilyDisplayUnknownUnit(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		quantity: Bad: {
			canonical: "m"
			units: {
				m: {}
			}
			display: [
				{min: 1.0, unit: "km"},
			]
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileFamily("Bad", v.LookupPath(cue.ParsePath("quantity.Bad")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "km")
}

func TestCompileFamilyDisplayMissingFields(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		quantity: Bad: {
			canonical: "m"
			units: {
				m: {}
			}
			display: [
				{min: 1.0},
			]
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileFamily("Bad", v.LookupPath(cue.ParsePath("quantity.Bad")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "min and unit")
}

func TestCompileCatalogNoQuantityBlock(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`other: {x: 1}`)

	require.NoError(t, v.Err())
	_, err := CompileCatalog(v)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no quantity declarations")
}

func TestCompileErrorIncludesPosition(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		quantity: Bad: {
			canonical: "m"
			units: {
				m:  {}
				km: {}
			}
		}
	`)

	require.NoError(t, v.Err())
	_, err := CompileCatalog(v)

	require.Error(t, err)
	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Bad.units.km", cerr.Field)
}
