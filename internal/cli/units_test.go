package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsListsBuiltinCatalog(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewUnitsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Mass (canonical: kg)")
	assert.Contains(t, output, "Distance (canonical: m)")
	assert.Contains(t, output, "Relationships:")
	assert.Contains(t, output, "Distance / Time = Velocity")
	assert.Contains(t, output, "Mass * Acceleration = Force")
}

func TestUnitsSingleFamily(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewUnitsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"Mass"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Mass")
	assert.Contains(t, output, "kg")
	assert.NotContains(t, output, "Distance")
}

func TestUnitsUnknownFamily(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewUnitsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"Nope"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no family")
	assert.Contains(t, buf.String(), "E114")
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestUnitsJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewUnitsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"Time"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result UnitsResult
	require.NoError(t, json.Unmarshal(data, &result))

	require.Len(t, result.Families, 1)
	fam := result.Families[0]
	assert.Equal(t, "Time", fam.Name)
	assert.Equal(t, "s", fam.Canonical)

	var hour *UnitInfo
	for i := range fam.Units {
		if fam.Units[i].Symbol == "h" {
			hour = &fam.Units[i]
		}
	}
	require.NotNil(t, hour)
	assert.Equal(t, 3600.0, hour.Factor)
	assert.True(t, hour.Linear)
	assert.False(t, hour.Canonical)
	assert.Contains(t, hour.Aliases, "hours")
}

func TestUnitsWithCatalog(t *testing.T) {
	dir := writeCatalog(t, goodCatalog)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", Catalog: dir}
	cmd := NewUnitsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Pressure (canonical: Pa)")
	assert.Contains(t, output, "bar")
	assert.NotContains(t, output, "Mass")
	// Relationships are compiled-in only.
	assert.NotContains(t, output, "Relationships:")
}
