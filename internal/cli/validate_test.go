package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodCatalog = `
package catalog

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
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "catalog.cue"), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

func TestValidateValidCatalog(t *testing.T) {
	dir := writeCatalog(t, goodCatalog)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "✓ Catalog valid")
}

func TestValidateValidCatalogJSON(t *testing.T) {
	dir := writeCatalog(t, goodCatalog)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestValidateNonExistentDirectory(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"/nonexistent/directory/path"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E005") // ErrCodeNotFound
	assert.Contains(t, buf.String(), "not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidateEmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{tmpDir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E003")
	assert.Contains(t, buf.String(), "no CUE files found")
}

func TestValidateMissingFactor(t *testing.T) {
	dir := writeCatalog(t, `
package catalog

quantity: Bad: {
	canonical: "m"
	units: {
		m:  {}
		km: {}
	}
}
`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, buf.String(), "Validation failed")
	assert.Contains(t, buf.String(), "factor is required")
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestValidateCollectsAllErrors(t *testing.T) {
	dir := writeCatalog(t, `
package catalog

quantity: {
	First: {
		canonical: "a"
		units: {
			a: {}
			b: {}
		}
	}
	Second: {
		units: {c: {factor: 2.0}}
	}
}
`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)

	data, err2 := json.Marshal(resp.Data)
	require.NoError(t, err2)
	var result ValidationResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 2)
}

func TestValidateCatalogDirHelper(t *testing.T) {
	dir := writeCatalog(t, goodCatalog)

	errs, err := ValidateCatalogDir(dir)
	require.NoError(t, err)
	assert.Empty(t, errs)
}
