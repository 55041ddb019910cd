package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenarioValid(t *testing.T) {
	path := writeScenario(t, `
name: basic
description: "A basic scenario"
steps:
  - parse: "1500 m"
    to: km
    expect: "1.5 km"
  - parse: "45 s"
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "basic", scenario.Name)
	assert.Equal(t, "", scenario.Catalog)
	require.Len(t, scenario.Steps, 2)
	assert.Equal(t, "1500 m", scenario.Steps[0].Parse)
	assert.Equal(t, "km", scenario.Steps[0].To)
	assert.Equal(t, "1.5 km", scenario.Steps[0].Expect)
	assert.Empty(t, scenario.Steps[1].To)
}

func TestLoadScenarioResolvesCatalogPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "catalog"), 0755))
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: with_catalog
description: "Catalog relative to scenario file"
catalog: catalog
steps:
  - parse: "2 bar"
`), 0644))

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "catalog"), scenario.Catalog)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadScenarioRejectsUnknownFields(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "Misspelled steps key"
step:
  - parse: "1500 m"
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenarioValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing name",
			content: `
description: "No name"
steps:
  - parse: "1500 m"
`,
			wantErr: "name is required",
		},
		{
			name: "missing description",
			content: `
name: no_description
steps:
  - parse: "1500 m"
`,
			wantErr: "description is required",
		},
		{
			name: "missing steps",
			content: `
name: no_steps
description: "No steps"
`,
			wantErr: "steps list is required",
		},
		{
			name: "step without parse",
			content: `
name: bad_step
description: "Step with only a target"
steps:
  - to: km
`,
			wantErr: "steps[0]: parse is required",
		},
		{
			name: "catalog not found",
			content: `
name: missing_catalog
description: "Catalog directory does not exist"
catalog: no-such-dir
steps:
  - parse: "2 bar"
`,
			wantErr: "catalog directory not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
