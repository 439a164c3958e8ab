package archetype

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")

	require.NoError(t, Save(path, Builtin()))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Builtin().IDs(), loaded.IDs())
	for _, id := range All {
		want, _ := Builtin().Get(id)
		got, ok := loaded.Get(id)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestLoad_CustomTitlesOverrideBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, Save(path, Builtin()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	modified := strings.Replace(string(content), "Red Team Operator", "Purple Team Lead", 1)
	require.NoError(t, os.WriteFile(path, []byte(modified), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)

	p, err := loaded.Synthesize(Adversarial, "security", "t")
	require.NoError(t, err)
	assert.Equal(t, "Purple Team Lead", p.Title)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_BadHeaderQuarantinesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schema_version: 1\nfile_type: execution_plan\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)

	// Original is gone; a timestamped copy sits in quarantine/.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	entries, err := os.ReadDir(filepath.Join(dir, "quarantine"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "registry.yaml")
	assert.Contains(t, entries[0].Name(), ".corrupt")
}

func TestLoad_ValidationFailures(t *testing.T) {
	header := "schema_version: 1\nfile_type: archetype_registry\n"

	tests := []struct {
		name string
		body string
	}{
		{"wrong count", header + `
archetypes:
  - id: ARC-TH
    name: Theoretical
    primary_mode: constructive_analysis
    cognitive_patterns: [a]
    domain_titles: {default: X}
`},
		{"unknown id", header + `
archetypes:
  - {id: ARC-XX, name: A, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
  - {id: ARC-AD, name: B, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
  - {id: ARC-IM, name: C, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
  - {id: ARC-ST, name: D, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
  - {id: ARC-QA, name: E, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
`},
		{"duplicate id", header + `
archetypes:
  - {id: ARC-TH, name: A, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
  - {id: ARC-TH, name: B, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
  - {id: ARC-IM, name: C, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
  - {id: ARC-ST, name: D, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
  - {id: ARC-QA, name: E, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
`},
		{"missing default title", header + `
archetypes:
  - {id: ARC-TH, name: A, primary_mode: m, cognitive_patterns: [a], domain_titles: {security: X}}
  - {id: ARC-AD, name: B, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
  - {id: ARC-IM, name: C, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
  - {id: ARC-ST, name: D, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
  - {id: ARC-QA, name: E, primary_mode: m, cognitive_patterns: [a], domain_titles: {default: X}}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "registry.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}
