package archetype

import (
	"fmt"
	"os"
	"path/filepath"

	yamlv3 "gopkg.in/yaml.v3"

	yamlfile "github.com/quorumlab/quorum/internal/yaml"
)

// RegistryFile is the on-disk schema for an archetype registry override.
// The schema (id → name, primary mode, pattern list, domain→title map) is
// part of the external contract.
type RegistryFile struct {
	SchemaVersion int          `yaml:"schema_version"`
	FileType      string       `yaml:"file_type"`
	Archetypes    []Definition `yaml:"archetypes"`
}

const registryFileType = "archetype_registry"

// Load reads an archetype registry from a YAML file. The file must define
// exactly the five known archetype ids; the table contents (titles, modes,
// patterns) may differ from the built-in defaults. An unparsable file is
// quarantined next to its directory so it is not re-read on the next call.
func Load(path string) (*Registry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}

	if err := yamlfile.ValidateSchemaHeaderFromBytes(content, registryFileType); err != nil {
		if qerr := yamlfile.Quarantine(filepath.Dir(path), path); qerr != nil {
			return nil, fmt.Errorf("invalid registry (quarantine also failed: %v): %w", qerr, err)
		}
		return nil, fmt.Errorf("invalid registry: %w", err)
	}

	var file RegistryFile
	if err := yamlv3.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}

	if err := validateDefinitions(file.Archetypes); err != nil {
		return nil, fmt.Errorf("registry validation failed: %w", err)
	}

	return newRegistry(file.Archetypes), nil
}

// Save writes a registry to a YAML file atomically. Used to materialize the
// built-in table as a starting point for customization.
func Save(path string, r *Registry) error {
	file := RegistryFile{
		SchemaVersion: yamlfile.CurrentSchemaVersion,
		FileType:      registryFileType,
	}
	for _, id := range r.order {
		file.Archetypes = append(file.Archetypes, r.defs[id])
	}
	return yamlfile.AtomicWrite(path, file)
}

func validateDefinitions(defs []Definition) error {
	if len(defs) != len(All) {
		return fmt.Errorf("expected %d archetypes, got %d", len(All), len(defs))
	}

	known := make(map[ID]bool, len(All))
	for _, id := range All {
		known[id] = true
	}

	seen := make(map[ID]bool, len(defs))
	for i, def := range defs {
		if def.ID == "" {
			return fmt.Errorf("archetype %d: id is required", i)
		}
		if !known[def.ID] {
			return fmt.Errorf("archetype %d: unknown id %q", i, def.ID)
		}
		if seen[def.ID] {
			return fmt.Errorf("archetype %d: duplicate id %q", i, def.ID)
		}
		seen[def.ID] = true

		if def.Name == "" {
			return fmt.Errorf("archetype %s: name is required", def.ID)
		}
		if def.PrimaryMode == "" {
			return fmt.Errorf("archetype %s: primary_mode is required", def.ID)
		}
		if len(def.Patterns) == 0 {
			return fmt.Errorf("archetype %s: cognitive_patterns must not be empty", def.ID)
		}
		if def.Titles["default"] == "" {
			return fmt.Errorf("archetype %s: domain_titles must contain a default entry", def.ID)
		}
	}
	return nil
}
