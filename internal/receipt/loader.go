// =============================================================================
// Cargo Receipt Generator - Record File Loader
// =============================================================================
//
// The desk can keep seed records as YAML files and load one instead of the
// built-in defaults. Only the fields present in the file override the seed,
// so a partial record file is fine.
//
// =============================================================================

package receipt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a record YAML file on top of the given seed. Fields absent from
// the file keep their seed values.
//
// PARAMETERS:
//   - path: The path to the record YAML file.
//   - seed: The record providing defaults for absent fields.
//
// RETURNS:
//   - The merged record.
//   - An error if the file cannot be read or parsed.
func Load(path string, seed Record) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read record file: %w", err)
	}

	record := seed
	if err := yaml.Unmarshal(data, &record); err != nil {
		return Record{}, fmt.Errorf("failed to parse record file: %w", err)
	}
	return record, nil
}

// Save writes a record as a YAML file the desk can edit and reload. Empty
// quantities are written as null so a round-trip keeps the distinction
// between "empty" and zero.
func Save(path string, record Record) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write record file: %w", err)
	}
	return nil
}
