package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadFile loads a generated catalog artifact from disk.
func ReadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return c, nil
}

// WriteFile writes the catalog artifact as indented JSON.
// The artifact is an array of tiers, each an array of quest objects.
func WriteFile(c Catalog, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	return nil
}

// Marshal renders the catalog artifact bytes without touching disk.
// Used by WriteFile and by golden tests.
func Marshal(c Catalog) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return append(data, '\n'), nil
}
