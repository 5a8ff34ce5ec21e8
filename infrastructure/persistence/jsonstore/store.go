// Package jsonstore persists keyed JSON documents as whole files: a
// top-level JSON object whose keys identify the records. Reads and writes
// are not streamed; load and save errors propagate to the caller with no
// retry, since the pipeline is one-shot.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the document at path and decodes it into a map keyed by K.
func Load[K ~string, V any](path string) (map[K]V, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}

	var doc map[K]V
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", path, err)
	}
	return doc, nil
}

// Save writes the document to path as indented, human-readable JSON,
// creating parent directories as needed.
func Save[K ~string, V any](path string, doc map[K]V) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create document dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode document %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}
	return nil
}
