package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/treygoff24/site/models"
)

// defaultCoverMapPath is where the generated cover map lives when no
// explicit path is configured.
const defaultCoverMapPath = "_output/covers.json"

// CoverMapStore defines the interface for persisting and loading the
// generated cover map.
type CoverMapStore interface {
	// Write replaces the stored map atomically.
	Write(m models.CoverMap) error
	// Load reads the stored map. A missing file surfaces as an error
	// wrapping fs.ErrNotExist so callers can treat it as empty.
	Load() (models.CoverMap, error)
}

// LocalCoverMapStore implements CoverMapStore over a flat JSON file on
// the local file system.
type LocalCoverMapStore struct {
	path string
}

// NewLocalCoverMapStore creates a LocalCoverMapStore. If path is
// empty, it defaults to defaultCoverMapPath.
func NewLocalCoverMapStore(path string) *LocalCoverMapStore {
	if path == "" {
		path = defaultCoverMapPath
	}
	return &LocalCoverMapStore{path: path}
}

// Path returns the file path this store reads and writes.
func (s *LocalCoverMapStore) Path() string { return s.path }

// Write marshals the map and replaces the target file atomically:
// the JSON is written to a temp file in the same directory and then
// renamed into place, so readers never observe a half-written file.
func (s *LocalCoverMapStore) Write(m models.CoverMap) error {
	if m == nil {
		m = models.CoverMap{}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cover map: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create cover map directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".covers-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cover map file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp cover map file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp cover map file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace cover map file %q: %w", s.path, err)
	}

	log.Printf("INFO (CoverMapStore): wrote %d entries to %s", len(m), s.path)
	return nil
}

// Load reads and parses the stored cover map.
func (s *LocalCoverMapStore) Load() (models.CoverMap, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cover map file %q: %w", s.path, err)
	}

	var m models.CoverMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse cover map file %q: %w", s.path, err)
	}
	if m == nil {
		m = models.CoverMap{}
	}
	return m, nil
}
