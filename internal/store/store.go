package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"tao-data/internal/model"
)

// ErrCorrupt marks a store file that exists but does not parse as the
// expected array of [timestamp, price] pairs. The run must abort without
// writing, so the corrupted data is never replaced.
var ErrCorrupt = errors.New("store file contains invalid data")

// Store reads and writes the dataset file.
type Store struct {
	path string
}

func New(path string) *Store { return &Store{path: path} }

func (s *Store) Path() string { return s.path }

// Load reads the full dataset. A missing or blank file is an empty dataset
// (first-run case); unparseable content is ErrCorrupt.
func (s *Store) Load() (model.Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, nil
	}
	var ds model.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return ds, nil
}

// Write replaces the store file with the candidate dataset, staged through a
// temp file in the same directory so a reader never observes a partial write.
func (s *Store) Write(ds model.Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".price_data-*.tmp")
	if err != nil {
		return fmt.Errorf("stage %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("stage %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("stage %s: %w", s.path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("stage %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("commit %s: %w", s.path, err)
	}
	return nil
}
