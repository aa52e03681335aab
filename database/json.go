// path: database/json.go
package database

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/models"
)

// JSONStore keeps the whole collection as one pretty-printed JSON array
// on disk, newest record first. Every append is a read-modify-write of
// the file, so the mutex serializes writers; without it two concurrent
// appends could silently drop one another's record.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONStore opens the collection at path, creating an empty one if
// none exists yet.
func NewJSONStore(path string) (*JSONStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &StorageError{Op: "init", Err: err}
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return nil, &StorageError{Op: "init", Err: err}
		}
	} else if err != nil {
		return nil, &StorageError{Op: "init", Err: err}
	}
	return &JSONStore{path: path}, nil
}

func (s *JSONStore) Append(_ context.Context, r models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.load()
	if err != nil {
		return err
	}
	reports = append([]models.Report{r}, reports...)
	return s.write(reports)
}

func (s *JSONStore) All(_ context.Context) ([]models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *JSONStore) load() ([]models.Report, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}
	var reports []models.Report
	if err := json.Unmarshal(raw, &reports); err != nil {
		return nil, &StorageError{Op: "decode", Err: err}
	}
	return reports, nil
}

// write replaces the collection file via temp file + rename so a failed
// write never leaves a truncated store behind.
func (s *JSONStore) write(reports []models.Report) error {
	raw, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".reports-*")
	if err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	if _, err := tmp.Write(append(raw, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}
