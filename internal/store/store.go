// Package store persists named record collections as whole JSON files under a
// single data directory. There is no query capability: callers load the whole
// collection, mutate their copy and save it back. Each collection has its own
// mutex so a read-modify-write cycle can run as a single writer.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrIO marks any read or write failure against a collection file.
var ErrIO = errors.New("store i/o failure")

type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Store) Dir() string {
	return s.dir
}

// Lock acquires the collection's mutex and returns the unlock func. Callers
// mutating a collection must hold it across the whole load-mutate-save cycle.
func (s *Store) Lock(collection string) func() {
	s.mu.Lock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load reads the whole collection into out. A missing file is reported with
// an error matching both ErrIO and fs.ErrNotExist so callers can decide
// whether absence is acceptable.
func (s *Store) Load(collection string, out any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrIO, collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrIO, collection, err)
	}
	return nil
}

// Save rewrites the whole collection. The file is written to a temp name in
// the same directory and renamed into place so readers never observe a
// partial write.
func (s *Store) Save(collection string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %w", ErrIO, s.dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrIO, collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: temp file for %s: %w", ErrIO, collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %w", ErrIO, collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %w", ErrIO, collection, err)
	}

	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %w", ErrIO, collection, err)
	}
	return nil
}
