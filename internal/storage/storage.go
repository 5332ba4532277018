// Package storage persists named collections as JSON array documents on
// local disk, one file per collection.
//
// Writes are atomic: the new document is written to a temporary file in
// the same directory and renamed over the target, so a crash mid-write
// leaves either the old complete document or the new one, never a
// truncated file. That guarantee covers a single save only; two processes
// interleaving load-modify-save cycles over the same files can still lose
// each other's updates. The store assumes at most one writer process.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store reads and writes collections under a single directory. The
// directory is injected at construction so tests can point each store at
// an isolated temporary directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is created lazily on
// the first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store reads and writes under.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the backing file for a collection: dir/{collection}.json.
func (s *Store) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// CorruptError reports a collection file that exists but does not parse
// as a JSON array of records. It is fatal for that collection: the store
// never repairs or deletes the file.
type CorruptError struct {
	Collection string
	Path       string
	Err        error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("collection %s: corrupt document %s: %v", e.Collection, e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// IsCorrupt returns true if err is (or wraps) a CorruptError.
func IsCorrupt(err error) bool {
	var ce *CorruptError
	return errors.As(err, &ce)
}

// Load reads all records of a collection, in document order. A missing
// file is an empty collection, not an error.
func Load[T any](s *Store, collection string) ([]T, error) {
	path := s.Path(collection)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &CorruptError{Collection: collection, Path: path, Err: err}
	}
	if records == nil {
		// The document parsed but was "null", not an array.
		return nil, &CorruptError{Collection: collection, Path: path, Err: errors.New("document is not a JSON array")}
	}
	return records, nil
}

// Save atomically replaces the collection's document with the given
// records, preserving their order.
func Save[T any](s *Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", collection, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	// Temp file must live in the same directory as the target so the
	// rename stays on one filesystem and is atomic.
	tmp, err := os.CreateTemp(s.dir, collection+".json.tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for collection %s: %w", collection, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync collection %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file for collection %s: %w", collection, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod temp file for collection %s: %w", collection, err)
	}
	if err := os.Rename(tmpPath, s.Path(collection)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}
	return nil
}
