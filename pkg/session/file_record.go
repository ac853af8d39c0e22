package session

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileRecordStore persists the record as a single JSON file. Collapsing the
// token, user and auth flag into one file makes the write atomic at the
// record level: the file either holds a complete record or does not exist.
type FileRecordStore struct {
	mu   sync.Mutex
	path string
}

// NewFileRecordStore creates a store writing to path. Parent directories are
// created on first save.
func NewFileRecordStore(path string) *FileRecordStore {
	return &FileRecordStore{path: path}
}

func (f *FileRecordStore) Save(ctx context.Context, rec Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write leaves the previous record
	// intact instead of a truncated file.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileRecordStore) Load(ctx context.Context) (Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, ErrRecordNotFound
		}
		return Record{}, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, errors.Join(ErrRecordCorrupt, err)
	}
	return rec, nil
}

func (f *FileRecordStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
