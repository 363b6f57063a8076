package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the whole namespace as one JSON document on disk,
// mapping key -> raw JSON value. Loading is best-effort: a missing or
// corrupt file starts the store empty. Writes replace the file
// atomically via a temp file and rename.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]json.RawMessage
	logger  *slog.Logger
}

// NewFileStore opens (or initializes) the store backed by path.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("file store path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	fs := &FileStore{
		path:    path,
		entries: make(map[string]json.RawMessage),
		logger:  logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read store file, starting empty",
				slog.String("path", path),
				slog.Any("error", err),
			)
		}
		return fs, nil
	}

	if err := json.Unmarshal(data, &fs.entries); err != nil {
		logger.Warn("Store file is not valid JSON, starting empty",
			slog.String("path", path),
			slog.Any("error", err),
		)
		fs.entries = make(map[string]json.RawMessage)
	}

	return fs, nil
}

func (f *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.entries[key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (f *FileStore) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	f.entries[key] = stored

	return f.flushLocked()
}

func (f *FileStore) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.entries[key]; !ok {
		return nil
	}
	delete(f.entries, key)

	return f.flushLocked()
}

// flushLocked writes the full document. Caller holds f.mu.
func (f *FileStore) flushLocked() error {
	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}

	return nil
}
