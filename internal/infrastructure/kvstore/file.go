package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"helpdesk/internal/shared/logger"
)

// FileStore writes one <key>.json file per key under a directory, the
// on-disk analogue of browser local storage. Writes go to a temp file that
// is renamed over the target, so a reader never sees a half-written value.
type FileStore struct {
	mu     sync.Mutex
	dir    string
	logger logger.Interface
}

func NewFileStore(dir string, log logger.Interface) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir, logger: log}, nil
}

func (s *FileStore) Get(_ context.Context, key string, dest any) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}

	s.mu.Lock()
	data, err := os.ReadFile(s.path(key))
	s.mu.Unlock()
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return true, decode(key, data, dest)
}

func (s *FileStore) Set(_ context.Context, key string, value any) error {
	data, err := encode(key, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".kv-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace key %s: %w", key, err)
	}

	s.logger.Debugw("key written", "key", key, "bytes", len(data))
	return nil
}

func (s *FileStore) Remove(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}
