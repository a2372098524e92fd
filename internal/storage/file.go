package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/darrenchooji/fiona/internal/domain"
)

// FileStore keeps records in a plain text file.
type FileStore struct {
	path   string
	codec  *Codec
	logger *slog.Logger
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string, codec *Codec, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{path: path, codec: codec, logger: logger}
}

func (s *FileStore) Name() string {
	return "file"
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the file. A missing file is an empty list.
func (s *FileStore) Load(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "load", Path: s.path, Err: err}
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no task file yet", "path", s.path)
		return nil, nil
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	defer f.Close()

	tasks, err := s.codec.Load(f)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return tasks, nil
}

// Save rewrites the file. Records go to a temp file in the same directory
// which then replaces the target.
func (s *FileStore) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return &domain.PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	if err := s.write(tasks); err != nil {
		return &domain.PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

func (s *FileStore) write(tasks []domain.Task) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := s.codec.Save(tmp, tasks); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing task file: %w", err)
	}
	return nil
}
