package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"alkhair/pkg/types"
)

// DataFileName is the file written into a sync directory.
const DataFileName = "alkhair_data.json"

// FileStorage keeps the aggregate as one JSON document in a directory,
// typically a USB stick or a shared folder.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (s *FileStorage) Path() string {
	return filepath.Join(s.dir, DataFileName)
}

// Load returns an empty aggregate when the file does not exist yet.
func (s *FileStorage) Load(ctx context.Context) (*types.AppData, error) {
	payload, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return types.NewAppData(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path(), err)
	}
	return decodeDocument(payload)
}

// Save writes to a temporary file and renames it over the old one so a
// reader never sees half a file.
func (s *FileStorage) Save(ctx context.Context, data *types.AppData) error {
	payload, err := encodeDocument(data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".alkhair-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.Path(), err)
	}
	return nil
}
