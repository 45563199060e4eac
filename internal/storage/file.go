package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-mousetrap/internal/games/mousetrap/core"
)

// SaveVersion is the layout version written by FileStore.
const SaveVersion = 1

// ErrUnsupportedVersion is returned when a save file has an unknown layout version.
var ErrUnsupportedVersion = errors.New("storage: unsupported save version")

// saveFile is the on-disk layout of a save.
type saveFile struct {
	Version         int   `yaml:"version"`
	LevelsCompleted []int `yaml:"levels_completed"`
}

// FileStore persists progress as a single YAML document.
// Every save rewrites the whole file through a temp file and a rename.
type FileStore struct {
	path string
}

// NewFileStore returns a store for the file at path. A leading ~ is expanded.
// The parent directory is created on first save.
func NewFileStore(path string) (*FileStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the save file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the save file. A missing file yields an empty record.
func (s *FileStore) Load() (core.SaveRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return core.SaveRecord{}, nil
	}
	if err != nil {
		return core.SaveRecord{}, fmt.Errorf("storage: cannot read save %s: %w", s.path, err)
	}

	var f saveFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return core.SaveRecord{}, fmt.Errorf("storage: cannot parse save %s: %w", s.path, err)
	}
	if f.Version != SaveVersion {
		return core.SaveRecord{}, fmt.Errorf("%w: %d in %s", ErrUnsupportedVersion, f.Version, s.path)
	}
	return core.SaveRecord{LevelsCompleted: f.LevelsCompleted}, nil
}

// Save replaces the save file with the given record.
func (s *FileStore) Save(r core.SaveRecord) error {
	data, err := yaml.Marshal(saveFile{
		Version:         SaveVersion,
		LevelsCompleted: slices.Clone(r.LevelsCompleted),
	})
	if err != nil {
		return fmt.Errorf("storage: cannot encode save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", s.path, err)
	}
	if err := writeFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("storage: cannot write save %s: %w", s.path, err)
	}
	return nil
}

// writeFile writes data to a temp file next to path, then renames it over path.
func writeFile(path string, data []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

var _ core.ProgressStore = (*FileStore)(nil)
