package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shhac/foldingcell/internal/fold"
	"github.com/shhac/foldingcell/internal/style"
)

const (
	styleFile      = "style.yaml"
	filePermission = 0644
	dirPermission  = 0755
)

// FileRepository implements Repository with a YAML style descriptor
type FileRepository struct {
	basePath string
	logger   *slog.Logger
}

// NewFileRepository creates a repository rooted at basePath
func NewFileRepository(basePath string, logger *slog.Logger) *FileRepository {
	return &FileRepository{
		basePath: basePath,
		logger:   logger,
	}
}

// Path returns the descriptor file location.
func (r *FileRepository) Path() string {
	return filepath.Join(r.basePath, styleFile)
}

// LoadStyle reads the saved descriptor.
func (r *FileRepository) LoadStyle() (fold.Config, bool, error) {
	path := r.Path()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fold.DefaultConfig(), false, nil
	}

	cfg, err := style.Load(path)
	if err != nil {
		return fold.DefaultConfig(), false, err
	}

	r.logger.Debug("loaded style", slog.String("path", path))
	return cfg, true, nil
}

// SaveStyle writes cfg as a complete descriptor.
func (r *FileRepository) SaveStyle(cfg fold.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}
	if err := os.MkdirAll(r.basePath, dirPermission); err != nil {
		return fmt.Errorf("ensure storage directory: %w", err)
	}

	data, err := style.Encode(cfg, style.FormatYAML)
	if err != nil {
		return err
	}

	path := r.Path()
	if err := atomicWriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("write style file: %w", err)
	}

	r.logger.Debug("saved style", slog.String("path", path))
	return nil
}

// atomicWriteFile writes data to a temporary file in the same directory and
// renames it over path, so readers never see a partial file.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
