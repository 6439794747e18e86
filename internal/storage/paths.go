package storage

import (
	"os"
	"path/filepath"
)

const appDir = ".foldingcell"

// DefaultStoragePath returns the default storage location for saved styles
// Platform-specific paths:
//   - macOS/Linux: ~/.foldingcell
//   - Windows: %USERPROFILE%\.foldingcell
func DefaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir), nil
}
