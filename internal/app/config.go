package app

import (
	"os"
	"strconv"
)

// DefaultCells is the number of folding cells the demo window shows.
const DefaultCells = 8

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// StylePath is a YAML or TOML style descriptor applied to every cell.
	// Empty means the built-in defaults.
	StylePath string

	// Theme is "system", "light" or "dark". Empty keeps the saved preference.
	Theme string

	// Cells is the number of demo cells.
	Cells int

	// StoragePath is the directory the edited style is saved in
	StoragePath string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		Cells:       DefaultCells,
		StoragePath: "", // Will use DefaultStoragePath() from storage package
	}
}

// ConfigFromEnv creates a configuration from environment variables.
// Reads FOLDCELL_DEBUG, FOLDCELL_STYLE, FOLDCELL_THEME, FOLDCELL_CELLS and
// FOLDCELL_STORAGE_PATH.
// Unparseable values are ignored.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("FOLDCELL_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if stylePath := os.Getenv("FOLDCELL_STYLE"); stylePath != "" {
		cfg.StylePath = stylePath
	}

	switch themeMode := os.Getenv("FOLDCELL_THEME"); themeMode {
	case "system", "light", "dark":
		cfg.Theme = themeMode
	}

	if cellsStr := os.Getenv("FOLDCELL_CELLS"); cellsStr != "" {
		if cells, err := strconv.Atoi(cellsStr); err == nil && cells > 0 {
			cfg.Cells = cells
		}
	}

	if storagePath := os.Getenv("FOLDCELL_STORAGE_PATH"); storagePath != "" {
		cfg.StoragePath = storagePath
	}

	return cfg
}
