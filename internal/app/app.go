package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/shhac/foldingcell/internal/fold"
	"github.com/shhac/foldingcell/internal/logging"
	"github.com/shhac/foldingcell/internal/model"
	"github.com/shhac/foldingcell/internal/storage"
	"github.com/shhac/foldingcell/internal/style"
)

// App is the demo application coordinator, responsible for wiring
// together logging, style settings, storage and UI state.
type App struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     *Config
	logger     *slog.Logger
	storage    storage.Repository
	foldConfig fold.Config
	state      *model.DemoState
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger("foldingcell", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	storagePath := cfg.StoragePath
	if storagePath == "" {
		storagePath, err = storage.DefaultStoragePath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine storage path: %w", err)
		}
	}

	return newApp(fyneApp, cfg, logger, storage.NewFileRepository(storagePath, logger))
}

func newApp(fyneApp fyne.App, cfg *Config, logger *slog.Logger, repo storage.Repository) (*App, error) {
	logger.Info("initializing folding cell demo",
		slog.Bool("debug", cfg.Debug),
		slog.String("style_path", cfg.StylePath),
		slog.Int("cells", cfg.Cells),
	)

	foldConfig, err := initialStyle(cfg, repo, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("application initialized successfully",
		slog.Duration("animation_duration", foldConfig.AnimationDuration),
		slog.String("back_side_color", style.FormatColor(foldConfig.BackSideColor)),
		slog.Int("additional_flips_count", foldConfig.AdditionalFlips),
		slog.Int("camera_height", foldConfig.CameraHeight),
	)

	return &App{
		fyneApp:    fyneApp,
		config:     cfg,
		logger:     logger,
		storage:    repo,
		foldConfig: foldConfig,
		state:      model.NewDemoState(),
	}, nil
}

// initialStyle picks the explicit descriptor, then the saved style, then
// the defaults. A broken saved style is logged and skipped.
func initialStyle(cfg *Config, repo storage.Repository, logger *slog.Logger) (fold.Config, error) {
	if cfg.StylePath != "" {
		loaded, err := style.Load(cfg.StylePath)
		if err != nil {
			return fold.Config{}, fmt.Errorf("failed to load style %s: %w", cfg.StylePath, err)
		}
		return loaded, nil
	}

	saved, ok, err := repo.LoadStyle()
	if err != nil {
		logger.Warn("ignoring saved style", slog.Any("error", err))
		return fold.DefaultConfig(), nil
	}
	if ok {
		logger.Debug("using saved style")
		return saved, nil
	}
	return fold.DefaultConfig(), nil
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// State returns the demo state for use by UI components.
func (a *App) State() *model.DemoState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// FoldConfig returns the settings every demo cell is configured with.
func (a *App) FoldConfig() fold.Config {
	return a.foldConfig
}

// SaveStyle persists cfg and makes it the style for new and reconfigured
// cells.
func (a *App) SaveStyle(cfg fold.Config) error {
	if err := a.storage.SaveStyle(cfg); err != nil {
		return fmt.Errorf("failed to save style: %w", err)
	}
	a.foldConfig = cfg
	a.logger.Info("style saved")
	return nil
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Cells returns the number of demo cells.
func (a *App) Cells() int {
	return a.config.Cells
}

// ThemeMode returns the theme forced from the environment, or "" to use
// the saved preference.
func (a *App) ThemeMode() string {
	return a.config.Theme
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
