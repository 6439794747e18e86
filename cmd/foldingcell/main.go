package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"

	foldApp "github.com/shhac/foldingcell/internal/app"
	"github.com/shhac/foldingcell/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Create a temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting folding cell demo")

	cfg := foldApp.ConfigFromEnv()

	fyneApp := app.NewWithID("com.foldingcell.demo")
	ui.LoadThemePreference(fyneApp, cfg.Theme)

	demo, err := foldApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(demo.FyneApp(), demo)

	// Run the application (blocking)
	demo.Run(mainWindow.Window())

	demo.Logger().Info("application shutdown complete")
	return nil
}
