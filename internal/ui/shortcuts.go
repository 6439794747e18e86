package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Cmd+T: Toggle all cells
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyT,
		Modifier: fyne.KeyModifierSuper, // Cmd on macOS, Win on Windows
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: toggle all")
		w.toggleAll()
	})

	// Cmd+I: Switch between animated and instant folding
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyI,
		Modifier: fyne.KeyModifierSuper,
	}, func(shortcut fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: switch motion")
		w.motion.SetInstant(!w.motion.Instant())
	})

	// Escape: Fold everything
	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			w.logger.Debug("keyboard shortcut: escape (fold all)")
			w.foldAll()
		}
	})

	w.logger.Info("keyboard shortcuts configured")
}
