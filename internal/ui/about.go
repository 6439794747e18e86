package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/foldingcell/internal/ui.Version=1.2.3"
var Version = "dev"

// ShowAboutDialog displays information about the demo.
func ShowAboutDialog(parent fyne.Window) {
	content := container.NewVBox(
		widget.NewLabelWithStyle("Folding Cell", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Cells that unfold like a folded sheet of paper"),
		widget.NewLabel("Version "+Version),
		widget.NewSeparator(),
		widget.NewLabel("Built with Fyne and Go"),
	)
	dialog.ShowCustom("About Folding Cell", "Close", content, parent)
}

// ShowShortcutDialog displays a reference of all keyboard shortcuts.
func ShowShortcutDialog(parent fyne.Window) {
	shortcuts := []struct{ action, key string }{
		{"Toggle All Cells", "⌘ T"},
		{"Switch Animated / Instant", "⌘ I"},
		{"Fold All Cells", "Escape"},
	}

	grid := container.NewGridWithColumns(2)
	for _, s := range shortcuts {
		grid.Add(widget.NewLabel(s.action))
		grid.Add(widget.NewLabelWithStyle(s.key, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}))
	}

	dialog.ShowCustom("Keyboard Shortcuts", "Close", grid, parent)
}

// ShowThemeDialog lets the user pick the theme.
func ShowThemeDialog(a fyne.App, current string, parent fyne.Window) {
	dialog.ShowCustom("Theme", "Close", CreateThemeSelector(a, current), parent)
}
