package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/foldingcell/internal/fold"
	"github.com/shhac/foldingcell/internal/model"
	"github.com/shhac/foldingcell/internal/ui/components"
	uierrors "github.com/shhac/foldingcell/internal/ui/errors"
	"github.com/shhac/foldingcell/internal/ui/settings"
)

// AppController defines the interface for app-level state needed by the UI
type AppController interface {
	State() *model.DemoState
	Logger() *slog.Logger
	FoldConfig() fold.Config
	SaveStyle(cfg fold.Config) error
	Cells() int
	ThemeMode() string
}

// demoCell is one folding cell in the list and the name it is reported by.
type demoCell struct {
	name string
	cell *components.FoldingCell
}

// MainWindow manages the demo window and its layout.
type MainWindow struct {
	window  fyne.Window
	fyneApp fyne.App
	state   *model.DemoState
	logger  *slog.Logger
	app     AppController

	cells        []demoCell
	motion       *components.MotionToggle
	unfoldAllBtn *widget.Button
	foldAllBtn   *widget.Button
	statusBar    *uierrors.StatusBar
}

// NewMainWindow creates the demo window: a toolbar, a scrolling list of
// folding cells and a status bar.
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("Folding Cell")

	mw := &MainWindow{
		window:  window,
		fyneApp: fyneApp,
		state:   app.State(),
		logger:  app.Logger(),
		app:     app,
	}

	mw.motion = components.NewMotionToggle()
	mw.unfoldAllBtn = widget.NewButtonWithIcon("Unfold all", theme.MenuExpandIcon(), mw.unfoldAll)
	mw.foldAllBtn = widget.NewButtonWithIcon("Fold all", theme.MenuDropDownIcon(), mw.foldAll)
	mw.statusBar = uierrors.NewStatusBar(mw.state)

	for i := 1; i <= app.Cells(); i++ {
		mw.addCell(fmt.Sprintf("Cell %d", i), mw.newSection(i))
	}
	mw.addCell("Short cell", mw.newShortCell())

	mw.wireCallbacks()
	mw.SetContent()
	mw.setupMainMenu()
	mw.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(420, 640))

	return mw
}

// newSection builds a demo cell whose content lists a few detail rows.
func (w *MainWindow) newSection(n int) *components.FoldingCell {
	rows := container.NewVBox()
	for r := 1; r <= 2+n%3; r++ {
		rows.Add(widget.NewLabel(fmt.Sprintf("Detail %d.%d", n, r)))
	}
	accent := canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
	accent.SetMinSize(fyne.NewSize(0, 4))

	return components.NewFoldingSection(fmt.Sprintf("Cell %d", n), container.NewVBox(accent, rows), w.logger)
}

// newShortCell builds a cell whose content is only as tall as its title,
// which the fold engine rejects.
func (w *MainWindow) newShortCell() *components.FoldingCell {
	cell := components.NewFoldingCell(widget.NewLabel("Too short to fold"), nil, w.logger)
	cell.SetTitle(widget.NewButtonWithIcon("Short cell", theme.WarningIcon(), func() {
		w.toggle(cell)
	}))
	return cell
}

func (w *MainWindow) addCell(name string, cell *components.FoldingCell) {
	if err := cell.Configure(w.app.FoldConfig()); err != nil {
		w.logger.Warn("cell config rejected", slog.String("cell", name), slog.Any("error", err))
	}
	cell.SetOnError(w.showError)

	state := cell.State()
	first := true
	state.Animating.AddListener(binding.NewDataListener(func() {
		// listeners fire once on registration
		if first {
			first = false
			return
		}
		w.statusBar.SetStatus(fmt.Sprintf("%s %s", name, state.Label()))
	}))

	w.cells = append(w.cells, demoCell{name: name, cell: cell})
}

// wireCallbacks sets up all the event handlers and connects components
func (w *MainWindow) wireCallbacks() {
	w.motion.SetOnChange(func(instant bool) {
		_ = w.state.SkipAnimation.Set(instant)
		if instant {
			w.statusBar.SetStatus("Instant folding")
		} else {
			w.statusBar.SetStatus("Animated folding")
		}
	})
}

func (w *MainWindow) skipAnimation() bool {
	skip, _ := w.state.SkipAnimation.Get()
	return skip
}

func (w *MainWindow) toggle(cell *components.FoldingCell) {
	if err := cell.Toggle(w.skipAnimation()); err != nil {
		w.showError(err)
	}
}

func (w *MainWindow) unfoldAll() {
	w.applyAll("unfold", (*components.FoldingCell).Unfold)
}

func (w *MainWindow) foldAll() {
	w.applyAll("fold", (*components.FoldingCell).Fold)
}

// toggleAll unfolds every cell when any is folded, otherwise folds them all.
func (w *MainWindow) toggleAll() {
	for _, c := range w.cells {
		if !c.cell.IsUnfolded() {
			w.unfoldAll()
			return
		}
	}
	w.foldAll()
}

// applyAll runs op on every cell and reports the first failure.
func (w *MainWindow) applyAll(action string, op func(*components.FoldingCell, bool) error) {
	skip := w.skipAnimation()
	var firstErr error
	for _, c := range w.cells {
		if err := op(c.cell, skip); err != nil {
			w.logger.Warn(action+" failed", slog.String("cell", c.name), slog.Any("error", err))
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", c.name, err)
			}
		}
	}
	if firstErr != nil {
		w.showError(firstErr)
	}
}

// applyStyle saves cfg and reconfigures every cell. Running animations
// finish with the style they started with.
func (w *MainWindow) applyStyle(cfg fold.Config) error {
	if err := w.app.SaveStyle(cfg); err != nil {
		return err
	}
	for _, c := range w.cells {
		if err := c.cell.Configure(cfg); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	w.statusBar.SetStatus("Style saved")
	return nil
}

func (w *MainWindow) showStyleDialog() {
	settings.ShowStyleDialog(w.window, w.app.FoldConfig(), settings.StyleCallbacks{
		OnSave:  w.applyStyle,
		OnError: w.showError,
	})
}

func (w *MainWindow) showError(err error) {
	w.statusBar.SetStatus(err.Error())
	uierrors.ShowError(err, w.window)
}

// SetContent sets up the main window layout
//
//	┌──────────────────────────────────┐
//	│ Motion | Unfold | Fold | Style   │
//	├──────────────────────────────────┤
//	│  Cell 1                          │
//	│  Cell 2 (unfolded)               │
//	│  ...                             │
//	├──────────────────────────────────┤
//	│ Status Bar                       │
//	└──────────────────────────────────┘
func (w *MainWindow) SetContent() {
	toolbar := container.NewHBox(
		w.motion,
		w.unfoldAllBtn,
		w.foldAllBtn,
		widget.NewButtonWithIcon("", theme.SettingsIcon(), w.showStyleDialog),
	)

	list := container.NewVBox()
	for _, c := range w.cells {
		list.Add(c.cell)
	}

	w.window.SetContent(container.NewBorder(
		toolbar,     // top
		w.statusBar, // bottom
		nil,         // left
		nil,         // right
		container.NewVScroll(list),
	))
}

// setupMainMenu adds the View and Help menus.
func (w *MainWindow) setupMainMenu() {
	themeItem := fyne.NewMenuItem("Theme…", func() {
		ShowThemeDialog(w.fyneApp, w.app.ThemeMode(), w.window)
	})
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle All", w.toggleAll),
		fyne.NewMenuItem("Cell Style…", w.showStyleDialog),
		themeItem,
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
		fyne.NewMenuItem("About", func() { ShowAboutDialog(w.window) }),
	)
	w.window.SetMainMenu(fyne.NewMainMenu(viewMenu, helpMenu))
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
