package components

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/foldingcell/internal/fold"
	"github.com/shhac/foldingcell/internal/logging"
	"github.com/shhac/foldingcell/internal/model"
)

// FoldingCell shows a compact title that unfolds, panel by panel like a
// folded sheet of paper, into a taller content view.
//
// The content must be at least twice as tall as the title. Unfold, Fold and
// Toggle must be called on the Fyne event loop.
type FoldingCell struct {
	widget.BaseWidget

	content fyne.CanvasObject
	title   fyne.CanvasObject

	seq       *fold.Sequencer
	state     *model.FoldState
	logger    *slog.Logger
	rasterize Rasterizer
	clock     fold.Clock

	height   float32 // container height override, 0 until the first fold or unfold
	scaffold *scaffold

	onError func(error)
}

// NewFoldingCell creates a folded cell. Either view may be nil and set
// later; folding is a no-op until both are present.
func NewFoldingCell(content, title fyne.CanvasObject, logger *slog.Logger) *FoldingCell {
	c := &FoldingCell{
		content:   content,
		title:     title,
		state:     model.NewFoldState(),
		logger:    logging.Component(logger, "folding_cell"),
		rasterize: SoftwareRasterizer,
		clock:     animationClock{},
	}
	if content != nil {
		content.Hide()
	}

	c.seq = fold.NewSequencer(cellHost{c}, cellHost{c}, c.logger)
	c.seq.SetOnStateChange(func(s fold.State) {
		c.state.Set(s.Unfolded, s.InProgress)
	})

	c.ExtendBaseWidget(c)
	return c
}

// Configure replaces all settings. A running animation keeps the settings
// it started with.
func (c *FoldingCell) Configure(cfg fold.Config) error {
	return c.seq.Configure(cfg)
}

// Initialize sets duration, back-side color and flip count, resetting the
// camera height to its default.
func (c *FoldingCell) Initialize(duration time.Duration, backSide color.Color, additionalFlips int) error {
	return c.seq.Configure(fold.Config{
		AnimationDuration: duration,
		BackSideColor:     backSide,
		AdditionalFlips:   additionalFlips,
		CameraHeight:      fold.DefaultCameraHeight,
	})
}

// Config returns the current settings.
func (c *FoldingCell) Config() fold.Config {
	return c.seq.Config()
}

// Unfold expands the cell to show the content view.
func (c *FoldingCell) Unfold(skipAnimation bool) error {
	return c.seq.Unfold(skipAnimation)
}

// Fold collapses the cell back to the title view.
func (c *FoldingCell) Fold(skipAnimation bool) error {
	return c.seq.Fold(skipAnimation)
}

// Toggle folds an unfolded cell and unfolds a folded one.
func (c *FoldingCell) Toggle(skipAnimation bool) error {
	return c.seq.Toggle(skipAnimation)
}

// IsUnfolded reports whether the content view is showing.
func (c *FoldingCell) IsUnfolded() bool {
	return c.seq.State().Unfolded
}

// IsAnimating reports whether a fold or unfold is running.
func (c *FoldingCell) IsAnimating() bool {
	return c.seq.State().InProgress
}

// State returns the bindable fold state.
func (c *FoldingCell) State() *model.FoldState {
	return c.state
}

// SetContent replaces the content view.
func (c *FoldingCell) SetContent(content fyne.CanvasObject) {
	c.content = content
	if content != nil && !c.IsUnfolded() {
		content.Hide()
	}
	c.Refresh()
}

// SetTitle replaces the title view.
func (c *FoldingCell) SetTitle(title fyne.CanvasObject) {
	c.title = title
	if title != nil && c.IsUnfolded() {
		title.Hide()
	}
	c.Refresh()
}

// SetRasterizer replaces the snapshot function, mainly for tests.
func (c *FoldingCell) SetRasterizer(r Rasterizer) {
	c.rasterize = r
}

// SetClock replaces the animation clock, mainly for tests. It applies from
// the next run.
func (c *FoldingCell) SetClock(clock fold.Clock) {
	c.clock = clock
}

// SetOnError sets the callback that receives failures of toggles the cell
// triggers itself, such as a tapped section header.
func (c *FoldingCell) SetOnError(fn func(error)) {
	c.onError = fn
}

// toggleFromUI toggles with animation and reports failures to onError.
func (c *FoldingCell) toggleFromUI() {
	err := c.Toggle(false)
	if err == nil {
		return
	}
	c.logger.Warn("toggle failed", slog.Any("error", err))
	if c.onError != nil {
		c.onError(err)
	}
}

// CreateRenderer implements fyne.Widget.
func (c *FoldingCell) CreateRenderer() fyne.WidgetRenderer {
	return &foldingCellRenderer{cell: c}
}

// visible returns the live view matching the fold state.
func (c *FoldingCell) visible() fyne.CanvasObject {
	if c.IsUnfolded() {
		return c.content
	}
	return c.title
}

// snapshotWidth is the width views are measured at.
func (c *FoldingCell) snapshotWidth() float32 {
	width := c.Size().Width
	if width > 0 {
		return width
	}
	return c.MinSize().Width
}

type foldingCellRenderer struct {
	cell *FoldingCell
}

func (r *foldingCellRenderer) Layout(size fyne.Size) {
	for _, obj := range []fyne.CanvasObject{r.cell.content, r.cell.title} {
		if obj == nil {
			continue
		}
		obj.Move(fyne.NewPos(0, 0))
		obj.Resize(fyne.NewSize(size.Width, obj.MinSize().Height))
	}
	if r.cell.scaffold != nil {
		r.cell.scaffold.layout(size.Width)
	}
}

func (r *foldingCellRenderer) MinSize() fyne.Size {
	var width float32
	for _, obj := range []fyne.CanvasObject{r.cell.content, r.cell.title} {
		if obj != nil && obj.MinSize().Width > width {
			width = obj.MinSize().Width
		}
	}

	height := r.cell.height
	if height == 0 {
		if v := r.cell.visible(); v != nil {
			height = v.MinSize().Height
		}
	}
	return fyne.NewSize(width, height)
}

func (r *foldingCellRenderer) Objects() []fyne.CanvasObject {
	var objs []fyne.CanvasObject
	if r.cell.content != nil {
		objs = append(objs, r.cell.content)
	}
	if r.cell.title != nil {
		objs = append(objs, r.cell.title)
	}
	if r.cell.scaffold != nil {
		objs = append(objs, r.cell.scaffold.objects()...)
	}
	return objs
}

func (r *foldingCellRenderer) Refresh() {
	r.Layout(r.cell.Size())
	canvas.Refresh(r.cell)
}

func (r *foldingCellRenderer) Destroy() {}

// cellHost adapts a FoldingCell to fold.Host and fold.Clock.
type cellHost struct {
	cell *FoldingCell
}

func (h cellHost) Views() (title, content fold.View, ok bool) {
	if h.cell.title == nil || h.cell.content == nil {
		return nil, nil, false
	}
	return h.cell.title, h.cell.content, true
}

func (h cellHost) Snapshot(v fold.View) image.Image {
	obj := v.(fyne.CanvasObject)
	if !obj.Visible() {
		obj.Show()
		defer obj.Hide()
	}
	img := h.cell.rasterize(obj, h.cell.snapshotWidth())
	// an offscreen render resizes the view; put it back in its slot
	h.cell.Refresh()
	return img
}

func (h cellHost) Mount(panels []fold.PanelImage) fold.Target {
	h.cell.scaffold = newScaffold(panels, h.SetHeight)
	h.cell.Refresh()
	return h.cell.scaffold
}

func (h cellHost) Unmount() {
	h.cell.scaffold = nil
	h.cell.Refresh()
}

func (h cellHost) SetHeight(height int) {
	h.cell.height = float32(height)
	h.cell.Refresh()
}

func (h cellHost) Relayout() {
	h.cell.Refresh()
}

func (h cellHost) Start(total time.Duration, tick func(elapsed time.Duration)) {
	h.cell.clock.Start(total, tick)
}

// animationClock drives runs from Fyne's animation ticker, which calls
// back on the main event loop.
type animationClock struct{}

func (animationClock) Start(total time.Duration, tick func(elapsed time.Duration)) {
	if total <= 0 {
		tick(total)
		return
	}
	anim := fyne.NewAnimation(total, func(progress float32) {
		tick(time.Duration(float64(total) * float64(progress)))
	})
	anim.Curve = fyne.AnimationLinear
	anim.Start()
}
