package components

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shhac/foldingcell/internal/errors"
	"github.com/shhac/foldingcell/internal/fold"
	"github.com/shhac/foldingcell/internal/logging"
)

// blankRasterizer sizes snapshots like SoftwareRasterizer without painting.
func blankRasterizer(obj fyne.CanvasObject, width float32) image.Image {
	return image.NewRGBA(image.Rect(0, 0, int(width), int(obj.MinSize().Height)))
}

type stepClock struct {
	total time.Duration
	tick  func(time.Duration)
}

func (c *stepClock) Start(total time.Duration, tick func(time.Duration)) {
	c.total = total
	c.tick = tick
}

func block(w, h float32) *canvas.Rectangle {
	r := canvas.NewRectangle(color.White)
	r.SetMinSize(fyne.NewSize(w, h))
	return r
}

func newTestCell(titleHeight, contentHeight float32) (*FoldingCell, *stepClock) {
	cell := NewFoldingCell(block(100, contentHeight), block(100, titleHeight), logging.NewNopLogger())
	cell.SetRasterizer(blankRasterizer)
	clock := &stepClock{}
	cell.SetClock(clock)
	cell.Resize(fyne.NewSize(100, titleHeight))
	return cell, clock
}

func TestNewFoldingCell_StartsFolded(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell, _ := newTestCell(20, 60)

	assert.False(t, cell.IsUnfolded())
	assert.False(t, cell.IsAnimating())
	assert.True(t, cell.title.Visible())
	assert.False(t, cell.content.Visible())
	assert.Equal(t, float32(20), cell.MinSize().Height)
	assert.Equal(t, fold.DefaultConfig().AnimationDuration, cell.Config().AnimationDuration)
}

func TestFoldingCell_UnfoldInstant(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell, clock := newTestCell(20, 60)

	require.NoError(t, cell.Unfold(true))

	assert.True(t, cell.IsUnfolded())
	assert.Nil(t, clock.tick, "instant unfold must not start the clock")
	assert.Nil(t, cell.scaffold)
	assert.True(t, cell.content.Visible())
	assert.False(t, cell.title.Visible())
	assert.Equal(t, float32(60), cell.MinSize().Height)

	unfolded, err := cell.State().Unfolded.Get()
	require.NoError(t, err)
	assert.True(t, unfolded)
}

func TestFoldingCell_UnfoldAnimated(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell, clock := newTestCell(20, 60)
	require.NoError(t, cell.Unfold(false))

	require.NotNil(t, cell.scaffold)
	assert.True(t, cell.IsAnimating())
	assert.Len(t, cell.scaffold.panels, 3)
	assert.False(t, cell.title.Visible())
	assert.False(t, cell.content.Visible())
	assert.Equal(t, float32(20), cell.MinSize().Height)

	r := cell.CreateRenderer()
	assert.Len(t, r.Objects(), 5)

	animating, err := cell.State().Animating.Get()
	require.NoError(t, err)
	assert.True(t, animating)

	clock.tick(clock.total)

	assert.True(t, cell.IsUnfolded())
	assert.False(t, cell.IsAnimating())
	assert.Nil(t, cell.scaffold)
	assert.True(t, cell.content.Visible())
	assert.Equal(t, float32(60), cell.MinSize().Height)
}

func TestFoldingCell_FoldAnimated(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell, clock := newTestCell(20, 60)
	require.NoError(t, cell.Unfold(true))
	require.NoError(t, cell.Fold(false))

	require.NotNil(t, cell.scaffold)
	assert.Equal(t, float32(60), cell.MinSize().Height)

	clock.tick(clock.total)

	assert.False(t, cell.IsUnfolded())
	assert.True(t, cell.title.Visible())
	assert.False(t, cell.content.Visible())
	assert.Equal(t, float32(20), cell.MinSize().Height)
}

func TestFoldingCell_IgnoresRequestsWhileAnimating(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell, clock := newTestCell(20, 60)
	require.NoError(t, cell.Unfold(false))
	first := cell.scaffold

	require.NoError(t, cell.Fold(false))
	require.NoError(t, cell.Toggle(true))
	assert.Same(t, first, cell.scaffold)

	clock.tick(clock.total)
	assert.True(t, cell.IsUnfolded())
}

func TestFoldingCell_InvalidGeometry(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell, clock := newTestCell(20, 30)

	err := cell.Unfold(false)
	require.Error(t, err)

	var geomErr apperrors.GeometryError
	require.True(t, errors.As(err, &geomErr))
	assert.Equal(t, 20, geomErr.Title)
	assert.Equal(t, 30, geomErr.Content)

	assert.False(t, cell.IsUnfolded())
	assert.Nil(t, clock.tick)
	assert.Nil(t, cell.scaffold)
	assert.True(t, cell.title.Visible())
	assert.False(t, cell.content.Visible())
}

func TestFoldingCell_MissingViewIsNoOp(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell := NewFoldingCell(nil, widget.NewLabel("title"), logging.NewNopLogger())
	cell.SetRasterizer(blankRasterizer)

	assert.NoError(t, cell.Unfold(false))
	assert.False(t, cell.IsUnfolded())
	assert.Nil(t, cell.scaffold)
}

func TestFoldingCell_Toggle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell, _ := newTestCell(20, 60)

	require.NoError(t, cell.Toggle(true))
	assert.True(t, cell.IsUnfolded())
	require.NoError(t, cell.Toggle(true))
	assert.False(t, cell.IsUnfolded())
}

func TestFoldingCell_Initialize(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell, _ := newTestCell(20, 60)
	cfg := fold.DefaultConfig()
	cfg.CameraHeight = 80
	require.NoError(t, cell.Configure(cfg))

	require.NoError(t, cell.Initialize(300*time.Millisecond, color.Black, 2))

	got := cell.Config()
	assert.Equal(t, 300*time.Millisecond, got.AnimationDuration)
	assert.Equal(t, 2, got.AdditionalFlips)
	assert.Equal(t, fold.DefaultCameraHeight, got.CameraHeight)
}

func TestFoldingCell_ConfigureRejectsInvalid(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell, _ := newTestCell(20, 60)
	err := cell.Initialize(0, color.Black, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, fold.DefaultAnimationDuration, cell.Config().AnimationDuration)
}

func TestFoldingCell_SetContentWhileFolded(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell, _ := newTestCell(20, 60)
	replacement := block(100, 80)
	cell.SetContent(replacement)

	assert.False(t, replacement.Visible())
	require.NoError(t, cell.Unfold(true))
	assert.Equal(t, float32(80), cell.MinSize().Height)
}

func TestNewFoldingSection(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell := NewFoldingSection("Details", widget.NewLabel("body"), logging.NewNopLogger())
	cell.SetRasterizer(blankRasterizer)

	header, ok := cell.title.(*widget.Button)
	require.True(t, ok)
	assert.Equal(t, "Details", header.Text)
	assert.GreaterOrEqual(t, cell.content.MinSize().Height, 2*header.MinSize().Height)

	require.NoError(t, cell.Unfold(true))
	assert.True(t, cell.IsUnfolded())
}

func TestNewUnfoldedFoldingSection(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell := NewUnfoldedFoldingSection("Details", widget.NewLabel("body"), logging.NewNopLogger())
	assert.True(t, cell.IsUnfolded())
	assert.True(t, cell.content.Visible())
}

func TestSoftwareRasterizer_MeasuresAtWidth(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	img := SoftwareRasterizer(block(40, 25), 120)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 25, img.Bounds().Dy())
}

func TestFoldingCell_ToggleFromUIReportsErrors(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cell, _ := newTestCell(20, 30)
	var got error
	cell.SetOnError(func(err error) { got = err })

	cell.toggleFromUI()
	assert.ErrorIs(t, got, apperrors.ErrInvalidGeometry)
	assert.False(t, cell.IsUnfolded())
}

func TestAnimationClock_ZeroTotalTicksImmediately(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var ticks []time.Duration
	animationClock{}.Start(0, func(elapsed time.Duration) { ticks = append(ticks, elapsed) })
	assert.Equal(t, []time.Duration{0}, ticks)
}
