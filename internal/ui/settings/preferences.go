package settings

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/foldingcell/internal/errors"
	"github.com/shhac/foldingcell/internal/fold"
	"github.com/shhac/foldingcell/internal/style"
)

// StyleCallbacks provides hooks for the style dialog to apply changes.
type StyleCallbacks struct {
	// OnSave receives the validated style. A returned error keeps the
	// dialog's values unapplied and is shown by OnError.
	OnSave  func(cfg fold.Config) error
	OnError func(err error)
}

// StyleForm holds the entries of the style dialog.
type StyleForm struct {
	Duration *widget.Entry
	BackSide *widget.Entry
	Flips    *widget.Entry
	Camera   *widget.Entry
}

// NewStyleForm creates entries filled from cfg.
func NewStyleForm(cfg fold.Config) *StyleForm {
	f := &StyleForm{
		Duration: widget.NewEntry(),
		BackSide: widget.NewEntry(),
		Flips:    widget.NewEntry(),
		Camera:   widget.NewEntry(),
	}
	f.Duration.SetText(strconv.FormatInt(cfg.AnimationDuration.Milliseconds(), 10))
	f.BackSide.SetText(style.FormatColor(cfg.BackSideColor))
	f.Flips.SetText(strconv.Itoa(cfg.AdditionalFlips))
	f.Camera.SetText(strconv.Itoa(cfg.CameraHeight))
	return f
}

// Config parses the entries onto base and validates the result.
func (f *StyleForm) Config(base fold.Config) (fold.Config, error) {
	duration, err := parseInt("animation_duration", f.Duration.Text)
	if err != nil {
		return base, err
	}
	flips, err := parseInt("additional_flips_count", f.Flips.Text)
	if err != nil {
		return base, err
	}
	camera, err := parseInt("camera_height", f.Camera.Text)
	if err != nil {
		return base, err
	}
	backSide := strings.TrimSpace(f.BackSide.Text)

	d := style.Descriptor{
		AnimationDuration:    &duration,
		BackSideColor:        &backSide,
		AdditionalFlipsCount: &flips,
		CameraHeight:         &camera,
	}
	return d.Apply(base)
}

func (f *StyleForm) formWidget() *widget.Form {
	return widget.NewForm(
		widget.NewFormItem("Animation Duration (ms)", f.Duration),
		widget.NewFormItem("Back Side Color", f.BackSide),
		widget.NewFormItem("Additional Flips", f.Flips),
		widget.NewFormItem("Camera Height", f.Camera),
	)
}

func parseInt(field, text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, apperrors.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%q is not a whole number", text),
		}
	}
	return v, nil
}

// ShowStyleDialog displays the cell style editor.
func ShowStyleDialog(window fyne.Window, current fold.Config, callbacks StyleCallbacks) {
	form := NewStyleForm(current)
	content := container.NewVBox(
		form.formWidget(),
		widget.NewLabel(fmt.Sprintf("Zero additional flips splits the content into title-sized panels. Default camera height is %d.", fold.DefaultCameraHeight)),
	)

	dlg := dialog.NewCustomConfirm("Cell Style", "Save", "Cancel", content, func(save bool) {
		if !save {
			return
		}
		cfg, err := form.Config(current)
		if err == nil && callbacks.OnSave != nil {
			err = callbacks.OnSave(cfg)
		}
		if err != nil && callbacks.OnError != nil {
			callbacks.OnError(err)
		}
	}, window)

	dlg.Resize(fyne.NewSize(460, 320))
	dlg.Show()
}

