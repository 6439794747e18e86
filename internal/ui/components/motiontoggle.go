package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

const (
	motionAnimated = "Animated"
	motionInstant  = "Instant"
)

// MotionToggle picks between animated and instant folding using a
// horizontal RadioGroup.
type MotionToggle struct {
	widget.BaseWidget

	radio    *widget.RadioGroup
	onChange func(instant bool)
}

// NewMotionToggle creates a toggle with "Animated" selected.
func NewMotionToggle() *MotionToggle {
	m := &MotionToggle{}
	m.radio = widget.NewRadioGroup([]string{motionAnimated, motionInstant}, func(string) {
		if m.onChange != nil {
			m.onChange(m.Instant())
		}
	})
	m.radio.Horizontal = true
	m.radio.Required = true
	m.radio.Selected = motionAnimated

	m.ExtendBaseWidget(m)
	return m
}

// SetOnChange sets the callback invoked when the selection changes.
func (m *MotionToggle) SetOnChange(fn func(instant bool)) {
	m.onChange = fn
}

// Instant reports whether instant folding is selected.
func (m *MotionToggle) Instant() bool {
	return m.radio.Selected == motionInstant
}

// SetInstant selects a mode programmatically. Selecting the current mode
// does not fire the callback.
func (m *MotionToggle) SetInstant(instant bool) {
	if m.Instant() == instant {
		return
	}
	if instant {
		m.radio.SetSelected(motionInstant)
	} else {
		m.radio.SetSelected(motionAnimated)
	}
}

// CreateRenderer implements fyne.Widget.
func (m *MotionToggle) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(m.radio)
}
