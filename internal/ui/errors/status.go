package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/foldingcell/internal/model"
)

// StatusBar displays the latest demo message next to an icon showing the
// motion mode: play for animated folding, fast-forward for instant.
type StatusBar struct {
	widget.BaseWidget

	state       *model.DemoState
	statusLabel *widget.Label
	indicator   *widget.Icon
}

// NewStatusBar creates a new status bar bound to the given demo state.
func NewStatusBar(state *model.DemoState) *StatusBar {
	label := widget.NewLabelWithData(state.Status)
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:       state,
		statusLabel: label,
		indicator:   widget.NewIcon(theme.MediaPlayIcon()),
	}
	s.ExtendBaseWidget(s)

	state.SkipAnimation.AddListener(binding.NewDataListener(s.updateIndicator))
	s.updateIndicator()

	return s
}

func (s *StatusBar) updateIndicator() {
	skip, _ := s.state.SkipAnimation.Get()
	if skip {
		s.indicator.SetResource(theme.MediaFastForwardIcon())
	} else {
		s.indicator.SetResource(theme.MediaPlayIcon())
	}
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(s.indicator, s.statusLabel))
}

// SetStatus is a convenience method to update the status message.
func (s *StatusBar) SetStatus(message string) {
	_ = s.state.Status.Set(message)
}
