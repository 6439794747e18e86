package model

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestFoldState_Label(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	tests := []struct {
		unfolded  bool
		animating bool
		want      string
	}{
		{false, false, "folded"},
		{false, true, "unfolding"},
		{true, false, "unfolded"},
		{true, true, "folding"},
	}

	s := NewFoldState()
	assert.Equal(t, "folded", s.Label())

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s.Set(tt.unfolded, tt.animating)
			assert.Equal(t, tt.want, s.Label())
		})
	}
}

func TestNewDemoState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	s := NewDemoState()
	skip, err := s.SkipAnimation.Get()
	assert.NoError(t, err)
	assert.False(t, skip)

	status, err := s.Status.Get()
	assert.NoError(t, err)
	assert.Equal(t, "Ready", status)
}
