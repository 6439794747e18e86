package fold

import (
	"image/color"
	"time"

	apperrors "github.com/shhac/foldingcell/internal/errors"
)

// Defaults applied when a cell is created without a style descriptor.
const (
	DefaultAnimationDuration = 1000 * time.Millisecond
	DefaultAdditionalFlips   = 0
	DefaultCameraHeight      = 30
)

// DefaultBackSideColor is the mid-gray used for placeholder faces.
var DefaultBackSideColor = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

// Config holds the settings for one folding cell. A run captures a copy
// when it starts, so changes only affect the next fold or unfold.
type Config struct {
	// AnimationDuration is the requested duration of a complete fold or unfold.
	AnimationDuration time.Duration

	// BackSideColor fills the placeholder faces revealed behind each panel.
	BackSideColor color.Color

	// AdditionalFlips is the number of panels after the first two.
	// Zero picks title-sized panels automatically.
	AdditionalFlips int

	// CameraHeight is the simulated projection distance, in camera units.
	CameraHeight int
}

// DefaultConfig returns a configuration with the standard defaults.
func DefaultConfig() Config {
	return Config{
		AnimationDuration: DefaultAnimationDuration,
		BackSideColor:     DefaultBackSideColor,
		AdditionalFlips:   DefaultAdditionalFlips,
		CameraHeight:      DefaultCameraHeight,
	}
}

// Validate reports the first setting that cannot drive an animation.
func (c Config) Validate() error {
	switch {
	case c.AnimationDuration <= 0:
		return apperrors.ValidationError{Field: "animation_duration", Message: "must be positive"}
	case c.BackSideColor == nil:
		return apperrors.ValidationError{Field: "back_side_color", Message: "must be set"}
	case c.AdditionalFlips < 0:
		return apperrors.ValidationError{Field: "additional_flips_count", Message: "must not be negative"}
	case c.CameraHeight <= 0:
		return apperrors.ValidationError{Field: "camera_height", Message: "must be positive"}
	}
	return nil
}
