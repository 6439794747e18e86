// Package style loads folding cell settings from declarative descriptor
// files, the counterpart of a view's styled attributes.
package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	apperrors "github.com/shhac/foldingcell/internal/errors"
	"github.com/shhac/foldingcell/internal/fold"
)

// Descriptor is the on-disk form of a cell style. Nil fields keep the
// defaults so a descriptor can name only what it changes.
type Descriptor struct {
	AnimationDuration    *int    `yaml:"animation_duration" toml:"animation_duration"`
	BackSideColor        *string `yaml:"back_side_color" toml:"back_side_color"`
	AdditionalFlipsCount *int    `yaml:"additional_flips_count" toml:"additional_flips_count"`
	CameraHeight         *int    `yaml:"camera_height" toml:"camera_height"`
}

// Apply overlays the descriptor on base and validates the result.
func (d Descriptor) Apply(base fold.Config) (fold.Config, error) {
	cfg := base
	if d.AnimationDuration != nil {
		cfg.AnimationDuration = time.Duration(*d.AnimationDuration) * time.Millisecond
	}
	if d.BackSideColor != nil {
		c, err := ParseColor(*d.BackSideColor)
		if err != nil {
			return base, err
		}
		cfg.BackSideColor = c
	}
	if d.AdditionalFlipsCount != nil {
		cfg.AdditionalFlips = *d.AdditionalFlipsCount
	}
	if d.CameraHeight != nil {
		cfg.CameraHeight = *d.CameraHeight
	}

	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	invalid := apperrors.ValidationError{
		Field:   "back_side_color",
		Message: fmt.Sprintf("%q is not a hex color", s),
	}

	alpha := uint8(0xff)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, invalid
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return nil, invalid
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatColor renders c as #rrggbb, or #rrggbbaa when not opaque.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// DescriptorFor returns a descriptor naming every field of cfg.
func DescriptorFor(cfg fold.Config) Descriptor {
	duration := int(cfg.AnimationDuration / time.Millisecond)
	backSide := FormatColor(cfg.BackSideColor)
	return Descriptor{
		AnimationDuration:    &duration,
		BackSideColor:        &backSide,
		AdditionalFlipsCount: &cfg.AdditionalFlips,
		CameraHeight:         &cfg.CameraHeight,
	}
}
