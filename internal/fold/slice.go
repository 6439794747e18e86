package fold

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	apperrors "github.com/shhac/foldingcell/internal/errors"
)

// PanelImage is one flippable slice of the scaffold.
type PanelImage struct {
	// Front is drawn over the bottom of the panel: the title snapshot for the
	// top panel, a back-side placeholder for middle panels, nil for the last.
	Front image.Image

	// Back is the content snapshot cropped to this panel.
	Back *image.RGBA

	// Offset is the panel's top edge within the content snapshot.
	Offset int

	// Height is the panel height in pixels.
	Height int
}

// FrontHeight returns the height of the front face, or 0 when absent.
func (p PanelImage) FrontHeight() int {
	if p.Front == nil {
		return 0
	}
	return p.Front.Bounds().Dy()
}

// BuildPanels slices the content snapshot into panels following heights.
// Panels are as wide as the title snapshot.
func BuildPanels(heights []int, title, content image.Image, backSide color.Color) ([]PanelImage, error) {
	if len(heights) == 0 {
		return nil, fmt.Errorf("build panels: no panel heights: %w", apperrors.ErrInvalidInput)
	}
	if title == nil || content == nil {
		return nil, fmt.Errorf("build panels: missing snapshot: %w", apperrors.ErrInvalidInput)
	}

	width := title.Bounds().Dx()
	src := content.Bounds()
	panels := make([]PanelImage, 0, len(heights))

	offset := 0
	for i, h := range heights {
		if h <= 0 {
			return nil, fmt.Errorf("build panels: panel %d has height %d: %w", i, h, apperrors.ErrInvalidInput)
		}

		back := image.NewRGBA(image.Rect(0, 0, width, h))
		crop := image.Rect(src.Min.X, src.Min.Y+offset, src.Min.X+width, src.Min.Y+offset+h)
		xdraw.Copy(back, image.Point{}, content, crop, xdraw.Src, nil)

		panel := PanelImage{Back: back, Offset: offset, Height: h}
		switch {
		case i == len(heights)-1:
			// nothing folds under the last panel
		case i == 0:
			panel.Front = title
		default:
			panel.Front = placeholder(width, heights[i+1], backSide)
		}

		panels = append(panels, panel)
		offset += h
	}

	return panels, nil
}

// placeholder returns a flat face painted with the back-side color.
func placeholder(width, height int, c color.Color) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetColor(c)
	dc.Clear()
	return dc.Image()
}
