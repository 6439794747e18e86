package fold

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shhac/foldingcell/internal/errors"
)

// rowImage returns an image whose red channel encodes the row index.
func rowImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(y), A: 0xff})
		}
	}
	return img
}

func solidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestBuildPanels(t *testing.T) {
	title := solidImage(10, 50, color.RGBA{R: 0xff, A: 0xff})
	content := rowImage(10, 180)

	panels, err := BuildPanels([]int{50, 50, 50, 30}, title, content, DefaultBackSideColor)
	require.NoError(t, err)
	require.Len(t, panels, 4)

	wantOffsets := []int{0, 50, 100, 150}
	for i, p := range panels {
		assert.Equal(t, wantOffsets[i], p.Offset, "panel %d offset", i)
		assert.Equal(t, image.Rect(0, 0, 10, p.Height), p.Back.Bounds(), "panel %d bounds", i)
		assert.Equal(t, uint8(p.Offset), p.Back.RGBAAt(3, 0).R, "panel %d first row", i)
		assert.Equal(t, uint8(p.Offset+p.Height-1), p.Back.RGBAAt(3, p.Height-1).R, "panel %d last row", i)
	}

	assert.Same(t, title, panels[0].Front)
	assert.Equal(t, 50, panels[0].FrontHeight())

	// placeholders are sized to the following panel
	assert.Equal(t, 50, panels[1].FrontHeight())
	assert.Equal(t, 30, panels[2].FrontHeight())
	assert.Equal(t, 10, panels[2].Front.Bounds().Dx())

	r, g, b, a := panels[1].Front.At(5, 5).RGBA()
	wr, wg, wb, wa := DefaultBackSideColor.RGBA()
	assert.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{r, g, b, a})

	assert.Nil(t, panels[3].Front)
	assert.Equal(t, 0, panels[3].FrontHeight())
}

func TestBuildPanels_TwoPanels(t *testing.T) {
	title := solidImage(8, 20, color.White)
	content := rowImage(8, 40)

	panels, err := BuildPanels([]int{20, 20}, title, content, color.Black)
	require.NoError(t, err)
	require.Len(t, panels, 2)
	assert.Same(t, title, panels[0].Front)
	assert.Nil(t, panels[1].Front)
}

func TestBuildPanels_InvalidInput(t *testing.T) {
	title := solidImage(8, 20, color.White)
	content := rowImage(8, 40)

	tests := []struct {
		name    string
		heights []int
		title   image.Image
		content image.Image
	}{
		{"empty heights", nil, title, content},
		{"zero height panel", []int{20, 0}, title, content},
		{"missing title", []int{20, 20}, nil, content},
		{"missing content", []int{20, 20}, title, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panels, err := BuildPanels(tt.heights, tt.title, tt.content, color.Black)
			assert.Nil(t, panels)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}
