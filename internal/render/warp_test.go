package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/foldingcell/internal/fold"
)

func fill(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func TestWarp_IdentityCopies(t *testing.T) {
	src := fill(20, 10, red)
	src.SetRGBA(3, 4, blue)

	out := Warp(src, fold.Identity())
	assert.Equal(t, src.Pix, out.Pix)
	assert.NotSame(t, src, out)
}

func TestWarp_EdgeOnIsTransparent(t *testing.T) {
	src := fill(20, 10, red)
	out := Warp(src, fold.Transform(fold.FoldUp, 30, 20, 10, 1))

	for _, v := range out.Pix {
		require.Zero(t, v)
	}
}

func TestWarp_HalfFoldShrinksTowardHinge(t *testing.T) {
	src := fill(40, 40, red)
	out := Warp(src, fold.Transform(fold.FoldUp, 30, 40, 40, 0.5))

	assert.Equal(t, red, out.RGBAAt(20, 1), "rows near the top hinge stay covered")
	assert.Equal(t, color.RGBA{}, out.RGBAAt(20, 38), "the bottom swings up out of view")
}

func TestCompose(t *testing.T) {
	back := fill(10, 30, red)
	front := fill(10, 10, blue)

	out := Compose(back, front, fold.Identity())
	assert.Equal(t, red, out.RGBAAt(5, 5))
	assert.Equal(t, red, out.RGBAAt(5, 19))
	assert.Equal(t, blue, out.RGBAAt(5, 20), "front is bottom aligned")
	assert.Equal(t, blue, out.RGBAAt(5, 29))

	plain := Compose(back, nil, fold.Identity())
	assert.Equal(t, back.Pix, plain.Pix)
	assert.NotSame(t, back, plain)

	// a front folded edge-on reveals the back
	hidden := Compose(back, front, fold.Transform(fold.FoldDown, 30, 10, 10, 1))
	assert.Equal(t, red, hidden.RGBAAt(5, 25))
}

func TestToRGBA(t *testing.T) {
	rgba := fill(4, 4, red)
	assert.Same(t, rgba, ToRGBA(rgba))

	sub := rgba.SubImage(image.Rect(1, 1, 3, 3))
	converted := ToRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 2, 2), converted.Bounds())
	assert.Equal(t, red, converted.RGBAAt(0, 0))

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	assert.Equal(t, image.Rect(0, 0, 2, 2), ToRGBA(gray).Bounds())
}
