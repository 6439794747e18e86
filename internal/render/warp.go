// Package render draws posed panel faces for the fold scaffold.
package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/shhac/foldingcell/internal/fold"
)

// ToRGBA returns img as an *image.RGBA anchored at the origin, copying
// only when needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// Warp returns src seen through m, on a canvas the size of src. Pixels are
// sampled nearest-neighbour by inverse mapping. An edge-on pose returns a
// fully transparent image.
func Warp(src *image.RGBA, m fold.Matrix) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	inv, ok := m.Invert()
	if !ok {
		return dst
	}

	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := inv.Apply(float64(x)+0.5, float64(y)+0.5)
			if sx < 0 || sy < 0 || sx >= float64(w) || sy >= float64(h) {
				continue
			}
			// points behind the camera project back onto the canvas too
			if m[6]*sx+m[7]*sy+m[8] <= 0 {
				continue
			}
			so := src.PixOffset(b.Min.X+int(sx), b.Min.Y+int(sy))
			do := dst.PixOffset(x, y)
			copy(dst.Pix[do:do+4], src.Pix[so:so+4])
		}
	}
	return dst
}

// Compose draws front, posed by frontPose, over the bottom of back.
// A nil front returns a copy of back.
func Compose(back *image.RGBA, front image.Image, frontPose fold.Matrix) *image.RGBA {
	b := back.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(out, image.Point{}, back, b, xdraw.Src, nil)
	if front == nil {
		return out
	}

	posed := Warp(ToRGBA(front), frontPose)
	fb := posed.Bounds()
	dr := image.Rect(0, b.Dy()-fb.Dy(), fb.Dx(), b.Dy())
	xdraw.Draw(out, dr, posed, image.Point{}, xdraw.Over)
	return out
}
