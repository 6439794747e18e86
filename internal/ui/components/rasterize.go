package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/software"
)

// Rasterizer measures obj at width and renders it to a pixel buffer whose
// height is the measured height.
type Rasterizer func(obj fyne.CanvasObject, width float32) image.Image

// SoftwareRasterizer renders obj offscreen with Fyne's software painter at
// scale 1, so one pixel is one Fyne unit.
func SoftwareRasterizer(obj fyne.CanvasObject, width float32) image.Image {
	size := fyne.NewSize(width, obj.MinSize().Height)

	c := software.NewCanvas()
	c.SetPadded(false)
	c.SetContent(obj)
	c.Resize(size)
	return c.Capture()
}
