package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/shhac/foldingcell/internal/fold"
	"github.com/shhac/foldingcell/internal/render"
)

// scaffoldPanel is one panel image and its current poses.
type scaffoldPanel struct {
	src   fold.PanelImage
	whole fold.Matrix
	front fold.Matrix
	image *canvas.Image
}

func (p *scaffoldPanel) redraw() {
	p.image.Image = render.Warp(render.Compose(p.src.Back, p.src.Front, p.front), p.whole)
	p.image.Refresh()
}

// scaffold stands in for the live views while a run animates. It stacks
// the panel images top to bottom and redraws a panel whenever one of its
// faces is posed.
type scaffold struct {
	panels   []*scaffoldPanel
	onHeight func(int)
}

var _ fold.Target = (*scaffold)(nil)

func newScaffold(panels []fold.PanelImage, onHeight func(int)) *scaffold {
	s := &scaffold{onHeight: onHeight}
	for _, p := range panels {
		img := canvas.NewImageFromImage(p.Back)
		img.FillMode = canvas.ImageFillStretch
		img.ScaleMode = canvas.ImageScalePixels
		s.panels = append(s.panels, &scaffoldPanel{
			src:   p,
			whole: fold.Identity(),
			front: fold.Identity(),
			image: img,
		})
	}
	return s
}

// SetRotation implements fold.Target.
func (s *scaffold) SetRotation(panel int, face fold.Face, m fold.Matrix) {
	if panel < 0 || panel >= len(s.panels) {
		return
	}
	p := s.panels[panel]
	if face == fold.FaceFront {
		p.front = m
	} else {
		p.whole = m
	}
	p.redraw()
}

// SetHeight implements fold.Target.
func (s *scaffold) SetHeight(height int) {
	if s.onHeight != nil {
		s.onHeight(height)
	}
}

func (s *scaffold) objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(s.panels))
	for _, p := range s.panels {
		objs = append(objs, p.image)
	}
	return objs
}

func (s *scaffold) layout(width float32) {
	for _, p := range s.panels {
		p.image.Move(fyne.NewPos(0, float32(p.src.Offset)))
		p.image.Resize(fyne.NewSize(width, float32(p.src.Height)))
	}
}
