package fold

import (
	"fmt"
	"math"
)

// Mode selects the hinge edge and angle range of a panel rotation.
type Mode int

const (
	FoldUp     Mode = iota // hinge on top edge, 0° to 90°
	FoldDown               // hinge on bottom edge, 0° to -90°
	UnfoldUp               // hinge on bottom edge, -90° to 0°
	UnfoldDown             // hinge on top edge, 90° to 0°
)

func (m Mode) String() string {
	switch m {
	case FoldUp:
		return "fold-up"
	case FoldDown:
		return "fold-down"
	case UnfoldUp:
		return "unfold-up"
	case UnfoldDown:
		return "unfold-down"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Angles returns the start and end rotation in degrees.
func (m Mode) Angles() (from, to float64) {
	switch m {
	case FoldUp:
		return 0, 90
	case FoldDown:
		return 0, -90
	case UnfoldUp:
		return -90, 0
	case UnfoldDown:
		return 90, 0
	}
	return 0, 0
}

// pivotAtBottom reports whether the hinge is the bottom edge.
func (m Mode) pivotAtBottom() bool {
	return m == FoldDown || m == UnfoldUp
}

// cameraUnit is the number of pixels in one camera height unit.
const cameraUnit = 72

// Matrix is a row-major 3x3 homogeneous transform. The last row carries
// the perspective terms, so Apply divides by w.
type Matrix [9]float64

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Matrix {
	return Matrix{1, 0, dx, 0, 1, dy, 0, 0, 1}
}

// Mul returns m·n, which applies n first and then m.
func (m Matrix) Mul(n Matrix) Matrix {
	var r Matrix
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[row*3+k] * n[k*3+col]
			}
			r[row*3+col] = sum
		}
	}
	return r
}

// Apply maps the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	w := m[6]*x + m[7]*y + m[8]
	return (m[0]*x + m[1]*y + m[2]) / w, (m[3]*x + m[4]*y + m[5]) / w
}

// Invert returns the inverse transform. ok is false when m is singular,
// which happens when a panel is exactly edge-on to the camera.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if math.Abs(det) < 1e-12 {
		return Matrix{}, false
	}
	return Matrix{
		(e*i - f*h) / det, (c*h - b*i) / det, (b*f - c*e) / det,
		(f*g - d*i) / det, (a*i - c*g) / det, (c*d - a*f) / det,
		(d*h - e*g) / det, (b*g - a*h) / det, (a*e - b*d) / det,
	}, true
}

// rotateX projects a rotation about the X axis seen from a camera at
// distance pixels from the plane. Positive angles push rows below the
// axis away from the camera.
func rotateX(degrees, distance float64) Matrix {
	rad := degrees * math.Pi / 180
	return Matrix{
		1, 0, 0,
		0, math.Cos(rad), 0,
		0, math.Sin(rad) / distance, 1,
	}
}

// Transform returns the projection of a width x height panel rotated by
// mode at progress. The rotation pivots on the horizontal center of the
// hinge edge, so the panel swings like a page attached at that edge.
func Transform(mode Mode, cameraHeight, width, height int, progress float64) Matrix {
	from, to := mode.Angles()
	degrees := from + (to-from)*progress

	cx := float64(width) / 2
	cy := 0.0
	if mode.pivotAtBottom() {
		cy = float64(height)
	}

	distance := float64(cameraHeight * cameraUnit)
	return Translate(cx, cy).Mul(rotateX(degrees, distance)).Mul(Translate(-cx, -cy))
}
