// Package projection computes the per-tick world-to-screen transform from the
// camera distance and the screen aspect ratio.
package projection

import (
	"github.com/hajimehoshi/ebiten/v2"

	"isozombie/internal/mathutil"
)

// Projection is the model/view/proj triple shared by every drawable in a
// tick. The world is already player-relative, so model and view stay identity.
type Projection struct {
	Model    Mat4
	View     Mat4
	Proj     Mat4
	Distance float64
	Aspect   float64
}

// Compute builds the projection for a camera distance. distance is the
// half-height of the visible area in world units.
func Compute(distance, aspect float64) Projection {
	if distance <= 0 {
		distance = 1
	}
	if aspect <= 0 {
		aspect = 1
	}
	return Projection{
		Model:    Identity(),
		View:     Identity(),
		Proj:     Ortho(-aspect*distance, aspect*distance, -distance, distance, -1, 1),
		Distance: distance,
		Aspect:   aspect,
	}
}

// MVP is Proj * View * Model.
func (p Projection) MVP() Mat4 {
	return p.Proj.Mul(p.View).Mul(p.Model)
}

// WorldToClip maps a view-space position to normalized device coordinates.
func (p Projection) WorldToClip(pos mathutil.Vec) mathutil.Vec {
	c := p.MVP().MulVec4([4]float64{pos.X, pos.Y, 0, 1})
	if c[3] != 0 && c[3] != 1 {
		c[0] /= c[3]
		c[1] /= c[3]
	}
	return mathutil.Vec{X: c[0], Y: c[1]}
}

// WorldToScreen maps a view-space position to pixels. Screen y grows down.
func (p Projection) WorldToScreen(pos mathutil.Vec, width, height int) mathutil.Vec {
	ndc := p.WorldToClip(pos)
	return mathutil.Vec{
		X: (ndc.X + 1) / 2 * float64(width),
		Y: (1 - ndc.Y) / 2 * float64(height),
	}
}

// PixelsPerUnit is the on-screen size of one world unit.
func (p Projection) PixelsPerUnit(height int) float64 {
	return float64(height) / (2 * p.Distance)
}

// GeoM is the same transform as WorldToScreen expressed as an ebiten affine
// matrix, so images positioned in world units can be drawn directly.
func (p Projection) GeoM(width, height int) ebiten.GeoM {
	m := p.MVP()
	hw := float64(width) / 2
	hh := float64(height) / 2

	var g ebiten.GeoM
	g.SetElement(0, 0, hw*m.At(0, 0))
	g.SetElement(0, 1, hw*m.At(0, 1))
	g.SetElement(0, 2, hw*(m.At(0, 3)+1))
	g.SetElement(1, 0, -hh*m.At(1, 0))
	g.SetElement(1, 1, -hh*m.At(1, 1))
	g.SetElement(1, 2, hh*(1-m.At(1, 3)))
	return g
}
