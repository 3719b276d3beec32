package collision

import (
	"isozombie/internal/mathutil"
)

// BoundingBox is an axis-aligned box in view space.
type BoundingBox struct {
	Center mathutil.Vec
	Width  float64
	Height float64
}

// NewBoundingBox creates a box centered at pos.
func NewBoundingBox(pos mathutil.Vec, width, height float64) BoundingBox {
	return BoundingBox{Center: pos, Width: width, Height: height}
}

// Square is a width x width box centered at pos.
func Square(pos mathutil.Vec, width float64) BoundingBox {
	return NewBoundingBox(pos, width, width)
}

// GetBounds returns the min/max coordinates of the box
func (bb BoundingBox) GetBounds() (minX, minY, maxX, maxY float64) {
	halfWidth := bb.Width / 2
	halfHeight := bb.Height / 2
	return bb.Center.X - halfWidth, bb.Center.Y - halfHeight, bb.Center.X + halfWidth, bb.Center.Y + halfHeight
}

// Intersects reports overlap; touching edges count.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	minX1, minY1, maxX1, maxY1 := bb.GetBounds()
	minX2, minY2, maxX2, maxY2 := other.GetBounds()

	return !(maxX1 < minX2 || maxX2 < minX1 || maxY1 < minY2 || maxY2 < minY1)
}

// Distance returns the distance between the centers of two boxes
func (bb BoundingBox) Distance(other BoundingBox) float64 {
	return bb.Center.Dist(other.Center)
}

// Kind tags what an entity is for pair queries.
type Kind int

const (
	KindPlayer Kind = iota
	KindZombie
	KindBullet
	KindObject
)

// Entity is one registered collider. Index refers back to the owning table
// row in the simulation state.
type Entity struct {
	Index int
	Kind  Kind
	Box   BoundingBox
	Solid bool // blocks movement
}
