// Package movement converts between headings, movement vectors and the
// eight-way sprite orientation used by every animated entity.
package movement

import (
	"math"

	"isozombie/internal/mathutil"
)

// Orientation is the facing used to pick a sprite-sheet row.
type Orientation int

const (
	Right Orientation = iota
	UpRight
	Up
	UpLeft
	Left
	DownLeft
	Down
	DownRight
	// Still means "no movement input"; entities keep their previous facing.
	Still
)

var orientationNames = [...]string{"Right", "UpRight", "Up", "UpLeft", "Left", "DownLeft", "Down", "DownRight", "Still"}

func (o Orientation) String() string {
	if o < 0 || int(o) >= len(orientationNames) {
		return "Unknown"
	}
	return orientationNames[o]
}

// Row is the sprite-sheet row for o. Still shares the Down row.
func (o Orientation) Row() int {
	if o == Still || o < 0 || o > Still {
		return int(Down)
	}
	return int(o)
}

// Heading is the centre of o's bucket in degrees. Still has no heading and
// reports false.
func (o Orientation) Heading() (float64, bool) {
	if o < Right || o > DownRight {
		return 0, false
	}
	return float64(o) * 45, true
}

// Direction returns the angle of to-from in degrees, normalized to [0, 360).
func Direction(from, to mathutil.Vec) float64 {
	d := to.Sub(from)
	return normalize(math.Atan2(d.Y, d.X) * 180 / math.Pi)
}

// DirectionMovement returns the unit vector (cos, sin) for a heading.
func DirectionMovement(degrees float64) mathutil.Vec {
	rad := degrees * math.Pi / 180
	return mathutil.Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// DirectionMovement180 reverses v and returns it as a unit vector.
func DirectionMovement180(v mathutil.Vec) mathutil.Vec {
	angle := math.Atan2(v.Y, v.X) * 180 / math.Pi
	return DirectionMovement(normalize(angle + 180))
}

// OrientationToDirection buckets a heading into one of the eight compass
// orientations. Buckets are 45 degrees wide except Right, which spans
// [345, 360) and [0, 23), and DownRight, which spans [293, 345).
func OrientationToDirection(degrees float64) Orientation {
	d := normalize(degrees)
	switch {
	case d >= 345 || d < 23:
		return Right
	case d < 68:
		return UpRight
	case d < 113:
		return Up
	case d < 158:
		return UpLeft
	case d < 203:
		return Left
	case d < 248:
		return DownLeft
	case d < 293:
		return Down
	default:
		return DownRight
	}
}

func normalize(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	// math.Mod of a tiny negative can round back up to 360.
	if d >= 360 {
		d = 0
	}
	return d
}
