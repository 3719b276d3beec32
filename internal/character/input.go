package character

import (
	"isozombie/internal/mathutil"
	"isozombie/internal/movement"
)

// InputSnapshot is what the player asked for this tick. Axes are screen
// directions with y up.
type InputSnapshot struct {
	MoveX   int
	MoveY   int
	Run     bool
	Fire    bool
	ZoomIn  bool
	ZoomOut bool
}

// Axes collapses the move axes to a vector with components in {-1, 0, 1}.
func (in InputSnapshot) Axes() mathutil.Vec {
	return mathutil.Vec{
		X: float64(mathutil.IntSign(in.MoveX)),
		Y: float64(mathutil.IntSign(in.MoveY)),
	}
}

// InputState is the single player-movement snapshot for one tick. Every
// entity update in the tick reads the same value.
type InputState struct {
	// Movement is the world delta: the inverse of the player's step.
	Movement mathutil.Vec
	// Offset is the accumulated world shift before this tick.
	Offset      mathutil.Vec
	Orientation movement.Orientation
}

// PlayerMapPosition is where the player stands on the map before this tick's
// movement is applied.
func (s InputState) PlayerMapPosition() mathutil.Vec {
	return s.Offset.Scale(-1)
}
