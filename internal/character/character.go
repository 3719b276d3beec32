// Package character is the player drawable. It turns the per-tick input
// snapshot into the world delta every other entity consumes.
package character

import (
	"isozombie/internal/config"
	"isozombie/internal/mathutil"
	"isozombie/internal/movement"
)

type Stance int

const (
	Still Stance = iota
	Walking
	Running
	Firing
)

var stanceNames = [...]string{"Still", "Walking", "Running", "Firing"}

func (s Stance) String() string {
	if s < 0 || int(s) >= len(stanceNames) {
		return "Unknown"
	}
	return stanceNames[s]
}

// TileChecker reports whether a map-space position can be entered.
type TileChecker interface {
	CanMoveToTile(pos mathutil.Vec) bool
}

// Character is always drawn at the view origin; it moves the world instead
// of itself.
type Character struct {
	Heading     float64
	Orientation movement.Orientation // last facing; never Still
	Stance      Stance
	Blocked     bool // last move was refused by the grid
	RunIndex    int
	FireIndex   int

	cfg  config.CharacterConfig
	anim config.CharacterAnimationConfig
}

// New creates a character facing down.
func New(cfg *config.Config) *Character {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Character{
		Heading:     270,
		Orientation: movement.Down,
		Stance:      Still,
		cfg:         cfg.Character,
		anim:        cfg.Animation.Character,
	}
}

// Update reads one input snapshot and returns the tick's InputState. offset
// is the accumulated world shift before this tick, so the player stands at
// -offset in map space. A step onto an impassable tile is refused and the
// returned Movement is zero.
func (c *Character) Update(in InputSnapshot, tiles TileChecker, offset mathutil.Vec) InputState {
	state := InputState{Offset: offset, Orientation: movement.Still}
	c.Blocked = false

	axes := in.Axes()
	if axes.IsZero() {
		c.Stance = Still
		if in.Fire {
			c.Stance = Firing
		}
		return state
	}

	c.Heading = movement.Direction(mathutil.Vec{}, axes)
	c.Orientation = movement.OrientationToDirection(c.Heading)
	state.Orientation = c.Orientation

	speed := c.walkSpeed()
	c.Stance = Walking
	if in.Run {
		speed = c.runSpeed()
		c.Stance = Running
	}
	if in.Fire {
		c.Stance = Firing
	}

	step := movement.DirectionMovement(c.Heading).Scale(speed)
	if tiles != nil && !tiles.CanMoveToTile(state.PlayerMapPosition().Add(step)) {
		c.Blocked = true
		return state
	}
	state.Movement = step.Scale(-1)
	return state
}

// Facing is the unit vector the character looks along.
func (c *Character) Facing() mathutil.Vec {
	return movement.DirectionMovement(c.Heading)
}

// IsFiring reports whether bullets should spawn on fire-cycle ticks.
func (c *Character) IsFiring() bool {
	return c.Stance == Firing
}

// AdvanceRunCycle steps the walking/running/idle strip.
func (c *Character) AdvanceRunCycle() {
	frames := c.stanceFrames().Frames
	if frames <= 0 {
		frames = 1
	}
	c.RunIndex = (c.RunIndex + 1) % frames
}

// AdvanceFireCycle steps the firing strip. It only moves while firing.
func (c *Character) AdvanceFireCycle() {
	if c.Stance != Firing {
		c.FireIndex = 0
		return
	}
	frames := c.anim.Firing.Frames
	if frames <= 0 {
		frames = 1
	}
	c.FireIndex = (c.FireIndex + 1) % frames
}

// SpriteOffset is the (column, row) cell of the current frame.
func (c *Character) SpriteOffset() (int, int) {
	sf := c.stanceFrames()
	frames := sf.Frames
	if frames <= 0 {
		frames = 1
	}
	index := c.RunIndex % frames
	if c.Stance == Firing {
		index = c.FireIndex % frames
	}
	return sf.Column + index, c.Orientation.Row()
}

func (c *Character) stanceFrames() config.StanceFrames {
	switch c.Stance {
	case Walking:
		return c.anim.Walking
	case Running:
		return c.anim.Running
	case Firing:
		return c.anim.Firing
	default:
		return c.anim.Still
	}
}

func (c *Character) walkSpeed() float64 {
	if c.cfg.WalkSpeed > 0 {
		return c.cfg.WalkSpeed
	}
	return 3
}

func (c *Character) runSpeed() float64 {
	if c.cfg.RunSpeed > 0 {
		return c.cfg.RunSpeed
	}
	return 5
}
