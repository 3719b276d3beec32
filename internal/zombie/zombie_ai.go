package zombie

import (
	"isozombie/internal/mathutil"
	"isozombie/internal/movement"
)

// Frame is the per-tick input every zombie reads. All zombies in a tick see
// the same Frame.
type Frame struct {
	// Delta is how far the world shifts this tick (the inverse of the
	// player's step).
	Delta mathutil.Vec
	// Offset is the accumulated world shift before this tick. Map position is
	// view position minus Offset, so the player sits at -Offset.
	Offset   mathutil.Vec
	GameTime int64 // whole seconds
}

// Update runs one tick of the decision state machine and moves the zombie.
func (z *Zombie) Update(nav Navigator, f Frame) {
	z.PreviousPosition = z.Position

	if z.IsDead() {
		if !z.Stance.IsDeath() {
			z.die(NormalDeath)
		}
		z.Movement = mathutil.Vec{}
		z.Position = z.Position.Add(f.Delta)
		return
	}

	mapPos := z.MapPosition(f.Offset)
	// The player is at the view origin.
	if z.Position.Len() < z.aggroDistance() {
		z.updateChasing(nav, mapPos, f.Offset.Scale(-1))
	} else {
		z.updateIdle(nav, mapPos, f.GameTime)
	}

	z.Position = z.Position.Add(z.Movement.Scale(z.Speed)).Add(f.Delta)
}

func (z *Zombie) updateChasing(nav Navigator, mapPos, playerMapPos mathutil.Vec) {
	z.Stance = Running
	z.setHeading(float64(nav.CalcNextMovement(mapPos, playerMapPos)))
	z.Speed = z.runMultiplier() * z.Health
}

func (z *Zombie) updateIdle(nav Navigator, mapPos mathutil.Vec, gameTime int64) {
	// A zombie that has not picked a heading yet has nothing to reverse.
	if !nav.CanMoveTo(mapPos) && !z.Movement.IsZero() {
		z.Movement = movement.DirectionMovement180(z.Movement)
		z.Heading = movement.Direction(mathutil.Vec{}, z.Movement)
		z.Orientation = movement.OrientationToDirection(z.Heading)
	}

	if gameTime-z.LastDecision >= z.decisionInterval {
		z.Stance = Walking
		z.setHeading(float64(nav.CalcNextMovement(mapPos, z.wanderTarget(mapPos))))
		z.LastDecision = gameTime
	}

	z.Speed = z.walkMultiplier() * z.Health
}

func (z *Zombie) setHeading(degrees float64) {
	z.Heading = degrees
	z.Movement = movement.DirectionMovement(degrees)
	z.Orientation = movement.OrientationToDirection(degrees)
}

func (z *Zombie) wanderTarget(from mathutil.Vec) mathutil.Vec {
	r := z.ai.WanderRadius
	if r <= 0 {
		r = 256
	}
	return from.Add(mathutil.Vec{
		X: (z.rng.Float64()*2 - 1) * r,
		Y: (z.rng.Float64()*2 - 1) * r,
	})
}

func (z *Zombie) aggroDistance() float64 {
	if z.ai.AggroDistance > 0 {
		return z.ai.AggroDistance
	}
	return 400
}

func (z *Zombie) runMultiplier() float64 {
	if z.ai.RunSpeedMultiplier > 0 {
		return z.ai.RunSpeedMultiplier
	}
	return 2.4
}

func (z *Zombie) walkMultiplier() float64 {
	if z.ai.WalkSpeedMultiplier > 0 {
		return z.ai.WalkSpeedMultiplier
	}
	return 1.2
}
