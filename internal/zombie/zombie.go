// Package zombie holds the zombie drawable and its per-tick decision logic.
package zombie

import (
	"math/rand"

	"isozombie/internal/config"
	"isozombie/internal/mathutil"
	"isozombie/internal/movement"
)

// Navigator answers the two grid questions a zombie asks each tick.
// Positions are map space.
type Navigator interface {
	CalcNextMovement(start, goal mathutil.Vec) int
	CanMoveTo(pos mathutil.Vec) bool
}

// Zombie is one zombie entity. Position is view space (player at the origin).
type Zombie struct {
	ID               int
	Position         mathutil.Vec
	PreviousPosition mathutil.Vec
	Movement         mathutil.Vec // unit heading vector, zero when inert
	Heading          float64
	Orientation      movement.Orientation
	Stance           Stance
	Health           float64
	Speed            float64
	LastDecision     int64 // game seconds
	AliveIndex       int
	DeathIndex       int

	ai   config.ZombieAIConfig
	anim config.ZombieAnimationConfig
	// decision interval in game seconds
	decisionInterval int64
	rng              *rand.Rand
}

// New creates a zombie at a view-space position with full health, standing
// still and facing down.
func New(id int, pos mathutil.Vec, cfg *config.Config, rng *rand.Rand) *Zombie {
	if cfg == nil {
		cfg = config.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(int64(id) + 1))
	}
	return &Zombie{
		ID:               id,
		Position:         pos,
		PreviousPosition: pos,
		Heading:          270,
		Orientation:      movement.Down,
		Stance:           Still,
		Health:           1,
		ai:               cfg.ZombieAI,
		anim:             cfg.Animation.Zombie,
		decisionInterval: cfg.GetDecisionInterval(),
		rng:              rng,
	}
}

// IsDead reports whether the zombie has stopped acting.
func (z *Zombie) IsDead() bool {
	return z.Health <= 0 || z.Stance.IsDeath()
}

// MapPosition converts the view position to map space.
func (z *Zombie) MapPosition(offset mathutil.Vec) mathutil.Vec {
	return z.Position.Sub(offset)
}

// TakeDamage subtracts damage from health. A killing hit at or above the
// critical threshold picks the critical death animation. Returns true when
// this hit killed the zombie.
func (z *Zombie) TakeDamage(damage float64) bool {
	if z.IsDead() || damage <= 0 {
		return false
	}
	z.Health -= damage
	if z.Health > 0 {
		return false
	}
	z.Health = 0
	if damage >= z.criticalDamage() {
		z.die(CriticalDeath)
	} else {
		z.die(NormalDeath)
	}
	return true
}

func (z *Zombie) die(stance Stance) {
	z.Stance = stance
	z.DeathIndex = 0
	z.Movement = mathutil.Vec{}
	z.Speed = 0
}

// AdvanceAnimation steps the sprite index once. Alive stances loop; death
// stances stop on their last frame.
func (z *Zombie) AdvanceAnimation() {
	frames := z.stanceFrames().Frames
	if frames <= 0 {
		frames = 1
	}
	if z.Stance.IsDeath() {
		if z.DeathIndex < frames-1 {
			z.DeathIndex++
		}
		return
	}
	z.AliveIndex = (z.AliveIndex + 1) % frames
}

// SpriteOffset is the (column, row) cell of the current frame in the zombie
// sprite sheet.
func (z *Zombie) SpriteOffset() (int, int) {
	sf := z.stanceFrames()
	frames := sf.Frames
	if frames <= 0 {
		frames = 1
	}
	index := z.AliveIndex % frames
	if z.Stance.IsDeath() {
		index = mathutil.IntClamp(z.DeathIndex, 0, frames-1)
	}
	return sf.Column + index, z.Orientation.Row()
}

func (z *Zombie) stanceFrames() config.StanceFrames {
	switch z.Stance {
	case Walking:
		return z.anim.Walking
	case Running:
		return z.anim.Running
	case NormalDeath:
		return z.anim.NormalDeath
	case CriticalDeath:
		return z.anim.CriticalDeath
	default:
		return z.anim.Still
	}
}

func (z *Zombie) criticalDamage() float64 {
	if z.ai.CriticalDamage > 0 {
		return z.ai.CriticalDamage
	}
	return 0.75
}
