// Package projectile manages the player's bullets.
package projectile

import (
	"isozombie/internal/config"
	"isozombie/internal/mathutil"
	"isozombie/internal/movement"
)

// Bullet travels in a straight line in view space until it expires or hits
// something.
type Bullet struct {
	Position    mathutil.Vec
	Direction   mathutil.Vec // unit vector
	Orientation movement.Orientation
	TicksLeft   int
	Alive       bool
}

// Manager owns the live bullet list.
type Manager struct {
	bullets []Bullet
	cfg     config.BulletConfig
	fired   int
}

func NewManager(cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Manager{cfg: cfg.Bullets}
}

// Spawn fires a bullet from origin along facing. A zero facing is ignored.
func (m *Manager) Spawn(origin, facing mathutil.Vec) bool {
	if facing.IsZero() {
		return false
	}
	dir := facing.Scale(1 / facing.Len())
	m.bullets = append(m.bullets, Bullet{
		Position:    origin,
		Direction:   dir,
		Orientation: movement.OrientationToDirection(movement.Direction(mathutil.Vec{}, dir)),
		TicksLeft:   m.lifetime(),
		Alive:       true,
	})
	m.fired++
	return true
}

// Update moves every bullet one tick and shifts it with the world. Bullets
// whose lifetime runs out are marked dead.
func (m *Manager) Update(delta mathutil.Vec) {
	speed := m.speed()
	for i := range m.bullets {
		b := &m.bullets[i]
		if !b.Alive {
			continue
		}
		b.Position = b.Position.Add(b.Direction.Scale(speed)).Add(delta)
		b.TicksLeft--
		if b.TicksLeft <= 0 {
			b.Alive = false
		}
	}
}

// Kill marks bullet i dead.
func (m *Manager) Kill(i int) {
	if i >= 0 && i < len(m.bullets) {
		m.bullets[i].Alive = false
	}
}

// Compact drops dead bullets, keeping order. Returns how many were removed.
func (m *Manager) Compact() int {
	kept := m.bullets[:0]
	for _, b := range m.bullets {
		if b.Alive {
			kept = append(kept, b)
		}
	}
	removed := len(m.bullets) - len(kept)
	m.bullets = kept
	return removed
}

// Bullets exposes the live list. Callers may read but must not append.
func (m *Manager) Bullets() []Bullet {
	return m.bullets
}

func (m *Manager) Len() int {
	return len(m.bullets)
}

// Fired counts every bullet spawned so far.
func (m *Manager) Fired() int {
	return m.fired
}

// Damage is the health a single hit removes.
func (m *Manager) Damage() float64 {
	if m.cfg.Damage > 0 {
		return m.cfg.Damage
	}
	return 0.34
}

// HitBoxSize is the side of a bullet's square hit box.
func (m *Manager) HitBoxSize() float64 {
	if m.cfg.HitBoxSize > 0 {
		return m.cfg.HitBoxSize
	}
	return 8
}

func (m *Manager) speed() float64 {
	if m.cfg.Speed > 0 {
		return m.cfg.Speed
	}
	return 14
}

func (m *Manager) lifetime() int {
	if m.cfg.LifetimeTicks > 0 {
		return m.cfg.LifetimeTicks
	}
	return 60
}
