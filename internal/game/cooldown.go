package game

import "time"

// Cooldown fires once every period of simulated time.
type Cooldown struct {
	period    time.Duration
	remaining time.Duration
}

func NewCooldown(period time.Duration) *Cooldown {
	return &Cooldown{period: period, remaining: period}
}

// Step consumes dt and reports whether the cooldown reached zero. On firing
// the cooldown restarts from the full period; any overshoot is dropped.
func (c *Cooldown) Step(dt time.Duration) bool {
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	c.remaining = c.period
	return true
}

// Remaining is the time left until the next firing.
func (c *Cooldown) Remaining() time.Duration {
	return c.remaining
}
