package game

import (
	"isozombie/internal/config"
)

// Camera holds the zoom distance: half the visible height in world units.
// It always centres on the player.
type Camera struct {
	Distance float64
	cfg      *config.Config
}

func NewCamera(cfg *config.Config) *Camera {
	return &Camera{Distance: cfg.ClampCameraDistance(cfg.Camera.Distance), cfg: cfg}
}

// ZoomIn moves the camera closer by one step.
func (c *Camera) ZoomIn() {
	c.SetDistance(c.Distance - c.step())
}

// ZoomOut moves the camera away by one step.
func (c *Camera) ZoomOut() {
	c.SetDistance(c.Distance + c.step())
}

// SetDistance clamps d to the configured range.
func (c *Camera) SetDistance(d float64) {
	c.Distance = c.cfg.ClampCameraDistance(d)
}

func (c *Camera) step() float64 {
	if c.cfg.Camera.ZoomStep > 0 {
		return c.cfg.Camera.ZoomStep
	}
	return 30
}
