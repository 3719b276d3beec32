// Package keytracker reports edge-triggered key presses for Ebiten v2.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker remembers the previous pressed state of each key it is
// asked about.
type KeyStateTracker struct {
	prevPressed map[ebiten.Key]bool
}

func New() *KeyStateTracker {
	return &KeyStateTracker{prevPressed: make(map[ebiten.Key]bool)}
}

// IsKeyJustPressed returns true if the key was not pressed on the previous
// call but is pressed now.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	return k.Observe(key, ebiten.IsKeyPressed(key))
}

// Observe records a key state and reports a rising edge. Split out so the
// edge logic works without a running game.
func (k *KeyStateTracker) Observe(key ebiten.Key, pressed bool) bool {
	if k.prevPressed == nil {
		k.prevPressed = make(map[ebiten.Key]bool)
	}
	justPressed := pressed && !k.prevPressed[key]
	k.prevPressed[key] = pressed
	return justPressed
}
