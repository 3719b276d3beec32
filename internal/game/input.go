package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"isozombie/internal/character"
	"isozombie/internal/game/keytracker"
)

// InputHandler polls ebiten once per Update and folds the result into a
// character.InputSnapshot.
type InputHandler struct {
	keys *keytracker.KeyStateTracker
}

// UIActions are the non-simulation toggles requested this frame.
type UIActions struct {
	ToggleDebug  bool
	CopySnapshot bool
}

func NewInputHandler() *InputHandler {
	return &InputHandler{keys: keytracker.New()}
}

// Poll reads the keyboard and mouse.
func (ih *InputHandler) Poll() (character.InputSnapshot, UIActions) {
	var in character.InputSnapshot
	if anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		in.MoveX--
	}
	if anyPressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		in.MoveX++
	}
	if anyPressed(ebiten.KeyArrowUp, ebiten.KeyW) {
		in.MoveY++
	}
	if anyPressed(ebiten.KeyArrowDown, ebiten.KeyS) {
		in.MoveY--
	}
	in.Run = anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight)
	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	e := ih.readEdges(ebiten.IsKeyPressed)
	_, wheel := ebiten.Wheel()
	in.ZoomIn = e.zoomIn || wheel > 0
	in.ZoomOut = e.zoomOut || wheel < 0

	return in, UIActions{ToggleDebug: e.toggleDebug, CopySnapshot: e.copySnapshot}
}

type keyEdges struct {
	zoomIn, zoomOut           bool
	toggleDebug, copySnapshot bool
}

// readEdges reports rising edges for every single-shot key.
func (ih *InputHandler) readEdges(pressed func(ebiten.Key) bool) keyEdges {
	return keyEdges{
		zoomIn:       ih.keys.Observe(ebiten.KeyE, pressed(ebiten.KeyE)),
		zoomOut:      ih.keys.Observe(ebiten.KeyQ, pressed(ebiten.KeyQ)),
		toggleDebug:  ih.keys.Observe(ebiten.KeyF3, pressed(ebiten.KeyF3)),
		copySnapshot: ih.keys.Observe(ebiten.KeyF9, pressed(ebiten.KeyF9)),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
