package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"isozombie/internal/character"
)

// Update polls input and advances the simulation when a tick is due.
func (g *Game) Update() error {
	frameTimer := g.orch.Monitor().StartFrame()
	defer frameTimer.EndFrame()

	in, ui := g.input.Poll()
	if ui.ToggleDebug {
		g.showDebug = !g.showDebug
		g.settings.SetShowDebug(g.showDebug)
		g.persist()
	}
	if ui.CopySnapshot {
		if err := CopySnapshot(g.orch.State(), g.orch.Grid(), g.orch.Events()); err != nil {
			log.Printf("[Game] Warning: %v", err)
		}
	}

	now := g.now()
	var elapsed time.Duration
	if !g.lastUpdate.IsZero() {
		elapsed = now.Sub(g.lastUpdate)
	}
	g.lastUpdate = now

	g.step(elapsed, in)
	g.maybeLogPerfDrop(now, ebiten.ActualFPS(), g.orch.Monitor())
	return nil
}

// step feeds one frame into the gate. Zoom presses are edge-triggered, so
// they are held until a tick actually consumes them.
func (g *Game) step(elapsed time.Duration, in character.InputSnapshot) bool {
	g.pendingZoom.in = g.pendingZoom.in || in.ZoomIn
	g.pendingZoom.out = g.pendingZoom.out || in.ZoomOut
	in.ZoomIn, in.ZoomOut = g.pendingZoom.in, g.pendingZoom.out

	before := g.orch.Camera().Distance
	if !g.orch.Advance(elapsed, in) {
		return false
	}
	g.pendingZoom.in, g.pendingZoom.out = false, false

	dirty := false
	if d := g.orch.Camera().Distance; d != before {
		g.settings.SetCameraDistance(d)
		dirty = true
	}
	s := g.orch.State()
	if !g.cleared && len(s.Zombies) > 0 && s.AliveZombies() == 0 {
		g.cleared = true
		secs := int64((s.GameClock + time.Second - 1) / time.Second)
		if g.settings.RecordClear(secs) {
			log.Printf("[Game] New best clear time: %ds", secs)
			dirty = true
		}
	}
	if dirty {
		g.persist()
	}

	if s.Tick%alertEvery == 0 {
		for _, a := range g.orch.Monitor().CheckPerformanceAlerts() {
			log.Printf("[Game] Performance alert %s: %s (%.2f)", a.Type, a.Message, a.Value)
		}
	}
	return true
}

func (g *Game) persist() {
	if err := g.settings.Save(); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
}

// Draw renders the last staged frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.orch.Frame(), g.showDebug)
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}
