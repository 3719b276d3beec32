package game

import (
	"math/rand"
	"testing"

	"isozombie/internal/character"
	"isozombie/internal/config"
	"isozombie/internal/mathutil"
	"isozombie/internal/projectile"
	"isozombie/internal/projection"
	"isozombie/internal/zombie"
)

func newBareState(cfg *config.Config, zombiePositions ...mathutil.Vec) *SimulationState {
	s := &SimulationState{
		Character: character.New(cfg),
		Bullets:   projectile.NewManager(cfg),
	}
	for i, p := range zombiePositions {
		s.Zombies = append(s.Zombies, zombie.New(i, p, cfg, rand.New(rand.NewSource(int64(i)))))
	}
	return s
}

func TestStageFrameDepthOrder(t *testing.T) {
	cfg := config.Default()
	s := newBareState(cfg,
		mathutil.Vec{X: 10, Y: -50},
		mathutil.Vec{X: -10, Y: 100},
		mathutil.Vec{X: 0, Y: 0},
		mathutil.Vec{X: 5000, Y: 0}, // off screen
	)
	s.Objects = []TerrainObject{{Key: "tree", Sprite: "tree", Position: mathutil.Vec{Y: 40}}}

	var frame RenderFrame
	StageFrame(s, projection.Compute(360, 16.0/9.0), &frame)

	type want struct {
		kind  SpriteKind
		index int
	}
	wants := []want{
		{SpriteZombie, 1},    // y = 100
		{SpriteObject, 0},    // y = 40
		{SpriteZombie, 2},    // y = 0, staged before the character
		{SpriteCharacter, 0}, // origin
		{SpriteZombie, 0},    // y = -50
	}
	if len(frame.Sprites) != len(wants) {
		t.Fatalf("staged %d sprites, want %d: %+v", len(frame.Sprites), len(wants), frame.Sprites)
	}
	for i, w := range wants {
		got := frame.Sprites[i]
		if got.Kind != w.kind || got.Index != w.index {
			t.Errorf("sprite %d = kind %d index %d, want kind %d index %d", i, got.Kind, got.Index, w.kind, w.index)
		}
	}

	if frame.HUD.ZombiesTotal != 4 || frame.HUD.ZombiesAlive != 4 {
		t.Errorf("HUD zombies = %d/%d, want 4/4", frame.HUD.ZombiesAlive, frame.HUD.ZombiesTotal)
	}
	if frame.HUD.CameraDistance != 360 {
		t.Errorf("HUD camera distance = %v", frame.HUD.CameraDistance)
	}
}

func TestStageFrameReusesBufferAndSkipsDeadBullets(t *testing.T) {
	cfg := config.Default()
	s := newBareState(cfg)
	s.Bullets.Spawn(mathutil.Vec{}, mathutil.Vec{X: 1})
	s.Bullets.Spawn(mathutil.Vec{}, mathutil.Vec{Y: 1})
	s.Bullets.Kill(0)

	frame := RenderFrame{Sprites: make([]SpriteInstance, 0, 16)}
	StageFrame(s, projection.Compute(360, 1), &frame)
	if len(frame.Sprites) != 2 {
		t.Fatalf("staged %d sprites, want character and one bullet", len(frame.Sprites))
	}
	if cap(frame.Sprites) != 16 {
		t.Errorf("sprite buffer was reallocated")
	}
	var bullets int
	for _, sp := range frame.Sprites {
		if sp.Kind == SpriteBullet {
			bullets++
			if sp.Index != 1 {
				t.Errorf("staged bullet index %d, want 1", sp.Index)
			}
		}
	}
	if bullets != 1 {
		t.Errorf("staged %d bullets, want 1", bullets)
	}
}
