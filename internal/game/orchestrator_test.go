package game

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"isozombie/internal/character"
	"isozombie/internal/config"
	"isozombie/internal/mathutil"
	"isozombie/internal/world"
	"isozombie/internal/zombie"
)

func parseMap(t *testing.T, rows ...string) *world.MapData {
	t.Helper()
	md, err := world.NewMapLoader(nil).Parse(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("parse map: %v", err)
	}
	return md
}

func newTestOrchestrator(t *testing.T, rows ...string) *Orchestrator {
	t.Helper()
	return NewOrchestrator(config.Default(), parseMap(t, rows...), rand.New(rand.NewSource(7)), nil)
}

var openMap = []string{
	".......",
	".......",
	".......",
	"...@...",
	".......",
	".......",
	"......Z",
}

func TestAdvanceFixedTimestepGate(t *testing.T) {
	o := newTestOrchestrator(t, openMap...)
	var none character.InputSnapshot

	steps := []struct {
		elapsed  time.Duration
		wantTick bool
		wantN    uint64
	}{
		{10 * time.Millisecond, false, 0},
		{10 * time.Millisecond, true, 1},
		// A long frame runs a single tick, never a catch-up burst.
		{100 * time.Millisecond, true, 2},
		// The overshoot of the previous frame is discarded.
		{10 * time.Millisecond, false, 2},
		{6 * time.Millisecond, true, 3},
	}
	for i, s := range steps {
		if got := o.Advance(s.elapsed, none); got != s.wantTick {
			t.Errorf("step %d: Advance = %v, want %v", i, got, s.wantTick)
		}
		if o.State().Tick != s.wantN {
			t.Errorf("step %d: Tick = %d, want %d", i, o.State().Tick, s.wantN)
		}
	}
}

func TestTickAdvancesGameClock(t *testing.T) {
	o := newTestOrchestrator(t, openMap...)
	for i := 0; i < 3; i++ {
		o.Tick(character.InputSnapshot{})
	}
	s := o.State()
	if s.Tick != 3 {
		t.Errorf("Tick = %d, want 3", s.Tick)
	}
	if s.GameClock != 48*time.Millisecond {
		t.Errorf("GameClock = %v, want 48ms", s.GameClock)
	}
	if s.GameSeconds() != 0 {
		t.Errorf("GameSeconds = %d, want 0", s.GameSeconds())
	}
}

func TestPlayerStartsOnMarker(t *testing.T) {
	o := newTestOrchestrator(t, openMap...)
	got := o.Grid().CoordsToTile(o.State().PlayerMapPosition())
	if got != (world.TileCoord{X: 3, Y: 3}) {
		t.Errorf("player tile = %v, want (3,3)", got)
	}
	if len(o.State().Zombies) != 1 {
		t.Fatalf("zombies = %d, want 1", len(o.State().Zombies))
	}
}

func TestWalkingShiftsWorldOpposite(t *testing.T) {
	o := newTestOrchestrator(t, openMap...)
	s := o.State()
	startPlayer := s.PlayerMapPosition()
	z := s.Zombies[0]
	z.Health = 0
	z.Stance = zombie.NormalDeath
	zBefore := z.Position

	o.Tick(character.InputSnapshot{MoveX: 1})

	step := mathutil.Vec{X: config.Default().Character.WalkSpeed}
	if !s.PlayerMapPosition().ApproxEqual(startPlayer.Add(step), 1e-9) {
		t.Errorf("player map position = %v, want %v", s.PlayerMapPosition(), startPlayer.Add(step))
	}
	if !s.Input.Movement.ApproxEqual(step.Scale(-1), 1e-9) {
		t.Errorf("movement = %v, want %v", s.Input.Movement, step.Scale(-1))
	}
	// Dead zombies still scroll with the world.
	if !z.Position.ApproxEqual(zBefore.Sub(step), 1e-9) {
		t.Errorf("dead zombie position = %v, want %v", z.Position, zBefore.Sub(step))
	}
	if !s.TerrainPosition().ApproxEqual(s.Offset, 0) {
		t.Errorf("terrain position should equal offset")
	}
	if s.Character.Stance != character.Walking {
		t.Errorf("stance = %v, want Walking", s.Character.Stance)
	}
}

func TestMapBorderBlocksPlayer(t *testing.T) {
	o := newTestOrchestrator(t, "@..", "...", "...")
	left := character.InputSnapshot{MoveX: -1}
	for i := 0; i < 100; i++ {
		o.Tick(left)
	}
	s := o.State()
	if !s.Character.Blocked {
		t.Fatalf("player should be blocked at the map border")
	}
	before := s.Offset
	o.Tick(left)
	if s.Offset != before {
		t.Errorf("blocked step moved the world: %v -> %v", before, s.Offset)
	}
	if !o.Grid().IsWithinMapBorders(o.Grid().CoordsToTile(s.PlayerMapPosition())) {
		t.Errorf("player left the map")
	}
	if len(o.Events().Filter(CategoryMove, "blocked")) == 0 {
		t.Errorf("expected a blocked event")
	}
}

func TestZombieInRangeChases(t *testing.T) {
	o := newTestOrchestrator(t, "Z.@.", "....", "....")
	o.Tick(character.InputSnapshot{})
	z := o.State().Zombies[0]
	if z.Stance != zombie.Running {
		t.Fatalf("stance = %v, want Running", z.Stance)
	}
	if got := len(o.Events().Filter(CategoryStance, "aggro")); got != 1 {
		t.Errorf("aggro events = %d, want 1", got)
	}
	if o.Monitor().GetRouteStats().Total() == 0 {
		t.Errorf("chasing should record a route search")
	}
}

func TestBulletHitsAndKillsZombie(t *testing.T) {
	o := newTestOrchestrator(t, openMap...)
	s := o.State()
	z := s.Zombies[0]
	z.Position = mathutil.Vec{X: 20}
	s.Bullets.Spawn(mathutil.Vec{}, mathutil.Vec{X: 1})

	o.Tick(character.InputSnapshot{})
	if s.Hits != 1 {
		t.Fatalf("Hits = %d, want 1", s.Hits)
	}
	if s.Bullets.Len() != 0 {
		t.Errorf("bullet should be removed on hit, %d left", s.Bullets.Len())
	}
	wantHealth := 1 - config.Default().Bullets.Damage
	if z.Health < wantHealth-1e-9 || z.Health > wantHealth+1e-9 {
		t.Errorf("health = %v, want %v", z.Health, wantHealth)
	}

	z.Health = 0.3
	z.Position = mathutil.Vec{X: 20}
	s.Bullets.Spawn(mathutil.Vec{}, mathutil.Vec{X: 1})
	o.Tick(character.InputSnapshot{})
	if s.Kills != 1 {
		t.Fatalf("Kills = %d, want 1", s.Kills)
	}
	if z.Stance != zombie.NormalDeath {
		t.Errorf("stance = %v, want NormalDeath", z.Stance)
	}
	if s.AliveZombies() != 0 {
		t.Errorf("AliveZombies = %d, want 0", s.AliveZombies())
	}
	if len(o.Events().Filter(CategoryCombat, "killed")) != 1 {
		t.Errorf("expected one killed event")
	}
}

func TestBulletStoppedByObstacle(t *testing.T) {
	o := newTestOrchestrator(t, "....", ".R@.", "....", "....")
	s := o.State()
	// Tile (1,1) lies along (-1, 0.5) from the player, about 72 units away.
	s.Bullets.Spawn(mathutil.Vec{}, mathutil.Vec{X: -1, Y: 0.5})
	for i := 0; i < 10 && s.Bullets.Len() > 0; i++ {
		o.Tick(character.InputSnapshot{})
	}
	if s.Bullets.Len() != 0 {
		t.Errorf("bullet should stop at the rock")
	}
	if s.Hits != 0 {
		t.Errorf("Hits = %d, want 0", s.Hits)
	}
}

func TestFiringSpawnsBulletsOnFireCycle(t *testing.T) {
	o := newTestOrchestrator(t, openMap...)
	s := o.State()
	s.Zombies[0].Health = 0
	s.Zombies[0].Stance = zombie.NormalDeath

	fire := character.InputSnapshot{Fire: true}
	for i := 0; i < 4; i++ {
		o.Tick(fire)
	}
	// 60ms fire cycle at 16ms per tick fires on the fourth tick.
	if s.Bullets.Fired() != 1 {
		t.Errorf("Fired = %d, want 1", s.Bullets.Fired())
	}
}

func TestZoomClampsAndRestages(t *testing.T) {
	o := newTestOrchestrator(t, openMap...)
	cfg := config.Default()
	for i := 0; i < 50; i++ {
		o.Tick(character.InputSnapshot{ZoomIn: true})
	}
	if o.Camera().Distance != cfg.Camera.MinDistance {
		t.Errorf("distance = %v, want %v", o.Camera().Distance, cfg.Camera.MinDistance)
	}
	if o.Frame().Projection.Distance != cfg.Camera.MinDistance {
		t.Errorf("frame projection distance = %v", o.Frame().Projection.Distance)
	}
	o.Tick(character.InputSnapshot{ZoomOut: true})
	if want := cfg.Camera.MinDistance + cfg.Camera.ZoomStep; o.Camera().Distance != want {
		t.Errorf("distance = %v, want %v", o.Camera().Distance, want)
	}
}

func TestZombieContactCountedOncePerOverlap(t *testing.T) {
	o := newTestOrchestrator(t, openMap...)
	s := o.State()
	z := s.Zombies[0]

	z.Position = mathutil.Vec{X: 10}
	o.Tick(character.InputSnapshot{})
	o.Tick(character.InputSnapshot{})
	if s.Contacts != 1 {
		t.Fatalf("Contacts = %d, want 1 while the zombie stays on the player", s.Contacts)
	}
	if got := len(o.Events().Filter(CategoryCombat, "contact")); got != 1 {
		t.Errorf("contact events = %d, want 1", got)
	}

	z.Position = mathutil.Vec{X: 1000}
	o.Tick(character.InputSnapshot{})
	z.Position = mathutil.Vec{X: 10}
	o.Tick(character.InputSnapshot{})
	if s.Contacts != 2 {
		t.Errorf("Contacts = %d, want 2 after the zombie returns", s.Contacts)
	}
}

func TestDeadZombieMakesNoContact(t *testing.T) {
	o := newTestOrchestrator(t, openMap...)
	s := o.State()
	z := s.Zombies[0]
	z.Health = 0
	z.Stance = zombie.NormalDeath
	z.Position = mathutil.Vec{}

	o.Tick(character.InputSnapshot{})
	if s.Contacts != 0 {
		t.Errorf("Contacts = %d, want 0 for a corpse", s.Contacts)
	}
}
