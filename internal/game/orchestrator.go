package game

import (
	"fmt"
	"math/rand"
	"time"

	"isozombie/internal/character"
	"isozombie/internal/collision"
	"isozombie/internal/config"
	"isozombie/internal/mathutil"
	"isozombie/internal/monitoring"
	"isozombie/internal/pathfinding"
	"isozombie/internal/projection"
	"isozombie/internal/world"
	"isozombie/internal/zombie"
)

// Orchestrator owns the simulation state and advances it on a fixed
// timestep. It is single-threaded: Advance and Tick must be called from the
// same goroutine.
type Orchestrator struct {
	cfg        *config.Config
	grid       *world.Grid
	finder     *pathfinding.Finder
	collisions *collision.CollisionSystem
	monitor    *monitoring.PerformanceMonitor
	camera     *Camera
	events     *EventLog

	state *SimulationState
	frame RenderFrame

	tickInterval time.Duration
	accumulator  time.Duration
	runCycle     *Cooldown
	fireCycle    *Cooldown
	zombieCycle  *Cooldown

	// zombies overlapping the player after the previous tick
	touching map[int]bool
}

// NewOrchestrator wires the simulation for one map. monitor may be nil.
func NewOrchestrator(cfg *config.Config, md *world.MapData, rng *rand.Rand, monitor *monitoring.PerformanceMonitor) *Orchestrator {
	if cfg == nil {
		cfg = config.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if monitor == nil {
		monitor = monitoring.NewPerformanceMonitor()
	}

	var grid *world.Grid
	if md != nil {
		grid = md.Grid(cfg.World.TileSize, cfg.World.TileYOffset)
	} else {
		grid = world.NewGrid(cfg.World.TilesW, cfg.World.TilesH, cfg.World.TileSize, cfg.World.TileYOffset, nil)
	}

	finder := pathfinding.NewFinder(grid, rand.New(rand.NewSource(rng.Int63())))
	finder.SetRecorder(monitor)

	o := &Orchestrator{
		cfg:          cfg,
		grid:         grid,
		finder:       finder,
		collisions:   collision.NewCollisionSystem(grid),
		monitor:      monitor,
		camera:       NewCamera(cfg),
		events:       NewEventLog(512),
		state:        NewSimulationState(cfg, md, grid, rng),
		tickInterval: cfg.GetTickInterval(),
		runCycle:     NewCooldown(cfg.GetRunCycle()),
		fireCycle:    NewCooldown(cfg.GetFireCycle()),
		zombieCycle:  NewCooldown(cfg.GetZombieCycle()),
		touching:     make(map[int]bool),
	}
	StageFrame(o.state, o.currentProjection(), &o.frame)
	return o
}

// Advance feeds wall-clock time into the fixed-timestep gate. A tick runs
// only when the accumulated time reaches the tick interval; the accumulator
// then restarts from zero, so slow frames never trigger catch-up ticks.
func (o *Orchestrator) Advance(elapsed time.Duration, in character.InputSnapshot) bool {
	o.accumulator += elapsed
	if o.accumulator < o.tickInterval {
		return false
	}
	o.accumulator = 0
	o.Tick(in)
	return true
}

// Tick runs one simulation step unconditionally.
func (o *Orchestrator) Tick(in character.InputSnapshot) {
	if in.ZoomIn {
		o.camera.ZoomIn()
	}
	if in.ZoomOut {
		o.camera.ZoomOut()
	}

	var proj projection.Projection
	o.monitor.ProfiledFunction(monitoring.StageProjection, func() {
		proj = o.currentProjection()
	})

	o.monitor.ProfiledFunction(monitoring.StageEntityUpdate, func() {
		o.updateEntities(in)
	})

	o.stepCooldowns()

	o.monitor.ProfiledFunction(monitoring.StageStaging, func() {
		StageFrame(o.state, proj, &o.frame)
	})

	o.state.Tick++
	o.state.GameClock += o.tickInterval
	o.monitor.UpdateGameMetrics(int32(o.state.AliveZombies()), int32(o.state.Bullets.Len()), uint64(o.state.Hits))
}

// updateEntities runs every entity group against the same player snapshot.
func (o *Orchestrator) updateEntities(in character.InputSnapshot) {
	s := o.state
	wasBlocked := s.Character.Blocked
	input := s.Character.Update(in, o.grid, s.Offset)
	s.Input = input
	if s.Character.Blocked && !wasBlocked {
		o.events.Add(s.Tick, "P", CategoryMove, "blocked", s.Character.Orientation.String())
	}

	delta := input.Movement
	frame := zombie.Frame{Delta: delta, Offset: s.Offset, GameTime: s.GameSeconds()}
	for _, z := range s.Zombies {
		before := z.Stance
		z.Update(o.finder, frame)
		if z.Stance != before {
			o.events.Add(s.Tick, zombieLabel(z), CategoryStance, stanceKey(z.Stance), fmt.Sprintf("%v -> %v", before, z.Stance))
		}
	}

	s.Bullets.Update(delta)

	for i := range s.Objects {
		s.Objects[i].Position = s.Objects[i].Position.Add(delta)
	}

	// Everything has now moved by delta; the terrain follows.
	s.Offset = s.Offset.Add(delta)

	o.resolveCollisions()
}

// resolveCollisions removes bullets that hit an obstacle or a zombie, then
// records zombies that reached the player.
func (o *Orchestrator) resolveCollisions() {
	s := o.state
	o.collisions.Reset()
	zombieBox := o.cfg.ZombieAI.HitBoxSize
	if zombieBox <= 0 {
		zombieBox = 40
	}
	for i, z := range s.Zombies {
		if z.IsDead() {
			continue
		}
		o.collisions.RegisterEntity(collision.Entity{
			Index: i,
			Kind:  collision.KindZombie,
			Box:   collision.Square(z.Position, zombieBox),
			Solid: true,
		})
	}
	playerBox := o.cfg.Character.HitBoxSize
	if playerBox <= 0 {
		playerBox = 32
	}
	// The player is always at the view origin.
	o.collisions.RegisterEntity(collision.Entity{
		Kind:  collision.KindPlayer,
		Box:   collision.Square(mathutil.Vec{}, playerBox),
		Solid: true,
	})

	bulletBox := s.Bullets.HitBoxSize()
	for i, b := range s.Bullets.Bullets() {
		if !b.Alive {
			continue
		}
		if o.collisions.IsBlocked(b.Position, s.Offset) {
			s.Bullets.Kill(i)
			continue
		}
		hit, ok := o.collisions.FirstHit(collision.Square(b.Position, bulletBox), collision.KindZombie)
		if !ok {
			continue
		}
		s.Bullets.Kill(i)
		s.Hits++
		z := s.Zombies[hit.Index]
		damage := s.Bullets.Damage()
		if z.TakeDamage(damage) {
			s.Kills++
			o.events.Add(s.Tick, zombieLabel(z), CategoryCombat, "killed", z.Stance.String())
			// A corpse stops absorbing bullets this tick.
			o.removeCollider(hit.Index)
		} else {
			o.events.Add(s.Tick, zombieLabel(z), CategoryCombat, "hit", fmt.Sprintf("health %.2f", z.Health))
		}
	}
	s.Bullets.Compact()

	o.detectContacts()
}

// detectContacts counts each zombie once per stretch of overlap with the
// player. Zombies killed this tick have no collider left.
func (o *Orchestrator) detectContacts() {
	s := o.state
	now := make(map[int]bool, len(o.touching))
	for _, pair := range o.collisions.GetCollisions(collision.KindZombie, collision.KindPlayer) {
		idx := pair.Entity1.Index
		now[idx] = true
		if o.touching[idx] {
			continue
		}
		s.Contacts++
		o.events.Add(s.Tick, zombieLabel(s.Zombies[idx]), CategoryCombat, "contact",
			fmt.Sprintf("dist %.1f", pair.GetCollisionDistance()))
	}
	o.touching = now
}

func (o *Orchestrator) removeCollider(zombieIndex int) {
	kept := o.collisions.GetAllEntities()
	o.collisions.Reset()
	for _, e := range kept {
		if e.Kind == collision.KindZombie && e.Index == zombieIndex {
			continue
		}
		o.collisions.RegisterEntity(e)
	}
}

// stepCooldowns advances the animation timers by one tick of simulated time.
func (o *Orchestrator) stepCooldowns() {
	s := o.state
	if o.runCycle.Step(o.tickInterval) {
		s.Character.AdvanceRunCycle()
	}
	if o.fireCycle.Step(o.tickInterval) {
		s.Character.AdvanceFireCycle()
		if s.Character.IsFiring() {
			s.Bullets.Spawn(mathutil.Vec{}, s.Character.Facing())
		}
	}
	if o.zombieCycle.Step(o.tickInterval) {
		for _, z := range s.Zombies {
			z.AdvanceAnimation()
		}
	}
}

func (o *Orchestrator) currentProjection() projection.Projection {
	return projection.Compute(o.camera.Distance, o.cfg.GetAspect())
}

// State exposes the simulation state for rendering and reports.
func (o *Orchestrator) State() *SimulationState {
	return o.state
}

// Frame is the render frame staged by the last tick.
func (o *Orchestrator) Frame() *RenderFrame {
	return &o.frame
}

func (o *Orchestrator) Grid() *world.Grid {
	return o.grid
}

func (o *Orchestrator) Camera() *Camera {
	return o.camera
}

func (o *Orchestrator) Events() *EventLog {
	return o.events
}

func (o *Orchestrator) Monitor() *monitoring.PerformanceMonitor {
	return o.monitor
}

func zombieLabel(z *zombie.Zombie) string {
	return fmt.Sprintf("Z%d", z.ID)
}

func stanceKey(s zombie.Stance) string {
	switch s {
	case zombie.Running:
		return "aggro"
	case zombie.Walking:
		return "wander"
	case zombie.NormalDeath, zombie.CriticalDeath:
		return "death"
	default:
		return "still"
	}
}
