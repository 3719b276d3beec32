package game

import (
	"math/rand"
	"time"

	"isozombie/internal/character"
	"isozombie/internal/config"
	"isozombie/internal/mathutil"
	"isozombie/internal/movement"
	"isozombie/internal/projectile"
	"isozombie/internal/world"
	"isozombie/internal/zombie"
)

// TerrainObject is a house or tree drawn on top of the terrain. Position is
// view space and scrolls with the world.
type TerrainObject struct {
	Tile     world.TileCoord
	Key      string
	Sprite   string
	Position mathutil.Vec
}

// SimulationState is everything the orchestrator mutates in a tick. Entity
// groups are plain typed slices indexed by a stable position.
type SimulationState struct {
	Tick      uint64
	GameClock time.Duration // simulated time, advanced one tick interval per tick

	// Offset is the accumulated world shift. It is also the terrain's
	// position; the player stands at -Offset in map space.
	Offset mathutil.Vec
	Input  character.InputState // snapshot used by the last tick

	Character *character.Character
	Zombies   []*zombie.Zombie
	Bullets   *projectile.Manager
	Objects   []TerrainObject

	Kills    int
	Hits     int
	Contacts int // times a zombie reached the player
}

// NewSimulationState places the player on the map start (or the grid centre
// when the map has none) and every zombie on its spawn tile.
func NewSimulationState(cfg *config.Config, md *world.MapData, grid *world.Grid, rng *rand.Rand) *SimulationState {
	start := world.TileCoord{X: grid.Width() / 2, Y: grid.Height() / 2}
	if md != nil && md.HasStart {
		start = md.PlayerStart
	}
	offset := grid.TileToCoords(start).Scale(-1)

	s := &SimulationState{
		Offset:    offset,
		Input:     character.InputState{Offset: offset, Orientation: movement.Still},
		Character: character.New(cfg),
		Bullets:   projectile.NewManager(cfg),
	}
	if md == nil {
		return s
	}

	for i, spawn := range md.ZombieSpawns {
		pos := grid.TileToCoords(spawn).Add(offset)
		s.Zombies = append(s.Zombies, zombie.New(i, pos, cfg, rand.New(rand.NewSource(rng.Int63()))))
	}
	for _, obj := range md.Objects {
		s.Objects = append(s.Objects, TerrainObject{
			Tile:     obj.Tile,
			Key:      obj.Key,
			Sprite:   obj.Sprite,
			Position: grid.TileToCoords(obj.Tile).Add(offset),
		})
	}
	return s
}

// GameSeconds is the whole-second game clock zombies decide on.
func (s *SimulationState) GameSeconds() int64 {
	return int64(s.GameClock / time.Second)
}

// PlayerMapPosition is where the player stands on the map.
func (s *SimulationState) PlayerMapPosition() mathutil.Vec {
	return s.Offset.Scale(-1)
}

// TerrainPosition is the view-space position of the map origin.
func (s *SimulationState) TerrainPosition() mathutil.Vec {
	return s.Offset
}

// AliveZombies counts zombies that are not dead.
func (s *SimulationState) AliveZombies() int {
	n := 0
	for _, z := range s.Zombies {
		if !z.IsDead() {
			n++
		}
	}
	return n
}
