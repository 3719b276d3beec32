package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"isozombie/internal/config"
	"isozombie/internal/graphics"
	"isozombie/internal/monitoring"
	"isozombie/internal/world"
)

// alertEvery is how many ticks pass between performance alert checks.
const alertEvery = 600

// Game adapts the orchestrator to ebiten.Game. Update measures wall-clock
// time and hands it to the fixed-timestep gate; Draw only reads the staged
// frame.
type Game struct {
	cfg      *config.Config
	orch     *Orchestrator
	input    *InputHandler
	renderer *Renderer
	settings *SettingsStore

	now         func() time.Time
	lastUpdate  time.Time
	pendingZoom struct{ in, out bool }
	showDebug   bool
	cleared     bool
	perf        perfWatch
}

// Deps bundles what main loads before the game starts.
type Deps struct {
	Config   *config.Config
	Map      *world.MapData
	Legend   *world.TileLegend
	Sprites  *graphics.SpriteManager
	Settings *SettingsStore
	Seed     int64
}

func NewGame(d Deps) *Game {
	cfg := d.Config
	if cfg == nil {
		cfg = config.Default()
	}
	legend := d.Legend
	if legend == nil {
		legend = world.DefaultTileLegend()
	}
	sprites := d.Sprites
	if sprites == nil {
		sprites = graphics.NewSpriteManager("", cfg.Animation.CellSize, int(cfg.World.TileSize))
	}
	settings := d.Settings
	if settings == nil {
		settings = NewSettingsStore(nil, Settings{CameraDistance: cfg.Camera.Distance})
	}

	orch := NewOrchestrator(cfg, d.Map, rand.New(rand.NewSource(d.Seed)), monitoring.NewPerformanceMonitor())
	orch.Camera().SetDistance(settings.Get().CameraDistance)

	return &Game{
		cfg:       cfg,
		orch:      orch,
		input:     NewInputHandler(),
		renderer:  NewRenderer(cfg, sprites, orch.Grid(), d.Map, legend),
		settings:  settings,
		now:       time.Now,
		showDebug: settings.Get().ShowDebug,
	}
}

// Orchestrator exposes the simulation for tools and tests.
func (g *Game) Orchestrator() *Orchestrator {
	return g.orch
}

var _ ebiten.Game = (*Game)(nil)
