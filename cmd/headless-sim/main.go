package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"

	"isozombie/internal/character"
	"isozombie/internal/config"
	"isozombie/internal/game"
	"isozombie/internal/monitoring"
	"isozombie/internal/world"
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int

	zombies    int
	alive      int
	kills      int
	hits       int
	fired      int
	contacts   int
	finalTile  world.TileCoord
	cameraDist float64

	firstAggroTick int
	firstHitTick   int
	firstKillTick  int
	firstContact   int
	clearTick      int

	aggroEvents   int
	wanderEvents  int
	stillEvents   int
	deathEvents   int
	blockedEvents int

	routes monitoring.RouteStats
	tail   []game.EventEntry
}

func main() {
	var runs int
	var ticks int
	var tail int
	var seedBase int64
	var configPath string
	var mapPath string

	flag.IntVar(&runs, "runs", 1, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.IntVar(&tail, "tail", 20, "event log lines to print per run")
	flag.Int64Var(&seedBase, "seed", 42, "RNG seed for run 1; later runs add 1")
	flag.StringVar(&configPath, "config", "config.yaml", "path to config.yaml")
	flag.StringVar(&mapPath, "map", "", "map file (defaults to world.map_file)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}
	legend := world.DefaultTileLegend()
	if err := legend.LoadTileConfig(cfg.World.TilesFile); err != nil {
		fmt.Printf("warning: %v (using built-in tiles)\n", err)
	}
	if mapPath == "" {
		mapPath = cfg.World.MapFile
	}
	md, err := world.NewMapLoader(legend).LoadMap(mapPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Zombie Report ===\n")
	fmt.Printf("map=%s size=%dx%d spawns=%d runs=%d ticks=%d seed=%d\n\n",
		mapPath, md.Width, md.Height, len(md.ZombieSpawns), runs, ticks, seedBase)

	for i := 0; i < runs; i++ {
		rs := runScenario(cfg, md, i+1, seedBase+int64(i), ticks, tail)
		printRun(rs)
	}
}

// scriptedInput walks the player around a square while firing. The route
// turns a quarter every 90 ticks and the player sprints on every other leg.
func scriptedInput(tick int) character.InputSnapshot {
	legs := [4][2]int{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}
	leg := (tick / 90) % len(legs)
	return character.InputSnapshot{
		MoveX: legs[leg][0],
		MoveY: legs[leg][1],
		Run:   leg%2 == 1,
		Fire:  true,
	}
}

func runScenario(cfg *config.Config, md *world.MapData, runIndex int, seed int64, ticks, tail int) runStats {
	o := game.NewOrchestrator(cfg, md, rand.New(rand.NewSource(seed)), nil)
	rs := runStats{runIndex: runIndex, seed: seed, ticks: ticks, clearTick: -1}

	s := o.State()
	rs.zombies = len(s.Zombies)
	for i := 0; i < ticks; i++ {
		o.Tick(scriptedInput(i))
		if rs.clearTick < 0 && rs.zombies > 0 && s.AliveZombies() == 0 {
			rs.clearTick = int(s.Tick)
		}
	}

	ev := o.Events()
	rs.alive = s.AliveZombies()
	rs.kills = s.Kills
	rs.hits = s.Hits
	rs.fired = s.Bullets.Fired()
	rs.contacts = s.Contacts
	rs.finalTile = o.Grid().CoordsToTile(s.PlayerMapPosition())
	rs.cameraDist = o.Camera().Distance

	rs.firstAggroTick = firstTick(ev, game.CategoryStance, "aggro")
	rs.firstHitTick = firstTick(ev, game.CategoryCombat, "hit")
	rs.firstKillTick = firstTick(ev, game.CategoryCombat, "killed")
	rs.firstContact = firstTick(ev, game.CategoryCombat, "contact")

	rs.aggroEvents = len(ev.Filter(game.CategoryStance, "aggro"))
	rs.wanderEvents = len(ev.Filter(game.CategoryStance, "wander"))
	rs.stillEvents = len(ev.Filter(game.CategoryStance, "still"))
	rs.deathEvents = len(ev.Filter(game.CategoryStance, "death"))
	rs.blockedEvents = len(ev.Filter(game.CategoryMove, "blocked"))

	rs.routes = o.Monitor().GetRouteStats()
	rs.tail = ev.Tail(tail)
	return rs
}

// firstTick finds the earliest retained event; -1 when none.
func firstTick(ev *game.EventLog, category, key string) int {
	entries := ev.Filter(category, key)
	if len(entries) == 0 {
		return -1
	}
	return int(entries[0].Tick)
}

func printRun(rs runStats) {
	fmt.Print(formatRun(rs))
}

func formatRun(rs runStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(&b, "outcome: zombies=%d alive=%d kills=%d hits=%d fired=%d contacts=%d clear_tick=%d\n",
		rs.zombies, rs.alive, rs.kills, rs.hits, rs.fired, rs.contacts, rs.clearTick)
	fmt.Fprintf(&b, "phase_markers: first_aggro=%d first_hit=%d first_kill=%d first_contact=%d\n",
		rs.firstAggroTick, rs.firstHitTick, rs.firstKillTick, rs.firstContact)
	fmt.Fprintf(&b, "stance_events: aggro=%d wander=%d still=%d death=%d blocked=%d\n",
		rs.aggroEvents, rs.wanderEvents, rs.stillEvents, rs.deathEvents, rs.blockedEvents)
	fmt.Fprintf(&b, "routes: found=%d failed=%d failure_ratio=%.2f nodes_expanded=%d\n",
		rs.routes.Found, rs.routes.Failed, rs.routes.FailureRatio(), rs.routes.NodesExpanded)
	fmt.Fprintf(&b, "player: tile=%d,%d camera=%.0f\n", rs.finalTile.X, rs.finalTile.Y, rs.cameraDist)
	if len(rs.tail) > 0 {
		fmt.Fprintf(&b, "events (last %d):\n", len(rs.tail))
		for _, e := range rs.tail {
			b.WriteString("  ")
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}
