package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"isozombie/internal/config"
	"isozombie/internal/pathfinding"
	"isozombie/internal/world"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
	padding      = 16
)

// viewer shows a map top-down and the route between two picked tiles.
type viewer struct {
	md          *world.MapData
	legend      *world.TileLegend
	grid        *world.Grid
	finder      *pathfinding.Finder
	legendLines []string

	start, goal world.TileCoord
	route       pathfinding.Route
	routeOK     bool
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	mapPath := flag.String("map", "", "map file (defaults to world.map_file)")
	flag.Parse()

	ensureRuntimeCWD(*configPath)
	cfg := config.MustLoadConfig(*configPath)

	legend := world.DefaultTileLegend()
	if err := legend.LoadTileConfig(cfg.World.TilesFile); err != nil {
		log.Printf("Warning: Failed to load tile config: %v", err)
	}
	path := *mapPath
	if path == "" {
		path = cfg.World.MapFile
	}
	md, err := world.NewMapLoader(legend).LoadMap(path)
	if err != nil {
		log.Fatal(err)
	}

	v := newViewer(cfg, md, legend)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Map Viewer - " + filepath.Base(path))
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

func newViewer(cfg *config.Config, md *world.MapData, legend *world.TileLegend) *viewer {
	grid := md.Grid(cfg.World.TileSize, cfg.World.TileYOffset)
	v := &viewer{
		md:          md,
		legend:      legend,
		grid:        grid,
		finder:      pathfinding.NewFinder(grid, rand.New(rand.NewSource(1))),
		legendLines: buildLegendLines(legend),
	}
	if md.HasStart {
		v.start = md.PlayerStart
	}
	v.goal = v.start
	if len(md.ZombieSpawns) > 0 {
		v.goal = md.ZombieSpawns[0]
	}
	v.recompute()
	return v
}

func (v *viewer) recompute() {
	v.route, v.routeOK = v.finder.CalcRouteTiles(v.start, v.goal)
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	ox, oy, size := v.layout()
	t, ok := cellAt(mx, my, ox, oy, size, v.md.Width, v.md.Height)
	if !ok {
		return nil
	}
	if left {
		v.start = t
	} else {
		v.goal = t
	}
	v.recompute()
	return nil
}

// layout returns the map origin and cell size that fit the map area.
func (v *viewer) layout() (int, int, int) {
	w := windowWidth - sidebarWidth - padding*3
	h := windowHeight - padding*2
	size := w / v.md.Width
	if alt := h / v.md.Height; alt < size {
		size = alt
	}
	if size < 2 {
		size = 2
	}
	return padding + (w-v.md.Width*size)/2, padding + (h-v.md.Height*size)/2, size
}

// cellAt maps a screen pixel to a tile of a w x h map drawn at (ox, oy).
func cellAt(px, py, ox, oy, size, w, h int) (world.TileCoord, bool) {
	if size <= 0 || px < ox || py < oy {
		return world.TileCoord{}, false
	}
	t := world.TileCoord{X: (px - ox) / size, Y: (py - oy) / size}
	if t.X >= w || t.Y >= h {
		return world.TileCoord{}, false
	}
	return t, true
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})
	ox, oy, size := v.layout()

	for y, row := range v.md.Tiles {
		for x, key := range row {
			c := color.RGBA{255, 0, 255, 255}
			if def, ok := v.legend.Get(key); ok {
				c = colorFromRGB(def.Color, 255)
			}
			drawFilledRect(screen, ox+x*size, oy+y*size, size, size, c)
		}
	}
	for _, t := range v.route.Tiles {
		drawTileMarker(screen, ox, oy, size, t, color.RGBA{250, 220, 90, 255})
	}
	for _, t := range v.md.ZombieSpawns {
		drawTileMarker(screen, ox, oy, size, t, color.RGBA{200, 40, 40, 255})
	}
	drawTileMarker(screen, ox, oy, size, v.start, color.RGBA{60, 120, 255, 255})
	drawTileMarker(screen, ox, oy, size, v.goal, color.RGBA{255, 255, 255, 255})

	v.drawSidebar(screen, windowWidth-sidebarWidth-padding, padding)
}

func (v *viewer) drawSidebar(screen *ebiten.Image, x, y int) {
	drawFilledRect(screen, x, y, sidebarWidth, windowHeight-padding*2, color.RGBA{25, 25, 40, 255})
	lines := []string{
		fmt.Sprintf("Map %dx%d", v.md.Width, v.md.Height),
		fmt.Sprintf("Obstacles %d  Spawns %d", len(v.md.Impassable), len(v.md.ZombieSpawns)),
		"",
		fmt.Sprintf("Start %d,%d (left click)", v.start.X, v.start.Y),
		fmt.Sprintf("Goal  %d,%d (right click)", v.goal.X, v.goal.Y),
	}
	if v.routeOK {
		lines = append(lines, fmt.Sprintf("Route cost %d", v.route.Cost))
	} else {
		lines = append(lines, "No route")
	}
	lines = append(lines, "", "Legend:")
	lines = append(lines, v.legendLines...)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x+12, y+12+i*14)
	}
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

// buildLegendLines lists every tile kind as "letter  name".
func buildLegendLines(legend *world.TileLegend) []string {
	var lines []string
	for _, key := range legend.Keys() {
		def, _ := legend.Get(key)
		line := fmt.Sprintf("%s  %s", def.Letter, def.Name)
		if def.Solid {
			line += " (solid)"
		}
		lines = append(lines, line)
	}
	lines = append(lines,
		fmt.Sprintf("%c  player start", world.PlayerStartMarker),
		fmt.Sprintf("%c  zombie spawn", world.ZombieSpawnMarker),
	)
	return lines
}

func colorFromRGB(rgb [3]int, a uint8) color.RGBA {
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), a}
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawTileMarker(screen *ebiten.Image, ox, oy, size int, t world.TileCoord, clr color.RGBA) {
	cx := float32(ox + t.X*size + size/2)
	cy := float32(oy + t.Y*size + size/2)
	r := float32(size) / 4
	if r < 1 {
		r = 1
	}
	vector.DrawFilledCircle(screen, cx, cy, r, clr, false)
}

// ensureRuntimeCWD switches to the executable's directory when started
// from somewhere that has no config.
func ensureRuntimeCWD(configPath string) {
	if _, err := os.Stat(configPath); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
