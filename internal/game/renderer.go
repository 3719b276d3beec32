package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"isozombie/internal/config"
	"isozombie/internal/graphics"
	"isozombie/internal/mathutil"
	"isozombie/internal/projection"
	"isozombie/internal/world"
)

// Sheet names looked up under the sprite directory.
const (
	SheetZombie    = "zombie"
	SheetCharacter = "character"
	SheetBullet    = "bullet"
)

var (
	hudColor       = color.RGBA{235, 235, 220, 255}
	hudShadow      = color.RGBA{0, 0, 0, 160}
	debugBoxColor  = color.RGBA{255, 60, 60, 200}
	debugWallColor = color.RGBA{255, 200, 0, 180}
	debugEdgeColor = color.RGBA{120, 200, 255, 220}
	unknownTile    = color.RGBA{255, 0, 255, 255}
)

type terrainTile struct {
	pos   mathutil.Vec // map space
	color color.RGBA
}

// Renderer draws a staged RenderFrame. It owns no simulation state.
type Renderer struct {
	cfg     *config.Config
	sprites *graphics.SpriteManager
	grid    *world.Grid
	tiles   []terrainTile
	objects map[string]color.RGBA // object sprite key -> placeholder body
}

func NewRenderer(cfg *config.Config, sprites *graphics.SpriteManager, grid *world.Grid, md *world.MapData, legend *world.TileLegend) *Renderer {
	r := &Renderer{
		cfg:     cfg,
		sprites: sprites,
		grid:    grid,
		objects: make(map[string]color.RGBA),
	}
	r.registerSheets()
	if md == nil {
		return r
	}
	for y, row := range md.Tiles {
		for x, key := range row {
			c := unknownTile
			if def, ok := legend.Get(key); ok {
				c = rgb(def.Color)
			}
			r.tiles = append(r.tiles, terrainTile{pos: grid.TileToCoords(world.TileCoord{X: x, Y: y}), color: c})
		}
	}
	for _, obj := range md.Objects {
		if def, ok := legend.Get(obj.Key); ok {
			r.objects[obj.Sprite] = rgb(def.Color)
		}
	}
	return r
}

func (r *Renderer) registerSheets() {
	za := r.cfg.Animation.Zombie
	ca := r.cfg.Animation.Character
	r.sprites.Register(graphics.SheetSpec{
		Name:        SheetZombie,
		Columns:     za.CriticalDeath.Column + za.CriticalDeath.Frames,
		Rows:        8,
		Body:        color.RGBA{90, 140, 80, 255},
		DeathColumn: za.NormalDeath.Column,
	})
	r.sprites.Register(graphics.SheetSpec{
		Name:    SheetCharacter,
		Columns: ca.Firing.Column + ca.Firing.Frames,
		Rows:    8,
		Body:    color.RGBA{60, 90, 170, 255},
	})
	r.sprites.Register(graphics.SheetSpec{
		Name:    SheetBullet,
		Columns: 1,
		Rows:    8,
		Body:    color.RGBA{250, 220, 90, 255},
	})
}

// Draw renders terrain, sprites and HUD. debug adds hit boxes and walls.
func (r *Renderer) Draw(screen *ebiten.Image, frame *RenderFrame, debug bool) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	proj := frame.Projection
	ppu := proj.PixelsPerUnit(h)

	r.drawTerrain(screen, frame, w, h, ppu)
	for _, sp := range frame.Sprites {
		r.drawSprite(screen, proj, sp, w, h)
	}
	if debug {
		r.drawDebug(screen, frame, w, h, ppu)
	}
	r.drawHUD(screen, frame.HUD)
}

func (r *Renderer) drawTerrain(screen *ebiten.Image, frame *RenderFrame, w, h int, ppu float64) {
	tile := r.sprites.Tile()
	tw, th := tile.Bounds().Dx(), tile.Bounds().Dy()
	size := r.grid.TileSize()
	scale := 2 * size / float64(tw)
	margin := 2 * size * ppu

	for _, t := range r.tiles {
		pos := t.pos.Add(frame.Terrain)
		p := frame.Projection.WorldToScreen(pos, w, h)
		if p.X < -margin || p.Y < -margin || p.X > float64(w)+margin || p.Y > float64(h)+margin {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM = placeInWorld(frame.Projection, pos, float64(tw)/2, float64(th)/2, scale, w, h)
		op.ColorScale.ScaleWithColor(t.color)
		screen.DrawImage(tile, op)
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, proj projection.Projection, sp SpriteInstance, w, h int) {
	var img *ebiten.Image
	switch sp.Kind {
	case SpriteZombie:
		img = r.sprites.Cell(SheetZombie, sp.Column, sp.Row)
	case SpriteCharacter:
		img = r.sprites.Cell(SheetCharacter, sp.Column, sp.Row)
	case SpriteBullet:
		img = r.sprites.Cell(SheetBullet, 0, sp.Row)
	case SpriteObject:
		img = r.sprites.Object(sp.Sprite, r.objects[sp.Sprite])
	}
	if img == nil {
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	ax, ay := float64(iw)/2, float64(ih)/2
	if sp.Kind != SpriteBullet {
		// The body's feet sit a quarter cell above the bottom edge.
		ay = float64(ih) * 3 / 4
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = placeInWorld(proj, sp.Position, ax, ay, 1, w, h)
	screen.DrawImage(img, op)
}

// placeInWorld puts the image pixel (ax, ay) on the view-space position pos,
// at scale world units per pixel, then applies the camera projection.
func placeInWorld(proj projection.Projection, pos mathutil.Vec, ax, ay, scale float64, w, h int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-ax, -ay)
	// Image rows grow down while world y grows up.
	g.Scale(scale, -scale)
	g.Translate(pos.X, pos.Y)
	g.Concat(proj.GeoM(w, h))
	return g
}

func (r *Renderer) drawDebug(screen *ebiten.Image, frame *RenderFrame, w, h int, ppu float64) {
	proj := frame.Projection
	for _, t := range r.grid.Impassable() {
		p := proj.WorldToScreen(r.grid.TileToCoords(t).Add(frame.Terrain), w, h)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 3, debugWallColor, false)
	}

	corners := r.mapCorners()
	for i := range corners {
		a := proj.WorldToScreen(corners[i].Add(frame.Terrain), w, h)
		b := proj.WorldToScreen(corners[(i+1)%len(corners)].Add(frame.Terrain), w, h)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, debugEdgeColor, false)
	}

	for _, sp := range frame.Sprites {
		var size float64
		switch sp.Kind {
		case SpriteZombie:
			size = r.cfg.ZombieAI.HitBoxSize
		case SpriteCharacter:
			size = r.cfg.Character.HitBoxSize
		case SpriteBullet:
			size = r.cfg.Bullets.HitBoxSize
		default:
			continue
		}
		p := proj.WorldToScreen(sp.Position, w, h)
		half := size * ppu / 2
		vector.StrokeRect(screen, float32(p.X-half), float32(p.Y-half), float32(2*half), float32(2*half), 1, debugBoxColor, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 8, h-20)
}

// mapCorners are the four outer corners of the grid in map space.
func (r *Renderer) mapCorners() [4]mathutil.Vec {
	s := r.grid.TileSize()
	cw := float64(r.grid.Width()) * s
	ch := float64(r.grid.Height()) * s
	iso := func(cx, cy float64) mathutil.Vec {
		return mathutil.Vec{X: cx - cy, Y: r.grid.YOffset() - (cx+cy)/2}
	}
	return [4]mathutil.Vec{iso(0, 0), iso(cw, 0), iso(cw, ch), iso(0, ch)}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, hud HUD) {
	lines := []string{
		fmt.Sprintf("Time %ds  Tick %d", hud.GameSeconds, hud.Tick),
		fmt.Sprintf("Zombies %d/%d  Kills %d", hud.ZombiesAlive, hud.ZombiesTotal, hud.Kills),
		fmt.Sprintf("Bullets %d  Zoom %.0f", hud.Bullets, hud.CameraDistance),
	}
	status := hud.Stance
	if hud.Blocked {
		status += " (blocked)"
	}
	lines = append(lines, status)
	if hud.ZombiesTotal > 0 && hud.ZombiesAlive == 0 {
		lines = append(lines, "All clear")
	}

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if lw := font.MeasureString(face, l).Round(); lw > width {
			width = lw
		}
	}
	lineH := face.Height + 2
	vector.DrawFilledRect(screen, 4, 4, float32(width+12), float32(len(lines)*lineH+8), hudShadow, false)
	for i, l := range lines {
		ebitext.Draw(screen, l, face, 10, 8+face.Ascent+i*lineH, hudColor)
	}
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}
