package graphics

import (
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteManager loads sprite sheets from disk and falls back to generated
// placeholders when a PNG is missing. Images are created lazily on first use.
type SpriteManager struct {
	dir      string
	cellSize int
	specs    map[string]SheetSpec
	sheets   map[string]*ebiten.Image
	objects  map[string]*ebiten.Image
	tile     *ebiten.Image
	tileSize int
}

// NewSpriteManager looks for sheets under dir (for example assets/sprites).
func NewSpriteManager(dir string, cellSize, tileSize int) *SpriteManager {
	if cellSize <= 0 {
		cellSize = 64
	}
	if tileSize <= 0 {
		tileSize = 64
	}
	return &SpriteManager{
		dir:      dir,
		cellSize: cellSize,
		tileSize: tileSize,
		specs:    make(map[string]SheetSpec),
		sheets:   make(map[string]*ebiten.Image),
		objects:  make(map[string]*ebiten.Image),
	}
}

// Register declares a sheet so a placeholder can be built if the PNG is absent.
func (sm *SpriteManager) Register(spec SheetSpec) {
	sm.specs[spec.Name] = spec
}

// CellSize is the side of one sheet cell in pixels.
func (sm *SpriteManager) CellSize() int {
	return sm.cellSize
}

// Cell returns the (col, row) frame of a registered sheet.
func (sm *SpriteManager) Cell(name string, col, row int) *ebiten.Image {
	sheet := sm.sheet(name)
	return sheet.SubImage(CellRect(col, row, sm.cellSize)).(*ebiten.Image)
}

func (sm *SpriteManager) sheet(name string) *ebiten.Image {
	if img, ok := sm.sheets[name]; ok {
		return img
	}
	img := sm.loadPNG(name)
	if img == nil {
		spec, ok := sm.specs[name]
		if !ok {
			spec = SheetSpec{Name: name, Columns: 1, Rows: 8, Body: color.RGBA{128, 128, 128, 255}}
		}
		img = ebiten.NewImageFromImage(PlaceholderSheet(spec, sm.cellSize))
	}
	sm.sheets[name] = img
	return img
}

// Object returns a terrain object sprite, loaded or generated in body colour.
func (sm *SpriteManager) Object(name string, body color.RGBA) *ebiten.Image {
	if img, ok := sm.objects[name]; ok {
		return img
	}
	img := sm.loadPNG(name)
	if img == nil {
		img = ebiten.NewImageFromImage(PlaceholderObject(sm.tileSize, sm.tileSize*3/2, body))
	}
	sm.objects[name] = img
	return img
}

// Tile returns the shared white diamond used for every terrain tile.
func (sm *SpriteManager) Tile() *ebiten.Image {
	if sm.tile == nil {
		sm.tile = ebiten.NewImageFromImage(DiamondTile(sm.tileSize*2, sm.tileSize))
	}
	return sm.tile
}

func (sm *SpriteManager) loadPNG(name string) *ebiten.Image {
	if sm.dir == "" {
		return nil
	}
	path := filepath.Join(sm.dir, name+".png")
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		log.Printf("Warning: failed to decode sprite %s: %v", path, err)
		return nil
	}
	return ebiten.NewImageFromImage(img)
}
