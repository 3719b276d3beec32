package world

import (
	"isozombie/internal/mathutil"
)

// TileCoord is a discrete cell in the world grid.
type TileCoord struct {
	X int
	Y int
}

// Add offsets t by (dx, dy).
func (t TileCoord) Add(dx, dy int) TileCoord {
	return TileCoord{X: t.X + dx, Y: t.Y + dy}
}

// Grid is the static tile model: dimensions, isometric projection constants
// and the impassable-tile set. It is immutable once built.
type Grid struct {
	width      int
	height     int
	tileSize   float64
	yOffset    float64
	impassable map[TileCoord]struct{}
}

// NewGrid builds a grid of width x height tiles. Impassable tiles outside the
// grid are kept; they can never be reached anyway.
func NewGrid(width, height int, tileSize, yOffset float64, impassable []TileCoord) *Grid {
	g := &Grid{
		width:      width,
		height:     height,
		tileSize:   tileSize,
		yOffset:    yOffset,
		impassable: make(map[TileCoord]struct{}, len(impassable)),
	}
	for _, t := range impassable {
		g.impassable[t] = struct{}{}
	}
	return g
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) TileSize() float64 {
	return g.tileSize
}

func (g *Grid) YOffset() float64 {
	return g.yOffset
}

// Impassable returns a copy of the impassable tile list, unordered.
func (g *Grid) Impassable() []TileCoord {
	out := make([]TileCoord, 0, len(g.impassable))
	for t := range g.impassable {
		out = append(out, t)
	}
	return out
}

// CoordsToTile applies the inverse isometric transform to a map-space
// position. Results are truncated toward zero and never clamped: a position
// up to one tile outside the top/left edge lands on row/column 0.
func (g *Grid) CoordsToTile(pos mathutil.Vec) TileCoord {
	sum := 2 * (g.yOffset - pos.Y)
	cx := (sum + pos.X) / 2
	cy := (sum - pos.X) / 2
	return TileCoord{X: int(cx / g.tileSize), Y: int(cy / g.tileSize)}
}

// TileToCoords returns the map-space centre of a tile.
func (g *Grid) TileToCoords(t TileCoord) mathutil.Vec {
	cx := (float64(t.X) + 0.5) * g.tileSize
	cy := (float64(t.Y) + 0.5) * g.tileSize
	return mathutil.Vec{
		X: cx - cy,
		Y: g.yOffset - (cx+cy)/2,
	}
}

// IsWithinMapBorders excludes the outer row and column on the far edges:
// valid tiles satisfy 0 <= x < W-1 and 0 <= y < H-1.
func (g *Grid) IsWithinMapBorders(t TileCoord) bool {
	return t.X >= 0 && t.X < g.width-1 && t.Y >= 0 && t.Y < g.height-1
}

// IsImpassable reports whether t holds a static obstacle.
func (g *Grid) IsImpassable(t TileCoord) bool {
	_, blocked := g.impassable[t]
	return blocked
}

// IsPassableTile combines the border and obstacle checks for a tile.
func (g *Grid) IsPassableTile(t TileCoord) bool {
	return g.IsWithinMapBorders(t) && !g.IsImpassable(t)
}

// CanMoveToTile reports whether the tile under pos can be entered.
func (g *Grid) CanMoveToTile(pos mathutil.Vec) bool {
	return g.IsPassableTile(g.CoordsToTile(pos))
}

// Manhattan is |dx| + |dy| between two tiles.
func Manhattan(a, b TileCoord) int {
	return mathutil.IntAbs(a.X-b.X) + mathutil.IntAbs(a.Y-b.Y)
}
