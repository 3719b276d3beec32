// Package pathfinding runs A* over the 8-connected tile grid and turns the
// first step of a route into a compass heading.
package pathfinding

import (
	"math/rand"

	"isozombie/internal/mathutil"
	"isozombie/internal/world"
)

// candidateOffsets is both the goal-substitution order and the neighbour
// enumeration order. Routes depend on it; keep it fixed.
var candidateOffsets = [8][2]int{
	{-1, 0},  // left
	{-1, -1}, // upper-left
	{0, -1},  // up
	{1, 0},   // right
	{1, 1},   // lower-right
	{0, 1},   // down
	{-1, 1},  // lower-left
	{1, -1},  // upper-right
}

// stepHeadings maps a single tile step to the heading that moves along it in
// world space.
var stepHeadings = map[[2]int]int{
	{1, -1}:  0,
	{0, -1}:  45,
	{-1, -1}: 90,
	{-1, 0}:  135,
	{-1, 1}:  180,
	{0, 1}:   225,
	{1, 1}:   270,
	{1, 0}:   315,
}

// Recorder receives one call per route search.
type Recorder interface {
	RecordRoute(found bool, expanded int)
}

// Route is an ordered tile path, start inclusive. Cost counts steps; every
// step costs 1, diagonal or not.
type Route struct {
	Tiles []world.TileCoord
	Cost  int
}

// Finder searches routes on a fixed grid. It reuses scratch buffers between
// searches and is not safe for concurrent use.
type Finder struct {
	grid     *world.Grid
	rng      *rand.Rand
	recorder Recorder

	gScore   []int
	cameFrom []int
	heap     nodeHeap
	seq      int
}

// NewFinder creates a finder over grid. rng feeds the random-heading
// fallback; pass a seeded source for reproducible runs.
func NewFinder(grid *world.Grid, rng *rand.Rand) *Finder {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Finder{grid: grid, rng: rng}
}

// SetRecorder attaches a search statistics sink. nil disables recording.
func (f *Finder) SetRecorder(r Recorder) {
	f.recorder = r
}

// Grid returns the grid the finder searches.
func (f *Finder) Grid() *world.Grid {
	return f.grid
}

// CanMoveTo reports whether the tile under a map-space position is passable.
func (f *Finder) CanMoveTo(pos mathutil.Vec) bool {
	return f.grid.CanMoveToTile(pos)
}

// CalcRoute converts both map-space endpoints to tiles and searches between
// them. ok is false when no path exists.
func (f *Finder) CalcRoute(start, goal mathutil.Vec) (Route, bool) {
	return f.CalcRouteTiles(f.grid.CoordsToTile(start), f.grid.CoordsToTile(goal))
}

// CalcRouteTiles is CalcRoute on tile coordinates. An impassable goal is
// replaced by its first passable neighbour in candidate order; when none is
// passable the original goal is kept and the search fails.
func (f *Finder) CalcRouteTiles(start, goal world.TileCoord) (Route, bool) {
	goal = f.substituteGoal(goal)
	route, expanded, ok := f.search(start, goal)
	if f.recorder != nil {
		f.recorder.RecordRoute(ok, expanded)
	}
	return route, ok
}

// CalcNextMovement returns the heading in degrees of the first step from start
// toward goal. When there is no route, or the route does not step, the heading
// is uniformly random in [0, 359].
func (f *Finder) CalcNextMovement(start, goal mathutil.Vec) int {
	route, ok := f.CalcRoute(start, goal)
	if !ok || len(route.Tiles) == 0 {
		return f.rng.Intn(360)
	}
	next := route.Tiles[0]
	if len(route.Tiles) > 1 {
		next = route.Tiles[1]
	}
	from := route.Tiles[0]
	if heading, ok := StepHeading(next.X-from.X, next.Y-from.Y); ok {
		return heading
	}
	return f.rng.Intn(360)
}

// StepHeading looks up the heading for a one-tile step. ok is false for
// (0, 0) and for anything that is not a single step.
func StepHeading(dx, dy int) (int, bool) {
	h, ok := stepHeadings[[2]int{dx, dy}]
	return h, ok
}

func (f *Finder) substituteGoal(goal world.TileCoord) world.TileCoord {
	if f.grid.IsPassableTile(goal) {
		return goal
	}
	for _, off := range candidateOffsets {
		c := goal.Add(off[0], off[1])
		if f.grid.IsPassableTile(c) {
			return c
		}
	}
	return goal
}

func (f *Finder) index(t world.TileCoord) int {
	if t.X < 0 || t.Y < 0 || t.X >= f.grid.Width() || t.Y >= f.grid.Height() {
		return -1
	}
	return t.Y*f.grid.Width() + t.X
}

func (f *Finder) coord(idx int) world.TileCoord {
	w := f.grid.Width()
	return world.TileCoord{X: idx % w, Y: idx / w}
}

func (f *Finder) prepare() {
	size := f.grid.Width() * f.grid.Height()
	if cap(f.gScore) < size {
		f.gScore = make([]int, size)
		f.cameFrom = make([]int, size)
	} else {
		f.gScore = f.gScore[:size]
		f.cameFrom = f.cameFrom[:size]
	}
	for i := range f.gScore {
		f.gScore[i] = -1
		f.cameFrom[i] = -1
	}
	f.heap.reset()
	f.seq = 0
}

func (f *Finder) push(idx, g int, goal world.TileCoord) {
	f.heap.push(gridNode{
		idx: idx,
		g:   g,
		f:   g + world.Manhattan(f.coord(idx), goal),
		seq: f.seq,
	})
	f.seq++
}

// search is A* without a closed set: stale heap entries are skipped when
// their g exceeds the best known score. The goal test runs on pop.
func (f *Finder) search(start, goal world.TileCoord) (Route, int, bool) {
	startIdx := f.index(start)
	if startIdx < 0 {
		return Route{}, 0, false
	}
	f.prepare()

	f.gScore[startIdx] = 0
	f.push(startIdx, 0, goal)

	expanded := 0
	for f.heap.len() > 0 {
		current, _ := f.heap.pop()
		tile := f.coord(current.idx)
		if tile == goal {
			return f.reconstruct(current.idx, current.g), expanded, true
		}
		if current.g > f.gScore[current.idx] {
			continue
		}
		expanded++

		for _, off := range candidateOffsets {
			next := tile.Add(off[0], off[1])
			if !f.grid.IsPassableTile(next) {
				continue
			}
			nidx := f.index(next)
			g := current.g + 1
			if f.gScore[nidx] < 0 || g < f.gScore[nidx] {
				f.gScore[nidx] = g
				f.cameFrom[nidx] = current.idx
				f.push(nidx, g, goal)
			}
		}
	}
	return Route{}, expanded, false
}

func (f *Finder) reconstruct(idx, cost int) Route {
	tiles := make([]world.TileCoord, 0, cost+1)
	for i := idx; i >= 0; i = f.cameFrom[i] {
		tiles = append(tiles, f.coord(i))
	}
	for l, r := 0, len(tiles)-1; l < r; l, r = l+1, r-1 {
		tiles[l], tiles[r] = tiles[r], tiles[l]
	}
	return Route{Tiles: tiles, Cost: cost}
}
