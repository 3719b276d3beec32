package collision

import (
	"math"
	"testing"

	"isozombie/internal/mathutil"
)

// mockTileChecker blocks every map position with x >= wallX
type mockTileChecker struct {
	wallX float64
}

func (m *mockTileChecker) CanMoveToTile(pos mathutil.Vec) bool {
	return pos.X < m.wallX
}

func TestBoundingBoxIntersects(t *testing.T) {
	a := Square(mathutil.Vec{X: 0, Y: 0}, 10)
	tests := []struct {
		name string
		b    BoundingBox
		want bool
	}{
		{"overlap", Square(mathutil.Vec{X: 5, Y: 5}, 10), true},
		{"touching edge", Square(mathutil.Vec{X: 10, Y: 0}, 10), true},
		{"apart", Square(mathutil.Vec{X: 11, Y: 0}, 10), false},
		{"thin bullet inside", NewBoundingBox(mathutil.Vec{X: 2, Y: -3}, 1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects is not symmetric")
			}
		})
	}
}

func TestBoundingBoxHelpers(t *testing.T) {
	b := NewBoundingBox(mathutil.Vec{X: 10, Y: 20}, 4, 6)
	minX, minY, maxX, maxY := b.GetBounds()
	if minX != 8 || minY != 17 || maxX != 12 || maxY != 23 {
		t.Errorf("bounds = %v %v %v %v", minX, minY, maxX, maxY)
	}
	origin := Square(mathutil.Vec{}, 1)
	if d := b.Distance(origin); math.Abs(d-math.Hypot(10, 20)) > 1e-9 {
		t.Errorf("Distance = %f", d)
	}
}

func TestGetCollisionsOrdered(t *testing.T) {
	cs := NewCollisionSystem(nil)
	cs.RegisterEntity(Entity{Index: 0, Kind: KindBullet, Box: Square(mathutil.Vec{X: 0, Y: 0}, 4)})
	cs.RegisterEntity(Entity{Index: 1, Kind: KindBullet, Box: Square(mathutil.Vec{X: 100, Y: 0}, 4)})
	cs.RegisterEntity(Entity{Index: 0, Kind: KindZombie, Box: Square(mathutil.Vec{X: 2, Y: 0}, 40)})
	cs.RegisterEntity(Entity{Index: 1, Kind: KindZombie, Box: Square(mathutil.Vec{X: -2, Y: 0}, 40)})
	cs.RegisterEntity(Entity{Index: 2, Kind: KindZombie, Box: Square(mathutil.Vec{X: 300, Y: 0}, 40)})

	pairs := cs.GetCollisions(KindBullet, KindZombie)
	if len(pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(pairs))
	}
	if pairs[0].Entity2.Index != 0 || pairs[1].Entity2.Index != 1 {
		t.Errorf("pairs not in registration order: %+v", pairs)
	}
	if d := pairs[0].GetCollisionDistance(); d != 2 {
		t.Errorf("distance = %f", d)
	}

	hit, ok := cs.FirstHit(Square(mathutil.Vec{X: 0, Y: 0}, 4), KindZombie)
	if !ok || hit.Index != 0 {
		t.Errorf("FirstHit = %+v, %v", hit, ok)
	}
	if _, ok := cs.FirstHit(Square(mathutil.Vec{X: 0, Y: 500}, 4), KindZombie); ok {
		t.Errorf("FirstHit found a far zombie")
	}

	cs.Reset()
	if len(cs.GetAllEntities()) != 0 {
		t.Errorf("Reset left entities behind")
	}
}

func TestIsBlockedUsesMapSpace(t *testing.T) {
	cs := NewCollisionSystem(&mockTileChecker{wallX: 50})
	offset := mathutil.Vec{X: -20, Y: 0}
	// view 25 -> map 45: open
	if cs.IsBlocked(mathutil.Vec{X: 25}, offset) {
		t.Errorf("view x=25 should be open")
	}
	// view 35 -> map 55: wall
	if !cs.IsBlocked(mathutil.Vec{X: 35}, offset) {
		t.Errorf("view x=35 should be blocked")
	}
	if NewCollisionSystem(nil).IsBlocked(mathutil.Vec{X: 1e6}, mathutil.Vec{}) {
		t.Errorf("nil tile checker should never block")
	}
}
