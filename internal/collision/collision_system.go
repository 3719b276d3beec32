package collision

import (
	"isozombie/internal/mathutil"
)

// TileChecker reports whether a map-space position can be entered.
type TileChecker interface {
	CanMoveToTile(pos mathutil.Vec) bool
}

// CollisionSystem holds the colliders registered for the current tick and
// answers hit and obstacle queries. Registration order is preserved so pair
// queries are reproducible.
type CollisionSystem struct {
	tileChecker TileChecker
	entities    []Entity
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tileChecker TileChecker) *CollisionSystem {
	return &CollisionSystem{tileChecker: tileChecker}
}

// Reset drops every registered entity; the table is rebuilt each tick.
func (cs *CollisionSystem) Reset() {
	cs.entities = cs.entities[:0]
}

// RegisterEntity adds an entity to the collision system
func (cs *CollisionSystem) RegisterEntity(e Entity) {
	cs.entities = append(cs.entities, e)
}

// GetAllEntities returns the registered entities in registration order.
func (cs *CollisionSystem) GetAllEntities() []Entity {
	return cs.entities
}

// IsBlocked reports whether a view-space position sits on a tile that cannot
// be entered. offset converts view space to map space.
func (cs *CollisionSystem) IsBlocked(viewPos, offset mathutil.Vec) bool {
	if cs.tileChecker == nil {
		return false
	}
	return !cs.tileChecker.CanMoveToTile(viewPos.Sub(offset))
}

// GetCollisions returns every (a, b) pair whose boxes overlap, where a has
// kind ka and b has kind kb. Pairs are ordered by a's registration, then b's.
func (cs *CollisionSystem) GetCollisions(ka, kb Kind) []CollisionPair {
	var collisions []CollisionPair
	for i := range cs.entities {
		a := cs.entities[i]
		if a.Kind != ka {
			continue
		}
		for j := range cs.entities {
			b := cs.entities[j]
			if i == j || b.Kind != kb {
				continue
			}
			if a.Box.Intersects(b.Box) {
				collisions = append(collisions, CollisionPair{Entity1: a, Entity2: b})
			}
		}
	}
	return collisions
}

// FirstHit returns the first registered entity of kind k that box overlaps.
func (cs *CollisionSystem) FirstHit(box BoundingBox, k Kind) (Entity, bool) {
	for _, e := range cs.entities {
		if e.Kind == k && box.Intersects(e.Box) {
			return e, true
		}
	}
	return Entity{}, false
}

// CollisionPair represents a collision between two entities
type CollisionPair struct {
	Entity1 Entity
	Entity2 Entity
}

// GetCollisionDistance returns the distance between the two centers
func (cp CollisionPair) GetCollisionDistance() float64 {
	return cp.Entity1.Box.Distance(cp.Entity2.Box)
}
