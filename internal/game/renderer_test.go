package game

import (
	"math"
	"testing"

	"isozombie/internal/mathutil"
	"isozombie/internal/projection"
)

func TestPlaceInWorldUsesProjection(t *testing.T) {
	const w, h = 800, 600
	proj := projection.Compute(300, float64(w)/h)
	pos := mathutil.Vec{X: 10, Y: -20}

	tests := []struct {
		name   string
		px, py float64
		world  mathutil.Vec
	}{
		{"anchor", 16, 24, pos},
		// Pixel rows above the anchor are higher in the world.
		{"top left", 0, 0, pos.Add(mathutil.Vec{X: -16, Y: 24})},
		{"bottom right", 32, 32, pos.Add(mathutil.Vec{X: 16, Y: -8})},
	}
	g := placeInWorld(proj, pos, 16, 24, 1, w, h)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := g.Apply(tt.px, tt.py)
			want := proj.WorldToScreen(tt.world, w, h)
			if math.Abs(x-want.X) > 1e-9 || math.Abs(y-want.Y) > 1e-9 {
				t.Errorf("pixel (%v,%v) -> (%f,%f), want %v", tt.px, tt.py, x, y, want)
			}
		})
	}
}

func TestPlaceInWorldScalesToPixelsPerUnit(t *testing.T) {
	const w, h = 800, 600
	proj := projection.Compute(150, float64(w)/h)
	g := placeInWorld(proj, mathutil.Vec{}, 0, 0, 2, w, h)

	x0, y0 := g.Apply(0, 0)
	x1, y1 := g.Apply(1, 1)
	want := 2 * proj.PixelsPerUnit(h)
	if math.Abs((x1-x0)-want) > 1e-9 || math.Abs((y1-y0)-want) > 1e-9 {
		t.Errorf("one pixel spans (%f,%f) on screen, want %f", x1-x0, y1-y0, want)
	}
}
