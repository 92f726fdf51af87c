package geom_test

import (
	"testing"

	"blockboard/internal/geom"
)

// ─────────────────────────────────────────────────────────────
// Rect math
// ─────────────────────────────────────────────────────────────

func TestIntersects(t *testing.T) {
	block := geom.Rect{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		name string
		box  geom.Rect
		want bool
	}{
		{"partial overlap", geom.Rect{X: 0, Y: 0, Width: 15, Height: 15}, true},
		{"fully disjoint", geom.Rect{X: 100, Y: 100, Width: 10, Height: 10}, false},
		{"touching edges", geom.Rect{X: 30, Y: 10, Width: 5, Height: 5}, true},
		{"contained", geom.Rect{X: 12, Y: 12, Width: 2, Height: 2}, true},
		{"disjoint horizontally", geom.Rect{X: 31, Y: 10, Width: 5, Height: 5}, false},
		{"disjoint vertically", geom.Rect{X: 10, Y: 31, Width: 5, Height: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := geom.Intersects(block, tt.box); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", block, tt.box, got, tt.want)
			}
			// Intersection is symmetric.
			if got := geom.Intersects(tt.box, block); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.box, block, got, tt.want)
			}
		})
	}
}

func TestBoundingBox(t *testing.T) {
	a := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	b := geom.Rect{X: 100, Y: 0, Width: 50, Height: 50}

	box := geom.BoundingBox([]geom.Rect{a, b})
	want := geom.Rect{X: 0, Y: 0, Width: 150, Height: 100}
	if box != want {
		t.Errorf("BoundingBox = %v, want %v", box, want)
	}
}

func TestBoundingBox_SingleRect(t *testing.T) {
	a := geom.Rect{X: 7, Y: -3, Width: 40, Height: 25}
	if box := geom.BoundingBox([]geom.Rect{a}); box != a {
		t.Errorf("BoundingBox of one rect = %v, want %v", box, a)
	}
}

func TestBoundingBox_Empty(t *testing.T) {
	if box := geom.BoundingBox(nil); box != (geom.Rect{}) {
		t.Errorf("BoundingBox(nil) = %v, want zero rect", box)
	}
}

func TestNormalized(t *testing.T) {
	r := geom.Rect{X: 10, Y: 10, Width: -4, Height: -6}
	want := geom.Rect{X: 6, Y: 4, Width: 4, Height: 6}
	if got := r.Normalized(); got != want {
		t.Errorf("Normalized = %v, want %v", got, want)
	}
}

func TestFromCorners(t *testing.T) {
	r := geom.FromCorners(geom.Point{X: 20, Y: 5}, geom.Point{X: 10, Y: 15})
	want := geom.Rect{X: 10, Y: 5, Width: 10, Height: 10}
	if r != want {
		t.Errorf("FromCorners = %v, want %v", r, want)
	}
}

// ─────────────────────────────────────────────────────────────
// Coordinate transforms
// ─────────────────────────────────────────────────────────────

func TestScreenToCanvas_RoundTrip(t *testing.T) {
	v := geom.Viewport{OffsetX: 120, OffsetY: -40, Zoom: 1.75}
	p := geom.Point{X: 333, Y: 94}

	canvas := geom.ScreenToCanvas(p, v)
	back := geom.CanvasToScreen(canvas, v)

	const eps = 1e-9
	if dx := back.X - p.X; dx > eps || dx < -eps {
		t.Errorf("round trip X drifted: %v -> %v", p.X, back.X)
	}
	if dy := back.Y - p.Y; dy > eps || dy < -eps {
		t.Errorf("round trip Y drifted: %v -> %v", p.Y, back.Y)
	}
}

func TestScreenToCanvas(t *testing.T) {
	v := geom.Viewport{OffsetX: 100, OffsetY: 50, Zoom: 2}
	got := geom.ScreenToCanvas(geom.Point{X: 300, Y: 250}, v)
	want := geom.Point{X: 100, Y: 100}
	if got != want {
		t.Errorf("ScreenToCanvas = %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	if got := geom.Clamp(7, 0.1, 5); got != 5 {
		t.Errorf("Clamp(7) = %v, want 5", got)
	}
	if got := geom.Clamp(0.05, 0.1, 5); got != 0.1 {
		t.Errorf("Clamp(0.05) = %v, want 0.1", got)
	}
	if got := geom.Clamp(1, 0.1, 5); got != 1 {
		t.Errorf("Clamp(1) = %v, want 1", got)
	}
}
