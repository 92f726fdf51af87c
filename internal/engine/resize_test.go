package engine

import (
	"testing"

	"blockboard/internal/domain"
	"blockboard/internal/geom"
)

// Internal package tests: the per-handle math is unexported on purpose,
// and its edge cases are easiest to pin down directly.

func TestApplyHandle_SE(t *testing.T) {
	rect := geom.Rect{X: 10, Y: 10, Width: 100, Height: 50}
	got := applyHandle(HandleSE, rect, geom.Point{X: 150, Y: 100})
	want := geom.Rect{X: 10, Y: 10, Width: 140, Height: 90}
	if got != want {
		t.Errorf("se: got %v, want %v", got, want)
	}
}

func TestApplyHandle_NW(t *testing.T) {
	rect := geom.Rect{X: 10, Y: 10, Width: 100, Height: 50}
	got := applyHandle(HandleNW, rect, geom.Point{X: 30, Y: 20})
	want := geom.Rect{X: 30, Y: 20, Width: 80, Height: 40}
	if got != want {
		t.Errorf("nw: got %v, want %v", got, want)
	}
}

func TestApplyHandle_NWAnchorClamp(t *testing.T) {
	// Dragging the nw corner past the opposite edge: the anchor must
	// stop MinSize short of the fixed edge, never crossing it.
	rect := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	got := applyHandle(HandleNW, rect, geom.Point{X: 500, Y: 500})
	if got.X != 100-domain.MinSize {
		t.Errorf("x = %v, want %v", got.X, 100-domain.MinSize)
	}
	if got.Y != 100-domain.MinSize {
		t.Errorf("y = %v, want %v", got.Y, 100-domain.MinSize)
	}
}

func TestResizeRect_MinSizeInvariant(t *testing.T) {
	// For all handles and a spread of pointer positions, the result
	// never drops below MinSize in either dimension.
	rect := geom.Rect{X: 50, Y: 50, Width: 120, Height: 80}
	handles := []Handle{HandleN, HandleS, HandleE, HandleW, HandleNE, HandleNW, HandleSE, HandleSW}
	points := []geom.Point{
		{X: -1000, Y: -1000},
		{X: 1000, Y: 1000},
		{X: 60, Y: 60},       // inside the rect
		{X: 50, Y: 50},       // on the origin corner
		{X: 170, Y: 130},     // on the far corner
		{X: 55, Y: 1000},     // degenerate width direction
		{X: 1000, Y: 55},
	}
	for _, h := range handles {
		for _, p := range points {
			for _, aspect := range []bool{false, true} {
				got := resizeRect(h, rect, p, aspect)
				if got.Width < domain.MinSize || got.Height < domain.MinSize {
					t.Errorf("handle %v pointer %v aspect=%v: %v violates MinSize", h, p, aspect, got)
				}
			}
		}
	}
}

func TestLockAspect_CornerPicksSmallerArea(t *testing.T) {
	// 100x50 block (2:1) with a naive se proposal of 140x90. The
	// width-constrained candidate 140x70 (area 9800) beats the
	// height-constrained 180x90 (area 16200).
	orig := geom.Rect{X: 0, Y: 0, Width: 100, Height: 50}
	proposed := geom.Rect{X: 0, Y: 0, Width: 140, Height: 90}

	got := lockAspect(HandleSE, proposed, orig)
	if got.Width != 140 || got.Height != 70 {
		t.Errorf("got %vx%v, want 140x70", got.Width, got.Height)
	}
	if got.X != 0 || got.Y != 0 {
		t.Errorf("se resize moved the fixed corner: %v", got)
	}
}

func TestLockAspect_NWKeepsOppositeCorner(t *testing.T) {
	orig := geom.Rect{X: 10, Y: 10, Width: 100, Height: 50}
	proposed := geom.Rect{X: 40, Y: 20, Width: 70, Height: 40}

	got := lockAspect(HandleNW, proposed, orig)
	if got.Right() != orig.Right() || got.Bottom() != orig.Bottom() {
		t.Errorf("nw resize moved the fixed corner: rect %v, orig corner (%v,%v)",
			got, orig.Right(), orig.Bottom())
	}
	ratio := got.Width / got.Height
	if ratio < 1.999 || ratio > 2.001 {
		t.Errorf("aspect ratio = %v, want 2", ratio)
	}
}

func TestLockAspect_EdgeCentersDerivedDimension(t *testing.T) {
	orig := geom.Rect{X: 0, Y: 0, Width: 100, Height: 50}
	// Dragging the s edge to height 100 derives width 200, centered on
	// the original horizontal center (50).
	proposed := applyHandle(HandleS, orig, geom.Point{X: 999, Y: 100})
	got := lockAspect(HandleS, proposed, orig)

	if got.Width != 200 {
		t.Errorf("width = %v, want 200", got.Width)
	}
	center := got.X + got.Width/2
	if center != 50 {
		t.Errorf("horizontal center = %v, want 50", center)
	}
}

func TestProjectGroup_Proportionality(t *testing.T) {
	// Blocks A {0,0,100,100} and B {100,0,50,50}; bounding box 150x100.
	// Scaling the se handle to width 300 (2x) must double every block's
	// position offset and size.
	a := BlockGeom{ID: 1, Rect: geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}}
	b := BlockGeom{ID: 2, Rect: geom.Rect{X: 100, Y: 0, Width: 50, Height: 50}}
	origBox := geom.Rect{X: 0, Y: 0, Width: 150, Height: 100}
	newBox := geom.Rect{X: 0, Y: 0, Width: 300, Height: 200}

	out := projectGroup(origBox, newBox, []BlockGeom{a, b})

	wantA := geom.Rect{X: 0, Y: 0, Width: 200, Height: 200}
	if out[0].Rect != wantA {
		t.Errorf("A = %v, want %v", out[0].Rect, wantA)
	}
	wantB := geom.Rect{X: 200, Y: 0, Width: 100, Height: 100}
	if out[1].Rect != wantB {
		t.Errorf("B = %v, want %v", out[1].Rect, wantB)
	}
}

func TestParseHandle(t *testing.T) {
	for _, name := range []string{"n", "s", "e", "w", "ne", "nw", "se", "sw"} {
		h, ok := ParseHandle(name)
		if !ok {
			t.Fatalf("ParseHandle(%q) failed", name)
		}
		if h.String() != name {
			t.Errorf("round trip %q -> %v", name, h)
		}
	}
	if _, ok := ParseHandle("nope"); ok {
		t.Error("ParseHandle accepted an invalid name")
	}
}

func TestHandleAt(t *testing.T) {
	box := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}

	h, ok := handleAt(box, geom.Point{X: 99, Y: 101}, 1)
	if !ok || h != HandleSE {
		t.Errorf("expected se hit, got %v ok=%v", h, ok)
	}

	// Zoomed in 4x the grab radius shrinks to 2 canvas units.
	if _, ok := handleAt(box, geom.Point{X: 95, Y: 100}, 4); ok {
		t.Error("hit at 5 canvas units away despite 2-unit radius")
	}

	if _, ok := handleAt(box, geom.Point{X: 50, Y: 50}, 1); ok {
		t.Error("center of the box is not a handle")
	}

	h, ok = handleAt(box, geom.Point{X: 50, Y: 0}, 1)
	if !ok || h != HandleN {
		t.Errorf("expected n hit, got %v ok=%v", h, ok)
	}
}
