package mcpserver

import (
	"testing"

	"blockboard/internal/domain"
	"blockboard/internal/geom"
)

func TestNextPosition_EmptyCanvas(t *testing.T) {
	le := NewLayoutEngine()
	x, y := le.NextPosition(nil, 480, 360)
	if x != 0 || y != 0 {
		t.Errorf("expected (0, 0) for empty canvas, got (%.0f, %.0f)", x, y)
	}
}

func TestNextPosition_AvoidsExistingBlock(t *testing.T) {
	le := NewLayoutEngine()
	existing := []domain.Block{
		{ID: 1, X: 0, Y: 0, Width: 480, Height: 360},
	}
	x, y := le.NextPosition(existing, 480, 360)

	candidate := geom.Rect{X: x, Y: y, Width: 480, Height: 360}
	padded := le.pad(existing[0].Rect())
	if geom.Intersects(candidate, padded) {
		t.Errorf("position (%.0f, %.0f) overlaps existing block", x, y)
	}
}

func TestNextPosition_MultipleBlocks(t *testing.T) {
	le := NewLayoutEngine()
	existing := []domain.Block{
		{ID: 1, X: 0, Y: 0, Width: 480, Height: 360},
		{ID: 2, X: 540, Y: 0, Width: 480, Height: 360},
	}
	x, y := le.NextPosition(existing, 480, 360)

	candidate := geom.Rect{X: x, Y: y, Width: 480, Height: 360}
	for _, b := range existing {
		if geom.Intersects(candidate, le.pad(b.Rect())) {
			t.Errorf("position (%.0f, %.0f) overlaps block at (%.0f, %.0f)", x, y, b.X, b.Y)
		}
	}
}

func TestArrangeGroup(t *testing.T) {
	le := NewLayoutEngine()
	blocks := []domain.Block{
		{ID: 1, Width: 300, Height: 200},
		{ID: 2, Width: 300, Height: 200},
		{ID: 3, Width: 300, Height: 200},
	}

	arranged := le.ArrangeGroup(blocks, 0, 0)

	if len(arranged) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(arranged))
	}

	// Strict overlap check: shared edges are fine, shared area is not.
	for i := 0; i < len(arranged); i++ {
		for j := i + 1; j < len(arranged); j++ {
			a, b := arranged[i].Rect(), arranged[j].Rect()
			overlapW := min(a.Right(), b.Right()) - max(a.X, b.X)
			overlapH := min(a.Bottom(), b.Bottom()) - max(a.Y, b.Y)
			if overlapW > 0 && overlapH > 0 {
				t.Errorf("blocks %d and %d overlap: (%.0f,%.0f) and (%.0f,%.0f)",
					arranged[i].ID, arranged[j].ID, a.X, a.Y, b.X, b.Y)
			}
		}
	}
}

func TestSnap(t *testing.T) {
	le := NewLayoutEngine()
	tests := []struct {
		input, want float64
	}{
		{0, 0},
		{15, 30},
		{29, 30},
		{30, 30},
		{45, 60},
		{100, 90},
	}
	for _, tt := range tests {
		got := le.snap(tt.input)
		if got != tt.want {
			t.Errorf("snap(%.0f) = %.0f, want %.0f", tt.input, got, tt.want)
		}
	}
}
