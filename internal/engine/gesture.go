package engine

import (
	"blockboard/internal/domain"
	"blockboard/internal/geom"
)

// ─────────────────────────────────────────────────────────────
// Gesture state — a tagged union, one field per page
// ─────────────────────────────────────────────────────────────

// Gesture is the single in-progress interaction on a page. A nil
// Gesture means idle. Holding one tagged field instead of several
// nullable records makes "at most one gesture at a time" true by
// construction.
type Gesture interface{ isGesture() }

// Pan moves the camera. LastX/LastY are the previous pointer position
// in screen pixels — panning applies raw screen deltas, not canvas ones.
type Pan struct {
	LastX, LastY float64
}

// Drag moves every selected block by the pointer's canvas-space delta.
type Drag struct {
	RefID        int                // representative block, kept for the net-change report
	PointerStart geom.Point         // canvas position at pointer-down
	Origins      map[int]geom.Point // pre-drag position of each selected block
	Dirty        bool               // set on the first real mutation
	Before       domain.Board       // pre-gesture snapshot, committed on release when dirty
}

// Resize reshapes a single block, or proportionally re-projects a whole
// selection against its start bounding box.
type Resize struct {
	TargetID   int         // block id; ignored when Group
	Group      bool
	Handle     Handle
	Orig       geom.Rect   // the gesture-start rect the handle math runs against
	OrigBlocks []BlockGeom // gesture-start geometry of the selection; set only when Group
	Dirty      bool
	Before     domain.Board
}

// Marquee is the rubber-band selection rectangle, in canvas coordinates.
type Marquee struct {
	Start    geom.Point
	Current  geom.Point
	Additive bool  // union with the pre-existing selection
	Base     IDSet // the pre-existing selection when additive
}

func (Pan) isGesture()     {}
func (Drag) isGesture()    {}
func (Resize) isGesture()  {}
func (Marquee) isGesture() {}

// BlockGeom is a block's frozen geometry at gesture start.
type BlockGeom struct {
	ID   int
	Rect geom.Rect
}

// Box returns the marquee's normalized rectangle.
func (m Marquee) Box() geom.Rect {
	return geom.FromCorners(m.Start, m.Current)
}
