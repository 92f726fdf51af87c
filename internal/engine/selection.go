package engine

import (
	"sort"

	"blockboard/internal/domain"
	"blockboard/internal/geom"
)

// ─────────────────────────────────────────────────────────────
// Selection engine — selected/preview sets and marquee math
// ─────────────────────────────────────────────────────────────

// IDSet is a set of block ids.
type IDSet map[int]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy.
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// selectionBounds returns the bounding box of the selected blocks on the
// page. ok is false when nothing (still existing) is selected. With a
// single selected block this is that block's own rectangle.
func selectionBounds(page *domain.Page, selected IDSet) (geom.Rect, bool) {
	var rects []geom.Rect
	for id := range selected {
		if b := page.BlockByID(id); b != nil {
			rects = append(rects, b.Rect())
		}
	}
	if len(rects) == 0 {
		return geom.Rect{}, false
	}
	return geom.BoundingBox(rects), true
}

// marqueePreview returns the ids of blocks intersecting box. When
// additive, the result is the union with base (the selection that
// existed when the marquee started).
func marqueePreview(page *domain.Page, box geom.Rect, additive bool, base IDSet) IDSet {
	preview := IDSet{}
	if additive {
		for id := range base {
			preview[id] = struct{}{}
		}
	}
	for _, b := range page.Blocks {
		if geom.Intersects(b.Rect(), box) {
			preview[b.ID] = struct{}{}
		}
	}
	return preview
}

// topBlockAt returns the highest-z block containing p, or nil.
func topBlockAt(page *domain.Page, p geom.Point) *domain.Block {
	var top *domain.Block
	for i := range page.Blocks {
		b := &page.Blocks[i]
		if !b.Rect().Contains(p) {
			continue
		}
		if top == nil || b.ZIndex > top.ZIndex {
			top = b
		}
	}
	return top
}
