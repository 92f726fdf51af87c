package engine

import (
	"blockboard/internal/domain"
	"blockboard/internal/geom"
)

// ─────────────────────────────────────────────────────────────
// Resize engine — per-handle transforms, aspect lock, group scaling
// ─────────────────────────────────────────────────────────────

// Handle is one of the eight resize grips on a selection's bounding box.
type Handle int

const (
	HandleN Handle = iota
	HandleS
	HandleE
	HandleW
	HandleNE
	HandleNW
	HandleSE
	HandleSW
)

var handleNames = [...]string{"n", "s", "e", "w", "ne", "nw", "se", "sw"}

func (h Handle) String() string {
	if h < 0 || int(h) >= len(handleNames) {
		return "invalid"
	}
	return handleNames[h]
}

// ParseHandle maps a direction name to its Handle.
func ParseHandle(name string) (Handle, bool) {
	for i, n := range handleNames {
		if n == name {
			return Handle(i), true
		}
	}
	return 0, false
}

func (h Handle) isCorner() bool {
	switch h {
	case HandleNE, HandleNW, HandleSE, HandleSW:
		return true
	}
	return false
}

// applyHandle returns the rectangle produced by dragging handle h of
// rect to the pointer position p. Edge handles change one dimension and
// hold the opposite edge; corner handles change both. Anchor positions
// for n/w sides are clamped so the moving edge can never cross past
// MinSize of the fixed edge, which keeps the proposal from flipping
// inside out before the final floor.
func applyHandle(h Handle, rect geom.Rect, p geom.Point) geom.Rect {
	right := rect.Right()
	bottom := rect.Bottom()
	out := rect

	switch h {
	case HandleSE:
		out.Width = p.X - rect.X
		out.Height = p.Y - rect.Y
	case HandleE:
		out.Width = p.X - rect.X
	case HandleS:
		out.Height = p.Y - rect.Y
	case HandleNW:
		out.Width = right - p.X
		out.Height = bottom - p.Y
		out.X = min(right-domain.MinSize, p.X)
		out.Y = min(bottom-domain.MinSize, p.Y)
	case HandleN:
		out.Height = bottom - p.Y
		out.Y = min(bottom-domain.MinSize, p.Y)
	case HandleW:
		out.Width = right - p.X
		out.X = min(right-domain.MinSize, p.X)
	case HandleNE:
		out.Width = p.X - rect.X
		out.Height = bottom - p.Y
		out.Y = min(bottom-domain.MinSize, p.Y)
	case HandleSW:
		out.Width = right - p.X
		out.X = min(right-domain.MinSize, p.X)
		out.Height = p.Y - rect.Y
	}
	return out
}

// lockAspect constrains proposed to the aspect ratio of orig, the
// pre-gesture rectangle. Corner handles pick whichever of the
// width-derived and height-derived candidates has the smaller area —
// the less extreme resize — then re-anchor so the corner opposite the
// handle stays where it was. Edge handles derive the free dimension and
// center it on the original rectangle.
func lockAspect(h Handle, proposed, orig geom.Rect) geom.Rect {
	if orig.Width <= 0 || orig.Height <= 0 {
		return proposed
	}
	ratio := orig.Width / orig.Height
	out := proposed

	if h.isCorner() {
		byWidth := geom.Rect{Width: proposed.Width, Height: proposed.Width / ratio}
		byHeight := geom.Rect{Width: proposed.Height * ratio, Height: proposed.Height}
		chosen := byWidth
		if byHeight.Area() < byWidth.Area() {
			chosen = byHeight
		}
		out.Width = chosen.Width
		out.Height = chosen.Height

		switch h {
		case HandleSE: // fixed corner: original top-left
			out.X = orig.X
			out.Y = orig.Y
		case HandleNW: // fixed corner: original bottom-right
			out.X = orig.Right() - out.Width
			out.Y = orig.Bottom() - out.Height
		case HandleNE: // fixed corner: original bottom-left
			out.X = orig.X
			out.Y = orig.Bottom() - out.Height
		case HandleSW: // fixed corner: original top-right
			out.X = orig.Right() - out.Width
			out.Y = orig.Y
		}
		return out
	}

	center := orig.Center()
	switch h {
	case HandleN, HandleS:
		out.Width = proposed.Height * ratio
		out.X = center.X - out.Width/2
	case HandleE, HandleW:
		out.Height = proposed.Width / ratio
		out.Y = center.Y - out.Height/2
		if h == HandleW {
			out.X = orig.Right() - out.Width
		}
	}
	return out
}

// clampMin floors both dimensions at MinSize. Applied as the last step
// of every resize path, aspect-locked or not.
func clampMin(r geom.Rect) geom.Rect {
	if r.Width < domain.MinSize {
		r.Width = domain.MinSize
	}
	if r.Height < domain.MinSize {
		r.Height = domain.MinSize
	}
	return r
}

// resizeRect runs the full single-rect pipeline: handle transform,
// optional aspect lock against the pre-gesture rect, MinSize floor.
func resizeRect(h Handle, orig geom.Rect, p geom.Point, aspect bool) geom.Rect {
	out := applyHandle(h, orig, p)
	if aspect {
		out = lockAspect(h, out, orig)
	}
	return clampMin(out)
}

// projectGroup re-projects each block's gesture-start geometry from the
// original group bounding box onto the resized one. Positions and sizes
// scale by the same fractions, so the relative layout of the selection
// is preserved exactly.
func projectGroup(origBox, newBox geom.Rect, blocks []BlockGeom) []BlockGeom {
	if origBox.Width <= 0 || origBox.Height <= 0 {
		return blocks
	}
	sx := newBox.Width / origBox.Width
	sy := newBox.Height / origBox.Height

	out := make([]BlockGeom, len(blocks))
	for i, bg := range blocks {
		out[i] = BlockGeom{
			ID: bg.ID,
			Rect: clampMin(geom.Rect{
				X:      newBox.X + (bg.Rect.X-origBox.X)*sx,
				Y:      newBox.Y + (bg.Rect.Y-origBox.Y)*sy,
				Width:  bg.Rect.Width * sx,
				Height: bg.Rect.Height * sy,
			}),
		}
	}
	return out
}

// handleHitPx is the grab radius of a resize handle, in screen pixels.
const handleHitPx = 8.0

// handlePoint returns the canvas position of handle h on box.
func handlePoint(h Handle, box geom.Rect) geom.Point {
	cx := box.X + box.Width/2
	cy := box.Y + box.Height/2
	switch h {
	case HandleN:
		return geom.Point{X: cx, Y: box.Y}
	case HandleS:
		return geom.Point{X: cx, Y: box.Bottom()}
	case HandleE:
		return geom.Point{X: box.Right(), Y: cy}
	case HandleW:
		return geom.Point{X: box.X, Y: cy}
	case HandleNE:
		return geom.Point{X: box.Right(), Y: box.Y}
	case HandleNW:
		return geom.Point{X: box.X, Y: box.Y}
	case HandleSE:
		return geom.Point{X: box.Right(), Y: box.Bottom()}
	default: // HandleSW
		return geom.Point{X: box.X, Y: box.Bottom()}
	}
}

// handleAt hit-tests the eight handles of box against canvas point p.
// The grab radius shrinks with zoom so handles stay a constant screen
// size. Corners are tested first so they win over adjacent edges.
func handleAt(box geom.Rect, p geom.Point, zoom float64) (Handle, bool) {
	if zoom <= 0 {
		zoom = 1
	}
	radius := handleHitPx / zoom
	order := [...]Handle{HandleNW, HandleNE, HandleSW, HandleSE, HandleN, HandleS, HandleE, HandleW}
	for _, h := range order {
		hp := handlePoint(h, box)
		dx, dy := p.X-hp.X, p.Y-hp.Y
		if dx >= -radius && dx <= radius && dy >= -radius && dy <= radius {
			return h, true
		}
	}
	return 0, false
}
