package geom

// ─────────────────────────────────────────────────────────────
// Geometry primitives — coordinate transforms and rectangle math
// shared by the canvas engine
// ─────────────────────────────────────────────────────────────

// Point is a position in either screen or canvas space; which one is
// a matter of convention at the call site.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Area returns width*height.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Normalized returns the rectangle spanning the same two corners with
// non-negative width and height. Marquee boxes are dragged in any
// direction, so their raw extent may have negative dimensions.
func (r Rect) Normalized() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// FromCorners builds the normalized rectangle spanning points a and b.
func FromCorners(a, b Point) Rect {
	return Rect{X: a.X, Y: a.Y, Width: b.X - a.X, Height: b.Y - a.Y}.Normalized()
}

// Intersects reports whether a and b overlap. Rectangles are strictly
// disjoint only when one lies fully past an edge of the other; touching
// edges count as intersecting.
func Intersects(a, b Rect) bool {
	if a.Right() < b.X || b.Right() < a.X {
		return false
	}
	if a.Bottom() < b.Y || b.Bottom() < a.Y {
		return false
	}
	return true
}

// BoundingBox returns the minimal rectangle enclosing all rects.
// With a single input it returns that rectangle unchanged — the
// degenerate case that drives single-block resize handles.
// Returns the zero Rect for empty input.
func BoundingBox(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	box := rects[0]
	for _, r := range rects[1:] {
		right, bottom := box.Right(), box.Bottom()
		if r.X < box.X {
			box.X = r.X
		}
		if r.Y < box.Y {
			box.Y = r.Y
		}
		if r.Right() > right {
			right = r.Right()
		}
		if r.Bottom() > bottom {
			bottom = r.Bottom()
		}
		box.Width = right - box.X
		box.Height = bottom - box.Y
	}
	return box
}

// Viewport is a pan/zoom camera over the canvas. Offset is the screen
// position of the canvas origin; Zoom scales canvas units to screen pixels.
type Viewport struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Zoom    float64 `json:"zoom"`
}

// ScreenToCanvas maps a screen point into canvas space.
func ScreenToCanvas(p Point, v Viewport) Point {
	return Point{
		X: (p.X - v.OffsetX) / v.Zoom,
		Y: (p.Y - v.OffsetY) / v.Zoom,
	}
}

// CanvasToScreen maps a canvas point into screen space.
func CanvasToScreen(p Point, v Viewport) Point {
	return Point{
		X: p.X*v.Zoom + v.OffsetX,
		Y: p.Y*v.Zoom + v.OffsetY,
	}
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
