package domain

import (
	"time"

	"blockboard/internal/geom"
)

// MinSize is the smallest width or height a block may reach. Every
// mutator clamps to it, so no resize path can flip a block inside out.
const MinSize = 20.0

// Block is a positioned, sized, z-ordered rectangle placed on a page.
// IDs are globally monotonic integers — page-local uniqueness is not
// assumed anywhere.
type Block struct {
	ID        int       `json:"id"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	ZIndex    int       `json:"zIndex"`
	ImageSrc  string    `json:"imageSrc"`  // path to the image asset rendered in the block, if any
	PageSrc   string    `json:"pageSrc"`   // opaque payload relayed to the rendering panel
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Rect returns the block's rectangle in canvas space.
func (b Block) Rect() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// SetRect applies r to the block, flooring both dimensions at MinSize.
func (b *Block) SetRect(r geom.Rect) {
	b.X = r.X
	b.Y = r.Y
	b.Width = r.Width
	b.Height = r.Height
	if b.Width < MinSize {
		b.Width = MinSize
	}
	if b.Height < MinSize {
		b.Height = MinSize
	}
}
