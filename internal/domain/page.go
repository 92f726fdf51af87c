package domain

import (
	"time"

	"blockboard/internal/geom"
)

// Zoom limits for the page viewport.
const (
	MinZoom = 0.1
	MaxZoom = 5.0
)

// Page is an independent canvas surface: its own blocks, its own
// pan/zoom viewport, its own embedded program state. Block order in
// the slice is irrelevant; ZIndex governs paint order.
type Page struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	SortOrder int           `json:"sortOrder"`
	Viewport  geom.Viewport `json:"viewport"`
	Blocks    []Block       `json:"blocks"`
	Program   string        `json:"program"` // nested program state, stored and relayed verbatim
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// BlockByID returns a pointer into the page's block slice, or nil when
// the id is gone (e.g. the block was deleted mid-gesture).
func (p *Page) BlockByID(id int) *Block {
	for i := range p.Blocks {
		if p.Blocks[i].ID == id {
			return &p.Blocks[i]
		}
	}
	return nil
}

// RemoveBlock deletes the block with the given id, if present.
func (p *Page) RemoveBlock(id int) {
	for i := range p.Blocks {
		if p.Blocks[i].ID == id {
			p.Blocks = append(p.Blocks[:i], p.Blocks[i+1:]...)
			return
		}
	}
}

// MaxZIndex returns the highest z-index on the page, or 0 when empty.
func (p *Page) MaxZIndex() int {
	max := 0
	for i, b := range p.Blocks {
		if i == 0 || b.ZIndex > max {
			max = b.ZIndex
		}
	}
	return max
}

// MinZIndex returns the lowest z-index on the page, or 0 when empty.
func (p *Page) MinZIndex() int {
	min := 0
	for i, b := range p.Blocks {
		if i == 0 || b.ZIndex < min {
			min = b.ZIndex
		}
	}
	return min
}

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	out := p
	out.Blocks = make([]Block, len(p.Blocks))
	copy(out.Blocks, p.Blocks)
	return out
}
