package domain

// Board is the structural root of the application state: the ordered
// pages and which one is current. It carries no transient interaction
// state, which makes it both the memento payload and the persisted
// schema.
type Board struct {
	Pages         []Page `json:"pages"`
	CurrentPageID string `json:"currentPageId"`
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := Board{CurrentPageID: b.CurrentPageID}
	out.Pages = make([]Page, len(b.Pages))
	for i, p := range b.Pages {
		out.Pages[i] = p.Clone()
	}
	return out
}

// PageByID returns a pointer into the board's page slice, or nil.
func (b *Board) PageByID(id string) *Page {
	for i := range b.Pages {
		if b.Pages[i].ID == id {
			return &b.Pages[i]
		}
	}
	return nil
}

// CurrentPage returns the current page, or nil if CurrentPageID is stale.
func (b *Board) CurrentPage() *Page {
	return b.PageByID(b.CurrentPageID)
}

// NextBlockID returns one above the highest block id across all pages.
// Block ids are globally monotonic, never reused within a session.
func (b *Board) NextBlockID() int {
	max := 0
	for _, p := range b.Pages {
		for _, blk := range p.Blocks {
			if blk.ID > max {
				max = blk.ID
			}
		}
	}
	return max + 1
}
