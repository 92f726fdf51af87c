package storage

import (
	"fmt"

	"blockboard/internal/domain"
)

const currentPageKey = "current_page_id"

// BoardStore assembles and persists whole-board snapshots on top of the
// page and block stores.
type BoardStore struct {
	pages  *PageStore
	blocks *BlockStore
}

func NewBoardStore(db *DB) *BoardStore {
	return &BoardStore{
		pages:  NewPageStore(db),
		blocks: NewBlockStore(db),
	}
}

func (s *BoardStore) Pages() *PageStore   { return s.pages }
func (s *BoardStore) Blocks() *BlockStore { return s.blocks }

// LoadBoard reads every page with its blocks plus the current page id.
// An empty database yields a board with no pages; the caller decides
// whether to seed a default page.
func (s *BoardStore) LoadBoard() (*domain.Board, error) {
	pages, err := s.pages.ListPages()
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	for i := range pages {
		blocks, err := s.blocks.ListBlocks(pages[i].ID)
		if err != nil {
			return nil, fmt.Errorf("list blocks for page %s: %w", pages[i].ID, err)
		}
		pages[i].Blocks = blocks
	}

	current, err := s.pages.GetBoardValue(currentPageKey)
	if err != nil {
		return nil, fmt.Errorf("get current page: %w", err)
	}

	board := &domain.Board{Pages: pages, CurrentPageID: current}
	if board.PageByID(current) == nil && len(pages) > 0 {
		board.CurrentPageID = pages[0].ID
	}
	return board, nil
}

// SaveBoard writes the full board state, replacing pages and blocks
// that changed and removing pages that no longer exist.
func (s *BoardStore) SaveBoard(b domain.Board) error {
	existing, err := s.pages.ListPages()
	if err != nil {
		return fmt.Errorf("list pages: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.ID] = true
	}

	for i := range b.Pages {
		p := b.Pages[i]
		if known[p.ID] {
			if err := s.pages.UpdatePage(&p); err != nil {
				return fmt.Errorf("update page %s: %w", p.ID, err)
			}
		} else {
			if err := s.pages.CreatePage(&p); err != nil {
				return fmt.Errorf("create page %s: %w", p.ID, err)
			}
		}
		delete(known, p.ID)

		if err := s.blocks.ReplacePageBlocks(p.ID, p.Blocks); err != nil {
			return fmt.Errorf("replace blocks for page %s: %w", p.ID, err)
		}
	}

	// Whatever remains in known was deleted from the board.
	for id := range known {
		if err := s.pages.DeletePage(id); err != nil {
			return fmt.Errorf("delete page %s: %w", id, err)
		}
	}

	if err := s.pages.SetBoardValue(currentPageKey, b.CurrentPageID); err != nil {
		return fmt.Errorf("set current page: %w", err)
	}
	return nil
}
