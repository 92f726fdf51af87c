package storage_test

import (
	"path/filepath"
	"testing"

	"blockboard/internal/domain"
	"blockboard/internal/geom"
	"blockboard/internal/storage"
)

func openTestDB(t *testing.T) *storage.DB {
	t.Helper()
	dir := t.TempDir()
	db, err := storage.New(filepath.Join(dir, "board.db"), dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBoardRoundTrip(t *testing.T) {
	db := openTestDB(t)
	store := storage.NewBoardStore(db)

	board := domain.Board{
		CurrentPageID: "p2",
		Pages: []domain.Page{
			{
				ID:       "p1",
				Name:     "First",
				Viewport: domainViewport(10, -20, 1.5),
				Blocks: []domain.Block{
					{ID: 1, X: 0, Y: 0, Width: 100, Height: 80, ZIndex: 1},
					{ID: 2, X: 250, Y: 40, Width: 60, Height: 60, ZIndex: 2, ImageSrc: "cat.png"},
				},
			},
			{
				ID:        "p2",
				Name:      "Second",
				SortOrder: 1,
				Viewport:  domainViewport(0, 0, 1),
				Program:   "draw",
			},
		},
	}

	if err := store.SaveBoard(board); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.LoadBoard()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.CurrentPageID != "p2" {
		t.Errorf("current page = %q, want p2", loaded.CurrentPageID)
	}
	if len(loaded.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(loaded.Pages))
	}

	p1 := loaded.PageByID("p1")
	if p1 == nil {
		t.Fatal("page p1 missing")
	}
	if p1.Name != "First" || p1.Viewport.Zoom != 1.5 || p1.Viewport.OffsetY != -20 {
		t.Errorf("page p1 fields wrong: %+v", p1)
	}
	if len(p1.Blocks) != 2 {
		t.Fatalf("page p1 has %d blocks, want 2", len(p1.Blocks))
	}
	b2 := p1.BlockByID(2)
	if b2 == nil || b2.X != 250 || b2.ImageSrc != "cat.png" {
		t.Errorf("block 2 wrong: %+v", b2)
	}

	p2 := loaded.PageByID("p2")
	if p2 == nil || p2.Program != "draw" || len(p2.Blocks) != 0 {
		t.Errorf("page p2 wrong: %+v", p2)
	}
}

func TestSaveBoardRemovesDeletedPages(t *testing.T) {
	db := openTestDB(t)
	store := storage.NewBoardStore(db)

	board := domain.Board{
		CurrentPageID: "p1",
		Pages: []domain.Page{
			{ID: "p1", Name: "Keep", Viewport: domainViewport(0, 0, 1)},
			{ID: "p2", Name: "Drop", Viewport: domainViewport(0, 0, 1), Blocks: []domain.Block{
				{ID: 1, X: 0, Y: 0, Width: 50, Height: 50},
			}},
		},
	}
	if err := store.SaveBoard(board); err != nil {
		t.Fatalf("save: %v", err)
	}

	board.Pages = board.Pages[:1]
	if err := store.SaveBoard(board); err != nil {
		t.Fatalf("resave: %v", err)
	}

	loaded, err := store.LoadBoard()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Pages) != 1 || loaded.Pages[0].ID != "p1" {
		t.Errorf("pages after delete = %+v, want only p1", loaded.Pages)
	}
	blocks, err := store.Blocks().ListBlocks("p2")
	if err != nil {
		t.Fatalf("list blocks: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("blocks of deleted page survived: %+v", blocks)
	}
}

func TestLoadBoardFixesStaleCurrentPage(t *testing.T) {
	db := openTestDB(t)
	store := storage.NewBoardStore(db)

	board := domain.Board{
		CurrentPageID: "gone",
		Pages: []domain.Page{
			{ID: "p1", Name: "Only", Viewport: domainViewport(0, 0, 1)},
		},
	}
	if err := store.SaveBoard(board); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.LoadBoard()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.CurrentPageID != "p1" {
		t.Errorf("current page = %q, want fallback p1", loaded.CurrentPageID)
	}
}

func TestReplacePageBlocksIsAtomicSwap(t *testing.T) {
	db := openTestDB(t)
	store := storage.NewBoardStore(db)

	page := domain.Page{ID: "p1", Name: "P", Viewport: domainViewport(0, 0, 1)}
	if err := store.Pages().CreatePage(&page); err != nil {
		t.Fatalf("create page: %v", err)
	}

	first := []domain.Block{
		{ID: 1, X: 0, Y: 0, Width: 50, Height: 50},
		{ID: 2, X: 100, Y: 0, Width: 50, Height: 50},
	}
	if err := store.Blocks().ReplacePageBlocks("p1", first); err != nil {
		t.Fatalf("replace: %v", err)
	}

	second := []domain.Block{
		{ID: 3, X: 5, Y: 5, Width: 40, Height: 40},
	}
	if err := store.Blocks().ReplacePageBlocks("p1", second); err != nil {
		t.Fatalf("replace again: %v", err)
	}

	blocks, err := store.Blocks().ListBlocks("p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(blocks) != 1 || blocks[0].ID != 3 {
		t.Errorf("blocks = %+v, want only id 3", blocks)
	}
}

func domainViewport(x, y, zoom float64) geom.Viewport {
	return geom.Viewport{OffsetX: x, OffsetY: y, Zoom: zoom}
}
