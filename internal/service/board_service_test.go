package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"blockboard/internal/engine"
	"blockboard/internal/service"
	"blockboard/internal/storage"
)

func newTestService(t *testing.T) (*service.BoardService, *service.MockEmitter) {
	t.Helper()
	dir := t.TempDir()
	db, err := storage.New(filepath.Join(dir, "board.db"), dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	emitter := &service.MockEmitter{}
	svc := service.NewBoardService(storage.NewBoardStore(db), dir, emitter)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return svc, emitter
}

func TestLoadSeedsDefaultPage(t *testing.T) {
	svc, emitter := newTestService(t)

	board := svc.Snapshot()
	if len(board.Pages) != 1 {
		t.Fatalf("got %d pages, want 1 seeded page", len(board.Pages))
	}
	if board.CurrentPageID != board.Pages[0].ID {
		t.Errorf("current page %q does not match seeded page %q", board.CurrentPageID, board.Pages[0].ID)
	}
	if len(emitter.Events) == 0 || emitter.Events[0].Event != "board:changed" {
		t.Errorf("expected board:changed on load, got %+v", emitter.Events)
	}
}

func TestDispatchEmitsNotices(t *testing.T) {
	svc, emitter := newTestService(t)
	emitter.Events = nil

	svc.Dispatch(context.Background(), engine.CreateBlock{X: 10, Y: 10, Width: 100, Height: 80})

	topics := map[string]bool{}
	for _, e := range emitter.Events {
		topics[e.Event] = true
	}
	for _, want := range []string{"board:changed", "selection:changed", "history:changed"} {
		if !topics[want] {
			t.Errorf("missing %s notice, got %+v", want, emitter.Events)
		}
	}

	view := svc.CurrentState()
	if len(view.Selected) != 1 {
		t.Errorf("new block not selected: %+v", view.Selected)
	}
	if !view.CanUndo {
		t.Error("create should be undoable")
	}
}

func TestSavePersistsAcrossReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.db")

	db, err := storage.New(path, dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	emitter := &service.MockEmitter{}
	svc := service.NewBoardService(storage.NewBoardStore(db), dir, emitter)
	ctx := context.Background()
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	svc.Dispatch(ctx, engine.CreateBlock{X: 5, Y: 5, Width: 60, Height: 40})
	if err := svc.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	db.Close()

	db2, err := storage.New(path, dir)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db2.Close()
	svc2 := service.NewBoardService(storage.NewBoardStore(db2), dir, &service.MockEmitter{})
	if err := svc2.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	board := svc2.Snapshot()
	page := board.CurrentPage()
	if page == nil || len(page.Blocks) != 1 {
		t.Fatalf("block did not survive reload: %+v", board)
	}
	if page.Blocks[0].Width != 60 {
		t.Errorf("block width = %v, want 60", page.Blocks[0].Width)
	}
}

func TestSaveSkipsWhenClean(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.Save(ctx); err != nil {
		t.Fatalf("first save: %v", err)
	}
	// A pointer hover changes nothing structural, so a second save is a no-op.
	svc.Dispatch(ctx, engine.PointerMove{X: 10, Y: 10})
	if err := svc.Save(ctx); err != nil {
		t.Fatalf("second save: %v", err)
	}
}

func TestImportImageWritesFileAndPlacesBlock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Smallest valid PNG: 1x1 transparent pixel.
	const onePixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

	path, err := svc.ImportImage(ctx, onePixelPNG, 800, 600)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if path == "" {
		t.Fatal("empty image path")
	}

	board := svc.Snapshot()
	page := board.CurrentPage()
	if page == nil || len(page.Blocks) != 1 {
		t.Fatalf("image block missing: %+v", board)
	}
	b := page.Blocks[0]
	if b.ImageSrc != path {
		t.Errorf("block ImageSrc = %q, want %q", b.ImageSrc, path)
	}

	data, err := svc.ReadImage(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if data == "" {
		t.Error("empty data URL")
	}
}
