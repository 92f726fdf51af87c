package history_test

import (
	"fmt"
	"testing"

	"blockboard/internal/domain"
	"blockboard/internal/history"
)

func boardWithName(name string) domain.Board {
	return domain.Board{
		Pages: []domain.Page{
			{ID: "p1", Name: name, Blocks: []domain.Block{
				{ID: 1, X: 10, Y: 10, Width: 100, Height: 100, ZIndex: 1},
			}},
		},
		CurrentPageID: "p1",
	}
}

func TestManager_UndoRedoRoundTrip(t *testing.T) {
	m := history.NewManager(0)

	// Apply a sequence of "mutations": each renames the page, committing
	// the pre-mutation board first.
	current := boardWithName("v0")
	const n = 8
	for i := 1; i <= n; i++ {
		m.Commit(current)
		current = boardWithName(fmt.Sprintf("v%d", i))
	}
	final := current.Clone()

	for i := 0; i < n; i++ {
		next, ok := m.Undo(current)
		if !ok {
			t.Fatalf("undo %d: expected success", i)
		}
		current = next
	}
	if got := current.Pages[0].Name; got != "v0" {
		t.Fatalf("after %d undos, name = %q, want v0", n, got)
	}

	for i := 0; i < n; i++ {
		next, ok := m.Redo(current)
		if !ok {
			t.Fatalf("redo %d: expected success", i)
		}
		current = next
	}
	if got := current.Pages[0].Name; got != final.Pages[0].Name {
		t.Fatalf("after round trip, name = %q, want %q", got, final.Pages[0].Name)
	}
	if len(current.Pages[0].Blocks) != len(final.Pages[0].Blocks) {
		t.Fatalf("block count drifted across round trip")
	}
}

func TestManager_StackBound(t *testing.T) {
	m := history.NewManager(50)

	for i := 0; i <= 50; i++ { // 51 commits
		m.Commit(boardWithName(fmt.Sprintf("v%d", i)))
	}
	if got := m.UndoDepth(); got != 50 {
		t.Fatalf("undo depth = %d, want 50", got)
	}

	// Drain the stack: the oldest surviving snapshot must be v1 — v0 was
	// evicted.
	current := boardWithName("v51")
	var last domain.Board
	for m.CanUndo() {
		current, _ = m.Undo(current)
		last = current
	}
	if got := last.Pages[0].Name; got != "v1" {
		t.Fatalf("oldest snapshot = %q, want v1 (v0 evicted)", got)
	}
}

func TestManager_EmptyStacksAreNoOps(t *testing.T) {
	m := history.NewManager(10)
	b := boardWithName("only")

	if got, ok := m.Undo(b); ok || got.Pages[0].Name != "only" {
		t.Fatal("undo on empty stack must be a no-op")
	}
	if got, ok := m.Redo(b); ok || got.Pages[0].Name != "only" {
		t.Fatal("redo on empty stack must be a no-op")
	}
}

func TestManager_CommitClearsRedo(t *testing.T) {
	m := history.NewManager(10)

	m.Commit(boardWithName("v0"))
	current := boardWithName("v1")
	current, _ = m.Undo(current)
	if !m.CanRedo() {
		t.Fatal("expected redo after undo")
	}

	m.Commit(current)
	if m.CanRedo() {
		t.Fatal("commit must clear the redo stack")
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	b := boardWithName("orig")
	snap := history.Snapshot(b)

	b.Pages[0].Blocks[0].X = 999
	b.Pages[0].Name = "mutated"

	if snap.Board.Pages[0].Blocks[0].X == 999 {
		t.Fatal("snapshot shares block storage with the source board")
	}
	if snap.Board.Pages[0].Name != "orig" {
		t.Fatal("snapshot shares page storage with the source board")
	}
}
