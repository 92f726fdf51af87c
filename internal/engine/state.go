package engine

import (
	"time"

	"github.com/google/uuid"

	"blockboard/internal/domain"
	"blockboard/internal/geom"
	"blockboard/internal/history"
)

// ─────────────────────────────────────────────────────────────
// Engine state — structural board + transient per-page interaction
// ─────────────────────────────────────────────────────────────

// PageUI is the transient interaction state of one page. None of it is
// ever snapshotted or persisted.
type PageUI struct {
	Selected   IDSet
	Preview    IDSet // non-empty only while a marquee is active
	EditingID  int   // 0 = no block in edit mode
	HoveringID int
	Gesture    Gesture // nil = idle
}

// clone copies the UI deeply enough that mutating the copy never leaks
// into the original. Gesture records are replaced wholesale on every
// transition, so sharing the current one is safe.
func (u PageUI) clone() PageUI {
	out := u
	out.Selected = u.Selected.Clone()
	out.Preview = u.Preview.Clone()
	return out
}

// State is the engine's complete value: the structural board, per-page
// transient interaction state, and the session undo history. Handlers
// receive a State and return a new one; the board and UI map are
// copy-on-write, so a caller may keep the old value for comparison.
type State struct {
	Board        domain.Board
	UI           map[string]PageUI
	InteractMode bool
	History      *history.Manager
}

// NewState wraps a loaded (or fresh) board. The history manager starts
// empty — undo history is session-only, never restored from disk.
func NewState(board domain.Board) State {
	return State{
		Board:   board,
		UI:      map[string]PageUI{},
		History: history.NewManager(history.DefaultLimit),
	}
}

// NewBoard builds a fresh single-page board, the fallback when the
// persistence collaborator has nothing to load.
func NewBoard() domain.Board {
	now := time.Now()
	page := domain.Page{
		ID:        uuid.NewString(),
		Name:      "Page 1",
		Viewport:  geom.Viewport{Zoom: 1},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return domain.Board{Pages: []domain.Page{page}, CurrentPageID: page.ID}
}

// pageUI returns the transient state for a page, zero-valued if none
// has been recorded yet.
func (s State) pageUI(pageID string) PageUI {
	return s.UI[pageID]
}

// withPageUI returns a State whose UI map carries ui for the page.
// The map itself is copied, keeping the previous State intact.
func (s State) withPageUI(pageID string, ui PageUI) State {
	next := make(map[string]PageUI, len(s.UI)+1)
	for k, v := range s.UI {
		next[k] = v
	}
	next[pageID] = ui
	s.UI = next
	return s
}

// withBoard swaps in a new board value.
func (s State) withBoard(b domain.Board) State {
	s.Board = b
	return s
}

// clearTransients drops all selection, preview, edit and gesture state.
// Used after undo/redo, which restore structural state only.
func (s State) clearTransients() State {
	s.UI = map[string]PageUI{}
	return s
}

// CurrentViewport returns the viewport of the current page, or an
// identity viewport when the board is empty.
func (s State) CurrentViewport() geom.Viewport {
	if p := s.Board.CurrentPage(); p != nil {
		return p.Viewport
	}
	return geom.Viewport{Zoom: 1}
}

// SelectedIDs returns the sorted selection of the current page.
func (s State) SelectedIDs() []int {
	return s.pageUI(s.Board.CurrentPageID).Selected.Sorted()
}

// PreviewIDs returns the sorted marquee preview of the current page.
func (s State) PreviewIDs() []int {
	return s.pageUI(s.Board.CurrentPageID).Preview.Sorted()
}

// ActiveGesture returns the current page's in-progress gesture, nil
// when idle.
func (s State) ActiveGesture() Gesture {
	return s.pageUI(s.Board.CurrentPageID).Gesture
}
