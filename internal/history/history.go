package history

import "blockboard/internal/domain"

// ─────────────────────────────────────────────────────────────
// Undo/redo history — bounded stacks of structural snapshots
// ─────────────────────────────────────────────────────────────

// DefaultLimit is how many undo steps are retained before the oldest
// is evicted.
const DefaultLimit = 50

// Memento is an immutable structural snapshot of the board. It is built
// from domain values only, so transient interaction state (selection,
// in-progress gestures) can never leak into it.
type Memento struct {
	Board domain.Board
}

// Snapshot deep-copies the board into a memento.
func Snapshot(b domain.Board) Memento {
	return Memento{Board: b.Clone()}
}

// Manager owns the undo and redo stacks. It is session-only state:
// initialized empty at startup and never persisted. All operations are
// total — popping an empty stack is a silent no-op.
type Manager struct {
	limit int
	undo  []Memento
	redo  []Memento
}

// NewManager returns a manager retaining at most limit undo steps.
// A non-positive limit falls back to DefaultLimit.
func NewManager(limit int) *Manager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Manager{limit: limit}
}

// Commit records prev as the undo point for a mutation that already
// happened, evicting the oldest entry beyond the limit. Any redo
// history becomes unreachable and is dropped.
func (m *Manager) Commit(prev domain.Board) {
	m.undo = append(m.undo, Snapshot(prev))
	if len(m.undo) > m.limit {
		m.undo = m.undo[len(m.undo)-m.limit:]
	}
	m.redo = nil
}

// Undo restores the most recent memento, pushing the current board onto
// the redo stack. Returns the current board unchanged when there is
// nothing to undo.
func (m *Manager) Undo(current domain.Board) (domain.Board, bool) {
	if len(m.undo) == 0 {
		return current, false
	}
	i := len(m.undo) - 1
	prev := m.undo[i]
	m.undo = m.undo[:i]
	m.redo = append(m.redo, Snapshot(current))
	return prev.Board, true
}

// Redo is the mirror of Undo.
func (m *Manager) Redo(current domain.Board) (domain.Board, bool) {
	if len(m.redo) == 0 {
		return current, false
	}
	i := len(m.redo) - 1
	next := m.redo[i]
	m.redo = m.redo[:i]
	m.undo = append(m.undo, Snapshot(current))
	if len(m.undo) > m.limit {
		m.undo = m.undo[len(m.undo)-m.limit:]
	}
	return next.Board, true
}

// CanUndo reports whether the undo stack is non-empty.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoDepth returns the current undo stack size.
func (m *Manager) UndoDepth() int { return len(m.undo) }

// RedoDepth returns the current redo stack size.
func (m *Manager) RedoDepth() int { return len(m.redo) }
