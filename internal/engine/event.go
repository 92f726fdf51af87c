package engine

import "blockboard/internal/geom"

// ─────────────────────────────────────────────────────────────
// Input events — the closed set of messages the reducer accepts
// ─────────────────────────────────────────────────────────────

// Button identifies which pointer button an event refers to.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Event is a single input delivered to the reducer. Pointer coordinates
// are raw screen pixels; the reducer converts to canvas space using the
// current page viewport.
type Event interface{ isEvent() }

// PointerDown starts a gesture depending on what lies under the pointer.
type PointerDown struct {
	X, Y     float64
	Button   Button
	Modifier bool // shift/cmd held — multi-select, additive marquee
}

// PointerMove advances the active gesture, or updates hover when idle.
type PointerMove struct {
	X, Y     float64
	Modifier bool // aspect-ratio lock while resizing
}

// PointerUp completes the active gesture. A lost-pointer-capture signal
// from the shell must be delivered as a PointerUp too, so no gesture can
// get stuck.
type PointerUp struct {
	X, Y float64
}

// DoubleClick enters edit mode for the block under the pointer.
type DoubleClick struct {
	X, Y float64
}

// Wheel zooms (ctrl/cmd held, anchored at the pointer) or pans
// (plain trackpad scroll).
type Wheel struct {
	X, Y           float64
	DeltaX, DeltaY float64
	Ctrl           bool
}

// KeyDown delivers a keyboard key. Editing is true while a text editor
// owns the keyboard; most keys are ignored then.
type KeyDown struct {
	Key     string // "Escape", "Delete", "Backspace"
	Editing bool
}

// ── command events ───────────────────────────────────────────
// Atomic operations with no gesture phase. Each structural one commits
// a memento immediately.

// CreateBlock adds a block at a canvas position on the current page.
type CreateBlock struct {
	X, Y          float64
	Width, Height float64
	PageSrc       string
}

// PlaceImage adds an image block at the current viewport center.
// ViewWidth/ViewHeight are the screen dimensions of the canvas view;
// ImageWidth/ImageHeight are the asset's pixel dimensions.
type PlaceImage struct {
	Path                   string
	ImageWidth, ImageHeight float64
	ViewWidth, ViewHeight   float64
}

// DeleteSelection removes all selected blocks on the current page.
type DeleteSelection struct{}

// SendToFront raises a block above every other z-index on its page.
type SendToFront struct{ BlockID int }

// SendToBack lowers a block below every other z-index on its page.
type SendToBack struct{ BlockID int }

// SelectBlock replaces the selection with a single block.
type SelectBlock struct{ BlockID int }

// ToggleBlock adds the block to the selection, or removes it if present.
type ToggleBlock struct{ BlockID int }

// DeselectAll clears the selection on the current page.
type DeselectAll struct{}

// AddPage appends a new page and makes it current. The caller supplies
// the id so the reducer stays deterministic.
type AddPage struct{ ID, Name string }

// RemovePage deletes a page. Removing the last remaining page is a no-op.
type RemovePage struct{ ID string }

// RenamePage renames a page.
type RenamePage struct{ ID, Name string }

// SwitchPage changes the current page. Navigation only — no memento.
type SwitchPage struct{ ID string }

// SetProgram stores a page's embedded program state verbatim.
type SetProgram struct{ PageID, Program string }

// BlockRect pairs a block id with a target rectangle.
type BlockRect struct {
	BlockID int
	Rect    geom.Rect
}

// SetBlockRects moves or resizes a set of blocks in one undoable step.
// Used by programmatic callers (MCP tools, auto-layout); pointer
// gestures never go through it. Unknown ids are skipped.
type SetBlockRects struct{ Rects []BlockRect }

// DeleteBlocks removes specific blocks by id, regardless of selection.
// Programmatic counterpart of DeleteSelection; unknown ids are skipped.
type DeleteBlocks struct{ BlockIDs []int }

// SetInteractMode toggles interact mode, during which double-click edit
// entry is suppressed.
type SetInteractMode struct{ On bool }

// Undo restores the most recent memento.
type Undo struct{}

// Redo re-applies the most recently undone mutation.
type Redo struct{}

func (PointerDown) isEvent()     {}
func (PointerMove) isEvent()     {}
func (PointerUp) isEvent()       {}
func (DoubleClick) isEvent()     {}
func (Wheel) isEvent()           {}
func (KeyDown) isEvent()         {}
func (CreateBlock) isEvent()     {}
func (PlaceImage) isEvent()      {}
func (DeleteSelection) isEvent() {}
func (SendToFront) isEvent()     {}
func (SendToBack) isEvent()      {}
func (SelectBlock) isEvent()     {}
func (ToggleBlock) isEvent()     {}
func (DeselectAll) isEvent()     {}
func (AddPage) isEvent()         {}
func (RemovePage) isEvent()      {}
func (RenamePage) isEvent()      {}
func (SwitchPage) isEvent()      {}
func (SetProgram) isEvent()      {}
func (SetBlockRects) isEvent()   {}
func (DeleteBlocks) isEvent()    {}
func (SetInteractMode) isEvent() {}
func (Undo) isEvent()            {}
func (Redo) isEvent()            {}

// ─────────────────────────────────────────────────────────────
// Notices — what the reducer tells the shell to re-render
// ─────────────────────────────────────────────────────────────

// Notice topics, emitted to the frontend over the app event bus.
const (
	TopicBoard     = "board:changed"     // structural change (blocks, pages)
	TopicSelection = "selection:changed" // selection or marquee preview
	TopicViewport  = "viewport:changed"  // pan or zoom
	TopicHistory   = "history:changed"   // undo/redo stack depths
	TopicEditing   = "editing:changed"   // edit mode entered or left
	TopicHover     = "hover:changed"
)

// Notice is a render hint produced by a state transition.
type Notice struct {
	Topic string `json:"topic"`
	Data  any    `json:"data,omitempty"`
}
