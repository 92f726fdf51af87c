package service

import (
	"blockboard/internal/domain"
	"blockboard/internal/geom"
)

// BoardView is the render-ready projection of the editor state sent to
// the frontend. Transient fields (selection, preview, undo depth) are
// kept out of the persisted board itself.
type BoardView struct {
	Board         domain.Board  `json:"board"`
	CurrentPageID string        `json:"currentPageId"`
	Selected      []int         `json:"selected"`
	Preview       []int         `json:"preview"`
	Viewport      geom.Viewport `json:"viewport"`
	InteractMode  bool          `json:"interactMode"`
	CanUndo       bool          `json:"canUndo"`
	CanRedo       bool          `json:"canRedo"`
}
