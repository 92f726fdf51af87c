package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"blockboard/internal/engine"
)

func (s *Server) registerHistoryTools() {
	// ── undo ───────────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("undo",
		mcp.WithDescription("Undo the most recent board change. Agent edits and user edits share one history."),
	), s.handleUndo)

	// ── redo ───────────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("redo",
		mcp.WithDescription("Redo the most recently undone board change"),
	), s.handleRedo)
}

func (s *Server) handleUndo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view := s.board.CurrentState()
	if !view.CanUndo {
		return nil, fmt.Errorf("nothing to undo")
	}
	s.board.Dispatch(ctx, engine.Undo{})
	return textResult("Undone"), nil
}

func (s *Server) handleRedo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view := s.board.CurrentState()
	if !view.CanRedo {
		return nil, fmt.Errorf("nothing to redo")
	}
	s.board.Dispatch(ctx, engine.Redo{})
	return textResult("Redone"), nil
}
