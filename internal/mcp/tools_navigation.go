package mcpserver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"blockboard/internal/engine"
)

func (s *Server) registerNavigationTools() {
	// ── list_pages ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_pages",
		mcp.WithDescription("List all pages on the board, with the current page marked"),
	), s.handleListPages)

	// ── create_page ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("create_page",
		mcp.WithDescription("Create a new page and switch to it"),
		mcp.WithString("name",
			mcp.Description("Name of the new page"),
			mcp.Required(),
		),
	), s.handleCreatePage)

	// ── switch_page ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("switch_page",
		mcp.WithDescription("Switch the board to another page. Block tools operate on the current page."),
		mcp.WithString("pageId",
			mcp.Description("ID of the page to switch to"),
			mcp.Required(),
		),
	), s.handleSwitchPage)

	// ── rename_page ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("rename_page",
		mcp.WithDescription("Rename a page"),
		mcp.WithString("pageId", mcp.Description("Page ID"), mcp.Required()),
		mcp.WithString("name", mcp.Description("New name"), mcp.Required()),
	), s.handleRenamePage)

	// ── delete_page (destructive) ──────────────────────
	s.mcp.AddTool(mcp.NewTool("delete_page",
		mcp.WithDescription("🛑 DESTRUCTIVE: Delete a page and all its blocks. The last page cannot be deleted."),
		mcp.WithString("pageId", mcp.Description("Page ID to delete"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeletePage)
}

func (s *Server) handleListPages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	board := s.board.Snapshot()

	type pageSummary struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Blocks  int    `json:"blocks"`
		Current bool   `json:"current"`
	}

	summaries := make([]pageSummary, len(board.Pages))
	for i, p := range board.Pages {
		summaries[i] = pageSummary{
			ID:      p.ID,
			Name:    p.Name,
			Blocks:  len(p.Blocks),
			Current: p.ID == board.CurrentPageID,
		}
	}
	return jsonResult(summaries)
}

func (s *Server) handleCreatePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	id := uuid.New().String()
	s.board.Dispatch(ctx, engine.AddPage{ID: id, Name: name})
	return textResult(fmt.Sprintf("Created page %s (%s)", name, id)), nil
}

func (s *Server) handleSwitchPage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID := req.GetString("pageId", "")
	if pageID == "" {
		return nil, fmt.Errorf("pageId is required")
	}
	board := s.board.Snapshot()
	if board.PageByID(pageID) == nil {
		return nil, fmt.Errorf("page %s not found", pageID)
	}
	s.board.Dispatch(ctx, engine.SwitchPage{ID: pageID})
	return textResult(fmt.Sprintf("Switched to page %s", pageID)), nil
}

func (s *Server) handleRenamePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID := req.GetString("pageId", "")
	name := req.GetString("name", "")
	if pageID == "" || name == "" {
		return nil, fmt.Errorf("pageId and name are required")
	}
	s.board.Dispatch(ctx, engine.RenamePage{ID: pageID, Name: name})
	return textResult(fmt.Sprintf("Renamed page %s to %s", pageID, name)), nil
}

func (s *Server) handleDeletePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID := req.GetString("pageId", "")
	if pageID == "" {
		return nil, fmt.Errorf("pageId is required")
	}
	board := s.board.Snapshot()
	if board.PageByID(pageID) == nil {
		return nil, fmt.Errorf("page %s not found", pageID)
	}
	if len(board.Pages) == 1 {
		return nil, fmt.Errorf("cannot delete the last page")
	}
	s.board.Dispatch(ctx, engine.RemovePage{ID: pageID})
	return textResult(fmt.Sprintf("Deleted page %s", pageID)), nil
}
