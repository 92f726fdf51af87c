package mcpserver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"blockboard/internal/domain"
	"blockboard/internal/engine"
	"blockboard/internal/geom"
)

func (s *Server) registerBlockTools() {
	// ── create_block ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("create_block",
		mcp.WithDescription("Create a new block on the current page. Position is auto-calculated if not provided."),
		mcp.WithNumber("x", mcp.Description("X position in canvas coordinates (optional, auto-layout if omitted)")),
		mcp.WithNumber("y", mcp.Description("Y position in canvas coordinates (optional, auto-layout if omitted)")),
		mcp.WithNumber("width", mcp.Description("Width (default 300)")),
		mcp.WithNumber("height", mcp.Description("Height (default 200)")),
	), s.handleCreateBlock)

	// ── list_blocks ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_blocks",
		mcp.WithDescription("List all blocks on the current page"),
	), s.handleListBlocks)

	// ── move_block ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("move_block",
		mcp.WithDescription("Move a block to a new position on the canvas"),
		mcp.WithNumber("blockId", mcp.Description("Block ID"), mcp.Required()),
		mcp.WithNumber("x", mcp.Description("New X position"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("New Y position"), mcp.Required()),
	), s.handleMoveBlock)

	// ── resize_block ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("resize_block",
		mcp.WithDescription("Resize a block. Dimensions are clamped to the minimum block size."),
		mcp.WithNumber("blockId", mcp.Description("Block ID"), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("New width"), mcp.Required()),
		mcp.WithNumber("height", mcp.Description("New height"), mcp.Required()),
	), s.handleResizeBlock)

	// ── delete_blocks (destructive) ────────────────────
	s.mcp.AddTool(mcp.NewTool("delete_blocks",
		mcp.WithDescription("🛑 DESTRUCTIVE: Delete one or more blocks from the current page."),
		mcp.WithString("blockIds",
			mcp.Description("Comma-separated block IDs to delete"),
			mcp.Required(),
		),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteBlocks)

	// ── arrange_blocks ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("arrange_blocks",
		mcp.WithDescription("Auto-arrange all blocks on the current page in a grid layout. One undo step."),
		mcp.WithNumber("startX", mcp.Description("Starting X position (default 0)")),
		mcp.WithNumber("startY", mcp.Description("Starting Y position (default 0)")),
	), s.handleArrangeBlocks)

	// ── reorder_block ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("reorder_block",
		mcp.WithDescription("Send a block to the front or back of the paint order"),
		mcp.WithNumber("blockId", mcp.Description("Block ID"), mcp.Required()),
		mcp.WithString("position",
			mcp.Description("Either \"front\" or \"back\""),
			mcp.Required(),
		),
	), s.handleReorderBlock)
}

func boolPtr(v bool) *bool { return &v }

// currentPage returns a snapshot of the current page.
func (s *Server) currentPage() (*domain.Page, error) {
	board := s.board.Snapshot()
	page := board.CurrentPage()
	if page == nil {
		return nil, fmt.Errorf("no current page")
	}
	return page, nil
}

// blockSummary is the frontend-free view of a block returned by tools.
type blockSummary struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	ZIndex   int     `json:"zIndex"`
	ImageSrc string  `json:"imageSrc,omitempty"`
}

func summarizeBlock(b domain.Block) blockSummary {
	return blockSummary{
		ID: b.ID, X: b.X, Y: b.Y,
		Width: b.Width, Height: b.Height,
		ZIndex: b.ZIndex, ImageSrc: b.ImageSrc,
	}
}

// ── Handlers ───────────────────────────────────────────────

func (s *Server) handleCreateBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	width := req.GetFloat("width", 300)
	height := req.GetFloat("height", 200)

	x := req.GetFloat("x", -1)
	y := req.GetFloat("y", -1)
	if x < 0 && y < 0 {
		page, err := s.currentPage()
		if err != nil {
			return nil, err
		}
		x, y = s.layout.NextPosition(page.Blocks, width, height)
	}

	s.board.Dispatch(ctx, engine.CreateBlock{X: x, Y: y, Width: width, Height: height})

	page, err := s.currentPage()
	if err != nil {
		return nil, err
	}
	// CreateBlock assigns the highest id on the board.
	var created *domain.Block
	for i := range page.Blocks {
		if created == nil || page.Blocks[i].ID > created.ID {
			created = &page.Blocks[i]
		}
	}
	if created == nil {
		return nil, fmt.Errorf("block was not created")
	}
	return jsonResult(summarizeBlock(*created))
}

func (s *Server) handleListBlocks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := s.currentPage()
	if err != nil {
		return nil, err
	}
	summaries := make([]blockSummary, len(page.Blocks))
	for i, b := range page.Blocks {
		summaries[i] = summarizeBlock(b)
	}
	return jsonResult(summaries)
}

func (s *Server) handleMoveBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	blockID := req.GetInt("blockId", 0)
	if blockID == 0 {
		return nil, fmt.Errorf("blockId is required")
	}
	page, err := s.currentPage()
	if err != nil {
		return nil, err
	}
	b := page.BlockByID(blockID)
	if b == nil {
		return nil, fmt.Errorf("block %d not found on current page", blockID)
	}
	x := req.GetFloat("x", b.X)
	y := req.GetFloat("y", b.Y)

	s.board.Dispatch(ctx, engine.SetBlockRects{Rects: []engine.BlockRect{
		{BlockID: blockID, Rect: geom.Rect{X: x, Y: y, Width: b.Width, Height: b.Height}},
	}})
	return textResult(fmt.Sprintf("Moved block %d to (%.0f, %.0f)", blockID, x, y)), nil
}

func (s *Server) handleResizeBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	blockID := req.GetInt("blockId", 0)
	if blockID == 0 {
		return nil, fmt.Errorf("blockId is required")
	}
	page, err := s.currentPage()
	if err != nil {
		return nil, err
	}
	b := page.BlockByID(blockID)
	if b == nil {
		return nil, fmt.Errorf("block %d not found on current page", blockID)
	}
	width := req.GetFloat("width", b.Width)
	height := req.GetFloat("height", b.Height)

	s.board.Dispatch(ctx, engine.SetBlockRects{Rects: []engine.BlockRect{
		{BlockID: blockID, Rect: geom.Rect{X: b.X, Y: b.Y, Width: width, Height: height}},
	}})
	return textResult(fmt.Sprintf("Resized block %d to %.0fx%.0f", blockID, width, height)), nil
}

func (s *Server) handleDeleteBlocks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("blockIds", "")
	if raw == "" {
		return nil, fmt.Errorf("blockIds is required")
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid block id %q", part)
		}
		ids = append(ids, id)
	}
	s.board.Dispatch(ctx, engine.DeleteBlocks{BlockIDs: ids})
	return textResult(fmt.Sprintf("Deleted %d block(s)", len(ids))), nil
}

func (s *Server) handleArrangeBlocks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := s.currentPage()
	if err != nil {
		return nil, err
	}
	if len(page.Blocks) == 0 {
		return textResult("No blocks to arrange"), nil
	}
	startX := req.GetFloat("startX", 0)
	startY := req.GetFloat("startY", 0)

	arranged := s.layout.ArrangeGroup(page.Blocks, startX, startY)
	rects := make([]engine.BlockRect, len(arranged))
	for i, b := range arranged {
		rects[i] = engine.BlockRect{BlockID: b.ID, Rect: b.Rect()}
	}
	s.board.Dispatch(ctx, engine.SetBlockRects{Rects: rects})
	return textResult(fmt.Sprintf("Arranged %d blocks", len(arranged))), nil
}

func (s *Server) handleReorderBlock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	blockID := req.GetInt("blockId", 0)
	if blockID == 0 {
		return nil, fmt.Errorf("blockId is required")
	}
	switch req.GetString("position", "") {
	case "front":
		s.board.Dispatch(ctx, engine.SendToFront{BlockID: blockID})
	case "back":
		s.board.Dispatch(ctx, engine.SendToBack{BlockID: blockID})
	default:
		return nil, fmt.Errorf("position must be \"front\" or \"back\"")
	}
	return textResult(fmt.Sprintf("Reordered block %d", blockID)), nil
}
