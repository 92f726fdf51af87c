package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	// ── board://pages ──────────────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"board://pages",
		"All Pages",
		mcp.WithMIMEType("application/json"),
	), s.handlePagesResource)

	// ── board://page/{pageId}/blocks ───────────────────
	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"board://page/{pageId}/blocks",
			"Blocks on a Page",
		),
		s.handlePageBlocksResource,
	)
}

func (s *Server) handlePagesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	board := s.board.Snapshot()

	type pageSummary struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Current bool   `json:"current"`
	}

	summaries := make([]pageSummary, len(board.Pages))
	for i, p := range board.Pages {
		summaries[i] = pageSummary{ID: p.ID, Name: p.Name, Current: p.ID == board.CurrentPageID}
	}

	data, _ := json.MarshalIndent(summaries, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "board://pages",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handlePageBlocksResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	pageID := pageIDFromURI(uri)
	if pageID == "" {
		return nil, fmt.Errorf("could not extract pageId from URI: %s", uri)
	}

	board := s.board.Snapshot()
	page := board.PageByID(pageID)
	if page == nil {
		return nil, fmt.Errorf("page %s not found", pageID)
	}

	summaries := make([]blockSummary, len(page.Blocks))
	for i, b := range page.Blocks {
		summaries[i] = summarizeBlock(b)
	}

	data, _ := json.MarshalIndent(summaries, "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// pageIDFromURI extracts the page id from "board://page/{id}/blocks".
func pageIDFromURI(uri string) string {
	const prefix = "board://page/"
	rest, ok := strings.CutPrefix(uri, prefix)
	if !ok {
		return ""
	}
	id, _, ok := strings.Cut(rest, "/")
	if !ok {
		return ""
	}
	return id
}
