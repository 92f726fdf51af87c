package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	mcpserver "blockboard/internal/mcp"
	"blockboard/internal/service"
	"blockboard/internal/storage"
)

// noopEmitter is a no-op EventEmitter used in MCP-only mode (no Wails frontend).
type noopEmitter struct{}

func (noopEmitter) Emit(_ context.Context, _ string, _ any) {}

// ServeMCP runs the app as a standalone MCP server on stdin/stdout with
// no GUI. It loads the board, serves tools until interrupted, then
// flushes any pending changes.
func ServeMCP() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".local", "share", "blockboard")
	dbPath := filepath.Join(dataDir, "blockboard.db")

	db, err := storage.New(dbPath, dataDir)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	emitter := noopEmitter{}
	board := service.NewBoardService(storage.NewBoardStore(db), dataDir, emitter)
	if err := board.Load(ctx); err != nil {
		log.Fatalf("Failed to load board: %v", err)
	}
	defer board.StopAutosave(ctx) // final save on exit
	if err := board.StartAutosave(ctx, "@every 30s"); err != nil {
		log.Printf("Failed to start autosave: %v", err)
	}

	mcpSrv := mcpserver.New(ctx, mcpserver.Deps{
		Emitter: emitter,
		Board:   board,
	})

	log.Println("[MCP] Starting standalone stdio server...")
	if err := mcpSrv.ServeStdio(); err != nil {
		log.Printf("MCP server error: %v", err)
	}
}
