package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"blockboard/internal/domain"
	"blockboard/internal/engine"
	"blockboard/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// Board Service — owns the editor state machine
// ─────────────────────────────────────────────────────────────

// BoardService holds the live engine state and routes every input
// event through the reducer. It is the only writer of the state, so
// callers from the UI thread and the MCP server share one mutex.
type BoardService struct {
	mu      sync.Mutex
	state   engine.State
	store   *storage.BoardStore
	dataDir string
	emitter EventEmitter

	dirty     bool
	autosaver *cron.Cron
}

// NewBoardService creates a BoardService. Call Load before dispatching
// any events.
func NewBoardService(store *storage.BoardStore, dataDir string, emitter EventEmitter) *BoardService {
	return &BoardService{store: store, dataDir: dataDir, emitter: emitter}
}

// Load reads the persisted board, seeding a default page when the
// database is empty.
func (s *BoardService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, err := s.store.LoadBoard()
	if err != nil {
		// A corrupt or unreadable board must not block startup.
		log.Printf("load board: %v, starting fresh", err)
		board = nil
	}
	if board == nil || len(board.Pages) == 0 {
		seeded := engine.NewBoard()
		board = &seeded
		s.dirty = true
	}
	s.state = engine.NewState(*board)
	s.emitter.Emit(ctx, engine.TopicBoard, s.state.Board)
	return nil
}

// Dispatch runs one event through the reducer and emits the resulting
// notices to the frontend.
func (s *BoardService) Dispatch(ctx context.Context, ev engine.Event) {
	s.mu.Lock()
	next, notices := engine.Reduce(s.state, ev)
	s.state = next
	for _, n := range notices {
		// Viewport changes are structural too: pan and zoom land in the
		// persisted page record.
		if n.Topic == engine.TopicBoard || n.Topic == engine.TopicViewport {
			s.dirty = true
		}
	}
	s.mu.Unlock()

	for _, n := range notices {
		s.emitter.Emit(ctx, n.Topic, n.Data)
	}
}

// Snapshot returns a deep copy of the current board for read-only use.
func (s *BoardService) Snapshot() domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Board.Clone()
}

// CurrentState returns the pieces of transient state the frontend
// renders alongside the board.
func (s *BoardService) CurrentState() BoardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := BoardView{
		Board:         s.state.Board.Clone(),
		CurrentPageID: s.state.Board.CurrentPageID,
		Selected:      s.state.SelectedIDs(),
		Preview:       s.state.PreviewIDs(),
		Viewport:      s.state.CurrentViewport(),
		InteractMode:  s.state.InteractMode,
		CanUndo:       s.state.History.CanUndo(),
		CanRedo:       s.state.History.CanRedo(),
	}
	return view
}

// Save flushes the current board to SQLite when it changed since the
// last save.
func (s *BoardService) Save(ctx context.Context) error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	board := s.state.Board.Clone()
	s.dirty = false
	s.mu.Unlock()

	if err := s.store.SaveBoard(board); err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		s.emitter.Emit(ctx, "board:save-error", err.Error())
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

// ── Autosave ───────────────────────────────────────────────

// StartAutosave flushes dirty state on a fixed schedule. Wheel pans
// and drags change the board far more often than we want to hit disk.
func (s *BoardService) StartAutosave(ctx context.Context, spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.autosaver != nil {
		return nil
	}
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := s.Save(ctx); err != nil {
			log.Printf("autosave: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule autosave: %w", err)
	}
	c.Start()
	s.autosaver = c
	return nil
}

// StopAutosave stops the schedule and performs a final save.
func (s *BoardService) StopAutosave(ctx context.Context) {
	s.mu.Lock()
	c := s.autosaver
	s.autosaver = nil
	s.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
	if err := s.Save(ctx); err != nil {
		log.Printf("final save: %v", err)
	}
}

// ── Image ingestion ────────────────────────────────────────

// ImportImage decodes a base64 data URL, writes it under the data dir
// and places an image block at the viewport center.
func (s *BoardService) ImportImage(ctx context.Context, dataURL string, viewWidth, viewHeight float64) (string, error) {
	data, err := decodeBase64Image(dataURL)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	s.mu.Lock()
	pageID := s.state.Board.CurrentPageID
	s.mu.Unlock()

	dir := filepath.Join(s.dataDir, "images", pageID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir for image: %w", err)
	}
	path := filepath.Join(dir, uuid.NewString()+".png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	var w, h float64
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		w, h = float64(cfg.Width), float64(cfg.Height)
	}

	s.Dispatch(ctx, engine.PlaceImage{
		Path:        path,
		ImageWidth:  w,
		ImageHeight: h,
		ViewWidth:   viewWidth,
		ViewHeight:  viewHeight,
	})
	return path, nil
}

// ReadImage returns an image block's file as a base64 data URL.
func (s *BoardService) ReadImage(path string) (string, error) {
	if !strings.HasPrefix(filepath.Clean(path), filepath.Join(s.dataDir, "images")) {
		return "", fmt.Errorf("image path outside data dir: %s", path)
	}
	return readBase64File(path)
}

// ── helpers ────────────────────────────────────────────────

func decodeBase64Image(dataURL string) ([]byte, error) {
	encoded := dataURL
	if idx := strings.Index(dataURL, ";base64,"); idx >= 0 {
		encoded = dataURL[idx+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(encoded)
}

func readBase64File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
