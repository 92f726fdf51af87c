package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"blockboard/internal/assets"
	"blockboard/internal/engine"
	"blockboard/internal/service"
	"blockboard/internal/storage"
)

// App is the main Wails application struct.
// All exported methods are available as Wails bindings.
type App struct {
	ctx context.Context

	db      *storage.DB
	board   *service.BoardService
	watcher *assets.Watcher
	windows *service.WindowSettingsService
}

// New creates a new App.
func New() *App {
	return &App{}
}

// Emit implements service.EventEmitter by delegating to the Wails
// runtime. Before Startup finishes there is no frontend to notify.
func (a *App) Emit(ctx context.Context, event string, data any) {
	if a.ctx == nil {
		return
	}
	wailsRuntime.EventsEmit(ctx, event, data)
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".local", "share", "blockboard")
	dbPath := filepath.Join(dataDir, "blockboard.db")

	db, err := storage.New(dbPath, dataDir)
	if err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to open database: %v", err)
		return
	}
	a.db = db
	a.board = service.NewBoardService(storage.NewBoardStore(db), dataDir, a)

	a.windows = service.NewWindowSettingsService(db)
	size := a.windows.LoadWindowSize()
	wailsRuntime.WindowSetSize(ctx, size.Width, size.Height)

	if err := a.board.Load(ctx); err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to load board: %v", err)
		return
	}
	if err := a.board.StartAutosave(ctx, "@every 30s"); err != nil {
		wailsRuntime.LogErrorf(ctx, "Failed to start autosave: %v", err)
	}

	// Image files can be edited by external tools while the app runs.
	watcher, err := assets.New(func(blockID int, path string) {
		wailsRuntime.EventsEmit(ctx, "asset:changed", map[string]any{
			"blockId": blockID,
			"path":    path,
		})
	})
	if err != nil {
		wailsRuntime.LogErrorf(ctx, "Failed to create asset watcher: %v", err)
	}
	a.watcher = watcher
	a.rewatchAssets()
}

// Shutdown is called when the app is closing.
func (a *App) Shutdown(ctx context.Context) {
	if a.windows != nil {
		w, h := wailsRuntime.WindowGetSize(ctx)
		a.windows.SaveWindowSize(w, h)
	}
	if a.board != nil {
		a.board.StopAutosave(ctx)
	}
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

// rewatchAssets registers every image block's file with the watcher.
func (a *App) rewatchAssets() {
	if a.watcher == nil {
		return
	}
	board := a.board.Snapshot()
	for _, p := range board.Pages {
		for _, b := range p.Blocks {
			if b.ImageSrc != "" {
				a.watcher.Watch(b.ID, b.ImageSrc)
			}
		}
	}
}

// ============================================================
// Pointer and keyboard input
// ============================================================

func (a *App) PointerDown(x, y float64, button int, modifier bool) {
	a.board.Dispatch(a.ctx, engine.PointerDown{X: x, Y: y, Button: engine.Button(button), Modifier: modifier})
}

func (a *App) PointerMove(x, y float64, modifier bool) {
	a.board.Dispatch(a.ctx, engine.PointerMove{X: x, Y: y, Modifier: modifier})
}

func (a *App) PointerUp(x, y float64) {
	a.board.Dispatch(a.ctx, engine.PointerUp{X: x, Y: y})
}

func (a *App) DoubleClick(x, y float64) {
	a.board.Dispatch(a.ctx, engine.DoubleClick{X: x, Y: y})
}

func (a *App) Wheel(x, y, deltaX, deltaY float64, ctrl bool) {
	a.board.Dispatch(a.ctx, engine.Wheel{X: x, Y: y, DeltaX: deltaX, DeltaY: deltaY, Ctrl: ctrl})
}

func (a *App) KeyDown(key string, editing bool) {
	a.board.Dispatch(a.ctx, engine.KeyDown{Key: key, Editing: editing})
}

// ============================================================
// Board state
// ============================================================

// GetState returns the full render state for the frontend.
func (a *App) GetState() service.BoardView {
	return a.board.CurrentState()
}

// SaveNow forces a flush of dirty state, bypassing the autosave timer.
func (a *App) SaveNow() error {
	return a.board.Save(a.ctx)
}

func (a *App) Undo() {
	a.board.Dispatch(a.ctx, engine.Undo{})
}

func (a *App) Redo() {
	a.board.Dispatch(a.ctx, engine.Redo{})
}

func (a *App) SetInteractMode(on bool) {
	a.board.Dispatch(a.ctx, engine.SetInteractMode{On: on})
}

// ============================================================
// Blocks
// ============================================================

func (a *App) CreateBlock(x, y, width, height float64) {
	a.board.Dispatch(a.ctx, engine.CreateBlock{X: x, Y: y, Width: width, Height: height})
}

func (a *App) DeleteSelection() {
	a.board.Dispatch(a.ctx, engine.DeleteSelection{})
}

func (a *App) SendToFront(blockID int) {
	a.board.Dispatch(a.ctx, engine.SendToFront{BlockID: blockID})
}

func (a *App) SendToBack(blockID int) {
	a.board.Dispatch(a.ctx, engine.SendToBack{BlockID: blockID})
}

func (a *App) SelectBlock(blockID int) {
	a.board.Dispatch(a.ctx, engine.SelectBlock{BlockID: blockID})
}

func (a *App) ToggleBlock(blockID int) {
	a.board.Dispatch(a.ctx, engine.ToggleBlock{BlockID: blockID})
}

func (a *App) DeselectAll() {
	a.board.Dispatch(a.ctx, engine.DeselectAll{})
}

// ============================================================
// Images
// ============================================================

// ImportImage drops a pasted or picked image onto the current page.
// The data URL is decoded to a file; only the path is kept in state.
func (a *App) ImportImage(dataURL string, viewWidth, viewHeight float64) (string, error) {
	path, err := a.board.ImportImage(a.ctx, dataURL, viewWidth, viewHeight)
	if err != nil {
		return "", err
	}
	a.rewatchAssets()
	return path, nil
}

// GetImageData reads an image file back as a base64 data URL.
// Called lazily by the frontend for each image block.
func (a *App) GetImageData(path string) (string, error) {
	return a.board.ReadImage(path)
}

// PickImageFile opens a native file picker for selecting an image.
func (a *App) PickImageFile() (string, error) {
	return wailsRuntime.OpenFileDialog(a.ctx, wailsRuntime.OpenDialogOptions{
		Title: "Select Image",
		Filters: []wailsRuntime.FileFilter{
			{DisplayName: "Images", Pattern: "*.png;*.jpg;*.jpeg;*.webp;*.gif"},
			{DisplayName: "All Files", Pattern: "*.*"},
		},
	})
}

// ============================================================
// Pages
// ============================================================

func (a *App) AddPage(name string) string {
	id := uuid.New().String()
	a.board.Dispatch(a.ctx, engine.AddPage{ID: id, Name: name})
	return id
}

func (a *App) RemovePage(id string) {
	a.board.Dispatch(a.ctx, engine.RemovePage{ID: id})
}

func (a *App) RenamePage(id, name string) {
	a.board.Dispatch(a.ctx, engine.RenamePage{ID: id, Name: name})
}

func (a *App) SwitchPage(id string) {
	a.board.Dispatch(a.ctx, engine.SwitchPage{ID: id})
}

func (a *App) SetProgram(pageID, program string) {
	a.board.Dispatch(a.ctx, engine.SetProgram{PageID: pageID, Program: program})
}
