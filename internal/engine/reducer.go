package engine

import (
	"time"

	"blockboard/internal/domain"
	"blockboard/internal/geom"
)

// ─────────────────────────────────────────────────────────────
// Reducer — one synchronous transition per input event
// ─────────────────────────────────────────────────────────────

// Zoom sensitivity of the wheel gesture.
const wheelZoomFactor = 0.01

// Reduce applies one event to the state and returns the next state plus
// the notices the shell should forward to the renderer. It is total: no
// event can panic or error, and unknown or stale targets degrade to
// no-op returns.
func Reduce(s State, ev Event) (State, []Notice) {
	switch ev := ev.(type) {
	case PointerDown:
		return pointerDown(s, ev)
	case PointerMove:
		return pointerMove(s, ev)
	case PointerUp:
		return pointerUp(s, ev)
	case DoubleClick:
		return doubleClick(s, ev)
	case Wheel:
		return wheel(s, ev)
	case KeyDown:
		return keyDown(s, ev)
	case CreateBlock:
		return createBlock(s, ev)
	case PlaceImage:
		return placeImage(s, ev)
	case DeleteSelection:
		return deleteSelection(s)
	case SendToFront:
		return reorder(s, ev.BlockID, true)
	case SendToBack:
		return reorder(s, ev.BlockID, false)
	case SelectBlock:
		return selectBlock(s, ev.BlockID)
	case ToggleBlock:
		return toggleBlock(s, ev.BlockID)
	case DeselectAll:
		return deselectAll(s)
	case AddPage:
		return addPage(s, ev)
	case RemovePage:
		return removePage(s, ev)
	case RenamePage:
		return renamePage(s, ev)
	case SwitchPage:
		return switchPage(s, ev)
	case SetProgram:
		return setProgram(s, ev)
	case SetBlockRects:
		return setBlockRects(s, ev)
	case DeleteBlocks:
		return deleteBlocks(s, ev)
	case SetInteractMode:
		s.InteractMode = ev.On
		return s, nil
	case Undo:
		return undo(s)
	case Redo:
		return redo(s)
	}
	return s, nil
}

// ── pointer-down ─────────────────────────────────────────────

func pointerDown(s State, ev PointerDown) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil {
		return s, nil
	}
	ui := s.pageUI(page.ID).clone()
	p := geom.ScreenToCanvas(geom.Point{X: ev.X, Y: ev.Y}, page.Viewport)

	// Middle button always pans, and panning is incompatible with an
	// active selection gesture.
	if ev.Button == ButtonMiddle {
		ui.Selected = nil
		ui.Preview = nil
		ui.Gesture = Pan{LastX: ev.X, LastY: ev.Y}
		return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicSelection}}
	}
	if ev.Button != ButtonLeft {
		return s, nil
	}

	// Resize handles win over everything else. They live on the
	// selection's bounding box, or on the hovered block when nothing is
	// selected yet — in that case the block becomes the sole selection
	// before the resize starts.
	if box, ok := selectionBounds(page, ui.Selected); ok {
		if h, hit := handleAt(box, p, page.Viewport.Zoom); hit {
			return startResize(s, page, ui, h, box)
		}
	} else if hov := page.BlockByID(ui.HoveringID); hov != nil {
		if h, hit := handleAt(hov.Rect(), p, page.Viewport.Zoom); hit {
			ui.Selected = NewIDSet(hov.ID)
			ui.EditingID = 0
			return startResize(s, page, ui, h, hov.Rect())
		}
	}

	// Inside the selection's bounds with no modifier: drag the whole
	// selection, even over gaps between the selected blocks.
	if box, ok := selectionBounds(page, ui.Selected); ok && !ev.Modifier && box.Contains(p) {
		return startDrag(s, page, ui, p)
	}

	top := topBlockAt(page, p)
	if top == nil {
		// Empty canvas: marquee. Modifier seeds it with the existing
		// selection; otherwise it starts from scratch. Any active edit
		// mode ends here.
		base := IDSet{}
		if ev.Modifier {
			base = ui.Selected.Clone()
		}
		ui.EditingID = 0
		ui.Preview = marqueePreview(page, geom.FromCorners(p, p), ev.Modifier, base)
		ui.Gesture = Marquee{Start: p, Current: p, Additive: ev.Modifier, Base: base}
		return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicSelection}, {Topic: TopicEditing}}
	}

	if ev.Modifier {
		// Multi-select toggle; no gesture starts.
		if ui.Selected.Has(top.ID) {
			ui.Selected = ui.Selected.Clone()
			delete(ui.Selected, top.ID)
		} else {
			ui.Selected = ui.Selected.Clone()
			if ui.Selected == nil {
				ui.Selected = IDSet{}
			}
			ui.Selected[top.ID] = struct{}{}
		}
		ui.Gesture = nil
		return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicSelection}}
	}

	// Unselected block: it becomes the sole selection and the drag
	// starts immediately. Selecting also leaves edit mode of any other
	// block.
	if !ui.Selected.Has(top.ID) {
		ui.Selected = NewIDSet(top.ID)
		if ui.EditingID != 0 && ui.EditingID != top.ID {
			ui.EditingID = 0
		}
	}
	return startDrag(s, page, ui, p)
}

func startDrag(s State, page *domain.Page, ui PageUI, p geom.Point) (State, []Notice) {
	origins := make(map[int]geom.Point, len(ui.Selected))
	ref := 0
	for id := range ui.Selected {
		b := page.BlockByID(id)
		if b == nil {
			continue
		}
		origins[id] = geom.Point{X: b.X, Y: b.Y}
		if ref == 0 || id < ref {
			ref = id
		}
	}
	if len(origins) == 0 {
		ui.Gesture = nil
		return s.withPageUI(page.ID, ui), nil
	}
	ui.Gesture = Drag{
		RefID:        ref,
		PointerStart: p,
		Origins:      origins,
		Before:       s.Board.Clone(),
	}
	return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicSelection}}
}

func startResize(s State, page *domain.Page, ui PageUI, h Handle, box geom.Rect) (State, []Notice) {
	r := Resize{
		Handle: h,
		Orig:   box,
		Before: s.Board.Clone(),
	}
	if len(ui.Selected) > 1 {
		r.Group = true
		for id := range ui.Selected {
			if b := page.BlockByID(id); b != nil {
				r.OrigBlocks = append(r.OrigBlocks, BlockGeom{ID: b.ID, Rect: b.Rect()})
			}
		}
	} else {
		for id := range ui.Selected {
			r.TargetID = id
		}
	}
	ui.Gesture = r
	return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicSelection}}
}

// ── pointer-move ─────────────────────────────────────────────

func pointerMove(s State, ev PointerMove) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil {
		return s, nil
	}
	ui := s.pageUI(page.ID)

	switch g := ui.Gesture.(type) {
	case Pan:
		b := s.Board.Clone()
		cp := b.CurrentPage()
		// Camera movement: raw screen delta, deliberately not divided
		// by zoom.
		cp.Viewport.OffsetX += ev.X - g.LastX
		cp.Viewport.OffsetY += ev.Y - g.LastY
		ui = ui.clone()
		ui.Gesture = Pan{LastX: ev.X, LastY: ev.Y}
		return s.withBoard(b).withPageUI(page.ID, ui), []Notice{{Topic: TopicViewport}}

	case Drag:
		p := geom.ScreenToCanvas(geom.Point{X: ev.X, Y: ev.Y}, page.Viewport)
		dx := p.X - g.PointerStart.X
		dy := p.Y - g.PointerStart.Y
		b := s.Board.Clone()
		cp := b.CurrentPage()
		moved := false
		for id, origin := range g.Origins {
			blk := cp.BlockByID(id)
			if blk == nil {
				continue // deleted mid-gesture; skip, never fail
			}
			nx, ny := origin.X+dx, origin.Y+dy
			if nx != blk.X || ny != blk.Y {
				moved = true
			}
			blk.X, blk.Y = nx, ny
			blk.UpdatedAt = time.Now()
		}
		if moved {
			g.Dirty = true
		}
		ui = ui.clone()
		ui.Gesture = g
		return s.withBoard(b).withPageUI(page.ID, ui), []Notice{{Topic: TopicBoard}}

	case Resize:
		p := geom.ScreenToCanvas(geom.Point{X: ev.X, Y: ev.Y}, page.Viewport)
		next := resizeRect(g.Handle, g.Orig, p, ev.Modifier)
		b := s.Board.Clone()
		cp := b.CurrentPage()
		if g.Group {
			for _, bg := range projectGroup(g.Orig, next, g.OrigBlocks) {
				if blk := cp.BlockByID(bg.ID); blk != nil {
					blk.SetRect(bg.Rect)
					blk.UpdatedAt = time.Now()
				}
			}
		} else {
			blk := cp.BlockByID(g.TargetID)
			if blk == nil {
				// Target deleted mid-gesture: invalid gesture target,
				// treated as a no-op state return.
				return s, nil
			}
			blk.SetRect(next)
			blk.UpdatedAt = time.Now()
		}
		if next != g.Orig {
			g.Dirty = true
		}
		ui = ui.clone()
		ui.Gesture = g
		return s.withBoard(b).withPageUI(page.ID, ui), []Notice{{Topic: TopicBoard}}

	case Marquee:
		p := geom.ScreenToCanvas(geom.Point{X: ev.X, Y: ev.Y}, page.Viewport)
		g.Current = p
		ui = ui.clone()
		ui.Gesture = g
		ui.Preview = marqueePreview(page, g.Box(), g.Additive, g.Base)
		return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicSelection}}
	}

	// Idle: track hover for handle display.
	p := geom.ScreenToCanvas(geom.Point{X: ev.X, Y: ev.Y}, page.Viewport)
	hover := 0
	if top := topBlockAt(page, p); top != nil {
		hover = top.ID
	}
	if hover == ui.HoveringID {
		return s, nil
	}
	ui = ui.clone()
	ui.HoveringID = hover
	return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicHover}}
}

// ── pointer-up ───────────────────────────────────────────────

func pointerUp(s State, _ PointerUp) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil {
		return s, nil
	}
	ui := s.pageUI(page.ID)
	if ui.Gesture == nil {
		return s, nil
	}

	var notices []Notice
	switch g := ui.Gesture.(type) {
	case Drag:
		// Pure clicks must not pollute the undo history: only a gesture
		// that actually moved something commits.
		if g.Dirty {
			s.History.Commit(g.Before)
			notices = append(notices, Notice{Topic: TopicBoard}, Notice{Topic: TopicHistory})
		}
	case Resize:
		if g.Dirty {
			s.History.Commit(g.Before)
			notices = append(notices, Notice{Topic: TopicBoard}, Notice{Topic: TopicHistory})
		}
	case Marquee:
		// Finalize: the preview becomes the selection, atomically with
		// the marquee teardown.
		ui = ui.clone()
		ui.Selected = ui.Preview
		ui.Preview = nil
		notices = append(notices, Notice{Topic: TopicSelection})
	case Pan:
		// Camera moves are not undoable.
	}

	ui = ui.clone()
	ui.Gesture = nil
	return s.withPageUI(page.ID, ui), notices
}

// ── double-click / keys ──────────────────────────────────────

func doubleClick(s State, ev DoubleClick) (State, []Notice) {
	if s.InteractMode {
		return s, nil
	}
	page := s.Board.CurrentPage()
	if page == nil {
		return s, nil
	}
	p := geom.ScreenToCanvas(geom.Point{X: ev.X, Y: ev.Y}, page.Viewport)
	top := topBlockAt(page, p)
	if top == nil {
		return s, nil
	}
	ui := s.pageUI(page.ID).clone()
	ui.EditingID = top.ID
	ui.Selected = NewIDSet(top.ID)
	ui.Preview = nil
	ui.Gesture = nil
	return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicEditing}, {Topic: TopicSelection}}
}

func keyDown(s State, ev KeyDown) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil {
		return s, nil
	}
	ui := s.pageUI(page.ID)

	switch ev.Key {
	case "Escape":
		if ui.EditingID != 0 {
			ui = ui.clone()
			ui.EditingID = 0
			return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicEditing}}
		}
		if len(ui.Selected) > 0 {
			ui = ui.clone()
			ui.Selected = nil
			ui.Preview = nil
			return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicSelection}}
		}
	case "Delete", "Backspace":
		if ev.Editing || len(ui.Selected) == 0 {
			return s, nil
		}
		return deleteSelection(s)
	}
	return s, nil
}

// ── wheel: zoom and trackpad pan ─────────────────────────────

func wheel(s State, ev Wheel) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil {
		return s, nil
	}
	b := s.Board.Clone()
	cp := b.CurrentPage()

	if !ev.Ctrl {
		// Two-finger scroll pans the camera.
		cp.Viewport.OffsetX -= ev.DeltaX
		cp.Viewport.OffsetY -= ev.DeltaY
		return s.withBoard(b), []Notice{{Topic: TopicViewport}}
	}

	oldZoom := cp.Viewport.Zoom
	newZoom := geom.Clamp(oldZoom+(-ev.DeltaY*wheelZoomFactor), domain.MinZoom, domain.MaxZoom)
	if newZoom == oldZoom {
		return s, nil
	}
	// Keep the canvas point under the pointer fixed across the zoom.
	scale := newZoom / oldZoom
	cp.Viewport.OffsetX = ev.X - (ev.X-cp.Viewport.OffsetX)*scale
	cp.Viewport.OffsetY = ev.Y - (ev.Y-cp.Viewport.OffsetY)*scale
	cp.Viewport.Zoom = newZoom
	return s.withBoard(b), []Notice{{Topic: TopicViewport}}
}

// ── block commands ───────────────────────────────────────────

func createBlock(s State, ev CreateBlock) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil {
		return s, nil
	}
	prev := s.Board.Clone()
	b := s.Board.Clone()
	cp := b.CurrentPage()

	now := time.Now()
	blk := domain.Block{
		ID:        b.NextBlockID(),
		ZIndex:    cp.MaxZIndex() + 1,
		PageSrc:   ev.PageSrc,
		CreatedAt: now,
		UpdatedAt: now,
	}
	blk.SetRect(geom.Rect{X: ev.X, Y: ev.Y, Width: ev.Width, Height: ev.Height})
	cp.Blocks = append(cp.Blocks, blk)

	s.History.Commit(prev)
	ui := s.pageUI(page.ID).clone()
	ui.Selected = NewIDSet(blk.ID)
	ui.Preview = nil
	return s.withBoard(b).withPageUI(page.ID, ui),
		[]Notice{{Topic: TopicBoard, Data: blk.ID}, {Topic: TopicSelection}, {Topic: TopicHistory}}
}

func placeImage(s State, ev PlaceImage) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil {
		return s, nil
	}
	w, h := ev.ImageWidth, ev.ImageHeight
	if w <= 0 {
		w = 300
	}
	if h <= 0 {
		h = 200
	}
	center := geom.ScreenToCanvas(
		geom.Point{X: ev.ViewWidth / 2, Y: ev.ViewHeight / 2},
		page.Viewport,
	)

	prev := s.Board.Clone()
	b := s.Board.Clone()
	cp := b.CurrentPage()
	now := time.Now()
	blk := domain.Block{
		ID:        b.NextBlockID(),
		ZIndex:    cp.MaxZIndex() + 1,
		ImageSrc:  ev.Path,
		CreatedAt: now,
		UpdatedAt: now,
	}
	blk.SetRect(geom.Rect{X: center.X - w/2, Y: center.Y - h/2, Width: w, Height: h})
	cp.Blocks = append(cp.Blocks, blk)

	s.History.Commit(prev)
	ui := s.pageUI(page.ID).clone()
	ui.Selected = NewIDSet(blk.ID)
	ui.Preview = nil
	return s.withBoard(b).withPageUI(page.ID, ui),
		[]Notice{{Topic: TopicBoard, Data: blk.ID}, {Topic: TopicSelection}, {Topic: TopicHistory}}
}

func deleteSelection(s State) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil {
		return s, nil
	}
	ui := s.pageUI(page.ID)
	if len(ui.Selected) == 0 {
		return s, nil
	}
	prev := s.Board.Clone()
	b := s.Board.Clone()
	cp := b.CurrentPage()
	for id := range ui.Selected {
		cp.RemoveBlock(id)
	}
	s.History.Commit(prev)
	ui = ui.clone()
	ui.Selected = nil
	ui.Preview = nil
	ui.EditingID = 0
	ui.Gesture = nil
	return s.withBoard(b).withPageUI(page.ID, ui),
		[]Notice{{Topic: TopicBoard}, {Topic: TopicSelection}, {Topic: TopicHistory}}
}

func reorder(s State, blockID int, front bool) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil || page.BlockByID(blockID) == nil {
		return s, nil
	}
	prev := s.Board.Clone()
	b := s.Board.Clone()
	cp := b.CurrentPage()
	blk := cp.BlockByID(blockID)
	if front {
		blk.ZIndex = cp.MaxZIndex() + 1
	} else {
		blk.ZIndex = cp.MinZIndex() - 1
	}
	blk.UpdatedAt = time.Now()
	s.History.Commit(prev)
	return s.withBoard(b), []Notice{{Topic: TopicBoard}, {Topic: TopicHistory}}
}

// ── selection commands ───────────────────────────────────────

func selectBlock(s State, blockID int) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil || page.BlockByID(blockID) == nil {
		return s, nil
	}
	ui := s.pageUI(page.ID).clone()
	ui.Selected = NewIDSet(blockID)
	ui.Preview = nil
	// Edit mode and multi-selection are mutually exclusive: selecting
	// always ends editing of a different block.
	if ui.EditingID != 0 && ui.EditingID != blockID {
		ui.EditingID = 0
	}
	return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicSelection}}
}

func toggleBlock(s State, blockID int) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil || page.BlockByID(blockID) == nil {
		return s, nil
	}
	ui := s.pageUI(page.ID).clone()
	if ui.Selected.Has(blockID) {
		delete(ui.Selected, blockID)
	} else {
		if ui.Selected == nil {
			ui.Selected = IDSet{}
		}
		ui.Selected[blockID] = struct{}{}
	}
	if ui.EditingID != 0 && ui.EditingID != blockID {
		ui.EditingID = 0
	}
	return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicSelection}}
}

func deselectAll(s State) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil {
		return s, nil
	}
	ui := s.pageUI(page.ID).clone()
	ui.Selected = nil
	ui.Preview = nil
	return s.withPageUI(page.ID, ui), []Notice{{Topic: TopicSelection}}
}

// ── page commands ────────────────────────────────────────────

func addPage(s State, ev AddPage) (State, []Notice) {
	prev := s.Board.Clone()
	b := s.Board.Clone()
	now := time.Now()
	name := ev.Name
	if name == "" {
		name = "Untitled"
	}
	b.Pages = append(b.Pages, domain.Page{
		ID:        ev.ID,
		Name:      name,
		SortOrder: len(b.Pages),
		Viewport:  geom.Viewport{Zoom: 1},
		CreatedAt: now,
		UpdatedAt: now,
	})
	b.CurrentPageID = ev.ID
	s.History.Commit(prev)
	return s.withBoard(b), []Notice{{Topic: TopicBoard, Data: ev.ID}, {Topic: TopicHistory}}
}

func removePage(s State, ev RemovePage) (State, []Notice) {
	if len(s.Board.Pages) <= 1 || s.Board.PageByID(ev.ID) == nil {
		return s, nil
	}
	prev := s.Board.Clone()
	b := s.Board.Clone()
	for i := range b.Pages {
		if b.Pages[i].ID == ev.ID {
			b.Pages = append(b.Pages[:i], b.Pages[i+1:]...)
			break
		}
	}
	if b.CurrentPageID == ev.ID {
		b.CurrentPageID = b.Pages[0].ID
	}
	s.History.Commit(prev)
	// Drop the removed page's transient state.
	ui := make(map[string]PageUI, len(s.UI))
	for k, v := range s.UI {
		if k != ev.ID {
			ui[k] = v
		}
	}
	s.UI = ui
	return s.withBoard(b), []Notice{{Topic: TopicBoard}, {Topic: TopicHistory}}
}

func renamePage(s State, ev RenamePage) (State, []Notice) {
	if s.Board.PageByID(ev.ID) == nil || ev.Name == "" {
		return s, nil
	}
	prev := s.Board.Clone()
	b := s.Board.Clone()
	p := b.PageByID(ev.ID)
	p.Name = ev.Name
	p.UpdatedAt = time.Now()
	s.History.Commit(prev)
	return s.withBoard(b), []Notice{{Topic: TopicBoard}, {Topic: TopicHistory}}
}

func switchPage(s State, ev SwitchPage) (State, []Notice) {
	if s.Board.PageByID(ev.ID) == nil || s.Board.CurrentPageID == ev.ID {
		return s, nil
	}
	// Abandon any gesture on the page being left.
	if old := s.Board.CurrentPageID; old != "" {
		ui := s.pageUI(old).clone()
		ui.Gesture = nil
		ui.Preview = nil
		s = s.withPageUI(old, ui)
	}
	b := s.Board.Clone()
	b.CurrentPageID = ev.ID
	return s.withBoard(b), []Notice{{Topic: TopicBoard}}
}

func setProgram(s State, ev SetProgram) (State, []Notice) {
	if s.Board.PageByID(ev.PageID) == nil {
		return s, nil
	}
	b := s.Board.Clone()
	p := b.PageByID(ev.PageID)
	p.Program = ev.Program
	p.UpdatedAt = time.Now()
	return s.withBoard(b), []Notice{{Topic: TopicBoard}}
}

func setBlockRects(s State, ev SetBlockRects) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil || len(ev.Rects) == 0 {
		return s, nil
	}
	prev := s.Board.Clone()
	b := s.Board.Clone()
	cp := b.CurrentPage()
	changed := false
	for _, br := range ev.Rects {
		blk := cp.BlockByID(br.BlockID)
		if blk == nil {
			continue
		}
		blk.SetRect(br.Rect)
		blk.UpdatedAt = time.Now()
		changed = true
	}
	if !changed {
		return s, nil
	}
	s.History.Commit(prev)
	return s.withBoard(b), []Notice{{Topic: TopicBoard}, {Topic: TopicHistory}}
}

func deleteBlocks(s State, ev DeleteBlocks) (State, []Notice) {
	page := s.Board.CurrentPage()
	if page == nil {
		return s, nil
	}
	found := false
	for _, id := range ev.BlockIDs {
		if page.BlockByID(id) != nil {
			found = true
			break
		}
	}
	if !found {
		return s, nil
	}
	prev := s.Board.Clone()
	b := s.Board.Clone()
	cp := b.CurrentPage()
	ui := s.pageUI(page.ID).clone()
	for _, id := range ev.BlockIDs {
		cp.RemoveBlock(id)
		delete(ui.Selected, id)
		delete(ui.Preview, id)
		if ui.EditingID == id {
			ui.EditingID = 0
		}
		if ui.HoveringID == id {
			ui.HoveringID = 0
		}
	}
	s.History.Commit(prev)
	return s.withBoard(b).withPageUI(page.ID, ui),
		[]Notice{{Topic: TopicBoard}, {Topic: TopicSelection}, {Topic: TopicHistory}}
}

// ── history ──────────────────────────────────────────────────

func undo(s State) (State, []Notice) {
	board, ok := s.History.Undo(s.Board)
	if !ok {
		return s, nil
	}
	s = s.withBoard(board).clearTransients()
	return s, []Notice{{Topic: TopicBoard}, {Topic: TopicSelection}, {Topic: TopicHistory}}
}

func redo(s State) (State, []Notice) {
	board, ok := s.History.Redo(s.Board)
	if !ok {
		return s, nil
	}
	s = s.withBoard(board).clearTransients()
	return s, []Notice{{Topic: TopicBoard}, {Topic: TopicSelection}, {Topic: TopicHistory}}
}
