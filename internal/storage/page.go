package storage

import (
	"database/sql"
	"fmt"
	"time"

	"blockboard/internal/domain"
)

// PageStore persists pages and the board-level key/value state.
type PageStore struct {
	db *DB
}

func NewPageStore(db *DB) *PageStore {
	return &PageStore{db: db}
}

func (s *PageStore) CreatePage(p *domain.Page) error {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	_, err := s.db.Conn().Exec(
		`INSERT INTO pages (id, name, sort_order, viewport_x, viewport_y, viewport_zoom, program, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.SortOrder, p.Viewport.OffsetX, p.Viewport.OffsetY, p.Viewport.Zoom, p.Program, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (s *PageStore) ListPages() ([]domain.Page, error) {
	rows, err := s.db.Conn().Query(
		`SELECT id, name, sort_order, viewport_x, viewport_y, viewport_zoom, program, created_at, updated_at FROM pages ORDER BY sort_order ASC, created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []domain.Page
	for rows.Next() {
		var p domain.Page
		if err := rows.Scan(&p.ID, &p.Name, &p.SortOrder, &p.Viewport.OffsetX, &p.Viewport.OffsetY, &p.Viewport.Zoom, &p.Program, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

func (s *PageStore) UpdatePage(p *domain.Page) error {
	p.UpdatedAt = time.Now()
	_, err := s.db.Conn().Exec(
		`UPDATE pages SET name = ?, sort_order = ?, viewport_x = ?, viewport_y = ?, viewport_zoom = ?, program = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.SortOrder, p.Viewport.OffsetX, p.Viewport.OffsetY, p.Viewport.Zoom, p.Program, p.UpdatedAt, p.ID,
	)
	return err
}

func (s *PageStore) DeletePage(id string) error {
	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM blocks WHERE page_id = ?`, id); err != nil {
		return fmt.Errorf("delete blocks: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM pages WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return tx.Commit()
}

// ───────────────────────────────────────────────
// Board key/value state
// ───────────────────────────────────────────────

func (s *PageStore) GetBoardValue(key string) (string, error) {
	var value string
	err := s.db.Conn().QueryRow(`SELECT value FROM board WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func (s *PageStore) SetBoardValue(key, value string) error {
	_, err := s.db.Conn().Exec(
		`INSERT INTO board (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}
