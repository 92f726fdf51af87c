package storage

import (
	"fmt"
	"time"

	"blockboard/internal/domain"
)

// BlockStore persists canvas blocks in SQLite.
type BlockStore struct {
	db *DB
}

func NewBlockStore(db *DB) *BlockStore {
	return &BlockStore{db: db}
}

func (s *BlockStore) CreateBlock(pageID string, b *domain.Block) error {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	_, err := s.db.Conn().Exec(
		`INSERT INTO blocks (id, page_id, x, y, width, height, z_index, image_src, page_src, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, pageID, b.X, b.Y, b.Width, b.Height, b.ZIndex, b.ImageSrc, b.PageSrc, b.CreatedAt, b.UpdatedAt,
	)
	return err
}

func (s *BlockStore) ListBlocks(pageID string) ([]domain.Block, error) {
	rows, err := s.db.Conn().Query(
		`SELECT id, x, y, width, height, z_index, image_src, page_src, created_at, updated_at FROM blocks WHERE page_id = ? ORDER BY created_at ASC`,
		pageID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []domain.Block
	for rows.Next() {
		var b domain.Block
		if err := rows.Scan(&b.ID, &b.X, &b.Y, &b.Width, &b.Height, &b.ZIndex, &b.ImageSrc, &b.PageSrc, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func (s *BlockStore) UpdateBlock(pageID string, b *domain.Block) error {
	b.UpdatedAt = time.Now()
	_, err := s.db.Conn().Exec(
		`UPDATE blocks SET x = ?, y = ?, width = ?, height = ?, z_index = ?, image_src = ?, page_src = ?, updated_at = ? WHERE id = ? AND page_id = ?`,
		b.X, b.Y, b.Width, b.Height, b.ZIndex, b.ImageSrc, b.PageSrc, b.UpdatedAt, b.ID, pageID,
	)
	return err
}

func (s *BlockStore) DeleteBlock(pageID string, id int) error {
	_, err := s.db.Conn().Exec(`DELETE FROM blocks WHERE id = ? AND page_id = ?`, id, pageID)
	return err
}

func (s *BlockStore) DeleteBlocksByPage(pageID string) error {
	_, err := s.db.Conn().Exec(`DELETE FROM blocks WHERE page_id = ?`, pageID)
	return err
}

// ReplacePageBlocks atomically replaces all blocks for a page.
// Used when writing a whole board snapshot.
func (s *BlockStore) ReplacePageBlocks(pageID string, blocks []domain.Block) error {
	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM blocks WHERE page_id = ?`, pageID); err != nil {
		return fmt.Errorf("delete blocks: %w", err)
	}

	now := time.Now()
	for _, b := range blocks {
		created := b.CreatedAt
		if created.IsZero() {
			created = now
		}
		_, err := tx.Exec(
			`INSERT INTO blocks (id, page_id, x, y, width, height, z_index, image_src, page_src, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.ID, pageID, b.X, b.Y, b.Width, b.Height, b.ZIndex, b.ImageSrc, b.PageSrc, created, now,
		)
		if err != nil {
			return fmt.Errorf("insert block %d: %w", b.ID, err)
		}
	}

	return tx.Commit()
}
