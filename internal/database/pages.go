package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pagehub/internal/models"

	"github.com/jackc/pgx/v5"
)

var ErrPageNotFound = errors.New("page not found")

type CreatePageParams struct {
	ID      string
	OwnerID int64
	Title   string
	Blocks  []models.Block
}

func marshalBlocks(blocks []models.Block) ([]byte, error) {
	if blocks == nil {
		blocks = []models.Block{}
	}
	data, err := json.Marshal(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal page blocks: %w", err)
	}
	return data, nil
}

func scanPage(row pgx.Row) (*models.Page, error) {
	var page models.Page
	var blocksRaw []byte

	err := row.Scan(
		&page.ID,
		&page.OwnerID,
		&page.Title,
		&blocksRaw,
		&page.IsDeleted,
		&page.CreatedAt,
		&page.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(blocksRaw, &page.Blocks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal page blocks: %w", err)
	}
	return &page, nil
}

func (q *Queries) CreatePage(ctx context.Context, arg CreatePageParams) (*models.Page, error) {
	blocksJSON, err := marshalBlocks(arg.Blocks)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO pages (id, owner_id, title, blocks)
		VALUES ($1, $2, $3, $4)
		RETURNING id, owner_id, title, blocks, is_deleted, created_at, modified_at
	`
	return scanPage(q.db.QueryRow(ctx, query, arg.ID, arg.OwnerID, arg.Title, blocksJSON))
}

// GetPageByID looks a page up scoped to its owner. Soft-deleted pages are
// invisible here.
func (q *Queries) GetPageByID(ctx context.Context, id string, ownerID int64) (*models.Page, error) {
	query := `
		SELECT id, owner_id, title, blocks, is_deleted, created_at, modified_at
		FROM pages
		WHERE id = $1 AND owner_id = $2 AND is_deleted = FALSE
	`
	return scanPage(q.db.QueryRow(ctx, query, id, ownerID))
}

func (q *Queries) ListPages(ctx context.Context, ownerID int64) ([]models.Page, error) {
	query := `
		SELECT id, owner_id, title, blocks, is_deleted, created_at, modified_at
		FROM pages
		WHERE owner_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC
	`
	rows, err := q.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		var page models.Page
		var blocksRaw []byte
		err := rows.Scan(
			&page.ID,
			&page.OwnerID,
			&page.Title,
			&blocksRaw,
			&page.IsDeleted,
			&page.CreatedAt,
			&page.ModifiedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(blocksRaw, &page.Blocks); err != nil {
			return nil, fmt.Errorf("failed to unmarshal page blocks: %w", err)
		}
		pages = append(pages, page)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if pages == nil {
		return []models.Page{}, nil
	}

	return pages, nil
}

// UpdatePage replaces title and blocks of a page owned by ownerID. The match
// is scoped to the authenticated owner, never to a caller-supplied one.
func (q *Queries) UpdatePage(ctx context.Context, id string, ownerID int64, title string, blocks []models.Block) (*models.Page, error) {
	blocksJSON, err := marshalBlocks(blocks)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE pages
		SET title = $1, blocks = $2, modified_at = now()
		WHERE id = $3 AND owner_id = $4 AND is_deleted = FALSE
		RETURNING id, owner_id, title, blocks, is_deleted, created_at, modified_at
	`
	page, err := scanPage(q.db.QueryRow(ctx, query, title, blocksJSON, id, ownerID))
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrPageNotFound
	}
	return page, nil
}

// SoftDeletePage flips the is_deleted flag; the row stays in place. There is
// no hard-delete pathway for pages.
func (q *Queries) SoftDeletePage(ctx context.Context, id string, ownerID int64) (bool, error) {
	query := `
		UPDATE pages
		SET is_deleted = TRUE, modified_at = now()
		WHERE id = $1 AND owner_id = $2 AND is_deleted = FALSE
	`
	res, err := q.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// CountActivePages is the quota input: non-deleted pages owned by the user.
func (q *Queries) CountActivePages(ctx context.Context, ownerID int64) (int, error) {
	var count int
	query := `SELECT count(*) FROM pages WHERE owner_id = $1 AND is_deleted = FALSE`
	err := q.db.QueryRow(ctx, query, ownerID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (q *Queries) PageExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pages WHERE id = $1)`
	err := q.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
