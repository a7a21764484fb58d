package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mediatrack/mediatrack-go/internal/model"
)

var ErrMediaNotFound = errors.New("media item not found")

const mediaColumns = `id, user_id, title, creator, media_type, units, progress, unit_type, created_at, updated_at`

// MediaRepository handles media item persistence operations.
type MediaRepository struct {
	db *sql.DB
}

// NewMediaRepository creates a new MediaRepository.
func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create inserts a new media item, assigning its ID and timestamps.
func (r *MediaRepository) Create(ctx context.Context, item *model.MediaItem) error {
	query := `INSERT INTO media_items (` + mediaColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id := uuid.NewString()
	ts := now()

	_, err := r.db.ExecContext(ctx, query,
		id, item.UserID, item.Title, item.Creator, item.Type,
		item.Units, item.Progress, item.UnitType, ts, ts,
	)
	if err != nil {
		return fmt.Errorf("insert media item: %w", err)
	}

	item.ID = id
	item.CreatedAt = ts
	item.UpdatedAt = ts
	return nil
}

// GetByID retrieves a media item by ID.
func (r *MediaRepository) GetByID(ctx context.Context, id string) (*model.MediaItem, error) {
	query := `SELECT ` + mediaColumns + ` FROM media_items WHERE id = ?`

	item := &model.MediaItem{}
	if err := scanMedia(r.db.QueryRowContext(ctx, query, id), item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("scan media item: %w", err)
	}
	return item, nil
}

// List retrieves every media item, oldest first.
func (r *MediaRepository) List(ctx context.Context) ([]model.MediaItem, error) {
	query := `SELECT ` + mediaColumns + ` FROM media_items ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list media items: %w", err)
	}
	defer rows.Close()

	var items []model.MediaItem
	for rows.Next() {
		var m model.MediaItem
		if err := scanMedia(rows, &m); err != nil {
			return nil, fmt.Errorf("scan media item: %w", err)
		}
		items = append(items, m)
	}

	return items, rows.Err()
}

// Update writes the six attributes of item and refreshes its updated_at.
// Owner and creation time are never rewritten. A row that no longer exists
// yields ErrMediaNotFound.
func (r *MediaRepository) Update(ctx context.Context, item *model.MediaItem) error {
	query := `UPDATE media_items
		SET title = ?, creator = ?, media_type = ?, units = ?, progress = ?, unit_type = ?, updated_at = ?
		WHERE id = ?`

	ts := now()
	result, err := r.db.ExecContext(ctx, query,
		item.Title, item.Creator, item.Type, item.Units, item.Progress, item.UnitType, ts,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("update media item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMediaNotFound
	}

	item.UpdatedAt = ts
	return nil
}

// Delete permanently removes a media item.
func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM media_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete media item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMedia(row scanner, m *model.MediaItem) error {
	return row.Scan(
		&m.ID, &m.UserID, &m.Title, &m.Creator, &m.Type,
		&m.Units, &m.Progress, &m.UnitType, &m.CreatedAt, &m.UpdatedAt,
	)
}
