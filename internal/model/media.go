package model

import "time"

// MediaItem represents a tracked media item in the database.
type MediaItem struct {
	ID        string
	UserID    string
	Title     string
	Creator   string
	Type      string
	Units     string
	Progress  string
	UnitType  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateMediaRequest represents a new media item. Every field is required.
type CreateMediaRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Creator  string `json:"creator" validate:"required,max=255"`
	Type     string `json:"type" validate:"required,max=255"`
	Units    string `json:"units" validate:"required,max=64"`
	Progress string `json:"progress" validate:"required,max=64"`
	UnitType string `json:"unitType" validate:"required,max=64"`
}

// UpdateMediaRequest represents a partial update.
// Pointer fields distinguish a field that was not sent (nil, left unchanged)
// from one sent as an empty string (rejected).
type UpdateMediaRequest struct {
	Title    *string `json:"title" validate:"omitnil,min=1,max=255"`
	Creator  *string `json:"creator" validate:"omitnil,min=1,max=255"`
	Type     *string `json:"type" validate:"omitnil,min=1,max=255"`
	Units    *string `json:"units" validate:"omitnil,min=1,max=64"`
	Progress *string `json:"progress" validate:"omitnil,min=1,max=64"`
	UnitType *string `json:"unitType" validate:"omitnil,min=1,max=64"`
}

// MediaResponse represents a media item in API responses.
type MediaResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Title     string    `json:"title"`
	Creator   string    `json:"creator"`
	Type      string    `json:"type"`
	Units     string    `json:"units"`
	Progress  string    `json:"progress"`
	UnitType  string    `json:"unitType"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMediaResponse converts a stored item to its API shape.
func NewMediaResponse(m MediaItem) MediaResponse {
	return MediaResponse{
		ID:        m.ID,
		User:      m.UserID,
		Title:     m.Title,
		Creator:   m.Creator,
		Type:      m.Type,
		Units:     m.Units,
		Progress:  m.Progress,
		UnitType:  m.UnitType,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MessageResponse is a single-message body, e.g. {"msg":"Media removed"}.
type MessageResponse struct {
	Msg string `json:"msg"`
}
