package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mediatrack/mediatrack-go/internal/model"
	"github.com/mediatrack/mediatrack-go/internal/repository"
)

var (
	ErrMediaNotFound = errors.New("media not found")
	ErrForbidden     = errors.New("user not authorized")
	ErrOwnerNotFound = errors.New("owner does not exist")
)

// MediaStore persists media items.
type MediaStore interface {
	Create(ctx context.Context, item *model.MediaItem) error
	GetByID(ctx context.Context, id string) (*model.MediaItem, error)
	List(ctx context.Context) ([]model.MediaItem, error)
	Update(ctx context.Context, item *model.MediaItem) error
	Delete(ctx context.Context, id string) error
}

// MediaService handles media item business logic. Any authenticated user may
// read every item; only the owner may update or delete one.
type MediaService struct {
	items    MediaStore
	users    UserStore
	validate *requestValidator
}

// NewMediaService creates a new MediaService.
func NewMediaService(items MediaStore, users UserStore) *MediaService {
	return &MediaService{
		items:    items,
		users:    users,
		validate: newRequestValidator(),
	}
}

// Create stores a new media item owned by ownerID.
func (s *MediaService) Create(ctx context.Context, ownerID string, req model.CreateMediaRequest) (model.MediaResponse, error) {
	req = model.CreateMediaRequest{
		Title:    strings.TrimSpace(req.Title),
		Creator:  strings.TrimSpace(req.Creator),
		Type:     strings.TrimSpace(req.Type),
		Units:    strings.TrimSpace(req.Units),
		Progress: strings.TrimSpace(req.Progress),
		UnitType: strings.TrimSpace(req.UnitType),
	}
	if err := s.validate.Struct(req); err != nil {
		return model.MediaResponse{}, err
	}

	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.MediaResponse{}, ErrOwnerNotFound
		}
		return model.MediaResponse{}, err
	}

	item := model.MediaItem{
		UserID:   ownerID,
		Title:    req.Title,
		Creator:  req.Creator,
		Type:     req.Type,
		Units:    req.Units,
		Progress: req.Progress,
		UnitType: req.UnitType,
	}
	if err := s.items.Create(ctx, &item); err != nil {
		return model.MediaResponse{}, err
	}

	return model.NewMediaResponse(item), nil
}

// List returns every media item regardless of owner.
func (s *MediaService) List(ctx context.Context) ([]model.MediaResponse, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]model.MediaResponse, len(items))
	for i, m := range items {
		resp[i] = model.NewMediaResponse(m)
	}
	return resp, nil
}

// Get returns a single media item.
func (s *MediaService) Get(ctx context.Context, id string) (model.MediaResponse, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return model.MediaResponse{}, err
	}
	return model.NewMediaResponse(*item), nil
}

// Update applies the supplied fields of req to the item. Fields left nil are
// unchanged; supplied fields must not be blank.
func (s *MediaService) Update(ctx context.Context, id, requesterID string, req model.UpdateMediaRequest) (model.MediaResponse, error) {
	req = model.UpdateMediaRequest{
		Title:    trimPtr(req.Title),
		Creator:  trimPtr(req.Creator),
		Type:     trimPtr(req.Type),
		Units:    trimPtr(req.Units),
		Progress: trimPtr(req.Progress),
		UnitType: trimPtr(req.UnitType),
	}
	if err := s.validate.Struct(req); err != nil {
		return model.MediaResponse{}, err
	}

	item, err := s.findOwned(ctx, id, requesterID)
	if err != nil {
		return model.MediaResponse{}, err
	}

	apply(&item.Title, req.Title)
	apply(&item.Creator, req.Creator)
	apply(&item.Type, req.Type)
	apply(&item.Units, req.Units)
	apply(&item.Progress, req.Progress)
	apply(&item.UnitType, req.UnitType)

	if err := s.items.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return model.MediaResponse{}, ErrMediaNotFound
		}
		return model.MediaResponse{}, err
	}

	return model.NewMediaResponse(*item), nil
}

// Delete permanently removes an item owned by requesterID.
func (s *MediaService) Delete(ctx context.Context, id, requesterID string) error {
	if _, err := s.findOwned(ctx, id, requesterID); err != nil {
		return err
	}

	err := s.items.Delete(ctx, id)
	if errors.Is(err, repository.ErrMediaNotFound) {
		return ErrMediaNotFound
	}
	return err
}

func (s *MediaService) find(ctx context.Context, id string) (*model.MediaItem, error) {
	// IDs are store-assigned UUIDs; anything else cannot exist.
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMediaNotFound
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *MediaService) findOwned(ctx context.Context, id, requesterID string) (*model.MediaItem, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.UserID != requesterID {
		return nil, ErrForbidden
	}
	return item, nil
}

func apply(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
