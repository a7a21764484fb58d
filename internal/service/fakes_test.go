package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mediatrack/mediatrack-go/internal/model"
	"github.com/mediatrack/mediatrack-go/internal/repository"
)

var errStoreDown = errors.New("store unavailable")

type fakeUserStore struct {
	mu      sync.Mutex
	byID    map[string]model.User
	creates int
	err     error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: make(map[string]model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, u := range f.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = uuid.NewString()
	f.byID[user.ID] = *user
	f.creates++
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

type fakeMediaStore struct {
	mu    sync.Mutex
	items map[string]model.MediaItem
	err   error

	// vanishAfterGet removes an item once it has been read, as a concurrent
	// delete would.
	vanishAfterGet bool
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{items: make(map[string]model.MediaItem)}
}

func (f *fakeMediaStore) Create(_ context.Context, item *model.MediaItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	item.ID = uuid.NewString()
	f.items[item.ID] = *item
	return nil
}

func (f *fakeMediaStore) GetByID(_ context.Context, id string) (*model.MediaItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.items[id]
	if !ok {
		return nil, repository.ErrMediaNotFound
	}
	if f.vanishAfterGet {
		delete(f.items, id)
	}
	return &m, nil
}

func (f *fakeMediaStore) List(_ context.Context) ([]model.MediaItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []model.MediaItem
	for _, m := range f.items {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMediaStore) Update(_ context.Context, item *model.MediaItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[item.ID]; !ok {
		return repository.ErrMediaNotFound
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeMediaStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[id]; !ok {
		return repository.ErrMediaNotFound
	}
	delete(f.items, id)
	return nil
}

// plainHasher is a cheap reversible stand-in for bcrypt.
type plainHasher struct {
	hashes int
}

func (h *plainHasher) Hash(password string) (string, error) {
	h.hashes++
	return "hashed:" + password, nil
}

func (h *plainHasher) Compare(hash, password string) (bool, error) {
	if !strings.HasPrefix(hash, "hashed:") {
		return false, errors.New("malformed hash")
	}
	return hash == "hashed:"+password, nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(userID string) (string, error) {
	return "token-for-" + userID, nil
}
