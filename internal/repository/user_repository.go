package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

// UserRepository is the in-memory user store. Iteration order is insertion
// order, which downstream consumers rely on for stable board and
// recommendation output.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
	order []string
}

// NewUserRepository creates an empty user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]models.User)}
}

// GetOrCreate returns the user matching both username and major, creating a
// fresh record on first sight. Matching is exact on both fields.
func (r *UserRepository) GetOrCreate(ctx context.Context, username, major string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		u := r.users[id]
		if u.Username == username && u.Major == major {
			return u, nil
		}
	}

	user := models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Major:     major,
		CreatedAt: time.Now().UTC(),
	}
	r.users[user.ID] = user
	r.order = append(r.order, user.ID)
	return user, nil
}

// GetByID returns the user with the given id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return models.User{}, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return u, nil
}

// List returns all users in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out, nil
}

// SetAvatar updates the avatar URL, the only mutable user field.
func (r *UserRepository) SetAvatar(ctx context.Context, id, avatar string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return models.User{}, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	u.Avatar = avatar
	r.users[id] = u
	return u, nil
}
