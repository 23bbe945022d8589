package repository

import (
	"context"
	"sync"
	"time"

	"github.com/campuspulse/campus-api/internal/models"
)

// StatusRepository is the in-memory status store: at most one live record
// per user, latest upsert wins.
type StatusRepository struct {
	mu       sync.RWMutex
	statuses map[string]models.UserStatus
}

// NewStatusRepository creates an empty status store.
func NewStatusRepository() *StatusRepository {
	return &StatusRepository{statuses: make(map[string]models.UserStatus)}
}

// Upsert replaces the user's status record.
func (r *StatusRepository) Upsert(ctx context.Context, userID string, tag models.StatusTag, at time.Time) (models.UserStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := models.UserStatus{UserID: userID, Status: tag, UpdatedAt: at}
	r.statuses[userID] = status
	return status, nil
}

// Get returns the user's status record, or nil when none was ever set.
// Callers decide what absence means on their surface.
func (r *StatusRepository) Get(ctx context.Context, userID string) (*models.UserStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status, ok := r.statuses[userID]
	if !ok {
		return nil, nil
	}
	return &status, nil
}
