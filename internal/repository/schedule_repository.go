package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

// ScheduleRepository is the in-memory schedule store. Entries are keyed by
// id with a per-user append-order index; per-user listing preserves that
// order.
type ScheduleRepository struct {
	mu      sync.RWMutex
	entries map[string]models.ScheduleEntry
	byUser  map[string][]string
}

// NewScheduleRepository creates an empty schedule store.
func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{
		entries: make(map[string]models.ScheduleEntry),
		byUser:  make(map[string][]string),
	}
}

// Insert stores a new entry, assigning id and creation time when unset.
func (r *ScheduleRepository) Insert(ctx context.Context, entry models.ScheduleEntry) (models.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	r.entries[entry.ID] = entry
	r.byUser[entry.UserID] = append(r.byUser[entry.UserID], entry.ID)
	return entry, nil
}

// Delete removes an entry owned by the requesting user. A missing id is not
// found; an id owned by another user is rejected without mutation.
func (r *ScheduleRepository) Delete(ctx context.Context, entryID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[entryID]
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "schedule not found")
	}
	if entry.UserID != userID {
		return appErrors.Clone(appErrors.ErrForbidden, "not authorized to remove this schedule")
	}

	delete(r.entries, entryID)
	ids := r.byUser[userID]
	for i, id := range ids {
		if id == entryID {
			r.byUser[userID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// ListByUser returns the user's entries in append order. Unknown users get
// an empty list.
func (r *ScheduleRepository) ListByUser(ctx context.Context, userID string) ([]models.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	out := make([]models.ScheduleEntry, 0, len(ids))
	for _, id := range ids {
		if entry, ok := r.entries[id]; ok {
			out = append(out, entry)
		}
	}
	return out, nil
}
