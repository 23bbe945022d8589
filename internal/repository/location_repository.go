package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

// LocationRepository holds the campus building directory. Written once at
// seed time, read-only afterwards.
type LocationRepository struct {
	mu        sync.RWMutex
	locations map[string]models.Location
}

// NewLocationRepository creates an empty location store.
func NewLocationRepository() *LocationRepository {
	return &LocationRepository{locations: make(map[string]models.Location)}
}

// Put stores or replaces a building entry.
func (r *LocationRepository) Put(ctx context.Context, loc models.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.locations[loc.Code] = loc
	return nil
}

// Get returns the building with the given code.
func (r *LocationRepository) Get(ctx context.Context, code string) (models.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, ok := r.locations[code]
	if !ok {
		return models.Location{}, appErrors.Clone(appErrors.ErrNotFound, "location not found")
	}
	return loc, nil
}

// List returns all buildings sorted by code.
func (r *LocationRepository) List(ctx context.Context) ([]models.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Location, 0, len(r.locations))
	for _, loc := range r.locations {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
