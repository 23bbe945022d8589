package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

func TestLocationRepositoryListSortedByCode(t *testing.T) {
	repo := NewLocationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, models.Location{Code: "WEH", Name: "Wean Hall"}))
	require.NoError(t, repo.Put(ctx, models.Location{Code: "DH", Name: "Doherty Hall"}))
	require.NoError(t, repo.Put(ctx, models.Location{Code: "GHC", Name: "Gates Hillman Center"}))

	locations, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 3)
	assert.Equal(t, "DH", locations[0].Code)
	assert.Equal(t, "GHC", locations[1].Code)
	assert.Equal(t, "WEH", locations[2].Code)
}

func TestLocationRepositoryGet(t *testing.T) {
	repo := NewLocationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, models.Location{Code: "GHC", Name: "Gates Hillman Center"}))

	loc, err := repo.Get(ctx, "GHC")
	require.NoError(t, err)
	assert.Equal(t, "Gates Hillman Center", loc.Name)

	_, err = repo.Get(ctx, "ZZZ")
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
