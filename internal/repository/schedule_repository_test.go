package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

func insertEntry(t *testing.T, repo *ScheduleRepository, userID, code, day string) models.ScheduleEntry {
	t.Helper()
	entry, err := repo.Insert(context.Background(), models.ScheduleEntry{
		UserID:     userID,
		CourseCode: code,
		CourseName: code + " lecture",
		Day:        models.Day(day),
		StartTime:  "09:00",
		EndTime:    "10:20",
	})
	require.NoError(t, err)
	return entry
}

func TestScheduleRepositoryInsertAssignsID(t *testing.T) {
	repo := NewScheduleRepository()

	entry := insertEntry(t, repo, "alice", "CS 15-122", "monday")
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestScheduleRepositoryListByUserKeepsAppendOrder(t *testing.T) {
	repo := NewScheduleRepository()
	ctx := context.Background()

	insertEntry(t, repo, "alice", "CS 15-122", "monday")
	insertEntry(t, repo, "alice", "MATH 21-127", "tuesday")
	insertEntry(t, repo, "bob", "CS 15-150", "tuesday")

	entries, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "CS 15-122", entries[0].CourseCode)
	assert.Equal(t, "MATH 21-127", entries[1].CourseCode)

	empty, err := repo.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestScheduleRepositoryDeleteOwnEntry(t *testing.T) {
	repo := NewScheduleRepository()
	ctx := context.Background()

	entry := insertEntry(t, repo, "alice", "CS 15-122", "monday")

	require.NoError(t, repo.Delete(ctx, entry.ID, "alice"))

	entries, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScheduleRepositoryDeleteMissingEntry(t *testing.T) {
	repo := NewScheduleRepository()

	err := repo.Delete(context.Background(), "missing", "alice")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestScheduleRepositoryDeleteForeignEntryRejected(t *testing.T) {
	repo := NewScheduleRepository()
	ctx := context.Background()

	entry := insertEntry(t, repo, "alice", "CS 15-122", "monday")

	err := repo.Delete(ctx, entry.ID, "bob")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrForbidden))

	entries, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
