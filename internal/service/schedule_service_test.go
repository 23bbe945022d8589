package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/models"
	"github.com/campuspulse/campus-api/internal/repository"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

type mockCalendarParser struct {
	entries []models.ScheduleEntry
	skipped int
	err     error
}

func (m *mockCalendarParser) Parse(r io.Reader, userID string) ([]models.ScheduleEntry, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	parsed := make([]models.ScheduleEntry, len(m.entries))
	copy(parsed, m.entries)
	for i := range parsed {
		parsed[i].UserID = userID
	}
	return parsed, m.skipped, nil
}

func newScheduleFixture(parser calendarParser) (*ScheduleService, *repository.ScheduleRepository) {
	schedules := repository.NewScheduleRepository()
	svc := NewScheduleService(ScheduleServiceParams{
		Schedules: schedules,
		Parser:    parser,
	})
	return svc, schedules
}

func TestScheduleServiceAdd(t *testing.T) {
	svc, _ := newScheduleFixture(nil)

	entry, err := svc.Add(context.Background(), "alice", dto.CreateScheduleEntryRequest{
		CourseCode: "CS 15-122",
		CourseName: "Principles of Imperative Computation",
		Day:        "monday",
		StartTime:  "09:00",
		EndTime:    "10:20",
		Location:   "GHC 4401",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "alice", entry.UserID)
	assert.Equal(t, models.DayMonday, entry.Day)
	assert.Equal(t, "GHC 4401", entry.Location)

	listed, err := svc.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, entry.ID, listed[0].ID)
}

func TestScheduleServiceAddValidation(t *testing.T) {
	svc, _ := newScheduleFixture(nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateScheduleEntryRequest
	}{
		{
			name: "missing course code",
			req:  dto.CreateScheduleEntryRequest{CourseName: "x", Day: "monday", StartTime: "09:00", EndTime: "10:20"},
		},
		{
			name: "unknown day",
			req:  dto.CreateScheduleEntryRequest{CourseCode: "CS 15-122", CourseName: "x", Day: "someday", StartTime: "09:00", EndTime: "10:20"},
		},
		{
			name: "malformed start time",
			req:  dto.CreateScheduleEntryRequest{CourseCode: "CS 15-122", CourseName: "x", Day: "monday", StartTime: "9am", EndTime: "10:20"},
		},
		{
			name: "malformed end time",
			req:  dto.CreateScheduleEntryRequest{CourseCode: "CS 15-122", CourseName: "x", Day: "monday", StartTime: "09:00", EndTime: "25:00"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(ctx, "alice", tc.req)
			require.Error(t, err)
			assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
		})
	}
}

func TestScheduleServiceRemoveOwnEntry(t *testing.T) {
	svc, schedules := newScheduleFixture(nil)
	ctx := context.Background()
	entry := addEntry(t, schedules, "alice", "CS 15-122", "monday", "09:00", "10:20")

	require.NoError(t, svc.Remove(ctx, entry.ID, "alice"))

	listed, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestScheduleServiceRemoveErrors(t *testing.T) {
	svc, schedules := newScheduleFixture(nil)
	ctx := context.Background()
	entry := addEntry(t, schedules, "alice", "CS 15-122", "monday", "09:00", "10:20")

	err := svc.Remove(ctx, "no-such-entry", "alice")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	err = svc.Remove(ctx, entry.ID, "bob")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceImport(t *testing.T) {
	parser := &mockCalendarParser{
		entries: []models.ScheduleEntry{
			{CourseCode: "CS 15-122", CourseName: "Imperative Computation", Day: models.DayMonday, StartTime: "09:00", EndTime: "10:20"},
			{CourseCode: "MATH 21-127", CourseName: "Concepts of Mathematics", Day: models.DayTuesday, StartTime: "11:30", EndTime: "12:50"},
		},
		skipped: 1,
	}
	svc, _ := newScheduleFixture(parser)
	ctx := context.Background()

	report, err := svc.Import(ctx, "alice", strings.NewReader("BEGIN:VCALENDAR"))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Entries, 2)
	for _, entry := range report.Entries {
		assert.Equal(t, "alice", entry.UserID)
		assert.NotEmpty(t, entry.ID)
	}

	listed, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestScheduleServiceImportParserFailure(t *testing.T) {
	parser := &mockCalendarParser{err: errors.New("not a calendar")}
	svc, _ := newScheduleFixture(parser)

	_, err := svc.Import(context.Background(), "alice", strings.NewReader("junk"))
	require.Error(t, err)

	listed, listErr := svc.List(context.Background(), "alice")
	require.NoError(t, listErr)
	assert.Empty(t, listed)
}
