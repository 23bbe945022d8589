package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campuspulse/campus-api/internal/models"
	"github.com/campuspulse/campus-api/pkg/timeutil"
)

type scheduleLister interface {
	ListByUser(ctx context.Context, userID string) ([]models.ScheduleEntry, error)
}

type statusGetter interface {
	Get(ctx context.Context, userID string) (*models.UserStatus, error)
}

// AvailabilityService answers point-in-time questions about a single user:
// the class they sit in now, the next one today, the one that just ended and
// how their status tag reads as social/study preferences. The reference
// instant is always an explicit parameter so results stay reproducible.
type AvailabilityService struct {
	schedules scheduleLister
	statuses  statusGetter
	logger    *zap.Logger
}

// AvailabilityServiceParams groups constructor dependencies.
type AvailabilityServiceParams struct {
	Schedules scheduleLister
	Statuses  statusGetter
	Logger    *zap.Logger
}

// NewAvailabilityService constructs an AvailabilityService.
func NewAvailabilityService(params AvailabilityServiceParams) *AvailabilityService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{
		schedules: params.Schedules,
		statuses:  params.Statuses,
		logger:    logger,
	}
}

// CurrentClass returns the first stored entry on the reference day whose
// closed [start, end] window contains the reference time, or nil when the
// user is free.
func (s *AvailabilityService) CurrentClass(ctx context.Context, userID string, at time.Time) (*models.ClassInfo, error) {
	entries, err := s.schedules.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := models.DayOf(at)
	clock := timeutil.Clock(at)
	for _, entry := range entries {
		if entry.Day != day || entry.StartTime == "" || entry.EndTime == "" {
			continue
		}
		if timeutil.Between(clock, entry.StartTime, entry.EndTime) {
			info := classInfoOf(entry)
			return &info, nil
		}
	}
	return nil, nil
}

// NextClass returns the earliest entry on the reference day starting
// strictly after the reference time. Ties keep store order. Nil means no
// more classes today.
func (s *AvailabilityService) NextClass(ctx context.Context, userID string, at time.Time) (*models.ClassInfo, error) {
	entries, err := s.schedules.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := models.DayOf(at)
	ref := timeutil.ToMinutes(timeutil.Clock(at))
	bestIdx := -1
	bestStart := 0
	for i, entry := range entries {
		if entry.Day != day || entry.StartTime == "" {
			continue
		}
		start := timeutil.ToMinutes(entry.StartTime)
		if start <= ref {
			continue
		}
		if bestIdx < 0 || start < bestStart {
			bestIdx = i
			bestStart = start
		}
	}
	if bestIdx < 0 {
		return nil, nil
	}
	info := classInfoOf(entries[bestIdx])
	return &info, nil
}

// RecentClass returns the entry on the reference day that ended closest
// before the reference time, when that gap is under an hour.
func (s *AvailabilityService) RecentClass(ctx context.Context, userID string, at time.Time) (*models.RecentClass, error) {
	entries, err := s.schedules.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := models.DayOf(at)
	ref := timeutil.ToMinutes(timeutil.Clock(at))
	minGap := 60
	var recent *models.RecentClass
	for _, entry := range entries {
		if entry.Day != day || entry.EndTime == "" {
			continue
		}
		gap := ref - timeutil.ToMinutes(entry.EndTime)
		if gap > 0 && gap < minGap {
			minGap = gap
			recent = &models.RecentClass{
				CourseCode:      entry.CourseCode,
				CourseName:      entry.CourseName,
				EndedMinutesAgo: gap,
			}
		}
	}
	return recent, nil
}

// Availability maps the user's status tag onto social/study preference
// levels. Users who never set a status report "unknown" with neutral
// preferences.
func (s *AvailabilityService) Availability(ctx context.Context, userID string) (models.Availability, error) {
	availability := models.Availability{
		Status:           "unknown",
		SocialPreference: models.PreferenceNeutral,
		StudyPreference:  models.PreferenceNeutral,
	}

	status, err := s.statuses.Get(ctx, userID)
	if err != nil {
		return availability, err
	}
	if status == nil || !status.Status.Valid() {
		return availability, nil
	}

	availability.Status = string(status.Status)
	switch status.Status {
	case models.StatusSocial:
		availability.SocialPreference = models.PreferenceHigh
		availability.StudyPreference = models.PreferenceLow
	case models.StatusTired, models.StatusBusy:
		availability.SocialPreference = models.PreferenceLow
		availability.StudyPreference = models.PreferenceLow
	case models.StatusStudying, models.StatusHelp:
		availability.SocialPreference = models.PreferenceLow
		availability.StudyPreference = models.PreferenceHigh
	case models.StatusFree:
		// neutral on both axes
	}
	return availability, nil
}

func classInfoOf(entry models.ScheduleEntry) models.ClassInfo {
	return models.ClassInfo{
		CourseCode: entry.CourseCode,
		CourseName: entry.CourseName,
		StartTime:  entry.StartTime,
		EndTime:    entry.EndTime,
		Location:   entry.Location,
	}
}
