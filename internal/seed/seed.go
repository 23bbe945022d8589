// Package seed loads demo fixtures into the in-memory stores. It runs only
// when explicitly enabled, so production instances start empty.
package seed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/campuspulse/campus-api/internal/models"
	"github.com/campuspulse/campus-api/internal/repository"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

// Fixture is the on-disk seed format. Every section is optional.
type Fixture struct {
	Users     []UserFixture     `json:"users"`
	Locations []models.Location `json:"locations"`
}

// UserFixture describes one demo account with its schedule and status.
type UserFixture struct {
	Username string            `json:"username"`
	Major    string            `json:"major"`
	Status   string            `json:"status,omitempty"`
	Schedule []ScheduleFixture `json:"schedule,omitempty"`
}

// ScheduleFixture is one weekly schedule row, one day per row.
type ScheduleFixture struct {
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Location   string `json:"location,omitempty"`
}

// Seeder writes fixtures into the user, schedule, status and location stores.
type Seeder struct {
	fs        afero.Fs
	users     *repository.UserRepository
	schedules *repository.ScheduleRepository
	statuses  *repository.StatusRepository
	locations *repository.LocationRepository
	logger    *zap.Logger
	now       func() time.Time
}

// SeederParams bundles the dependencies for NewSeeder.
type SeederParams struct {
	Fs        afero.Fs
	Users     *repository.UserRepository
	Schedules *repository.ScheduleRepository
	Statuses  *repository.StatusRepository
	Locations *repository.LocationRepository
	Logger    *zap.Logger
}

// NewSeeder constructs a Seeder. Fs defaults to the OS filesystem and Logger
// to a no-op logger.
func NewSeeder(params SeederParams) *Seeder {
	if params.Fs == nil {
		params.Fs = afero.NewOsFs()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	return &Seeder{
		fs:        params.Fs,
		users:     params.Users,
		schedules: params.Schedules,
		statuses:  params.Statuses,
		locations: params.Locations,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// Run seeds the stores from the fixture at path, or from the built-in demo
// fixture when path is empty. Re-running is safe: existing users keep their
// schedules and statuses, and the first location registered under a code
// wins.
func (s *Seeder) Run(ctx context.Context, path string) error {
	fixture := defaultFixture
	if path != "" {
		loaded, err := s.load(path)
		if err != nil {
			return err
		}
		fixture = loaded
	}

	seededLocations := 0
	for _, loc := range fixture.Locations {
		if _, err := s.locations.Get(ctx, loc.Code); err == nil {
			continue
		}
		if err := s.locations.Put(ctx, loc); err != nil {
			return err
		}
		seededLocations++
	}

	seededUsers := 0
	for _, uf := range fixture.Users {
		user, err := s.users.GetOrCreate(ctx, uf.Username, uf.Major)
		if err != nil {
			return err
		}
		seededUsers++

		if err := s.seedSchedule(ctx, user.ID, uf.Schedule); err != nil {
			return err
		}
		if err := s.seedStatus(ctx, user.ID, uf.Status); err != nil {
			return err
		}
	}

	s.logger.Info("seeded demo data",
		zap.Int("users", seededUsers),
		zap.Int("locations", seededLocations),
	)
	return nil
}

func (s *Seeder) load(path string) (Fixture, error) {
	raw, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return Fixture{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read seed fixture")
	}
	var fixture Fixture
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return Fixture{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to parse seed fixture")
	}
	return fixture, nil
}

// seedSchedule inserts the fixture rows unless the user already has entries.
func (s *Seeder) seedSchedule(ctx context.Context, userID string, rows []ScheduleFixture) error {
	existing, err := s.schedules.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, row := range rows {
		day, ok := models.ParseDay(row.Day)
		if !ok {
			s.logger.Warn("skipping seed row with unknown day",
				zap.String("course", row.CourseCode),
				zap.String("day", row.Day),
			)
			continue
		}
		entry := models.ScheduleEntry{
			UserID:     userID,
			CourseCode: row.CourseCode,
			CourseName: row.CourseName,
			Day:        day,
			StartTime:  row.StartTime,
			EndTime:    row.EndTime,
			Location:   row.Location,
		}
		if _, err := s.schedules.Insert(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

// seedStatus sets the manual status once. A user who already changed their
// status keeps it across restarts.
func (s *Seeder) seedStatus(ctx context.Context, userID, raw string) error {
	if raw == "" {
		return nil
	}
	existing, err := s.statuses.Get(ctx, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	tag, ok := models.ParseStatusTag(raw)
	if !ok {
		s.logger.Warn("skipping seed status outside the enum", zap.String("status", raw))
		return nil
	}
	_, err = s.statuses.Upsert(ctx, userID, tag, s.now().UTC())
	return err
}
