package seed

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/campus-api/internal/models"
	"github.com/campuspulse/campus-api/internal/repository"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

type seedFixture struct {
	users     *repository.UserRepository
	schedules *repository.ScheduleRepository
	statuses  *repository.StatusRepository
	locations *repository.LocationRepository
	seeder    *Seeder
}

func newSeedFixture(fs afero.Fs) *seedFixture {
	f := &seedFixture{
		users:     repository.NewUserRepository(),
		schedules: repository.NewScheduleRepository(),
		statuses:  repository.NewStatusRepository(),
		locations: repository.NewLocationRepository(),
	}
	f.seeder = NewSeeder(SeederParams{
		Fs:        fs,
		Users:     f.users,
		Schedules: f.schedules,
		Statuses:  f.statuses,
		Locations: f.locations,
	})
	return f
}

func (f *seedFixture) userByName(t *testing.T, username string) models.User {
	t.Helper()
	users, err := f.users.List(context.Background())
	require.NoError(t, err)
	for _, u := range users {
		if u.Username == username {
			return u
		}
	}
	t.Fatalf("user %q not seeded", username)
	return models.User{}
}

func TestSeederDefaultFixture(t *testing.T) {
	f := newSeedFixture(nil)
	ctx := context.Background()

	require.NoError(t, f.seeder.Run(ctx, ""))

	users, err := f.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)
	assert.Equal(t, "Alice Chen", users[0].Username)

	alice := f.userByName(t, "Alice Chen")
	entries, err := f.schedules.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	bob := f.userByName(t, "Bob Smith")
	status, err := f.statuses.Get(ctx, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, models.StatusFree, status.Status)

	locs, err := f.locations.List(ctx)
	require.NoError(t, err)
	assert.Len(t, locs, len(campusBuildings))

	ghc, err := f.locations.Get(ctx, "GHC")
	require.NoError(t, err)
	assert.Equal(t, "Gates Hillman Center", ghc.Name)
}

func TestSeederIsIdempotent(t *testing.T) {
	f := newSeedFixture(nil)
	ctx := context.Background()

	require.NoError(t, f.seeder.Run(ctx, ""))

	// A user changes their status between restarts; the next seed run must
	// not clobber it.
	bob := f.userByName(t, "Bob Smith")
	_, err := f.statuses.Upsert(ctx, bob.ID, models.StatusBusy, f.seeder.now())
	require.NoError(t, err)

	require.NoError(t, f.seeder.Run(ctx, ""))

	users, err := f.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)

	alice := f.userByName(t, "Alice Chen")
	entries, err := f.schedules.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	status, err := f.statuses.Get(ctx, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, models.StatusBusy, status.Status)
}

func TestSeederKeepsFirstLocation(t *testing.T) {
	f := newSeedFixture(nil)
	ctx := context.Background()

	require.NoError(t, f.locations.Put(ctx, models.Location{Code: "DH", Name: "Custom Hall"}))
	require.NoError(t, f.seeder.Run(ctx, ""))

	loc, err := f.locations.Get(ctx, "DH")
	require.NoError(t, err)
	assert.Equal(t, "Custom Hall", loc.Name)
}

func TestSeederLoadsFixtureFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	payload := `{
		"users": [
			{
				"username": "Frank Ocean",
				"major": "MUS",
				"status": "social",
				"schedule": [
					{"course_code": "MUS 57-101", "course_name": "Harmony I", "day": "wednesday", "start_time": "10:00", "end_time": "11:20", "location": "CFA 102"}
				]
			}
		],
		"locations": [
			{"code": "CFA", "name": "College of Fine Arts"}
		]
	}`
	require.NoError(t, afero.WriteFile(fs, "/seed.json", []byte(payload), 0o644))

	f := newSeedFixture(fs)
	ctx := context.Background()
	require.NoError(t, f.seeder.Run(ctx, "/seed.json"))

	frank := f.userByName(t, "Frank Ocean")
	entries, err := f.schedules.ListByUser(ctx, frank.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.DayWednesday, entries[0].Day)

	status, err := f.statuses.Get(ctx, frank.ID)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, models.StatusSocial, status.Status)

	locs, err := f.locations.List(ctx)
	require.NoError(t, err)
	assert.Len(t, locs, 1)
}

func TestSeederMissingFixtureFile(t *testing.T) {
	f := newSeedFixture(afero.NewMemMapFs())

	err := f.seeder.Run(context.Background(), "/absent.json")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestSeederRejectsMalformedFixture(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/seed.json", []byte("not json"), 0o644))

	f := newSeedFixture(fs)
	err := f.seeder.Run(context.Background(), "/seed.json")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSeederSkipsUnknownDays(t *testing.T) {
	fs := afero.NewMemMapFs()
	payload := `{
		"users": [
			{
				"username": "Grace Hopper",
				"major": "CS",
				"schedule": [
					{"course_code": "CS 15-122", "course_name": "Imperative Computation", "day": "someday", "start_time": "09:00", "end_time": "10:20"}
				]
			}
		]
	}`
	require.NoError(t, afero.WriteFile(fs, "/seed.json", []byte(payload), 0o644))

	f := newSeedFixture(fs)
	ctx := context.Background()
	require.NoError(t, f.seeder.Run(ctx, "/seed.json"))

	grace := f.userByName(t, "Grace Hopper")
	entries, err := f.schedules.ListByUser(ctx, grace.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
