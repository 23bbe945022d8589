package service

import (
	"context"
	"io"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

type scheduleStore interface {
	Insert(ctx context.Context, entry models.ScheduleEntry) (models.ScheduleEntry, error)
	Delete(ctx context.Context, entryID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]models.ScheduleEntry, error)
}

type calendarParser interface {
	Parse(r io.Reader, userID string) ([]models.ScheduleEntry, int, error)
}

// ScheduleService manages a user's weekly schedule entries, including bulk
// creation from uploaded calendar files.
type ScheduleService struct {
	schedules scheduleStore
	parser    calendarParser
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// ScheduleServiceParams groups constructor dependencies.
type ScheduleServiceParams struct {
	Schedules scheduleStore
	Parser    calendarParser
	Validator *validator.Validate
	Metrics   *MetricsService
	Logger    *zap.Logger
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(params ScheduleServiceParams) *ScheduleService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	return &ScheduleService{
		schedules: params.Schedules,
		parser:    params.Parser,
		validator: validate,
		metrics:   params.Metrics,
		logger:    logger,
	}
}

// List returns the user's entries in the order they were added.
func (s *ScheduleService) List(ctx context.Context, userID string) ([]models.ScheduleEntry, error) {
	return s.schedules.ListByUser(ctx, userID)
}

// Add validates and stores one entry for the user. Entries are immutable
// once created; changes go through delete-and-recreate.
func (s *ScheduleService) Add(ctx context.Context, userID string, req dto.CreateScheduleEntryRequest) (models.ScheduleEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.ScheduleEntry{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}
	day, ok := models.ParseDay(req.Day)
	if !ok {
		return models.ScheduleEntry{}, appErrors.Clone(appErrors.ErrValidation, "invalid day")
	}

	entry, err := s.schedules.Insert(ctx, models.ScheduleEntry{
		UserID:     userID,
		CourseCode: req.CourseCode,
		CourseName: req.CourseName,
		Day:        day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Location:   req.Location,
	})
	if err != nil {
		return models.ScheduleEntry{}, err
	}
	s.logger.Info("schedule entry added",
		zap.String("user_id", userID),
		zap.String("course_code", entry.CourseCode),
		zap.String("day", string(entry.Day)),
	)
	return entry, nil
}

// Remove deletes an entry the user owns. Entries owned by others are
// rejected untouched.
func (s *ScheduleService) Remove(ctx context.Context, entryID, userID string) error {
	return s.schedules.Delete(ctx, entryID, userID)
}

// Import parses an uploaded calendar stream and stores every extracted
// entry for the user. Entries the parser could not map are counted, not
// fatal.
func (s *ScheduleService) Import(ctx context.Context, userID string, r io.Reader) (*dto.ImportReportResponse, error) {
	parsed, skipped, err := s.parser.Parse(r, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ScheduleEntry, 0, len(parsed))
	for _, entry := range parsed {
		stored, err := s.schedules.Insert(ctx, entry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, stored)
	}

	s.metrics.RecordImport(len(entries), skipped)
	s.logger.Info("calendar imported",
		zap.String("user_id", userID),
		zap.Int("imported", len(entries)),
		zap.Int("skipped", skipped),
	)
	return &dto.ImportReportResponse{
		Imported: len(entries),
		Skipped:  skipped,
		Entries:  entries,
	}, nil
}
