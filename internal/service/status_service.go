package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

type statusStore interface {
	Upsert(ctx context.Context, userID string, tag models.StatusTag, at time.Time) (models.UserStatus, error)
	Get(ctx context.Context, userID string) (*models.UserStatus, error)
}

// StatusService reads and writes the self-reported availability tag.
type StatusService struct {
	statuses  statusStore
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// StatusServiceParams groups constructor dependencies.
type StatusServiceParams struct {
	Statuses  statusStore
	Validator *validator.Validate
	Logger    *zap.Logger
}

// NewStatusService constructs a StatusService.
func NewStatusService(params StatusServiceParams) *StatusService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	return &StatusService{
		statuses:  params.Statuses,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Get returns the user's tag; users who never set one read as free.
func (s *StatusService) Get(ctx context.Context, userID string) (dto.StatusResponse, error) {
	status, err := s.statuses.Get(ctx, userID)
	if err != nil {
		return dto.StatusResponse{}, err
	}
	if status == nil {
		return dto.StatusResponse{Status: string(models.StatusFree)}, nil
	}
	updated := status.UpdatedAt
	return dto.StatusResponse{Status: string(status.Status), UpdatedAt: &updated}, nil
}

// Update replaces the user's tag. Tags outside the closed enumeration are
// rejected.
func (s *StatusService) Update(ctx context.Context, userID string, req dto.UpdateStatusRequest) (models.UserStatus, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.UserStatus{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status")
	}
	tag, ok := models.ParseStatusTag(req.Status)
	if !ok {
		return models.UserStatus{}, appErrors.Clone(appErrors.ErrValidation, "invalid status")
	}

	status, err := s.statuses.Upsert(ctx, userID, tag, s.now().UTC())
	if err != nil {
		return models.UserStatus{}, err
	}
	s.logger.Info("status updated",
		zap.String("user_id", userID),
		zap.String("status", string(tag)),
	)
	return status, nil
}
