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

type profileUserRepository interface {
	GetByID(ctx context.Context, id string) (models.User, error)
	SetAvatar(ctx context.Context, id, avatar string) (models.User, error)
}

type availabilityResolver interface {
	CurrentClass(ctx context.Context, userID string, at time.Time) (*models.ClassInfo, error)
	NextClass(ctx context.Context, userID string, at time.Time) (*models.ClassInfo, error)
	RecentClass(ctx context.Context, userID string, at time.Time) (*models.RecentClass, error)
	Availability(ctx context.Context, userID string) (models.Availability, error)
}

// UserService assembles profile views and handles the avatar update.
type UserService struct {
	users     profileUserRepository
	statuses  statusGetter
	resolver  availabilityResolver
	validator *validator.Validate
	logger    *zap.Logger
}

// UserServiceParams groups constructor dependencies.
type UserServiceParams struct {
	Users     profileUserRepository
	Statuses  statusGetter
	Resolver  availabilityResolver
	Validator *validator.Validate
	Logger    *zap.Logger
}

// NewUserService constructs a UserService.
func NewUserService(params UserServiceParams) *UserService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{
		users:     params.Users,
		statuses:  params.Statuses,
		resolver:  params.Resolver,
		validator: validate,
		logger:    logger,
	}
}

// Profile returns the user's dashboard view as of the reference instant:
// profile fields, status tag, preference mapping and the current, next and
// recently ended classes.
func (s *UserService) Profile(ctx context.Context, userID string, at time.Time) (*dto.ProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tag := string(models.StatusFree)
	status, err := s.statuses.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if status != nil {
		tag = string(status.Status)
	}

	availability, err := s.resolver.Availability(ctx, userID)
	if err != nil {
		return nil, err
	}
	current, err := s.resolver.CurrentClass(ctx, userID, at)
	if err != nil {
		return nil, err
	}
	next, err := s.resolver.NextClass(ctx, userID, at)
	if err != nil {
		return nil, err
	}
	recent, err := s.resolver.RecentClass(ctx, userID, at)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		User:         user,
		Status:       tag,
		Availability: availability,
		CurrentClass: current,
		NextClass:    next,
		RecentClass:  recent,
	}, nil
}

// UpdateAvatar sets the avatar URL on the user's profile.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, req dto.UpdateAvatarRequest) (models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.User{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid avatar payload")
	}

	user, err := s.users.SetAvatar(ctx, userID, req.Avatar)
	if err != nil {
		return models.User{}, err
	}
	s.logger.Info("avatar updated", zap.String("user_id", userID))
	return user, nil
}
