package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/models"
	"github.com/campuspulse/campus-api/pkg/timeutil"
)

type userLister interface {
	List(ctx context.Context) ([]models.User, error)
}

type classResolver interface {
	CurrentClass(ctx context.Context, userID string, at time.Time) (*models.ClassInfo, error)
	NextClass(ctx context.Context, userID string, at time.Time) (*models.ClassInfo, error)
}

// BoardService assembles the campus status board: every user, in insertion
// order, sorted into exactly one of the in-class or free buckets as of the
// reference instant. Nothing is cached; each build re-reads store state.
type BoardService struct {
	users    userLister
	statuses statusGetter
	resolver classResolver
	metrics  *MetricsService
	logger   *zap.Logger
}

// BoardServiceParams groups constructor dependencies.
type BoardServiceParams struct {
	Users    userLister
	Statuses statusGetter
	Resolver classResolver
	Metrics  *MetricsService
	Logger   *zap.Logger
}

// NewBoardService constructs a BoardService.
func NewBoardService(params BoardServiceParams) *BoardService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoardService{
		users:    params.Users,
		statuses: params.Statuses,
		resolver: params.Resolver,
		metrics:  params.Metrics,
		logger:   logger,
	}
}

// Build partitions the population as of the reference instant. A user in
// class carries their course code; a free user carries a next-class label
// when a later class exists today. Users without a status record read as
// free.
func (s *BoardService) Build(ctx context.Context, at time.Time) (*dto.StatusBoardResponse, error) {
	started := time.Now()

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	board := &dto.StatusBoardResponse{
		Now:     at,
		InClass: []dto.StatusBoardEntry{},
		Free:    []dto.StatusBoardEntry{},
	}

	for _, user := range users {
		entry := dto.StatusBoardEntry{
			ID:           user.ID,
			Username:     user.Username,
			Major:        user.Major,
			Avatar:       user.Avatar,
			ManualStatus: string(models.StatusFree),
		}

		status, err := s.statuses.Get(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if status != nil {
			entry.ManualStatus = string(status.Status)
		}

		current, err := s.resolver.CurrentClass(ctx, user.ID, at)
		if err != nil {
			return nil, err
		}
		if current != nil {
			entry.CurrentClass = current.CourseCode
			board.InClass = append(board.InClass, entry)
			continue
		}

		next, err := s.resolver.NextClass(ctx, user.ID, at)
		if err != nil {
			return nil, err
		}
		if next != nil {
			entry.NextClass = fmt.Sprintf("%s @ %s", next.CourseCode, timeutil.FormatClock(next.StartTime))
		}
		board.Free = append(board.Free, entry)
	}

	s.metrics.ObserveBoardBuild(time.Since(started))
	s.logger.Debug("status board built",
		zap.Time("at", at),
		zap.Int("in_class", len(board.InClass)),
		zap.Int("free", len(board.Free)),
	)
	return board, nil
}
