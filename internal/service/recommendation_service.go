package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
	"github.com/campuspulse/campus-api/pkg/timeutil"
)

// maxPartners caps the recommendation list.
const maxPartners = 5

type userReader interface {
	GetByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// RecommendationService scores every other user as a study partner for the
// requester and returns the explained top five. Candidates sharing no course
// with the requester never appear.
type RecommendationService struct {
	users     userReader
	schedules scheduleLister
	statuses  statusGetter
	resolver  classResolver
	metrics   *MetricsService
	logger    *zap.Logger
}

// RecommendationServiceParams groups constructor dependencies.
type RecommendationServiceParams struct {
	Users     userReader
	Schedules scheduleLister
	Statuses  statusGetter
	Resolver  classResolver
	Metrics   *MetricsService
	Logger    *zap.Logger
}

// NewRecommendationService constructs a RecommendationService.
func NewRecommendationService(params RecommendationServiceParams) *RecommendationService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendationService{
		users:     params.Users,
		schedules: params.Schedules,
		statuses:  params.Statuses,
		resolver:  params.Resolver,
		metrics:   params.Metrics,
		logger:    logger,
	}
}

// Recommend ranks study partners for the user as of the reference instant.
// Scoring: 20 points per shared course, 15 for the same major, 10 when the
// candidate's status is studying, help or free (no status reads as free).
// An unknown requester gets an empty list, not an error.
func (s *RecommendationService) Recommend(ctx context.Context, userID string, at time.Time) ([]dto.StudyPartner, error) {
	started := time.Now()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if appErrors.Is(err, appErrors.ErrNotFound) {
			return []dto.StudyPartner{}, nil
		}
		return nil, err
	}

	own, err := s.schedules.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ownCourses := courseSet(own)

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	partners := make([]dto.StudyPartner, 0)
	for _, other := range users {
		if other.ID == user.ID {
			continue
		}

		otherEntries, err := s.schedules.ListByUser(ctx, other.ID)
		if err != nil {
			return nil, err
		}
		shared := sharedCourses(ownCourses, otherEntries)
		if len(shared) == 0 {
			continue
		}

		status, err := s.statuses.Get(ctx, other.ID)
		if err != nil {
			return nil, err
		}
		tag := models.StatusFree
		if status != nil {
			tag = status.Status
		}

		score := len(shared) * 20
		if user.Major == other.Major {
			score += 15
		}
		if tag == models.StatusStudying || tag == models.StatusHelp || tag == models.StatusFree {
			score += 10
		}

		noun := "class"
		if len(shared) > 1 {
			noun = "classes"
		}
		reason := fmt.Sprintf("Shares %d %s with you", len(shared), noun)
		if user.Major == other.Major {
			reason += fmt.Sprintf("; Same major (%s)", user.Major)
		}
		if tag == models.StatusHelp {
			reason += "; Available to help"
		} else if tag == models.StatusStudying {
			reason += "; Currently studying"
		}

		partner := dto.StudyPartner{
			ID:            other.ID,
			Username:      other.Username,
			Major:         other.Major,
			Avatar:        other.Avatar,
			Score:         score,
			SharedClasses: shared,
			Reason:        reason,
		}

		current, err := s.resolver.CurrentClass(ctx, other.ID, at)
		if err != nil {
			return nil, err
		}
		if current != nil {
			partner.CurrentClass = current.CourseCode
		} else {
			next, err := s.resolver.NextClass(ctx, other.ID, at)
			if err != nil {
				return nil, err
			}
			if next != nil {
				partner.NextClass = fmt.Sprintf("%s @ %s", next.CourseCode, timeutil.FormatClock(next.StartTime))
			}
		}

		partners = append(partners, partner)
	}

	sort.SliceStable(partners, func(i, j int) bool {
		return partners[i].Score > partners[j].Score
	})
	if len(partners) > maxPartners {
		partners = partners[:maxPartners]
	}

	s.metrics.ObserveRecommendationBuild(time.Since(started))
	s.logger.Debug("study partners ranked",
		zap.String("user_id", userID),
		zap.Int("candidates", len(partners)),
	)
	return partners, nil
}

func courseSet(entries []models.ScheduleEntry) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		set[entry.CourseCode] = struct{}{}
	}
	return set
}

// sharedCourses returns the distinct course codes present in both sides,
// sorted for stable output.
func sharedCourses(own map[string]struct{}, entries []models.ScheduleEntry) []string {
	seen := make(map[string]struct{})
	shared := make([]string, 0)
	for _, entry := range entries {
		if _, ok := own[entry.CourseCode]; !ok {
			continue
		}
		if _, ok := seen[entry.CourseCode]; ok {
			continue
		}
		seen[entry.CourseCode] = struct{}{}
		shared = append(shared, entry.CourseCode)
	}
	sort.Strings(shared)
	return shared
}
