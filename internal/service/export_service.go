package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
	"github.com/campuspulse/campus-api/pkg/export"
	"github.com/campuspulse/campus-api/pkg/timeutil"
)

type userGetter interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

// ExportResult is a rendered schedule ready to ship as a download.
type ExportResult struct {
	Content     []byte
	Filename    string
	ContentType string
}

// ExportService renders a user's weekly schedule as CSV or PDF.
type ExportService struct {
	users     userGetter
	schedules scheduleLister
	csv       export.Renderer
	pdf       export.Renderer
	logger    *zap.Logger
}

// ExportServiceParams groups constructor dependencies.
type ExportServiceParams struct {
	Users     userGetter
	Schedules scheduleLister
	CSV       export.Renderer
	PDF       export.Renderer
	Logger    *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(params ExportServiceParams) *ExportService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	csv := params.CSV
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	pdf := params.PDF
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		users:     params.Users,
		schedules: params.Schedules,
		csv:       csv,
		pdf:       pdf,
		logger:    logger,
	}
}

// Export renders the user's schedule in the requested format, ordered by
// weekday then start time.
func (s *ExportService) Export(ctx context.Context, userID, format string) (*ExportResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.schedules.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Day != entries[j].Day {
			return entries[i].Day.Order() < entries[j].Day.Order()
		}
		return timeutil.ToMinutes(entries[i].StartTime) < timeutil.ToMinutes(entries[j].StartTime)
	})

	dataset := buildScheduleDataset(entries)
	title := fmt.Sprintf("Weekly Schedule - %s", user.Username)

	var payload []byte
	var contentType string
	switch format {
	case "csv":
		payload, err = s.csv.Render(dataset, title)
		contentType = "text/csv"
	case "pdf":
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render schedule export")
	}

	filename := fmt.Sprintf("schedule_%s.%s", sanitizeFilename(strings.ToLower(user.Username)), format)
	s.logger.Info("schedule exported",
		zap.String("user_id", userID),
		zap.String("format", format),
		zap.Int("entries", len(entries)),
	)
	return &ExportResult{
		Content:     payload,
		Filename:    filename,
		ContentType: contentType,
	}, nil
}

func buildScheduleDataset(entries []models.ScheduleEntry) export.Dataset {
	rows := make([]map[string]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, map[string]string{
			"Day":         entry.Day.Title(),
			"Course Code": entry.CourseCode,
			"Course Name": entry.CourseName,
			"Start":       entry.StartTime,
			"End":         entry.EndTime,
			"Location":    entry.Location,
		})
	}
	return export.Dataset{
		Headers: []string{"Day", "Course Code", "Course Name", "Start", "End", "Location"},
		Rows:    rows,
	}
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "user"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
