// Package importer extracts weekly schedule entries from uploaded
// iCalendar (RFC 5545) files.
package importer

import (
	"io"
	"regexp"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

// Summary conventions seen in the wild, tried in order. Registrar feeds use
// "Name :: 12345" with a five digit section code, generic exports use
// "Name :: CODE", and most hand-made calendars lead with the course code.
var (
	doubleColonNumeric = regexp.MustCompile(`^(.+?)\s*::\s*(\d{5})`)
	doubleColonGeneric = regexp.MustCompile(`^(.+?)\s*::\s*(.+)$`)
	leadingCourseCode  = regexp.MustCompile(`(?i)^([A-Z]{2,4}\s*\d{2,3}(?:-\d{1,3})?)\s*[-:]?\s*(.*)$`)
	parenCourseCode    = regexp.MustCompile(`(?i)\(([A-Z]{2,4}\s*\d{2,3}(?:-\d{1,3})?)\)`)
	bareCourseCode     = regexp.MustCompile(`^[A-Z]{2,4}\s+\d{2,3}(?:-\d{1,3})?$`)
)

var byDayNames = map[string]models.Day{
	"MO": models.DayMonday,
	"TU": models.DayTuesday,
	"WE": models.DayWednesday,
	"TH": models.DayThursday,
	"FR": models.DayFriday,
	"SA": models.DaySaturday,
	"SU": models.DaySunday,
}

// Parser turns calendar streams into schedule entries.
type Parser struct {
	logger *zap.Logger
}

// NewParser constructs a Parser.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse reads an iCalendar stream and maps its events onto weekly schedule
// entries for the user. A weekly RRULE with a BYDAY list yields one entry
// per listed weekday; anything else falls back to the DTSTART weekday.
// Events without usable start or end times, and all-day events, are counted
// as skipped rather than failing the upload. A stream that is not a
// calendar at all is a validation error.
func (p *Parser) Parse(r io.Reader, userID string) ([]models.ScheduleEntry, int, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to parse calendar file")
	}

	entries := make([]models.ScheduleEntry, 0)
	skipped := 0
	for _, event := range cal.Events() {
		start, startIsDate, okStart := eventTime(event, ics.ComponentPropertyDtStart)
		end, endIsDate, okEnd := eventTime(event, ics.ComponentPropertyDtEnd)
		if !okStart || !okEnd {
			skipped++
			continue
		}
		if startIsDate || endIsDate {
			// All-day events carry no class times.
			skipped++
			continue
		}

		summary := propValue(event, ics.ComponentPropertySummary)
		location := propValue(event, ics.ComponentPropertyLocation)
		code, name := parseCourseSummary(summary)

		days := recurrenceDays(event)
		if len(days) == 0 {
			days = []models.Day{models.DayOf(start)}
		}

		added := 0
		for _, day := range days {
			if !day.Valid() {
				continue
			}
			entries = append(entries, models.ScheduleEntry{
				UserID:     userID,
				CourseCode: code,
				CourseName: name,
				Day:        day,
				StartTime:  start.Format("15:04"),
				EndTime:    end.Format("15:04"),
				Location:   location,
			})
			added++
		}
		if added == 0 {
			skipped++
		}
	}

	p.logger.Debug("calendar parsed",
		zap.String("user_id", userID),
		zap.Int("entries", len(entries)),
		zap.Int("skipped", skipped),
	)
	return entries, skipped, nil
}

func propValue(event *ics.VEvent, name ics.ComponentProperty) string {
	prop := event.GetProperty(name)
	if prop == nil {
		return ""
	}
	return strings.TrimSpace(prop.Value)
}

// eventTime reads a date-time property literally: the wall clock written in
// the file is the clock we keep, whatever timezone annotations say. The
// second return reports a date-only (all-day) value.
func eventTime(event *ics.VEvent, name ics.ComponentProperty) (time.Time, bool, bool) {
	prop := event.GetProperty(name)
	if prop == nil {
		return time.Time{}, false, false
	}
	value := strings.TrimSpace(prop.Value)

	for _, layout := range []string{"20060102T150405Z", "20060102T150405"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, false, true
		}
	}
	if t, err := time.Parse("20060102", value); err == nil {
		return t, true, true
	}
	return time.Time{}, false, false
}

// recurrenceDays expands a weekly RRULE's BYDAY list into weekdays. Numeric
// ordinal prefixes ("1MO") are stripped, unknown tokens dropped. A missing
// rule, a non-weekly rule or an empty result all return nil so the caller
// falls back to the DTSTART weekday.
func recurrenceDays(event *ics.VEvent) []models.Day {
	prop := event.GetProperty(ics.ComponentPropertyRrule)
	if prop == nil {
		return nil
	}

	freq := ""
	byDay := ""
	for _, part := range strings.Split(strings.ToUpper(prop.Value), ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "FREQ":
			freq = kv[1]
		case "BYDAY":
			byDay = kv[1]
		}
	}
	if freq != "" && freq != "WEEKLY" {
		return nil
	}
	if byDay == "" {
		return nil
	}

	days := make([]models.Day, 0)
	for _, token := range strings.Split(byDay, ",") {
		token = strings.TrimLeft(strings.TrimSpace(token), "+-0123456789")
		if day, ok := byDayNames[token]; ok {
			days = append(days, day)
		}
	}
	return days
}

// parseCourseSummary extracts a course code and name from an event summary,
// trying each known convention in order. Full-width colons are normalized
// before the "::" forms are tried.
func parseCourseSummary(summary string) (string, string) {
	if summary == "" {
		return "UNKNOWN", "Unknown Course"
	}

	normalized := strings.ReplaceAll(summary, "：：", "::")
	normalized = strings.ReplaceAll(normalized, "：", ":")
	normalized = strings.TrimSpace(normalized)

	if m := doubleColonNumeric.FindStringSubmatch(normalized); m != nil {
		return strings.TrimSpace(m[2]), strings.TrimSpace(m[1])
	}
	if m := doubleColonGeneric.FindStringSubmatch(normalized); m != nil {
		return strings.TrimSpace(m[2]), strings.TrimSpace(m[1])
	}
	if m := leadingCourseCode.FindStringSubmatch(summary); m != nil {
		code := strings.ToUpper(m[1])
		name := strings.TrimSpace(m[2])
		if name == "" {
			name = code
		}
		return code, name
	}
	if m := parenCourseCode.FindStringSubmatch(summary); m != nil {
		code := strings.ToUpper(m[1])
		name := strings.TrimSpace(strings.ReplaceAll(summary, "("+m[1]+")", ""))
		return code, name
	}

	words := strings.Fields(summary)
	if len(words) >= 2 {
		candidate := strings.ToUpper(words[0] + " " + words[1])
		if bareCourseCode.MatchString(candidate) {
			return candidate, summary
		}
	}

	runes := []rune(summary)
	if len(runes) > 10 {
		runes = runes[:10]
	}
	return strings.ToUpper(string(runes)), summary
}
