package models

import (
	"strings"
	"time"
)

// Day enumerates the seven weekdays used for schedule entries.
type Day string

const (
	DayMonday    Day = "monday"
	DayTuesday   Day = "tuesday"
	DayWednesday Day = "wednesday"
	DayThursday  Day = "thursday"
	DayFriday    Day = "friday"
	DaySaturday  Day = "saturday"
	DaySunday    Day = "sunday"
)

var dayOrder = map[Day]int{
	DayMonday:    0,
	DayTuesday:   1,
	DayWednesday: 2,
	DayThursday:  3,
	DayFriday:    4,
	DaySaturday:  5,
	DaySunday:    6,
}

// ParseDay maps a raw day name onto the closed enum. Unknown values report
// ok=false so boundary callers can reject or skip them.
func ParseDay(raw string) (Day, bool) {
	day := Day(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := dayOrder[day]
	return day, ok
}

// Valid reports whether the day is one of the seven enum values.
func (d Day) Valid() bool {
	_, ok := dayOrder[d]
	return ok
}

// Order returns the position of the day in week order, Monday first.
func (d Day) Order() int {
	return dayOrder[d]
}

// Title returns the capitalised display form ("monday" -> "Monday").
func (d Day) Title() string {
	if d == "" {
		return ""
	}
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}

// DayOf maps a wall-clock instant onto its weekday enum value.
func DayOf(t time.Time) Day {
	return Day(strings.ToLower(t.Weekday().String()))
}

// ScheduleEntry is one weekly class meeting owned by a user. Entries are
// immutable once created; corrections happen by delete-and-recreate.
type ScheduleEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CourseCode string    `json:"course_code"`
	CourseName string    `json:"course_name"`
	Day        Day       `json:"day"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Location   string    `json:"location,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ClassInfo summarises one schedule entry in availability answers.
type ClassInfo struct {
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Location   string `json:"location,omitempty"`
}

// RecentClass describes a class that ended within the last hour.
type RecentClass struct {
	CourseCode      string `json:"course_code"`
	CourseName      string `json:"course_name"`
	EndedMinutesAgo int    `json:"ended_minutes_ago"`
}
