// Package timeutil implements the clock-string arithmetic used by schedule
// evaluation: "HH:MM" strings to minute scalars plus closed-interval
// membership checks and 12-hour display formatting.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToMinutes converts an "HH:MM" clock string into minutes since midnight
// (0-1439). Malformed input (missing colon, non-numeric parts, hour or
// minute out of range) yields 0, so interval checks see midnight instead
// of failing.
func ToMinutes(clock string) int {
	if !strings.Contains(clock, ":") {
		return 0
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0
	}
	return hours*60 + minutes
}

// Between reports whether current lies inside the closed interval
// [start, end] in minute terms. When end precedes start the interval is
// treated as wrapping past midnight: membership holds when current is at or
// after start, or at or before end.
func Between(current, start, end string) bool {
	cur := ToMinutes(current)
	lo := ToMinutes(start)
	hi := ToMinutes(end)

	if hi < lo {
		return cur >= lo || cur <= hi
	}
	return lo <= cur && cur <= hi
}

// FormatClock renders an "HH:MM" string in 12-hour notation ("9:05 AM",
// "12:30 PM"). Hour 0 becomes 12 AM. Input that does not split into two
// numeric fields is returned unchanged.
func FormatClock(clock string) string {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return clock
	}
	hour, errHour := strconv.Atoi(parts[0])
	minute, errMinute := strconv.Atoi(parts[1])
	if errHour != nil || errMinute != nil {
		return clock
	}

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour
	if display > 12 {
		display -= 12
	}
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, meridiem)
}

// Clock formats the time-of-day of t as "HH:MM".
func Clock(t time.Time) string {
	return t.Format("15:04")
}
