// Package timeutil converts between minute-of-day offsets and wall-clock values.
//
// A minute-of-day is an integer offset from local midnight. Values outside
// [0, 1440) are allowed: night periods are expressed past 1440 so that a
// single range can cover 18:00 through 06:00 of the following day.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/belphemur/choghadiya/internal/constants"
)

// Normalize folds any minute offset into [0, 1440).
func Normalize(minute int) int {
	return ((minute % constants.MinutesPerDay) + constants.MinutesPerDay) % constants.MinutesPerDay
}

// FormatClock renders a minute offset as a 12-hour clock string such as "6:00 AM".
// The input is normalized first, so 1500 renders like 60.
func FormatClock(minute int) string {
	normalized := Normalize(minute)
	h := normalized / 60
	m := normalized % 60

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, m, suffix)
}

// FormatRange renders "start – end" using FormatClock for both ends.
func FormatRange(start, end int) string {
	return FormatClock(start) + " – " + FormatClock(end)
}

// MinuteOfDay returns the minute offset of t from midnight in t's own location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// WeekdayOf returns the weekday of t in t's own location.
func WeekdayOf(t time.Time) time.Weekday {
	return t.Weekday()
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AtMinute returns the instant minute minutes after the midnight that starts day.
// Minutes past 1440 land on the following day.
func AtMinute(day time.Time, minute int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, minute, 0, 0, day.Location())
}

// ParseClock parses a 24-hour "HH:MM" string into a minute-of-day.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid minute in clock value %q", s)
	}
	return h*60 + m, nil
}

// ClockMinute is a minute-of-day that reads and writes itself as "HH:MM".
// It lets configuration files carry values such as sunrise = "06:00".
type ClockMinute int

// Minutes returns the plain minute-of-day value
func (c ClockMinute) Minutes() int {
	return int(c)
}

// MarshalText implements encoding.TextMarshaler
func (c ClockMinute) MarshalText() ([]byte, error) {
	n := Normalize(int(c))
	return []byte(fmt.Sprintf("%02d:%02d", n/60, n%60)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *ClockMinute) UnmarshalText(text []byte) error {
	minute, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = ClockMinute(minute)
	return nil
}

// String returns the "HH:MM" form
func (c ClockMinute) String() string {
	b, _ := c.MarshalText()
	return string(b)
}
