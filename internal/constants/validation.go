// Package constants provides shared constants for the choghadiya application
package constants

import (
	"fmt"
	"strings"
	"time"
)

// ValidDaysOfWeek maps lower-case day names to their weekday.
// Used for parsing the weekly overview selector.
var ValidDaysOfWeek = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// IsValidDayOfWeek checks if a given day string names a day of the week
func IsValidDayOfWeek(day string) bool {
	_, ok := ValidDaysOfWeek[strings.ToLower(day)]
	return ok
}

// ParseDayOfWeek parses a day name (any case) into a time.Weekday
func ParseDayOfWeek(day string) (time.Weekday, error) {
	wd, ok := ValidDaysOfWeek[strings.ToLower(strings.TrimSpace(day))]
	if !ok {
		return time.Sunday, fmt.Errorf("invalid day of week: %s", day)
	}
	return wd, nil
}
