// Package constants provides shared constants for the choghadiya application
package constants

import (
	"fmt"
	"strings"
)

// Period identifies which half of the day a choghadiya belongs to
type Period string

const (
	// PeriodDay covers sunrise to sunset
	PeriodDay Period = "DAY"
	// PeriodNight covers sunset to the following sunrise
	PeriodNight Period = "NIGHT"
)

// IsValid checks if the period value is valid
func (p Period) IsValid() bool {
	return p == PeriodDay || p == PeriodNight
}

// String returns the string representation of the period
func (p Period) String() string {
	return string(p)
}

// Label returns the heading used for the period in the UI
func (p Period) Label() string {
	if p == PeriodNight {
		return "Night Choghadiya"
	}
	return "Day Choghadiya"
}

// ParsePeriod parses a string into a Period.
// Matching is case-insensitive so query parameters like "night" are accepted.
func ParsePeriod(s string) (Period, error) {
	period := Period(strings.ToUpper(strings.TrimSpace(s)))
	if !period.IsValid() {
		return "", fmt.Errorf("invalid period: %s (must be 'day' or 'night')", s)
	}
	return period, nil
}

// GetAllPeriods returns all valid periods, day first
func GetAllPeriods() []Period {
	return []Period{PeriodDay, PeriodNight}
}
