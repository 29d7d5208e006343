package choghadiya

import (
	"fmt"

	"github.com/belphemur/choghadiya/internal/constants"
)

const (
	// FixedSunrise is 06:00 as a minute-of-day
	FixedSunrise = 6 * 60
	// FixedSunset is 18:00 as a minute-of-day
	FixedSunset = 18 * 60
)

// Window holds the sunrise and sunset minutes that split a civil day into
// its day and night halves. Times are fixed values, never computed.
type Window struct {
	Sunrise int
	Sunset  int
}

// DefaultWindow uses the fixed 06:00 sunrise and 18:00 sunset
var DefaultWindow = Window{Sunrise: FixedSunrise, Sunset: FixedSunset}

// Validate checks 0 <= sunrise < sunset < 1440
func (w Window) Validate() error {
	if w.Sunrise < 0 || w.Sunrise >= constants.MinutesPerDay {
		return fmt.Errorf("sunrise %d out of range [0, %d)", w.Sunrise, constants.MinutesPerDay)
	}
	if w.Sunset < 0 || w.Sunset >= constants.MinutesPerDay {
		return fmt.Errorf("sunset %d out of range [0, %d)", w.Sunset, constants.MinutesPerDay)
	}
	if w.Sunrise >= w.Sunset {
		return fmt.Errorf("sunrise %d must be before sunset %d", w.Sunrise, w.Sunset)
	}
	return nil
}

// DayRange returns [sunrise, sunset)
func (w Window) DayRange() (start, end int) {
	return w.Sunrise, w.Sunset
}

// NightRange returns [sunset, 1440+sunrise), which runs past midnight
func (w Window) NightRange() (start, end int) {
	return w.Sunset, constants.MinutesPerDay + w.Sunrise
}

// DaySlots generates the day slots of pattern over the day range
func (w Window) DaySlots(pattern Pattern) []Slot {
	start, end := w.DayRange()
	return GenerateSlots(start, end, pattern)
}

// NightSlots generates the night slots of pattern over the night range
func (w Window) NightSlots(pattern Pattern) []Slot {
	start, end := w.NightRange()
	return GenerateSlots(start, end, pattern)
}

// Current is the outcome of resolving "now" against a day's slots.
// Slot is nil when no slot contains the queried minute.
type Current struct {
	Period constants.Period `json:"period"`
	Slot   *Slot            `json:"slot"`
}

// Found reports whether a slot was resolved
func (c Current) Found() bool {
	return c.Slot != nil
}

// Matches reports whether s in period is the resolved slot
func (c Current) Matches(period constants.Period, s Slot) bool {
	if c.Slot == nil || c.Period != period {
		return false
	}
	return c.Slot.Start == s.Start && c.Slot.End == s.End
}

// Resolve determines which slot contains now, a minute-of-day in [0, 1440).
//
// The day half is [Sunrise, Sunset). Anything else is night: minutes before
// sunrise are shifted by 1440 so they compare against night slots numbered
// past midnight. A minute inside neither half resolves to DAY with no slot.
func (w Window) Resolve(now int, daySlots, nightSlots []Slot) Current {
	if now >= w.Sunrise && now < w.Sunset {
		return Current{Period: constants.PeriodDay, Slot: FindSlot(daySlots, now)}
	}

	normalized := now
	if now < w.Sunrise {
		normalized = now + constants.MinutesPerDay
	}
	nightStart, nightEnd := w.NightRange()
	if normalized >= nightStart && normalized < nightEnd {
		return Current{Period: constants.PeriodNight, Slot: FindSlot(nightSlots, normalized)}
	}

	return Current{Period: constants.PeriodDay}
}

// ResolveCurrent resolves now against DefaultWindow
func ResolveCurrent(now int, daySlots, nightSlots []Slot) Current {
	return DefaultWindow.Resolve(now, daySlots, nightSlots)
}
