package choghadiya

import (
	"time"

	"github.com/belphemur/choghadiya/internal/timeutil"
)

// Schedule is the full set of sixteen slots for one weekday
type Schedule struct {
	Weekday time.Weekday `json:"-"`
	Labels  WeekdayLabels `json:"weekday"`
	Day     []Slot        `json:"day"`
	Night   []Slot        `json:"night"`
}

// ScheduleFor builds the day and night slots of weekday w
func (w Window) ScheduleFor(wd time.Weekday) Schedule {
	return Schedule{
		Weekday: wd,
		Labels:  WeekdayLabel(wd),
		Day:     w.DaySlots(DayPattern(wd)),
		Night:   w.NightSlots(NightPattern(wd)),
	}
}

// ScheduleOn builds the schedule for the weekday of t
func (w Window) ScheduleOn(t time.Time) Schedule {
	return w.ScheduleFor(timeutil.WeekdayOf(t))
}

// Slots returns the day or night slots
func (s Schedule) Slots(night bool) []Slot {
	if night {
		return s.Night
	}
	return s.Day
}

// CurrentAt resolves the wall-clock minute of t against the schedule
func (w Window) CurrentAt(s Schedule, t time.Time) Current {
	return w.Resolve(timeutil.MinuteOfDay(t), s.Day, s.Night)
}

// Week builds schedules for every weekday in WeekOrder
func (w Window) Week() []Schedule {
	order := WeekOrder()
	week := make([]Schedule, 0, len(order))
	for _, wd := range order {
		week = append(week, w.ScheduleFor(wd))
	}
	return week
}
