package signals

import (
	"context"
	"time"

	"github.com/maniartech/signals"

	"github.com/belphemur/choghadiya/internal/choghadiya"
	"github.com/belphemur/choghadiya/internal/constants"
)

// PeriodChangedData is emitted when the resolved Choghadiya slot changes
type PeriodChangedData struct {
	Period  constants.Period
	Slot    *choghadiya.Slot // nil when no slot covers the instant
	Weekday time.Weekday
	At      time.Time
}

// DayChangedData is emitted when the watched calendar date rolls over
type DayChangedData struct {
	Date    time.Time
	Weekday time.Weekday
}

// Signal definitions using generics
var PeriodChanged = signals.New[PeriodChangedData]()
var DayChanged = signals.New[DayChangedData]()

// EmitPeriodChanged emits a signal when the current period moves to another slot
func EmitPeriodChanged(ctx context.Context, data PeriodChangedData) {
	PeriodChanged.Emit(ctx, data)
}

// EmitDayChanged emits a signal when a new day starts
func EmitDayChanged(ctx context.Context, date time.Time) {
	DayChanged.Emit(ctx, DayChangedData{
		Date:    date,
		Weekday: date.Weekday(),
	})
}

// OnPeriodChanged registers a handler for period change events
func OnPeriodChanged(handler func(ctx context.Context, data PeriodChangedData), key ...string) {
	if len(key) > 0 {
		PeriodChanged.AddListener(handler, key[0])
	} else {
		PeriodChanged.AddListener(handler)
	}
}

// OnDayChanged registers a handler for day change events
func OnDayChanged(handler func(ctx context.Context, data DayChangedData), key ...string) {
	if len(key) > 0 {
		DayChanged.AddListener(handler, key[0])
	} else {
		DayChanged.AddListener(handler)
	}
}

// RemovePeriodChanged drops the period change handler registered under key
func RemovePeriodChanged(key string) {
	PeriodChanged.RemoveListener(key)
}

// RemoveDayChanged drops the day change handler registered under key
func RemoveDayChanged(key string) {
	DayChanged.RemoveListener(key)
}
