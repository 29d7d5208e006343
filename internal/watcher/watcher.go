package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/belphemur/choghadiya/internal/choghadiya"
	"github.com/belphemur/choghadiya/internal/logging"
	"github.com/belphemur/choghadiya/internal/signals"
	"github.com/belphemur/choghadiya/internal/timeutil"
	"github.com/belphemur/choghadiya/internal/tithi"
)

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the process time zone
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Snapshot is the state computed by the latest tick
type Snapshot struct {
	At          time.Time           `json:"at"`
	Date        string              `json:"date"`
	Minute      int                 `json:"minuteOfDay"`
	Schedule    choghadiya.Schedule `json:"schedule"`
	Current     choghadiya.Current  `json:"current"`
	Remaining   time.Duration       `json:"-"`
	Observances []tithi.Observance  `json:"tithi"`
}

// Weekday returns the weekday the snapshot was taken on
func (s Snapshot) Weekday() time.Weekday {
	return s.Schedule.Weekday
}

// Watcher recomputes the current Choghadiya on an interval and emits
// signals when the slot or the date changes.
type Watcher struct {
	clock    Clock
	interval time.Duration
	window   choghadiya.Window
	logger   zerolog.Logger

	snapshot atomic.Value
	ticks    atomic.Int64
	running  atomic.Bool
}

// New creates a watcher. A nil clock uses the system clock.
func New(clock Clock, interval time.Duration, window choghadiya.Window) (*Watcher, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("watcher interval must be positive, got %s", interval)
	}
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("invalid window: %w", err)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Watcher{
		clock:    clock,
		interval: interval,
		window:   window,
		logger:   logging.GetLogger("watcher"),
	}, nil
}

// Window returns the day window the watcher resolves against
func (w *Watcher) Window() choghadiya.Window {
	return w.window
}

// Ticks returns how many ticks have completed
func (w *Watcher) Ticks() int64 {
	return w.ticks.Load()
}

// Snapshot returns the latest state and whether a tick has happened yet
func (w *Watcher) Snapshot() (Snapshot, bool) {
	v := w.snapshot.Load()
	if v == nil {
		return Snapshot{}, false
	}
	return v.(Snapshot), true
}

// Compute builds the snapshot for now without storing it
func (w *Watcher) Compute(now time.Time) Snapshot {
	schedule := w.window.ScheduleOn(now)
	current := w.window.CurrentAt(schedule, now)
	minute := timeutil.MinuteOfDay(now)

	snap := Snapshot{
		At:          now,
		Date:        now.Format("2006-01-02"),
		Minute:      minute,
		Schedule:    schedule,
		Current:     current,
		Observances: tithi.ObservancesForDate(now),
	}
	if current.Slot != nil {
		snap.Remaining = current.Slot.Remaining(minute)
	}
	return snap
}

// Tick recomputes the snapshot for the clock's current instant, stores it and
// emits DayChanged and PeriodChanged when they differ from the previous tick.
// The first tick always emits both.
func (w *Watcher) Tick(ctx context.Context) Snapshot {
	now := w.clock.Now()
	snap := w.Compute(now)
	prev, had := w.Snapshot()

	w.snapshot.Store(snap)
	w.ticks.Inc()

	if !had || prev.Date != snap.Date {
		w.logger.Info().
			Str("date", snap.Date).
			Str("weekday", snap.Weekday().String()).
			Int("observances", len(snap.Observances)).
			Msg("Day changed")
		signals.EmitDayChanged(ctx, timeutil.StartOfDay(now))
	}

	if !had || !sameSlot(prev.Current, snap.Current) {
		event := w.logger.Info().Str("period", snap.Current.Period.String())
		if snap.Current.Slot != nil {
			event = event.
				Str("type", snap.Current.Slot.Type.String()).
				Str("range", timeutil.FormatRange(snap.Current.Slot.Start, snap.Current.Slot.End))
		}
		event.Msg("Period changed")

		var slot *choghadiya.Slot
		if snap.Current.Slot != nil {
			s := *snap.Current.Slot
			slot = &s
		}
		signals.EmitPeriodChanged(ctx, signals.PeriodChangedData{
			Period:  snap.Current.Period,
			Slot:    slot,
			Weekday: snap.Weekday(),
			At:      now,
		})
	}

	return snap
}

func sameSlot(a, b choghadiya.Current) bool {
	if a.Period != b.Period {
		return false
	}
	if a.Slot == nil || b.Slot == nil {
		return a.Slot == nil && b.Slot == nil
	}
	return *a.Slot == *b.Slot
}

// Run ticks once immediately and then on every interval until ctx is cancelled
func (w *Watcher) Run(ctx context.Context) error {
	if !w.running.CompareAndSwap(false, true) {
		return fmt.Errorf("watcher is already running")
	}
	defer w.running.Store(false)

	w.logger.Info().Dur("interval", w.interval).Msg("Starting period watcher")
	w.Tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("Period watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}
