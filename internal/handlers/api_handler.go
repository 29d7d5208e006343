package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/belphemur/choghadiya/internal/choghadiya"
	"github.com/belphemur/choghadiya/internal/constants"
	"github.com/belphemur/choghadiya/internal/timeutil"
	"github.com/belphemur/choghadiya/internal/tithi"
	"github.com/belphemur/choghadiya/internal/viewhelpers"
)

// APIHandler serves the JSON endpoints
type APIHandler struct {
	*BaseHandler
}

// NewAPIHandler creates a new JSON API handler
func NewAPIHandler(baseHandler *BaseHandler) *APIHandler {
	return &APIHandler{BaseHandler: baseHandler}
}

// RegisterRoutes registers the API and health routes
func (h *APIHandler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/choghadiya", h.handleChoghadiya)
		r.Get("/current", h.handleCurrent)
		r.Get("/periods", h.handlePeriods)
		r.Get("/tithi", h.handleTithiMonth)
		r.Get("/tithi/{month}/{day}", h.handleTithiDate)
	})
}

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SlotJSON is a slot with its display data
type SlotJSON struct {
	Start        string                  `json:"start"`
	End          string                  `json:"end"`
	StartMinutes int                     `json:"startMinutes"`
	EndMinutes   int                     `json:"endMinutes"`
	Type         choghadiya.PeriodType   `json:"type"`
	Name         string                  `json:"name"`
	Devanagari   string                  `json:"devanagari"`
	Description  string                  `json:"description"`
	Favorability choghadiya.Favorability `json:"favorability"`
	Current      bool                    `json:"current,omitempty"`
}

// CurrentJSON describes the resolved current period
type CurrentJSON struct {
	Period           constants.Period `json:"period"`
	Slot             *SlotJSON        `json:"slot"`
	RemainingMinutes int              `json:"remainingMinutes"`
	Remaining        string           `json:"remaining,omitempty"`
}

// ScheduleResponse is returned by /api/choghadiya
type ScheduleResponse struct {
	Date    string                   `json:"date"`
	Weekday choghadiya.WeekdayLabels `json:"weekday"`
	Sunrise timeutil.ClockMinute     `json:"sunrise"`
	Sunset  timeutil.ClockMinute     `json:"sunset"`
	Day     []SlotJSON               `json:"day"`
	Night   []SlotJSON               `json:"night"`
	Current *CurrentJSON             `json:"current,omitempty"`
	Tithi   []tithi.Observance       `json:"tithi"`
}

// SnapshotResponse is returned by /api/current
type SnapshotResponse struct {
	At      time.Time                `json:"at"`
	Date    string                   `json:"date"`
	Weekday choghadiya.WeekdayLabels `json:"weekday"`
	Current CurrentJSON              `json:"current"`
	Tithi   []tithi.Observance       `json:"tithi"`
}

// TithiMonthResponse is returned by /api/tithi
type TithiMonthResponse struct {
	Year    int           `json:"year"`
	Month   int           `json:"month"`
	Name    string        `json:"name"`
	Filter  string        `json:"filter,omitempty"`
	Entries []tithi.Entry `json:"entries"`
}

// ObservanceJSON is an observance with its guidance
type ObservanceJSON struct {
	Name        tithi.Observance `json:"name"`
	Description string           `json:"description"`
	Color       string           `json:"color"`
	Auspicious  bool             `json:"auspicious"`
	Best        []string         `json:"bestPeriods"`
	Avoid       []string         `json:"avoidPeriods"`
}

// TithiDateResponse is returned by /api/tithi/{month}/{day}
type TithiDateResponse struct {
	Date        string           `json:"date"`
	Weekday     string           `json:"weekday"`
	Observances []ObservanceJSON `json:"observances"`
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *APIHandler) writeError(w http.ResponseWriter, status int, code string) {
	h.writeJSON(w, status, ErrorResponse{Code: code, Message: GetErrorMessage(code)})
}

func (h *APIHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{"status": "ok"}
	if h.Watcher != nil {
		_, ready := h.Watcher.Snapshot()
		status["watcher_ready"] = ready
		status["ticks"] = h.Watcher.Ticks()
	}
	h.writeJSON(w, http.StatusOK, status)
}

func (h *APIHandler) handleChoghadiya(w http.ResponseWriter, r *http.Request) {
	handlerLogger := h.logger.With().Str("handler", "api.choghadiya").Logger()

	now := h.Now()
	day := now
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, now.Location())
		if err != nil {
			handlerLogger.Debug().Err(err).Str("date", d).Msg("Rejecting invalid date")
			h.writeError(w, http.StatusBadRequest, ErrCodeInvalidDate)
			return
		}
		day = parsed
	}

	window := h.Config.Window()
	schedule := window.ScheduleOn(day)
	isToday := day.Format("2006-01-02") == now.Format("2006-01-02")

	var current choghadiya.Current
	if isToday {
		current = window.CurrentAt(schedule, now)
	}

	resp := ScheduleResponse{
		Date:    day.Format("2006-01-02"),
		Weekday: schedule.Labels,
		Sunrise: timeutil.ClockMinute(window.Sunrise),
		Sunset:  timeutil.ClockMinute(window.Sunset),
		Day:     slotsJSON(schedule.Day, constants.PeriodDay, current),
		Night:   slotsJSON(schedule.Night, constants.PeriodNight, current),
		Tithi:   tithi.ObservancesForDate(day),
	}
	if isToday {
		c := currentJSON(current, timeutil.MinuteOfDay(now))
		resp.Current = &c
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *APIHandler) handleCurrent(w http.ResponseWriter, r *http.Request) {
	if h.Watcher == nil {
		h.writeError(w, http.StatusServiceUnavailable, ErrCodeNotReady)
		return
	}
	snap, ok := h.Watcher.Snapshot()
	if !ok {
		h.writeError(w, http.StatusServiceUnavailable, ErrCodeNotReady)
		return
	}

	h.writeJSON(w, http.StatusOK, SnapshotResponse{
		At:      snap.At,
		Date:    snap.Date,
		Weekday: snap.Schedule.Labels,
		Current: currentJSON(snap.Current, snap.Minute),
		Tithi:   snap.Observances,
	})
}

func (h *APIHandler) handlePeriods(w http.ResponseWriter, r *http.Request) {
	periods := make([]choghadiya.PeriodMeta, 0, len(choghadiya.AllPeriodTypes()))
	for _, p := range choghadiya.AllPeriodTypes() {
		periods = append(periods, choghadiya.Meta(p))
	}
	h.writeJSON(w, http.StatusOK, periods)
}

func (h *APIHandler) handleTithiMonth(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	monthIndex := tithi.ClampMonth(int(h.Now().Month()) - 1)
	if m := query.Get("month"); m != "" {
		idx, ok := parseMonth(m)
		if !ok {
			h.writeError(w, http.StatusBadRequest, ErrCodeInvalidMonth)
			return
		}
		monthIndex = idx
	}

	var filter tithi.Observance
	if f := query.Get("filter"); f != "" {
		parsed, err := tithi.ParseObservance(f)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, ErrCodeInvalidFilter)
			return
		}
		filter = parsed
	}

	month, _ := tithi.Month(monthIndex)
	entries := month.Events
	if filter != "" {
		entries = make([]tithi.Entry, 0, len(month.Events))
		for _, e := range month.Events {
			if tithi.HasObservance(monthIndex, e.Day, filter) {
				entries = append(entries, e)
			}
		}
	}

	h.writeJSON(w, http.StatusOK, TithiMonthResponse{
		Year:    tithi.Year,
		Month:   monthIndex + 1,
		Name:    month.Name,
		Filter:  filter.String(),
		Entries: entries,
	})
}

func (h *APIHandler) handleTithiDate(w http.ResponseWriter, r *http.Request) {
	monthIndex, ok := parseMonth(chi.URLParam(r, "month"))
	if !ok {
		h.writeError(w, http.StatusBadRequest, ErrCodeInvalidMonth)
		return
	}
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil || day < 1 || day > tithi.DaysInMonth(monthIndex, tithi.Year) {
		h.writeError(w, http.StatusBadRequest, ErrCodeInvalidDay)
		return
	}

	date := time.Date(tithi.Year, time.Month(monthIndex+1), day, 0, 0, 0, 0, time.UTC)
	resp := TithiDateResponse{
		Date:        date.Format("2006-01-02"),
		Weekday:     date.Weekday().String(),
		Observances: []ObservanceJSON{},
	}
	for _, o := range tithi.ObservancesOn(monthIndex, day) {
		meta := o.Meta()
		resp.Observances = append(resp.Observances, ObservanceJSON{
			Name:        o,
			Description: meta.Description,
			Color:       meta.Color,
			Auspicious:  meta.Auspicious,
			Best:        periodNames(tithi.BestPeriodsFor(o)),
			Avoid:       periodNames(tithi.AvoidPeriodsFor(o)),
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// parseMonth converts a 1-based month string into a 0-based index
func parseMonth(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return n - 1, true
}

func slotJSON(s choghadiya.Slot) SlotJSON {
	meta := s.Meta()
	return SlotJSON{
		Start:        timeutil.FormatClock(s.Start),
		End:          timeutil.FormatClock(s.End),
		StartMinutes: s.Start,
		EndMinutes:   s.End,
		Type:         s.Type,
		Name:         meta.English,
		Devanagari:   meta.Devanagari,
		Description:  meta.Description,
		Favorability: meta.Favorability,
	}
}

func slotsJSON(slots []choghadiya.Slot, period constants.Period, current choghadiya.Current) []SlotJSON {
	out := make([]SlotJSON, 0, len(slots))
	for _, s := range slots {
		j := slotJSON(s)
		j.Current = current.Matches(period, s)
		out = append(out, j)
	}
	return out
}

func currentJSON(c choghadiya.Current, minute int) CurrentJSON {
	out := CurrentJSON{Period: c.Period}
	if c.Slot != nil {
		s := slotJSON(*c.Slot)
		s.Current = true
		out.Slot = &s
		left := c.Slot.Remaining(minute)
		out.RemainingMinutes = int(left / time.Minute)
		out.Remaining = viewhelpers.RemainingLabel(left)
	}
	return out
}
