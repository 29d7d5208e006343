package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/belphemur/choghadiya/internal/choghadiya"
	"github.com/belphemur/choghadiya/internal/tithi"
	"github.com/belphemur/choghadiya/internal/viewhelpers"
)

// TithiHandler renders the 2026 Jain Tithi calendar
type TithiHandler struct {
	*BaseHandler
}

// NewTithiHandler creates a new Tithi calendar handler
func NewTithiHandler(baseHandler *BaseHandler) *TithiHandler {
	return &TithiHandler{BaseHandler: baseHandler}
}

// RegisterRoutes registers the calendar page route
func (h *TithiHandler) RegisterRoutes(r chi.Router) {
	r.Get("/calendar", h.handleCalendar)
}

// MonthLink is one entry of the month selector
type MonthLink struct {
	Number   int
	Name     string
	Selected bool
}

// FilterLink is one entry of the tithi filter bar
type FilterLink struct {
	Name   string
	Color  string
	Active bool
}

// SelectedDate holds the detail panel for a clicked date
type SelectedDate struct {
	Label       string
	Observances []SelectedObservance
}

// SelectedObservance is one observance in the detail panel
type SelectedObservance struct {
	Name        string
	Description string
	Color       string
	Best        []string
	Avoid       []string
}

// TithiPageData contains data for the calendar template
type TithiPageData struct {
	BasePageData
	ErrorMessage  string
	MonthName     string
	MonthNumber   int
	PrevMonth     int
	NextMonth     int
	TodayMonth    int
	Months        []MonthLink
	Filters       []FilterLink
	Filter        string
	Headers       []string
	CalendarWeeks [][]viewhelpers.CalendarDay
	Selected      *SelectedDate
}

func (h *TithiHandler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	handlerLogger := h.logger.With().Str("handler", "handleCalendar").Logger()
	handlerLogger.Debug().Str("method", r.Method).Msg("Handling calendar request")

	lang := h.ResolveLanguage(r)
	now := h.Now()
	query := r.URL.Query()

	// Months are 1-based in URLs; out of range values are clamped
	monthIndex := int(now.Month()) - 1
	data := TithiPageData{
		BasePageData: h.NewBasePageData(r, lang),
		Headers:      viewhelpers.WeekdayHeaders(),
	}
	if now.Year() != tithi.Year {
		monthIndex = 0
		data.ErrorMessage = GetErrorMessage(ErrCodeOutOfCoverage)
	}
	if m := query.Get("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			handlerLogger.Debug().Str("month", m).Msg("Ignoring invalid month")
			data.ErrorMessage = GetErrorMessage(ErrCodeInvalidMonth)
		} else {
			monthIndex = n - 1
		}
	}
	monthIndex = tithi.ClampMonth(monthIndex)

	var filter tithi.Observance
	if f := query.Get("filter"); f != "" {
		parsed, err := tithi.ParseObservance(f)
		if err != nil {
			handlerLogger.Debug().Str("filter", f).Msg("Ignoring invalid filter")
			data.ErrorMessage = GetErrorMessage(ErrCodeInvalidFilter)
		} else {
			filter = parsed
		}
	}

	selectedDay := 0
	if d := query.Get("date"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil || n < 1 || n > tithi.DaysInMonth(monthIndex, tithi.Year) {
			data.ErrorMessage = GetErrorMessage(ErrCodeInvalidDay)
		} else {
			selectedDay = n
		}
	}

	var today time.Time
	if now.Year() == tithi.Year {
		today = now
	}
	data.MonthName, data.CalendarWeeks = viewhelpers.StructureMonthForTemplate(monthIndex, viewhelpers.GridOptions{
		Today:       today,
		Filter:      filter,
		SelectedDay: selectedDay,
	})
	data.MonthNumber = monthIndex + 1
	data.PrevMonth = tithi.ClampMonth(monthIndex-1) + 1
	data.NextMonth = tithi.ClampMonth(monthIndex+1) + 1
	data.TodayMonth = int(now.Month())
	data.Filter = filter.String()

	for i := 0; i < 12; i++ {
		data.Months = append(data.Months, MonthLink{Number: i + 1, Name: tithi.MonthName(i), Selected: i == monthIndex})
	}
	for _, o := range tithi.FilterObservances() {
		data.Filters = append(data.Filters, FilterLink{Name: o.String(), Color: o.Meta().Color, Active: o == filter})
	}

	if selectedDay > 0 {
		data.Selected = buildSelectedDate(monthIndex, selectedDay)
	}

	handlerLogger.Debug().Int("month", data.MonthNumber).Str("filter", data.Filter).Int("date", selectedDay).Msg("Rendering calendar template")
	h.RenderTemplate(w, "calendar.html", data)
}

func buildSelectedDate(monthIndex, day int) *SelectedDate {
	sel := &SelectedDate{
		Label: time.Date(tithi.Year, time.Month(monthIndex+1), day, 0, 0, 0, 0, time.UTC).Format("Monday, 2 January 2006"),
	}
	for _, o := range tithi.ObservancesOn(monthIndex, day) {
		meta := o.Meta()
		sel.Observances = append(sel.Observances, SelectedObservance{
			Name:        o.String(),
			Description: meta.Description,
			Color:       meta.Color,
			Best:        periodNames(tithi.BestPeriodsFor(o)),
			Avoid:       periodNames(tithi.AvoidPeriodsFor(o)),
		})
	}
	return sel
}

func periodNames(types []choghadiya.PeriodType) []string {
	names := make([]string, 0, len(types))
	for _, p := range types {
		names = append(names, choghadiya.Meta(p).English)
	}
	return names
}
