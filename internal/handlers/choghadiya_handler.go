package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/belphemur/choghadiya/internal/choghadiya"
	"github.com/belphemur/choghadiya/internal/constants"
	"github.com/belphemur/choghadiya/internal/timeutil"
	"github.com/belphemur/choghadiya/internal/tithi"
	"github.com/belphemur/choghadiya/internal/viewhelpers"
)

// ChoghadiyaHandler renders the current-day Choghadiya page
type ChoghadiyaHandler struct {
	*BaseHandler
}

// NewChoghadiyaHandler creates a new Choghadiya page handler
func NewChoghadiyaHandler(baseHandler *BaseHandler) *ChoghadiyaHandler {
	return &ChoghadiyaHandler{BaseHandler: baseHandler}
}

// RegisterRoutes registers the Choghadiya page route
func (h *ChoghadiyaHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleChoghadiya)
}

// CurrentCard describes the active period shown at the top of the page
type CurrentCard struct {
	PeriodLabel string
	Name        string
	Secondary   string
	Description string
	Range       string
	Badge       string
	CSSClass    string
	Remaining   string
}

// WeekdayOption is one entry of the weekly overview selector
type WeekdayOption struct {
	Value    string
	Label    string
	Selected bool
	IsToday  bool
}

// ObservanceView is an observance prepared for display
type ObservanceView struct {
	Name        string
	Description string
	Color       string
}

// ChoghadiyaPageData contains data for the Choghadiya page template
type ChoghadiyaPageData struct {
	BasePageData
	ErrorMessage     string
	DateLabel        string
	WeekdayPrimary   string
	WeekdaySecondary string
	Sunrise          string
	Sunset           string
	Now              string
	Current          *CurrentCard
	Observances      []ObservanceView

	Tab      constants.Period
	TabLabel string
	TabRange string
	Slots    []viewhelpers.SlotView
	Legend   []viewhelpers.LegendGroup

	Weekdays      []WeekdayOption
	WeeklyLabel   string
	WeeklyIsToday bool
	WeeklyDay     []viewhelpers.SlotView
	WeeklyNight   []viewhelpers.SlotView
}

func (h *ChoghadiyaHandler) handleChoghadiya(w http.ResponseWriter, r *http.Request) {
	handlerLogger := h.logger.With().Str("handler", "handleChoghadiya").Logger()
	handlerLogger.Debug().Str("method", r.Method).Msg("Handling Choghadiya page request")

	lang := h.ResolveLanguage(r)
	now := h.Now()
	window := h.Config.Window()
	schedule := window.ScheduleOn(now)
	current := window.CurrentAt(schedule, now)
	today := timeutil.WeekdayOf(now)

	data := ChoghadiyaPageData{
		BasePageData: h.NewBasePageData(r, lang),
		DateLabel:    now.Format("Monday, 2 January 2006"),
		Sunrise:      timeutil.FormatClock(window.Sunrise),
		Sunset:       timeutil.FormatClock(window.Sunset),
		Now:          timeutil.FormatClock(timeutil.MinuteOfDay(now)),
		Legend:       viewhelpers.BuildLegend(lang),
	}
	data.WeekdayPrimary = viewhelpers.LocalizedWeekday(today, lang)
	data.WeekdaySecondary = viewhelpers.LocalizedWeekday(today, otherLanguage(lang))

	for _, o := range tithi.ObservancesForDate(now) {
		meta := o.Meta()
		data.Observances = append(data.Observances, ObservanceView{Name: o.String(), Description: meta.Description, Color: meta.Color})
	}

	if current.Found() {
		slot := *current.Slot
		meta := slot.Meta()
		name, secondary := viewhelpers.LocalizedNames(meta, lang)
		data.Current = &CurrentCard{
			PeriodLabel: current.Period.Label(),
			Name:        name,
			Secondary:   secondary,
			Description: meta.Description,
			Range:       timeutil.FormatRange(slot.Start, slot.End),
			Badge:       meta.Favorability.Label(),
			CSSClass:    viewhelpers.FavorabilityClass(meta.Favorability),
			Remaining:   viewhelpers.RemainingLabel(slot.Remaining(timeutil.MinuteOfDay(now))),
		}
	} else {
		handlerLogger.Warn().Int("minute", timeutil.MinuteOfDay(now)).Msg("No slot covers the current minute")
	}

	// Tab selection, DAY unless asked otherwise
	data.Tab = constants.PeriodDay
	if tab := r.URL.Query().Get("tab"); tab != "" {
		period, err := constants.ParsePeriod(tab)
		if err != nil {
			handlerLogger.Debug().Str("tab", tab).Msg("Ignoring invalid tab")
			data.ErrorMessage = GetErrorMessage(ErrCodeInvalidTab)
		} else {
			data.Tab = period
		}
	}
	data.TabLabel = data.Tab.Label()
	night := data.Tab == constants.PeriodNight
	if night {
		start, end := window.NightRange()
		data.TabRange = timeutil.FormatRange(start, end)
	} else {
		start, end := window.DayRange()
		data.TabRange = timeutil.FormatRange(start, end)
	}
	data.Slots = viewhelpers.BuildSlotViews(schedule.Slots(night), data.Tab, current, true, lang)

	// Weekly overview
	weekly := today
	if wd := r.URL.Query().Get("weekday"); wd != "" {
		parsed, err := constants.ParseDayOfWeek(wd)
		if err != nil {
			handlerLogger.Debug().Str("weekday", wd).Msg("Ignoring invalid weekday")
			data.ErrorMessage = GetErrorMessage(ErrCodeInvalidWeekday)
		} else {
			weekly = parsed
		}
	}
	data.WeeklyIsToday = weekly == today
	data.WeeklyLabel = viewhelpers.LocalizedWeekday(weekly, lang)
	weeklySchedule := window.ScheduleFor(weekly)
	data.WeeklyDay = viewhelpers.BuildSlotViews(weeklySchedule.Day, constants.PeriodDay, current, data.WeeklyIsToday, lang)
	data.WeeklyNight = viewhelpers.BuildSlotViews(weeklySchedule.Night, constants.PeriodNight, current, data.WeeklyIsToday, lang)
	data.Weekdays = weekdayOptions(weekly, today, lang)

	h.RenderTemplate(w, "choghadiya.html", data)
}

func weekdayOptions(selected, today time.Weekday, lang constants.Language) []WeekdayOption {
	order := choghadiya.WeekOrder()
	opts := make([]WeekdayOption, 0, len(order))
	for _, wd := range order {
		opts = append(opts, WeekdayOption{
			Value:    strings.ToLower(wd.String()),
			Label:    viewhelpers.LocalizedWeekday(wd, lang),
			Selected: wd == selected,
			IsToday:  wd == today,
		})
	}
	return opts
}

func otherLanguage(lang constants.Language) constants.Language {
	if lang == constants.LanguageHindi {
		return constants.LanguageEnglish
	}
	return constants.LanguageHindi
}
