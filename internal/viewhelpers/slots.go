package viewhelpers

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/belphemur/choghadiya/internal/choghadiya"
	"github.com/belphemur/choghadiya/internal/constants"
	"github.com/belphemur/choghadiya/internal/timeutil"
)

// SlotView is a slot prepared for the timeline template
type SlotView struct {
	Index        int
	Range        string
	Type         choghadiya.PeriodType
	Name         string
	Secondary    string
	Description  string
	Favorability string
	Badge        string
	CSSClass     string
	IsCurrent    bool
}

// LegendGroup lists the period types sharing a favorability
type LegendGroup struct {
	Label    string
	CSSClass string
	Periods  []LegendEntry
}

// LegendEntry is one row of the legend
type LegendEntry struct {
	Name        string
	Secondary   string
	Description string
}

// FavorabilityClass maps a favorability to its CSS modifier
func FavorabilityClass(f choghadiya.Favorability) string {
	return "slot--" + f.String()
}

// LocalizedNames returns the primary and secondary period names for lang.
// Hindi puts the Devanagari name first.
func LocalizedNames(meta choghadiya.PeriodMeta, lang constants.Language) (primary, secondary string) {
	if lang == constants.LanguageHindi {
		return meta.Devanagari, meta.English
	}
	return meta.English, meta.Devanagari
}

// LocalizedWeekday returns the weekday label in lang
func LocalizedWeekday(w time.Weekday, lang constants.Language) string {
	labels := choghadiya.WeekdayLabel(w)
	if lang == constants.LanguageHindi {
		return labels.Devanagari
	}
	return labels.English
}

// BuildSlotViews converts slots of one period into view models. The current
// marker is only set when markCurrent is true, so schedules for other
// weekdays never highlight a slot.
func BuildSlotViews(slots []choghadiya.Slot, period constants.Period, current choghadiya.Current, markCurrent bool, lang constants.Language) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for i, s := range slots {
		meta := s.Meta()
		name, secondary := LocalizedNames(meta, lang)
		views = append(views, SlotView{
			Index:        i,
			Range:        timeutil.FormatRange(s.Start, s.End),
			Type:         s.Type,
			Name:         name,
			Secondary:    secondary,
			Description:  meta.Description,
			Favorability: meta.Favorability.String(),
			Badge:        meta.Favorability.Label(),
			CSSClass:     FavorabilityClass(meta.Favorability),
			IsCurrent:    markCurrent && current.Matches(period, s),
		})
	}
	return views
}

// BuildLegend groups every period type by favorability, best first
func BuildLegend(lang constants.Language) []LegendGroup {
	favs := []choghadiya.Favorability{choghadiya.Good, choghadiya.Neutral, choghadiya.Bad}
	groups := make([]LegendGroup, 0, len(favs))
	for _, f := range favs {
		group := LegendGroup{Label: f.Label(), CSSClass: FavorabilityClass(f)}
		for _, p := range choghadiya.PeriodTypesByFavorability(f) {
			meta := choghadiya.Meta(p)
			name, secondary := LocalizedNames(meta, lang)
			group.Periods = append(group.Periods, LegendEntry{Name: name, Secondary: secondary, Description: meta.Description})
		}
		groups = append(groups, group)
	}
	return groups
}

// RemainingLabel renders d as e.g. "25 minutes remaining"
func RemainingLabel(d time.Duration) string {
	ref := time.Unix(0, 0)
	return humanize.RelTime(ref.Add(d), ref, "ago", "remaining")
}
