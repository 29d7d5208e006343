// Package tithi provides the 2026 Jain Tithi calendar: which Gregorian dates
// carry which observances.
package tithi

import (
	"fmt"
	"strings"

	"github.com/belphemur/choghadiya/internal/choghadiya"
)

// Observance is a label attached to a calendar date
type Observance string

const (
	Pancham  Observance = "Pancham"
	Aatham   Observance = "Aatham"
	Choudas  Observance = "Choudas"
	Poonam   Observance = "Poonam"
	Paryusan Observance = "Paryusan"
	Oliji    Observance = "Oliji"
)

// ObservanceMeta describes how an observance is shown
type ObservanceMeta struct {
	Description string `json:"description"`
	// Color is the palette name used by the calendar legend and filter buttons
	Color      string `json:"color"`
	Auspicious bool   `json:"auspicious"`
}

var observanceMeta = map[Observance]ObservanceMeta{
	Pancham:  {Description: "5th Tithi - Auspicious day", Color: "emerald", Auspicious: true},
	Aatham:   {Description: "8th Tithi - Auspicious day", Color: "purple", Auspicious: true},
	Choudas:  {Description: "14th Tithi - Auspicious day", Color: "orange", Auspicious: false},
	Poonam:   {Description: "Full Moon - Highly auspicious", Color: "blue", Auspicious: true},
	Paryusan: {Description: "Major Jain festival - Sacred days", Color: "yellow", Auspicious: true},
	Oliji:    {Description: "Ritual day - Special observance", Color: "pink", Auspicious: false},
}

// AllObservances returns every observance in legend order
func AllObservances() []Observance {
	return []Observance{Pancham, Aatham, Choudas, Poonam, Paryusan, Oliji}
}

// FilterObservances returns the observances offered as calendar filters
func FilterObservances() []Observance {
	return []Observance{Pancham, Aatham, Choudas, Poonam}
}

// IsValid reports whether o is a known observance
func (o Observance) IsValid() bool {
	_, ok := observanceMeta[o]
	return ok
}

// String returns the observance name
func (o Observance) String() string {
	return string(o)
}

// Meta returns the display metadata of o; unknown observances get a stone
// colour and no description.
func (o Observance) Meta() ObservanceMeta {
	if m, ok := observanceMeta[o]; ok {
		return m
	}
	return ObservanceMeta{Color: "stone"}
}

// ParseObservance parses an observance name, ignoring case
func ParseObservance(s string) (Observance, error) {
	name := strings.TrimSpace(s)
	for _, o := range AllObservances() {
		if strings.EqualFold(string(o), name) {
			return o, nil
		}
	}
	return "", fmt.Errorf("invalid observance: %s", s)
}

// BestPeriodsFor lists the choghadiya periods recommended on an observance day
func BestPeriodsFor(o Observance) []choghadiya.PeriodType {
	if o.Meta().Auspicious {
		return []choghadiya.PeriodType{choghadiya.Amrit, choghadiya.Shubh}
	}
	return nil
}

// AvoidPeriodsFor lists the choghadiya periods to avoid on an observance day
func AvoidPeriodsFor(Observance) []choghadiya.PeriodType {
	return []choghadiya.PeriodType{choghadiya.Kaal, choghadiya.Rog}
}
