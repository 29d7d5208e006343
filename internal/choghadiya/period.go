// Package choghadiya holds the Choghadiya period tables and the arithmetic that
// splits a day and a night into eight named periods.
package choghadiya

import (
	"fmt"
	"strings"
)

// PeriodType is one of the seven traditional Choghadiya names
type PeriodType int

const (
	Amrit PeriodType = iota
	Shubh
	Labh
	Chanchal
	Udveg
	Kaal
	Rog
)

// periodTypeCount must track the const block above
const periodTypeCount = 7

var periodKeys = [periodTypeCount]string{
	Amrit:    "AMRIT",
	Shubh:    "SHUBH",
	Labh:     "LABH",
	Chanchal: "CHANCHAL",
	Udveg:    "UDVEG",
	Kaal:     "KAAL",
	Rog:      "ROG",
}

// IsValid reports whether p is one of the seven period types
func (p PeriodType) IsValid() bool {
	return p >= 0 && p < periodTypeCount
}

// String returns the canonical upper-case key, e.g. "AMRIT"
func (p PeriodType) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("PeriodType(%d)", int(p))
	}
	return periodKeys[p]
}

// MarshalText implements encoding.TextMarshaler so JSON carries the key
func (p PeriodType) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("invalid period type: %d", int(p))
	}
	return []byte(periodKeys[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *PeriodType) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriodType(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePeriodType parses a period key, ignoring case
func ParsePeriodType(s string) (PeriodType, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for i, k := range periodKeys {
		if k == key {
			return PeriodType(i), nil
		}
	}
	return 0, fmt.Errorf("invalid period type: %s", s)
}

// AllPeriodTypes returns every period type in declaration order
func AllPeriodTypes() []PeriodType {
	all := make([]PeriodType, periodTypeCount)
	for i := range all {
		all[i] = PeriodType(i)
	}
	return all
}

// Favorability classifies a period for display colouring
type Favorability int

const (
	Good Favorability = iota
	Neutral
	Bad
)

var favorabilityNames = [...]string{
	Good:    "good",
	Neutral: "neutral",
	Bad:     "bad",
}

// String returns "good", "neutral" or "bad"
func (f Favorability) String() string {
	if f < 0 || int(f) >= len(favorabilityNames) {
		return fmt.Sprintf("Favorability(%d)", int(f))
	}
	return favorabilityNames[f]
}

// Label returns the badge text shown next to the current period
func (f Favorability) Label() string {
	switch f {
	case Good:
		return "GOOD"
	case Neutral:
		return "NEUTRAL"
	default:
		return "AVOID"
	}
}

// MarshalText implements encoding.TextMarshaler
func (f Favorability) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// PeriodMeta is the display data attached to a period type
type PeriodMeta struct {
	Type         PeriodType   `json:"key"`
	Devanagari   string       `json:"devanagari"`
	English      string       `json:"english"`
	Description  string       `json:"description"`
	Favorability Favorability `json:"favorability"`
}

var metaTable = [periodTypeCount]PeriodMeta{
	Amrit: {
		Type:         Amrit,
		Devanagari:   "अमृत",
		English:      "Amrit",
		Description:  "Nectar – Best for all work",
		Favorability: Good,
	},
	Shubh: {
		Type:         Shubh,
		Devanagari:   "शुभ",
		English:      "Shubh",
		Description:  "Auspicious – Good for work",
		Favorability: Good,
	},
	Labh: {
		Type:         Labh,
		Devanagari:   "लाभ",
		English:      "Labh",
		Description:  "Profit – Good for gains",
		Favorability: Good,
	},
	Chanchal: {
		Type:         Chanchal,
		Devanagari:   "चंचल",
		English:      "Chanchal",
		Description:  "Unstable – Not for important tasks",
		Favorability: Neutral,
	},
	Udveg: {
		Type:         Udveg,
		Devanagari:   "उद्वेग",
		English:      "Udveg",
		Description:  "Stress – Avoid major tasks",
		Favorability: Bad,
	},
	Kaal: {
		Type:         Kaal,
		Devanagari:   "काल",
		English:      "Kaal",
		Description:  "Negative – Avoid important work",
		Favorability: Bad,
	},
	Rog: {
		Type:         Rog,
		Devanagari:   "रोग",
		English:      "Rog",
		Description:  "Illness – Avoid travel / important work",
		Favorability: Bad,
	},
}

// Meta returns the metadata for p. It panics on a value outside the enum.
func Meta(p PeriodType) PeriodMeta {
	if !p.IsValid() {
		panic(fmt.Sprintf("choghadiya: invalid period type %d", int(p)))
	}
	return metaTable[p]
}

// PeriodTypesByFavorability returns the period types with the given favorability,
// in the order the legend lists them.
func PeriodTypesByFavorability(f Favorability) []PeriodType {
	var out []PeriodType
	for _, p := range AllPeriodTypes() {
		if metaTable[p].Favorability == f {
			out = append(out, p)
		}
	}
	return out
}
