package choghadiya

import (
	"fmt"
	"math"
	"time"

	"github.com/belphemur/choghadiya/internal/timeutil"
)

// Slot is one period of a generated sequence. Start and End are minute offsets
// from local midnight; End may exceed 1440 for night slots.
type Slot struct {
	Start int        `json:"startMinutes"`
	End   int        `json:"endMinutes"`
	Type  PeriodType `json:"type"`
}

// Contains reports whether minute lies in [Start, End)
func (s Slot) Contains(minute int) bool {
	return minute >= s.Start && minute < s.End
}

// Duration returns the slot length in minutes
func (s Slot) Duration() int {
	return s.End - s.Start
}

// Remaining returns the time left in the slot at minute-of-day now.
// A now before Start is taken to be past midnight, matching night numbering.
func (s Slot) Remaining(now int) time.Duration {
	if now < s.Start {
		now += 24 * 60
	}
	if now >= s.End {
		return 0
	}
	return time.Duration(s.End-now) * time.Minute
}

// Meta returns the metadata of the slot's period type
func (s Slot) Meta() PeriodMeta {
	return Meta(s.Type)
}

// String renders the slot as "AMRIT 6:00 AM – 7:30 AM"
func (s Slot) String() string {
	return fmt.Sprintf("%s %s", s.Type, timeutil.FormatRange(s.Start, s.End))
}

// GenerateSlots splits [start, end) into len(pattern) equal segments and tags
// segment i with pattern[i].
//
// Each boundary is rounded on its own with math.Round (half away from zero,
// which is half-up for the non-negative minutes used here). No remainder is
// carried between slots, so uneven spans can show a one minute seam in slot
// lengths. Adjacent slots share the exact same boundary value.
//
// It panics if end <= start or the pattern is empty.
func GenerateSlots(start, end int, pattern Pattern) []Slot {
	if end <= start {
		panic(fmt.Sprintf("choghadiya: empty slot range [%d, %d)", start, end))
	}
	if len(pattern) == 0 {
		panic("choghadiya: empty pattern")
	}

	segment := float64(end-start) / float64(len(pattern))
	slots := make([]Slot, len(pattern))
	for i, typ := range pattern {
		slots[i] = Slot{
			Start: boundary(start, segment, i),
			End:   boundary(start, segment, i+1),
			Type:  typ,
		}
	}
	return slots
}

func boundary(start int, segment float64, i int) int {
	return int(math.Round(float64(start) + segment*float64(i)))
}

// FindSlot returns the slot containing minute, or nil
func FindSlot(slots []Slot, minute int) *Slot {
	for i := range slots {
		if slots[i].Contains(minute) {
			s := slots[i]
			return &s
		}
	}
	return nil
}
