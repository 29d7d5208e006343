package choghadiya

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}

func TestGenerateSlots_AllPublishedPatterns(t *testing.T) {
	dayStart, dayEnd := DefaultWindow.DayRange()
	nightStart, nightEnd := DefaultWindow.NightRange()

	for _, wd := range allWeekdays() {
		for _, tc := range []struct {
			name    string
			pattern Pattern
			start   int
			end     int
		}{
			{"day", DayPattern(wd), dayStart, dayEnd},
			{"night", NightPattern(wd), nightStart, nightEnd},
		} {
			t.Run(wd.String()+"/"+tc.name, func(t *testing.T) {
				slots := GenerateSlots(tc.start, tc.end, tc.pattern)

				require.Len(t, slots, SlotsPerPeriod)
				assert.Equal(t, tc.start, slots[0].Start, "first slot starts at window start")
				assert.Equal(t, tc.end, slots[len(slots)-1].End, "last slot ends at window end")
				for i := range slots {
					assert.Equal(t, 90, slots[i].Duration(), "slot %d should last 90 minutes", i)
					assert.Equal(t, tc.pattern[i], slots[i].Type)
					if i > 0 {
						assert.Equal(t, slots[i-1].End, slots[i].Start, "slots %d and %d must be contiguous", i-1, i)
					}
				}
			})
		}
	}
}

func TestGenerateSlots_MondayDay(t *testing.T) {
	pattern := DayPattern(time.Monday)
	assert.Equal(t, Pattern{Amrit, Kaal, Shubh, Rog, Udveg, Chanchal, Labh, Amrit}, pattern)

	slots := GenerateSlots(360, 1080, pattern)

	assert.Equal(t, Slot{Start: 360, End: 450, Type: Amrit}, slots[0])
	assert.Equal(t, Slot{Start: 990, End: 1080, Type: Amrit}, slots[7])
}

func TestGenerateSlots_UnevenSpan(t *testing.T) {
	// 100 minutes over 8 slots gives 12.5 minute segments
	slots := GenerateSlots(0, 100, DayPattern(time.Sunday))
	require.Len(t, slots, 8)

	expectedBoundaries := []int{0, 13, 25, 38, 50, 63, 75, 88, 100}
	for i, s := range slots {
		assert.Equal(t, expectedBoundaries[i], s.Start, "start of slot %d", i)
		assert.Equal(t, expectedBoundaries[i+1], s.End, "end of slot %d", i)
	}

	// Independent rounding leaves a one minute seam between slot lengths
	assert.Equal(t, 13, slots[0].Duration())
	assert.Equal(t, 12, slots[1].Duration())
	assert.Equal(t, 100, slots[7].End-slots[0].Start)
}

func TestGenerateSlots_ArbitraryPatternLength(t *testing.T) {
	slots := GenerateSlots(10, 20, Pattern{Labh, Rog, Kaal})
	require.Len(t, slots, 3)

	assert.Equal(t, Slot{Start: 10, End: 13, Type: Labh}, slots[0])
	assert.Equal(t, Slot{Start: 13, End: 17, Type: Rog}, slots[1])
	assert.Equal(t, Slot{Start: 17, End: 20, Type: Kaal}, slots[2])
}

func TestGenerateSlots_ContiguityForManySpans(t *testing.T) {
	pattern := NightPattern(time.Friday)
	for span := 1; span <= 500; span += 7 {
		slots := GenerateSlots(1000, 1000+span, pattern)
		assert.Equal(t, 1000, slots[0].Start)
		assert.Equal(t, 1000+span, slots[len(slots)-1].End)
		for i := 1; i < len(slots); i++ {
			assert.Equal(t, slots[i-1].End, slots[i].Start, "span %d: seam between %d and %d", span, i-1, i)
		}
	}
}

func TestGenerateSlots_PreconditionViolations(t *testing.T) {
	assert.Panics(t, func() { GenerateSlots(360, 360, DayPattern(time.Monday)) }, "empty span")
	assert.Panics(t, func() { GenerateSlots(400, 360, DayPattern(time.Monday)) }, "negative span")
	assert.Panics(t, func() { GenerateSlots(0, 100, Pattern{}) }, "empty pattern")
	assert.Panics(t, func() { GenerateSlots(0, 100, nil) }, "nil pattern")
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	pattern := DayPattern(time.Thursday)
	first := GenerateSlots(360, 1080, pattern)
	second := GenerateSlots(360, 1080, pattern)

	assert.Equal(t, first, second)
	assert.Equal(t, DayPattern(time.Thursday), pattern, "generation must not modify the pattern")
}

func TestFindSlot(t *testing.T) {
	slots := GenerateSlots(360, 1080, DayPattern(time.Monday))

	s := FindSlot(slots, 449)
	require.NotNil(t, s)
	assert.Equal(t, Amrit, s.Type)

	s = FindSlot(slots, 450)
	require.NotNil(t, s)
	assert.Equal(t, Kaal, s.Type, "slot end is exclusive")

	assert.Nil(t, FindSlot(slots, 1080))
	assert.Nil(t, FindSlot(slots, 100))
	assert.Nil(t, FindSlot(nil, 500))
}

func TestSlot_String(t *testing.T) {
	assert.Equal(t, "AMRIT 6:00 AM – 7:30 AM", Slot{Start: 360, End: 450, Type: Amrit}.String())
	assert.Equal(t, "SHUBH 4:30 AM – 6:00 AM", Slot{Start: 1710, End: 1800, Type: Shubh}.String())
}

func TestSlot_Remaining(t *testing.T) {
	testCases := []struct {
		name     string
		now      int
		slot     Slot
		expected time.Duration
	}{
		{"mid day slot", 600, Slot{Start: 540, End: 630}, 30 * time.Minute},
		{"first minute", 540, Slot{Start: 540, End: 630}, 90 * time.Minute},
		{"after midnight", 0, Slot{Start: 1440, End: 1530}, 90 * time.Minute},
		{"before midnight", 1430, Slot{Start: 1350, End: 1440}, 10 * time.Minute},
		{"past the end", 700, Slot{Start: 540, End: 630}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.slot.Remaining(tc.now))
		})
	}
}
