package choghadiya

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeta_AllPeriodTypes(t *testing.T) {
	testCases := []struct {
		typ          PeriodType
		key          string
		english      string
		devanagari   string
		favorability Favorability
	}{
		{Amrit, "AMRIT", "Amrit", "अमृत", Good},
		{Shubh, "SHUBH", "Shubh", "शुभ", Good},
		{Labh, "LABH", "Labh", "लाभ", Good},
		{Chanchal, "CHANCHAL", "Chanchal", "चंचल", Neutral},
		{Udveg, "UDVEG", "Udveg", "उद्वेग", Bad},
		{Kaal, "KAAL", "Kaal", "काल", Bad},
		{Rog, "ROG", "Rog", "रोग", Bad},
	}

	require.Len(t, AllPeriodTypes(), len(testCases))
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			meta := Meta(tc.typ)
			assert.Equal(t, tc.typ, meta.Type)
			assert.Equal(t, tc.key, tc.typ.String())
			assert.Equal(t, tc.english, meta.English)
			assert.Equal(t, tc.devanagari, meta.Devanagari)
			assert.Equal(t, tc.favorability, meta.Favorability)
			assert.NotEmpty(t, meta.Description)
		})
	}
}

func TestMeta_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() { Meta(PeriodType(7)) })
	assert.Panics(t, func() { Meta(PeriodType(-1)) })
	assert.Equal(t, "PeriodType(9)", PeriodType(9).String())
}

func TestParsePeriodType(t *testing.T) {
	p, err := ParsePeriodType("amrit")
	require.NoError(t, err)
	assert.Equal(t, Amrit, p)

	p, err = ParsePeriodType(" ROG ")
	require.NoError(t, err)
	assert.Equal(t, Rog, p)

	_, err = ParsePeriodType("RAHU")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid period type")
}

func TestPeriodTypesByFavorability(t *testing.T) {
	assert.Equal(t, []PeriodType{Amrit, Shubh, Labh}, PeriodTypesByFavorability(Good))
	assert.Equal(t, []PeriodType{Chanchal}, PeriodTypesByFavorability(Neutral))
	assert.Equal(t, []PeriodType{Udveg, Kaal, Rog}, PeriodTypesByFavorability(Bad))
}

func TestFavorability_Labels(t *testing.T) {
	assert.Equal(t, "good", Good.String())
	assert.Equal(t, "neutral", Neutral.String())
	assert.Equal(t, "bad", Bad.String())
	assert.Equal(t, "GOOD", Good.Label())
	assert.Equal(t, "NEUTRAL", Neutral.Label())
	assert.Equal(t, "AVOID", Bad.Label())
}

func TestSlot_JSON(t *testing.T) {
	data, err := json.Marshal(Slot{Start: 360, End: 450, Type: Amrit})
	require.NoError(t, err)
	assert.JSONEq(t, `{"startMinutes":360,"endMinutes":450,"type":"AMRIT"}`, string(data))

	var decoded Slot
	require.NoError(t, json.Unmarshal([]byte(`{"startMinutes":1080,"endMinutes":1170,"type":"CHANCHAL"}`), &decoded))
	assert.Equal(t, Slot{Start: 1080, End: 1170, Type: Chanchal}, decoded)

	meta, err := json.Marshal(Meta(Chanchal))
	require.NoError(t, err)
	assert.Contains(t, string(meta), `"favorability":"neutral"`)
}

func TestPatterns_Published(t *testing.T) {
	testCases := []struct {
		weekday time.Weekday
		day     Pattern
		night   Pattern
	}{
		{time.Sunday, Pattern{Udveg, Chanchal, Labh, Amrit, Kaal, Shubh, Rog, Udveg}, Pattern{Shubh, Amrit, Chanchal, Rog, Kaal, Labh, Udveg, Shubh}},
		{time.Monday, Pattern{Amrit, Kaal, Shubh, Rog, Udveg, Chanchal, Labh, Amrit}, Pattern{Chanchal, Rog, Kaal, Labh, Udveg, Shubh, Amrit, Chanchal}},
		{time.Tuesday, Pattern{Rog, Udveg, Chanchal, Labh, Amrit, Kaal, Shubh, Rog}, Pattern{Kaal, Labh, Udveg, Shubh, Amrit, Chanchal, Rog, Kaal}},
		{time.Wednesday, Pattern{Labh, Amrit, Kaal, Shubh, Rog, Udveg, Chanchal, Labh}, Pattern{Udveg, Shubh, Amrit, Chanchal, Rog, Kaal, Labh, Udveg}},
		{time.Thursday, Pattern{Shubh, Rog, Udveg, Chanchal, Labh, Amrit, Kaal, Shubh}, Pattern{Amrit, Chanchal, Rog, Kaal, Labh, Udveg, Shubh, Amrit}},
		{time.Friday, Pattern{Chanchal, Labh, Amrit, Kaal, Shubh, Rog, Udveg, Chanchal}, Pattern{Rog, Kaal, Labh, Udveg, Shubh, Amrit, Chanchal, Rog}},
		{time.Saturday, Pattern{Kaal, Shubh, Rog, Udveg, Chanchal, Labh, Amrit, Kaal}, Pattern{Labh, Udveg, Shubh, Amrit, Chanchal, Rog, Kaal, Labh}},
	}

	for _, tc := range testCases {
		t.Run(tc.weekday.String(), func(t *testing.T) {
			assert.Equal(t, tc.day, DayPattern(tc.weekday))
			assert.Equal(t, tc.night, NightPattern(tc.weekday))
			assert.Equal(t, tc.day, PatternFor(tc.weekday, false))
			assert.Equal(t, tc.night, PatternFor(tc.weekday, true))
		})
	}
}

func TestPatterns_CallerCannotMutateTables(t *testing.T) {
	p := DayPattern(time.Monday)
	p[0] = Rog

	assert.Equal(t, Amrit, DayPattern(time.Monday)[0])
}

func TestPatterns_InvalidWeekdayPanics(t *testing.T) {
	assert.Panics(t, func() { DayPattern(time.Weekday(7)) })
	assert.Panics(t, func() { NightPattern(time.Weekday(-1)) })
	assert.Panics(t, func() { WeekdayLabel(time.Weekday(8)) })
}

func TestWeekdayLabelAndOrder(t *testing.T) {
	assert.Equal(t, WeekdayLabels{English: "Sunday", Devanagari: "रवि"}, WeekdayLabel(time.Sunday))
	assert.Equal(t, WeekdayLabels{English: "Thursday", Devanagari: "गुरु"}, WeekdayLabel(time.Thursday))

	order := WeekOrder()
	require.Len(t, order, 7)
	assert.Equal(t, time.Monday, order[0])
	assert.Equal(t, time.Sunday, order[6])
}
