package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slot struct {
	Time   string
	Status Status
}

func slots(c Classification) []slot {
	out := make([]slot, 0, len(c.Entries))
	for _, e := range c.Entries {
		out = append(out, slot{Time: e.Time, Status: e.Status})
	}

	return out
}

func clock(hh, mm int) time.Time {
	return time.Date(2026, 3, 14, hh, mm, 0, 0, time.UTC)
}

func TestClassifyTimes_DueSoonWithinLeadWindow(t *testing.T) {
	c := NewClassifier(10 * time.Minute)

	got := c.ClassifyTimes([]string{"08:00", "20:00"}, clock(7, 55), nil)

	assert.Equal(t, []slot{{"08:00", StatusDueSoon}, {"20:00", StatusUpcoming}}, slots(got))
	assert.Empty(t, got.Warnings)
}

func TestClassifyTimes_PastSlotIsMissed(t *testing.T) {
	c := NewClassifier(10 * time.Minute)

	got := c.ClassifyTimes([]string{"08:00", "20:00"}, clock(9, 0), map[string]bool{})

	assert.Equal(t, []slot{{"08:00", StatusMissed}, {"20:00", StatusUpcoming}}, slots(got))
}

func TestClassifyTimes_AcknowledgedSlotIsTaken(t *testing.T) {
	c := NewClassifier(10 * time.Minute)

	got := c.ClassifyTimes([]string{"08:00", "20:00"}, clock(9, 0), map[string]bool{"08:00": true})

	assert.Equal(t, []slot{{"08:00", StatusTaken}, {"20:00", StatusUpcoming}}, slots(got))
}

func TestClassifyTimes_MalformedEntryIsReportedNotFatal(t *testing.T) {
	c := NewClassifier(10 * time.Minute)

	got := c.ClassifyTimes([]string{"25:99", "08:00"}, clock(7, 0), nil)

	assert.Equal(t, []slot{{"08:00", StatusUpcoming}}, slots(got))
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, "25:99", got.Warnings[0].Value)
	assert.Contains(t, got.Warnings[0].Error(), "25:99")
}

func TestClassify_LeadWindowBoundaries(t *testing.T) {
	c := NewClassifier(10 * time.Minute)
	times := []string{"08:00", "08:09", "08:10"}

	got := c.ClassifyTimes(times, clock(8, 0), nil)

	assert.Equal(t, []slot{
		{"08:00", StatusDueSoon},
		{"08:09", StatusDueSoon},
		{"08:10", StatusUpcoming},
	}, slots(got))
}

func TestClassify_AcknowledgementIsDateScoped(t *testing.T) {
	c := NewClassifier(0)
	schedules := []Schedule{{ID: "med-1", Name: "Metformin", Times: []string{"08:00"}, Active: true}}

	taken := TakenSet{}
	taken.Add(DoseKey{ScheduleID: "med-1", Date: "2026-03-13", Time: "08:00"})

	got := c.Classify(schedules, clock(9, 0), taken)

	require.Len(t, got.Entries, 1)
	assert.Equal(t, StatusMissed, got.Entries[0].Status, "yesterday's acknowledgement does not count")

	taken.Add(DoseKey{ScheduleID: "med-1", Date: "2026-03-14", Time: "08:00"})
	got = c.Classify(schedules, clock(9, 0), taken)
	assert.Equal(t, StatusTaken, got.Entries[0].Status)
}

func TestClassify_SortsByTimeThenNameThenID(t *testing.T) {
	c := NewClassifier(10 * time.Minute)
	schedules := []Schedule{
		{ID: "b", Name: "Vitamin D", Times: []string{"20:00", "08:00"}, Active: true},
		{ID: "a", Name: "Aspirin", Times: []string{"08:00"}, Active: true},
		{ID: "c", Name: "Aspirin", Times: []string{"08:00"}, Active: true},
		{ID: "d", Name: "Ignored", Times: []string{"07:00"}, Active: false},
	}

	got := c.Classify(schedules, clock(6, 0), nil)

	var order []string
	for _, e := range got.Entries {
		order = append(order, e.Time+"/"+e.ScheduleID)
	}
	assert.Equal(t, []string{"08:00/a", "08:00/c", "08:00/b", "20:00/b"}, order)
}

func TestClassify_DuplicateTimesCollapse(t *testing.T) {
	c := NewClassifier(10 * time.Minute)

	got := c.ClassifyTimes([]string{"08:00", "08:00"}, clock(6, 0), nil)

	assert.Len(t, got.Entries, 1)
}

func TestParseTimeOfDay(t *testing.T) {
	valid := map[string]int{"00:00": 0, "08:05": 485, "23:59": 1439}
	for in, want := range valid {
		got, err := ParseTimeOfDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"24:00", "8:00", "08:60", "25:99", "", "ab:cd", "08:00:00", " 08:00"} {
		_, err := ParseTimeOfDay(in)
		assert.ErrorIs(t, err, ErrMalformedTime, in)
	}
}

func TestPlan_CurrentMinuteIsDue(t *testing.T) {
	c := NewClassifier(10 * time.Minute)
	schedules := []Schedule{{ID: "med-1", Name: "Metformin", Times: []string{"07:00", "08:00", "08:05"}, Active: true}}

	got := c.Plan(schedules, clock(8, 0), nil)

	assert.Equal(t, []slot{
		{"07:00", StatusMissed},
		{"08:00", StatusDue},
		{"08:05", StatusUpcoming},
	}, slots(got))
}

func TestDoseKey_String(t *testing.T) {
	key := DoseKey{ScheduleID: "med-1", Date: "2026-03-14", Time: "08:00"}

	assert.Equal(t, "2026-03-14_08:00", key.String())
}
