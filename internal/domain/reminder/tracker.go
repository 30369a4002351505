package reminder

import (
	"slices"
	"sync"
)

// Kind distinguishes the two notifications a slot can raise.
type Kind string

const (
	// KindAdvance is raised while the slot is dueSoon.
	KindAdvance Kind = "advance"
	// KindDue is raised in the slot's own minute.
	KindDue Kind = "due"
)

// Reminder is a slot that should be surfaced to someone.
type Reminder struct {
	Entry
	Kind Kind `json:"kind"`
}

// Key identifies a reminder for deduplication.
func (r Reminder) Key() DoseKey {
	return DoseKey{ScheduleID: r.ScheduleID, Date: r.Date, Time: r.Time}
}

// Reminders lists the slots that warrant a notification at the classification instant.
func (c Classification) Reminders() []Reminder {
	var out []Reminder
	for _, e := range c.Entries {
		switch {
		case e.Status == StatusDueSoon && e.minute == c.NowMinute:
			out = append(out, Reminder{Entry: e, Kind: KindAdvance}, Reminder{Entry: e, Kind: KindDue})
		case e.Status == StatusDueSoon:
			out = append(out, Reminder{Entry: e, Kind: KindAdvance})
		}
	}

	return out
}

type firedKey struct {
	dose DoseKey
	kind Kind
}

// Tracker remembers which reminders were already surfaced, per subject, so repeated
// polling never surfaces the same (schedule, time, date, kind) twice.
type Tracker struct {
	mu    sync.Mutex
	fired map[string]map[firedKey]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{fired: make(map[string]map[firedKey]struct{})}
}

// Surface returns the reminders not yet surfaced for subjectID and marks them as surfaced.
func (t *Tracker) Surface(subjectID string, reminders []Reminder) []Reminder {
	t.mu.Lock()
	defer t.mu.Unlock()

	fired, ok := t.fired[subjectID]
	if !ok {
		fired = make(map[firedKey]struct{})
		t.fired[subjectID] = fired
	}

	var fresh []Reminder
	for _, r := range reminders {
		key := firedKey{dose: r.Key(), kind: r.Kind}
		if _, done := fired[key]; done {
			continue
		}
		fired[key] = struct{}{}
		fresh = append(fresh, r)
	}

	return fresh
}

// Release drops the markers of scheduleID whose time is no longer in times, so a slot that
// is removed and later re-added is announced again. Pass nil once the schedule is gone.
func (t *Tracker) Release(subjectID, scheduleID string, times []string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for k := range t.fired[subjectID] {
		if k.dose.ScheduleID != scheduleID || slices.Contains(times, k.dose.Time) {
			continue
		}
		delete(t.fired[subjectID], k)
		removed++
	}

	return removed
}

// Prune removes markers older than today. Dates compare lexically in DateLayout.
func (t *Tracker) Prune(today string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for subject, fired := range t.fired {
		for k := range fired {
			if k.dose.Date < today {
				delete(fired, k)
				removed++
			}
		}
		if len(fired) == 0 {
			delete(t.fired, subject)
		}
	}

	return removed
}

// Subjects returns how many subjects currently hold markers.
func (t *Tracker) Subjects() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.fired)
}
