// Package reminder classifies daily medicine slots against the wall clock.
package reminder

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DefaultLeadWindow is how far ahead of a slot the advance reminder is raised.
const DefaultLeadWindow = 10 * time.Minute

// DateLayout formats the calendar date that scopes acknowledgements.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusDueSoon  Status = "dueSoon"
	StatusDue      Status = "due"
	StatusMissed   Status = "missed"
	StatusTaken    Status = "taken"
)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ErrMalformedTime is returned for a time of day that is not 24-hour HH:MM.
var ErrMalformedTime = errors.New("not a 24-hour HH:MM value")

// ParseTimeOfDay parses a 24-hour "HH:MM" string into minutes after midnight.
func ParseTimeOfDay(s string) (int, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.Wrapf(ErrMalformedTime, "time %q", s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])

	return hours*60 + minutes, nil
}

// Schedule is one medicine with its daily times.
type Schedule struct {
	ID           string
	SubjectID    string
	Name         string
	Dosage       string
	Times        []string
	Instructions string
	Active       bool
}

// DoseKey identifies one slot on one calendar day.
type DoseKey struct {
	ScheduleID string
	Date       string
	Time       string
}

// String renders the key the way acknowledgements are stored on a medicine: "YYYY-MM-DD_HH:MM".
func (k DoseKey) String() string {
	return k.Date + "_" + k.Time
}

// TakenSet holds the acknowledged doses.
type TakenSet map[DoseKey]struct{}

func (s TakenSet) Add(key DoseKey) {
	s[key] = struct{}{}
}

func (s TakenSet) Has(key DoseKey) bool {
	_, ok := s[key]

	return ok
}

// Entry is a classified slot.
type Entry struct {
	ScheduleID string `json:"scheduleId"`
	SubjectID  string `json:"subjectId,omitempty"`
	Name       string `json:"name,omitempty"`
	Dosage     string `json:"dosage,omitempty"`
	Time       string `json:"time"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
	minute     int
}

// MalformedScheduleEntry reports a time that could not be parsed. It never aborts
// classification of the other entries.
type MalformedScheduleEntry struct {
	ScheduleID string `json:"scheduleId"`
	Value      string `json:"value"`
	Reason     string `json:"reason"`
}

func (w MalformedScheduleEntry) Error() string {
	return fmt.Sprintf("malformed schedule entry %q in %s: %s", w.Value, w.ScheduleID, w.Reason)
}

// Classification is the result of classifying a set of schedules at one instant.
type Classification struct {
	Date      string
	NowMinute int
	Entries   []Entry
	Warnings  []MalformedScheduleEntry
}

// Classifier assigns statuses to daily slots.
type Classifier struct {
	leadMinutes int
}

// NewClassifier builds a classifier. A non-positive lead falls back to DefaultLeadWindow.
func NewClassifier(lead time.Duration) *Classifier {
	if lead <= 0 {
		lead = DefaultLeadWindow
	}

	minutes := int(lead / time.Minute)
	if minutes < 1 {
		minutes = 1
	}

	return &Classifier{leadMinutes: minutes}
}

// Classify evaluates every time of every active schedule against now.
//
// Statuses follow: taken if acknowledged for today, missed if earlier than now, dueSoon
// if within [now, now+lead), upcoming otherwise. The output is ordered by time of day,
// then schedule name, then schedule id.
func (c *Classifier) Classify(schedules []Schedule, now time.Time, taken TakenSet) Classification {
	return c.classify(schedules, now, taken, c.status)
}

// Plan is Classify for the caretaker day view: a slot at the current minute is due, and
// there is no advance window.
func (c *Classifier) Plan(schedules []Schedule, now time.Time, taken TakenSet) Classification {
	return c.classify(schedules, now, taken, planStatus)
}

// ClassifyTimes classifies a single schedule's times, with takenToday holding the
// acknowledged "HH:MM" values for now's date.
func (c *Classifier) ClassifyTimes(times []string, now time.Time, takenToday map[string]bool) Classification {
	date := now.Format(DateLayout)
	taken := make(TakenSet, len(takenToday))
	for t, ok := range takenToday {
		if ok {
			taken.Add(DoseKey{Date: date, Time: t})
		}
	}

	return c.Classify([]Schedule{{Times: times, Active: true}}, now, taken)
}

func (c *Classifier) classify(
	schedules []Schedule,
	now time.Time,
	taken TakenSet,
	statusFn func(slot, now int, taken bool) Status,
) Classification {
	result := Classification{
		Date:      now.Format(DateLayout),
		NowMinute: now.Hour()*60 + now.Minute(),
	}

	for _, schedule := range schedules {
		if !schedule.Active {
			continue
		}

		seen := make(map[int]struct{}, len(schedule.Times))
		for _, raw := range schedule.Times {
			minute, err := ParseTimeOfDay(raw)
			if err != nil {
				result.Warnings = append(result.Warnings, MalformedScheduleEntry{
					ScheduleID: schedule.ID,
					Value:      raw,
					Reason:     err.Error(),
				})

				continue
			}
			if _, dup := seen[minute]; dup {
				continue
			}
			seen[minute] = struct{}{}

			key := DoseKey{ScheduleID: schedule.ID, Date: result.Date, Time: raw}
			result.Entries = append(result.Entries, Entry{
				ScheduleID: schedule.ID,
				SubjectID:  schedule.SubjectID,
				Name:       schedule.Name,
				Dosage:     schedule.Dosage,
				Time:       raw,
				Date:       result.Date,
				Status:     statusFn(minute, result.NowMinute, taken.Has(key)),
				minute:     minute,
			})
		}
	}

	sort.SliceStable(result.Entries, func(i, j int) bool {
		a, b := result.Entries[i], result.Entries[j]
		if a.minute != b.minute {
			return a.minute < b.minute
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}

		return a.ScheduleID < b.ScheduleID
	})

	return result
}

func (c *Classifier) status(slot, now int, taken bool) Status {
	switch {
	case taken:
		return StatusTaken
	case slot < now:
		return StatusMissed
	case slot < now+c.leadMinutes:
		return StatusDueSoon
	default:
		return StatusUpcoming
	}
}

func planStatus(slot, now int, taken bool) Status {
	switch {
	case taken:
		return StatusTaken
	case slot < now:
		return StatusMissed
	case slot == now:
		return StatusDue
	default:
		return StatusUpcoming
	}
}
