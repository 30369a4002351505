// Package geofence detects safe-zone exits for monitored patients.
//
// The evaluator is pure: it takes the previous state for a relation and returns the next
// one. Breaches are edge-triggered, so a patient who stays outside produces a single
// breach until a later position is seen back inside the zone.
package geofence

import (
	"math"
	"time"

	"careconnect/internal/domain/geo"
)

// Outcome classifies a single evaluation.
type Outcome string

const (
	OutcomeInside           Outcome = "inside"
	OutcomeOutside          Outcome = "outside"
	OutcomeInactive         Outcome = "inactive"
	OutcomeNoZoneConfigured Outcome = "no_zone_configured"
)

// Zone is a circular safe zone attached to a caretaker/patient relation.
type Zone struct {
	RelationID   string
	Center       geo.Point
	RadiusMeters float64
	Active       bool
}

// Valid reports whether the zone has a usable center and a positive radius.
func (z *Zone) Valid() bool {
	if z == nil {
		return false
	}
	if math.IsNaN(z.RadiusMeters) || math.IsInf(z.RadiusMeters, 0) || z.RadiusMeters <= 0 {
		return false
	}

	return z.Center.Validate() == nil
}

// State is the last inside/outside value computed for a relation.
type State struct {
	RelationID   string
	IsOutside    bool
	OutsideSince time.Time
	// Signalled is set once the breach for the current outside stretch has fired.
	Signalled bool
}

// BreachEvent describes a transition from inside to outside.
type BreachEvent struct {
	RelationID   string
	Distance     float64
	RadiusMeters float64
	Center       geo.Point
	Position     geo.Point
	ObservedAt   time.Time
	Timestamp    time.Time
}

// Result is the output of one evaluation.
type Result struct {
	State    State
	Outcome  Outcome
	Breached bool
	Distance float64
	Event    *BreachEvent
}

// Options tunes the evaluator. The zero value reproduces the plain edge trigger.
type Options struct {
	// HysteresisMeters widens the zone for a patient already outside, so re-arming requires
	// moving this far back inside the radius.
	HysteresisMeters float64
	// MinDwell delays the breach until the patient has been outside this long.
	MinDwell time.Duration
	// Now assigns breach timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Evaluator computes geofence transitions.
type Evaluator struct {
	hysteresis float64
	minDwell   time.Duration
	now        func() time.Time
}

func NewEvaluator(opts Options) *Evaluator {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	hysteresis := opts.HysteresisMeters
	if hysteresis < 0 || math.IsNaN(hysteresis) {
		hysteresis = 0
	}

	minDwell := opts.MinDwell
	if minDwell < 0 {
		minDwell = 0
	}

	return &Evaluator{
		hysteresis: hysteresis,
		minDwell:   minDwell,
		now:        now,
	}
}

// Evaluate computes the next state for pos against zone.
//
// An absent or malformed zone yields OutcomeNoZoneConfigured and an inactive zone yields
// OutcomeInactive; both reset the state to inside and never breach. Only an invalid position
// returns an error, in which case prev is returned unchanged.
func (e *Evaluator) Evaluate(pos geo.Position, zone *Zone, prev State) (Result, error) {
	if !zone.Valid() {
		return Result{
			State:   State{RelationID: prev.RelationID},
			Outcome: OutcomeNoZoneConfigured,
		}, nil
	}

	relationID := zone.RelationID
	if relationID == "" {
		relationID = prev.RelationID
	}

	if !zone.Active {
		return Result{
			State:   State{RelationID: relationID},
			Outcome: OutcomeInactive,
		}, nil
	}

	distance, err := geo.DistanceMeters(pos.Point, zone.Center)
	if err != nil {
		return Result{State: prev}, err
	}

	threshold := zone.RadiusMeters
	if prev.IsOutside {
		threshold = math.Max(0, zone.RadiusMeters-e.hysteresis)
	}
	isOutside := distance > threshold

	if !isOutside {
		return Result{
			State:    State{RelationID: relationID},
			Outcome:  OutcomeInside,
			Distance: distance,
		}, nil
	}

	observedAt := pos.ObservedAt
	if observedAt.IsZero() {
		observedAt = e.now()
	}

	next := State{
		RelationID:   relationID,
		IsOutside:    true,
		OutsideSince: prev.OutsideSince,
		Signalled:    prev.IsOutside && (prev.Signalled || e.minDwell == 0),
	}
	if !prev.IsOutside || next.OutsideSince.IsZero() {
		next.OutsideSince = observedAt
	}

	result := Result{
		State:    next,
		Outcome:  OutcomeOutside,
		Distance: distance,
	}

	if next.Signalled || observedAt.Sub(next.OutsideSince) < e.minDwell {
		return result, nil
	}

	result.State.Signalled = true
	result.Breached = true
	result.Event = &BreachEvent{
		RelationID:   relationID,
		Distance:     distance,
		RadiusMeters: zone.RadiusMeters,
		Center:       zone.Center,
		Position:     pos.Point,
		ObservedAt:   observedAt,
		Timestamp:    e.now(),
	}

	return result, nil
}
