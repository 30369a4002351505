package geofence

import (
	"math"
	"testing"
	"time"

	"careconnect/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bangalore = geo.Point{Lat: 12.9716, Lng: 77.5946}
	eastOf600 = geo.Point{Lat: 12.9716, Lng: 77.6006}
	fixedNow  = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
)

func testZone() *Zone {
	return &Zone{
		RelationID:   "rel-1",
		Center:       bangalore,
		RadiusMeters: 500,
		Active:       true,
	}
}

func newTestEvaluator(opts Options) *Evaluator {
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}

	return NewEvaluator(opts)
}

func at(p geo.Point) geo.Position {
	return geo.Position{Point: p, ObservedAt: fixedNow}
}

func TestEvaluate_SamePointIsInside(t *testing.T) {
	e := newTestEvaluator(Options{})

	result, err := e.Evaluate(at(bangalore), testZone(), State{})

	require.NoError(t, err)
	assert.Equal(t, OutcomeInside, result.Outcome)
	assert.False(t, result.State.IsOutside)
	assert.False(t, result.Breached)
	assert.Nil(t, result.Event)
	assert.Equal(t, 0.0, result.Distance)
}

func TestEvaluate_PointBeyondRadiusBreaches(t *testing.T) {
	e := newTestEvaluator(Options{})

	result, err := e.Evaluate(at(eastOf600), testZone(), State{})

	require.NoError(t, err)
	assert.Equal(t, OutcomeOutside, result.Outcome)
	assert.True(t, result.State.IsOutside)
	assert.True(t, result.Breached)
	require.NotNil(t, result.Event)
	assert.Equal(t, "rel-1", result.Event.RelationID)
	assert.Equal(t, bangalore, result.Event.Center)
	assert.Equal(t, eastOf600, result.Event.Position)
	assert.Greater(t, result.Event.Distance, 500.0)
	assert.Equal(t, fixedNow, result.Event.Timestamp)
}

func TestEvaluate_EdgeTriggerFiresOncePerExit(t *testing.T) {
	e := newTestEvaluator(Options{})
	zone := testZone()

	sequence := []struct {
		pos      geo.Point
		breached bool
	}{
		{eastOf600, true},
		{eastOf600, false},
		{eastOf600, false},
		{bangalore, false},
		{eastOf600, true},
		{eastOf600, false},
	}

	state := State{}
	breaches := 0
	for i, step := range sequence {
		result, err := e.Evaluate(at(step.pos), zone, state)
		require.NoError(t, err)
		assert.Equal(t, step.breached, result.Breached, "step %d", i)
		if result.Breached {
			breaches++
		}
		state = result.State
	}

	assert.Equal(t, 2, breaches)
}

func TestEvaluate_InactiveZoneNeverBreaches(t *testing.T) {
	e := newTestEvaluator(Options{})
	zone := testZone()
	zone.Active = false

	// roughly 10,000 km away
	far := geo.Destination(bangalore, 0, 10_000_000)
	d, err := geo.DistanceMeters(bangalore, far)
	require.NoError(t, err)
	require.InDelta(t, 10_000_000, d, 1)

	for _, prev := range []State{{}, {IsOutside: true, Signalled: true}} {
		result, err := e.Evaluate(at(far), zone, prev)

		require.NoError(t, err)
		assert.Equal(t, OutcomeInactive, result.Outcome)
		assert.False(t, result.Breached)
		assert.False(t, result.State.IsOutside)
	}
}

func TestEvaluate_MissingOrMalformedZone(t *testing.T) {
	e := newTestEvaluator(Options{})

	zones := map[string]*Zone{
		"nil zone":        nil,
		"zero radius":     {RelationID: "rel-1", Center: bangalore, Active: true},
		"negative radius": {RelationID: "rel-1", Center: bangalore, RadiusMeters: -10, Active: true},
		"nan radius":      {RelationID: "rel-1", Center: bangalore, RadiusMeters: math.NaN(), Active: true},
		"bad center":      {RelationID: "rel-1", Center: geo.Point{Lat: 91}, RadiusMeters: 500, Active: true},
	}

	for name, zone := range zones {
		t.Run(name, func(t *testing.T) {
			result, err := e.Evaluate(at(eastOf600), zone, State{RelationID: "rel-1", IsOutside: true})

			require.NoError(t, err)
			assert.Equal(t, OutcomeNoZoneConfigured, result.Outcome)
			assert.False(t, result.Breached)
			assert.False(t, result.State.IsOutside)
		})
	}
}

func TestEvaluate_InvalidPositionKeepsState(t *testing.T) {
	e := newTestEvaluator(Options{})
	prev := State{RelationID: "rel-1", IsOutside: true, Signalled: true, OutsideSince: fixedNow}

	result, err := e.Evaluate(at(geo.Point{Lat: math.Inf(1), Lng: 0}), testZone(), prev)

	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
	assert.Equal(t, prev, result.State)
	assert.False(t, result.Breached)
}

func TestEvaluate_OutsideStateWithoutSignalDoesNotRefire(t *testing.T) {
	e := newTestEvaluator(Options{})

	result, err := e.Evaluate(at(eastOf600), testZone(), State{IsOutside: true})

	require.NoError(t, err)
	assert.False(t, result.Breached)
	assert.True(t, result.State.IsOutside)
}

func TestEvaluate_HysteresisDelaysRearm(t *testing.T) {
	e := newTestEvaluator(Options{HysteresisMeters: 100})
	zone := testZone()

	// 450m from the center: inside the radius but within the hysteresis band
	nearEdge := geo.Destination(bangalore, 90, 450)
	deepInside := geo.Destination(bangalore, 90, 300)

	r1, err := e.Evaluate(at(eastOf600), zone, State{})
	require.NoError(t, err)
	require.True(t, r1.Breached)

	r2, err := e.Evaluate(at(nearEdge), zone, r1.State)
	require.NoError(t, err)
	assert.True(t, r2.State.IsOutside, "still considered outside inside the band")

	r3, err := e.Evaluate(at(eastOf600), zone, r2.State)
	require.NoError(t, err)
	assert.False(t, r3.Breached)

	r4, err := e.Evaluate(at(deepInside), zone, r3.State)
	require.NoError(t, err)
	assert.False(t, r4.State.IsOutside)

	r5, err := e.Evaluate(at(eastOf600), zone, r4.State)
	require.NoError(t, err)
	assert.True(t, r5.Breached)
}

func TestEvaluate_MinDwellWaitsBeforeBreach(t *testing.T) {
	e := newTestEvaluator(Options{MinDwell: 2 * time.Minute})
	zone := testZone()

	pos := func(offset time.Duration) geo.Position {
		return geo.Position{Point: eastOf600, ObservedAt: fixedNow.Add(offset)}
	}

	r1, err := e.Evaluate(pos(0), zone, State{})
	require.NoError(t, err)
	assert.False(t, r1.Breached)
	assert.True(t, r1.State.IsOutside)

	r2, err := e.Evaluate(pos(time.Minute), zone, r1.State)
	require.NoError(t, err)
	assert.False(t, r2.Breached)

	r3, err := e.Evaluate(pos(2*time.Minute), zone, r2.State)
	require.NoError(t, err)
	assert.True(t, r3.Breached)

	r4, err := e.Evaluate(pos(3*time.Minute), zone, r3.State)
	require.NoError(t, err)
	assert.False(t, r4.Breached)
}

func TestMonitor_PartitionsStateByRelation(t *testing.T) {
	states := NewStateTable()
	m := NewMonitor(newTestEvaluator(Options{}), states)

	zoneA := testZone()
	zoneB := testZone()
	zoneB.RelationID = "rel-2"

	rA, err := m.Observe("rel-1", at(eastOf600), zoneA)
	require.NoError(t, err)
	assert.True(t, rA.Breached)

	rB, err := m.Observe("rel-2", at(eastOf600), zoneB)
	require.NoError(t, err)
	assert.True(t, rB.Breached, "second relation has its own trigger")

	rA2, err := m.Observe("rel-1", at(eastOf600), zoneA)
	require.NoError(t, err)
	assert.False(t, rA2.Breached)
	assert.Equal(t, 2, states.Len())

	states.Reset("rel-1")
	rA3, err := m.Observe("rel-1", at(eastOf600), zoneA)
	require.NoError(t, err)
	assert.True(t, rA3.Breached, "reset re-arms the trigger")
}

func TestMonitor_InsideDropsEntry(t *testing.T) {
	states := NewStateTable()
	m := NewMonitor(newTestEvaluator(Options{}), states)

	_, err := m.Observe("rel-1", at(eastOf600), testZone())
	require.NoError(t, err)
	assert.Equal(t, 1, states.Len())

	_, err = m.Observe("rel-1", at(bangalore), testZone())
	require.NoError(t, err)
	assert.Equal(t, 0, states.Len())
	assert.Equal(t, State{RelationID: "rel-1"}, states.Get("rel-1"))
}
