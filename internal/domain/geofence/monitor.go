package geofence

import (
	"sync"

	"careconnect/internal/domain/geo"
)

// StateTable holds one State per relation id. Each relation is written by a single
// evaluation at a time; the mutex only protects the map itself.
type StateTable struct {
	mu     sync.Mutex
	states map[string]State
}

func NewStateTable() *StateTable {
	return &StateTable{states: make(map[string]State)}
}

// Get returns the stored state, or an inside state for unknown relations.
func (t *StateTable) Get(relationID string) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.states[relationID]; ok {
		return s
	}

	return State{RelationID: relationID}
}

// Reset forgets the relation, re-arming its breach trigger.
func (t *StateTable) Reset(relationID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.states, relationID)
}

func (t *StateTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.states)
}

// update runs fn against the current state of relationID and stores what it returns.
func (t *StateTable) update(relationID string, fn func(State) (State, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev, ok := t.states[relationID]
	if !ok {
		prev = State{RelationID: relationID}
	}

	next, err := fn(prev)
	if err != nil {
		return err
	}

	if next.IsOutside {
		t.states[relationID] = next
	} else {
		// inside is the default, no need to keep an entry around
		delete(t.states, relationID)
	}

	return nil
}

// Monitor applies an Evaluator to positions while keeping per-relation state in a table.
type Monitor struct {
	evaluator *Evaluator
	states    *StateTable
}

func NewMonitor(evaluator *Evaluator, states *StateTable) *Monitor {
	return &Monitor{
		evaluator: evaluator,
		states:    states,
	}
}

// Observe evaluates pos for one relation and records the resulting state.
func (m *Monitor) Observe(relationID string, pos geo.Position, zone *Zone) (Result, error) {
	var result Result
	err := m.states.update(relationID, func(prev State) (State, error) {
		var err error
		result, err = m.evaluator.Evaluate(pos, zone, prev)
		if err != nil {
			return prev, err
		}
		result.State.RelationID = relationID

		return result.State, nil
	})
	if err != nil {
		return Result{}, err
	}

	return result, nil
}
