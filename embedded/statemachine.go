// Package embedded holds the executable embedded-interview katas: a
// table-driven finite state machine and an NMEA-style serial protocol
// parser.
package embedded

import "fmt"

// State identifies a state of a Machine.
type State int

// Event identifies an input fed to a Machine.
type Event int

// Transition is one cell of the transition table: the next state, an
// optional guard consulted before the transition is taken, and an optional
// action run on the way there.
type Transition struct {
	Next   State
	Guard  func() bool
	Action func()
}

// Machine is a table-driven finite state machine. Missing table cells mean
// the event is ignored in that state, the convention the corpus' keypad
// lock uses.
type Machine struct {
	state State
	table map[State]map[Event]Transition
}

// NewMachine creates a machine starting in initial.
func NewMachine(initial State) *Machine {
	return &Machine{
		state: initial,
		table: make(map[State]map[Event]Transition),
	}
}

// On installs a transition for (from, ev). Installing the same cell twice
// panics, since a silently overwritten transition is a table bug.
func (m *Machine) On(from State, ev Event, t Transition) {
	row, ok := m.table[from]
	if !ok {
		row = make(map[Event]Transition)
		m.table[from] = row
	}

	if _, dup := row[ev]; dup {
		panic(fmt.Sprintf("embedded: duplicate transition (%d, %d)", from, ev))
	}

	row[ev] = t
}

// Fire feeds ev to the machine. It reports whether a transition was taken.
// A transition whose guard returns false is treated like a missing cell.
func (m *Machine) Fire(ev Event) bool {
	t, ok := m.table[m.state][ev]
	if !ok {
		return false
	}

	if t.Guard != nil && !t.Guard() {
		return false
	}

	m.state = t.Next
	if t.Action != nil {
		t.Action()
	}

	return true
}

// ForceState overrides the current state, for guard logic that lives
// outside the table (the corpus' alarm-after-N-wrong-codes check).
func (m *Machine) ForceState(s State) { m.state = s }

// State returns the current state.
func (m *Machine) State() State { return m.state }
