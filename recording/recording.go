// Package recording holds the two-state recording controller.
package recording

import (
	"fmt"
	"sync"
)

// State is the recording controller state.
type State int

const (
	Idle State = iota
	Recording
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	switch s {
	case Idle, Recording:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("unknown recording state %d", int(s))
}

// UnmarshalText decodes a state name.
func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*s = Idle
	case "recording":
		*s = Recording
	default:
		return fmt.Errorf("unknown recording state %q", string(b))
	}
	return nil
}

// Machine is the Idle/Recording state machine. The zero value is Idle.
type Machine struct {
	mu    sync.Mutex
	state State
}

// NewMachine returns a machine in the given state.
func NewMachine(initial State) *Machine {
	return &Machine{state: initial}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start moves Idle to Recording. It reports false, leaving the state alone,
// when already recording.
func (m *Machine) Start() bool {
	return m.transition(Idle, Recording)
}

// Stop moves Recording to Idle. It reports false when already idle.
func (m *Machine) Stop() bool {
	return m.transition(Recording, Idle)
}

func (m *Machine) transition(from, to State) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != from {
		return false
	}
	m.state = to
	return true
}
