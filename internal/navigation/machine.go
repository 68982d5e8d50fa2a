package navigation

// Machine owns the single navigation state of one navigation context.
// It is not safe for concurrent use; the orchestrator drives it from one
// logical thread.
type Machine struct {
	state   State
	history *History
	// returning is set while the in-flight transition was started by Back,
	// so settling it does not push the departed route again.
	returning bool
}

// New creates a machine settled on initial.
func New(initial Route) *Machine {
	return &Machine{
		state:   Settled(initial),
		history: NewHistory(),
	}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Target returns the destination while transitioning, else the settled route.
func (m *Machine) Target() Route { return m.state.to }

// SetTarget records a navigation to route.
//
// From Settled(old) it moves to Transitioning(old, route). While
// transitioning it re-targets: the previous destination becomes the new
// departure point. Targeting the current destination is a no-op.
// It reports whether the state changed.
func (m *Machine) SetTarget(route Route) bool {
	if route == m.state.to {
		return false
	}
	m.state = Transitioning(m.state.to, route)
	m.returning = false
	return true
}

// Settle collapses a transition onto its destination. Unless the
// transition came from Back, the departed route is pushed onto the
// history. On a settled machine it does nothing and returns false.
func (m *Machine) Settle() bool {
	if !m.state.transitioning {
		return false
	}
	if !m.returning {
		m.history.Push(m.state.from)
	}
	m.returning = false
	m.state = Settled(m.state.to)
	return true
}

// Back re-targets to the route the user came from. During a forward
// transition that is the route being left, and the history is untouched.
// Otherwise the most recently departed route is popped. It returns false
// when there is nothing to go back to.
func (m *Machine) Back() (Route, bool) {
	if m.state.transitioning && !m.returning {
		prev := m.state.from
		m.SetTarget(prev)
		m.returning = true
		return prev, true
	}
	for {
		prev, ok := m.history.Pop()
		if !ok {
			return "", false
		}
		// consecutive duplicates can appear after re-targets
		if prev == m.state.to {
			continue
		}
		m.SetTarget(prev)
		m.returning = true
		return prev, true
	}
}

// History exposes the back stack.
func (m *Machine) History() *History { return m.history }
