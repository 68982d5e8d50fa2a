// Package navigation tracks which route is being left and which is being
// entered while a transition animation is in flight.
//
// A Machine is either settled on one route or transitioning between two.
// It only changes through SetTarget, Back and Settle; it never settles on
// its own.
package navigation

import "fmt"

// Route identifies a navigable screen. Routes are compared by equality
// only; their contents are opaque to this package.
type Route string

// State is a snapshot of a Machine. The zero value is settled on the
// empty route.
type State struct {
	transitioning bool
	from          Route
	to            Route
}

// Settled returns the state of a machine resting on route.
func Settled(route Route) State {
	return State{to: route}
}

// Transitioning returns the state of a machine animating from one route to another.
func Transitioning(from, to Route) State {
	return State{transitioning: true, from: from, to: to}
}

// IsSettled reports whether no transition is in progress.
func (s State) IsSettled() bool { return !s.transitioning }

// From returns the departing route. For a settled state it equals To.
func (s State) From() Route {
	if !s.transitioning {
		return s.to
	}
	return s.from
}

// To returns the destination route, or the settled route.
func (s State) To() Route { return s.to }

func (s State) String() string {
	if s.transitioning {
		return fmt.Sprintf("Transitioning(%s -> %s)", s.from, s.to)
	}
	return fmt.Sprintf("Settled(%s)", s.to)
}
