// Package scenario describes scripted navigation sessions: an initial
// route, a frame rate, and timed navigation events. Scenarios are stored
// as YAML and replayed by the engine.
package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/ivlev/routemotion/internal/navigation"
)

const Version = "1.0"

var (
	ErrNoInitial   = errors.New("scenario has no initial route")
	ErrFPS         = errors.New("scenario fps must be positive")
	ErrDuration    = errors.New("scenario duration must be positive")
	ErrEventTime   = errors.New("event time out of range")
	ErrEventOrder  = errors.New("events are not sorted by time")
	ErrEventTarget = errors.New("event must set exactly one of route or back")
	ErrNothingToDo = errors.New("no routes to visit")
)

// Scenario represents a complete navigation session
type Scenario struct {
	Version  string           `yaml:"version"`
	Name     string           `yaml:"name,omitempty"`
	Initial  navigation.Route `yaml:"initial"`
	FPS      int              `yaml:"fps"`
	Duration float64          `yaml:"duration"` // Simulated seconds
	Events   []Event          `yaml:"events"`
}

// Event is one navigation request at a point in time
type Event struct {
	At    float64          `yaml:"at"` // Seconds from start
	Route navigation.Route `yaml:"route,omitempty"`
	Back  bool             `yaml:"back,omitempty"`
}

func (e Event) String() string {
	if e.Back {
		return fmt.Sprintf("%.3fs back", e.At)
	}
	return fmt.Sprintf("%.3fs -> %s", e.At, e.Route)
}

// Frames is the number of ticks needed to cover Duration at FPS.
func (s *Scenario) Frames() int {
	if s.FPS <= 0 || s.Duration <= 0 {
		return 0
	}
	return int(s.Duration*float64(s.FPS) + 0.5)
}

// FrameOf returns the index of the first frame starting at or after at
// seconds. An event is delivered just before that frame is ticked.
func (s *Scenario) FrameOf(at float64) int {
	return int(math.Ceil(at*float64(s.FPS) - 1e-9))
}

// Validate checks that the scenario can be replayed.
func (s *Scenario) Validate() error {
	if s.Initial == "" {
		return ErrNoInitial
	}
	if s.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrFPS, s.FPS)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%w: %g", ErrDuration, s.Duration)
	}

	prev := 0.0
	for i, e := range s.Events {
		if e.At < 0 || s.FrameOf(e.At) >= s.Frames() {
			return fmt.Errorf("event %d at %gs: %w", i, e.At, ErrEventTime)
		}
		if e.At < prev {
			return fmt.Errorf("event %d at %gs: %w", i, e.At, ErrEventOrder)
		}
		if (e.Route == "") == !e.Back {
			return fmt.Errorf("event %d: %w", i, ErrEventTarget)
		}
		prev = e.At
	}
	return nil
}
