package scenario

import (
	"fmt"

	"github.com/ivlev/routemotion/internal/navigation"
)

// Director generates tour scenarios that visit routes one by one
type Director struct {
	FPS      int
	MinDwell float64 // Minimum time spent on a route (seconds)
	MaxDwell float64 // Maximum time spent on a route (seconds)
}

// NewDirector creates a new Director with default settings
func NewDirector(fps int) *Director {
	return &Director{
		FPS:      fps,
		MinDwell: 1.0,
		MaxDwell: 3.0,
	}
}

// Tour visits every route except initial, going back after each visit.
// The events are spread over totalDuration as far as the dwell limits
// allow.
func (d *Director) Tour(routes []navigation.Route, initial navigation.Route, totalDuration float64) (*Scenario, error) {
	var stops []navigation.Route
	for _, r := range routes {
		if r != initial {
			stops = append(stops, r)
		}
	}
	if len(stops) == 0 {
		return nil, ErrNothingToDo
	}

	dwellTime := d.calculateDwellTime(totalDuration, 2*len(stops))

	events := make([]Event, 0, 2*len(stops))
	currentTime := 1.0 // 1s intro
	for _, stop := range stops {
		events = append(events, Event{At: currentTime, Route: stop})
		currentTime += dwellTime
		events = append(events, Event{At: currentTime, Back: true})
		currentTime += dwellTime
	}

	return &Scenario{
		Version:  Version,
		Name:     fmt.Sprintf("tour of %d routes from %s", len(stops), initial),
		Initial:  initial,
		FPS:      d.FPS,
		Duration: currentTime + 1.0, // 1s outro
		Events:   events,
	}, nil
}

// calculateDwellTime determines how long to stay between two events
func (d *Director) calculateDwellTime(totalDuration float64, eventCount int) float64 {
	// Reserve time for intro/outro
	introOutroDuration := 2.0
	availableDuration := totalDuration - introOutroDuration

	if availableDuration <= 0 {
		availableDuration = totalDuration
	}

	dwellTime := availableDuration / float64(eventCount)

	// Clamp to min/max
	if dwellTime < d.MinDwell {
		dwellTime = d.MinDwell
	}
	if dwellTime > d.MaxDwell {
		dwellTime = d.MaxDwell
	}

	return dwellTime
}
