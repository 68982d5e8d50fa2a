package motion

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Spring validation errors.
var (
	ErrSpringUndamped = errors.New("spring damping must be positive")
	ErrSpringMass     = errors.New("spring mass must be positive")
	ErrSpringStiff    = errors.New("spring stiffness must be positive")
)

// Model describes how a Motion moves from its initial value to its target.
// The implementations are Tween and Spring.
type Model interface {
	fmt.Stringer
	model()
}

// Tween is duration-based interpolation through an easing curve.
type Tween struct {
	Duration time.Duration
	Easing   EasingFunc // nil means EaseInOutCubic
}

func (Tween) model() {}

func (tw Tween) String() string {
	return fmt.Sprintf("tween(%s)", tw.Duration)
}

func (tw Tween) ease(t float64) float64 {
	if tw.Easing == nil {
		return EaseInOutCubic(t)
	}
	return tw.Easing(t)
}

// Spring is a mass-spring-damper. Velocity is the initial speed along
// the direction from the initial value to the target.
//
// A spring with Damping <= 0 never comes to rest. Motion does not reject
// such springs; call Validate before handing one to the engine.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	Velocity  float64
}

func (Spring) model() {}

func (s Spring) String() string {
	return fmt.Sprintf("spring(k=%g c=%g m=%g v=%g)", s.Stiffness, s.Damping, s.Mass, s.Velocity)
}

// Validate reports spring constants that can never settle.
func (s Spring) Validate() error {
	if s.Stiffness <= 0 {
		return ErrSpringStiff
	}
	if s.Mass <= 0 {
		return ErrSpringMass
	}
	if s.Damping <= 0 {
		return ErrSpringUndamped
	}
	return nil
}

// DampingRatio is c / (2*sqrt(k*m)). Values >= 1 do not oscillate.
func (s Spring) DampingRatio() float64 {
	if s.Stiffness <= 0 || s.Mass <= 0 {
		return 0
	}
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// Presets used by the default transition tables.
var (
	DefaultSpring = Spring{Stiffness: 160, Damping: 20, Mass: 1.5, Velocity: 10}
	DefaultTween  = Tween{Duration: 500 * time.Millisecond, Easing: EaseInOutCubic}
)
