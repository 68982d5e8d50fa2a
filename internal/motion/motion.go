// Package motion advances animated values over time, either along an
// eased tween or under a damped spring.
//
// A Motion is driven by an external clock: every frame the caller passes
// the time elapsed since the previous frame to Tick and reads back the
// current value. Nothing here blocks or starts goroutines.
package motion

import "time"

// Rest thresholds for springs. Both the displacement from the target and
// the velocity must be below them for the spring to be considered settled.
const (
	RestDisplacement = 0.01
	RestVelocity     = 0.1
)

// maxSpringStep bounds one integration step so the result does not
// depend on the caller's frame rate.
const maxSpringStep = time.Second / 240

// Motion is a single animated quantity.
type Motion[T Value[T]] struct {
	initial  T
	current  T
	target   T
	velocity T
	model    Model
	elapsed  time.Duration
	running  bool
}

// New returns a Motion resting at value.
func New[T Value[T]](value T) *Motion[T] {
	return &Motion[T]{
		initial:  value,
		current:  value,
		target:   value,
		velocity: value.Sub(value),
	}
}

// Start begins moving from initial to target, discarding any progress
// of a previous run.
func (m *Motion[T]) Start(initial, target T, model Model) {
	m.initial = initial
	m.current = initial
	m.target = target
	m.velocity = initial.Sub(initial)
	m.model = model
	m.elapsed = 0
	m.running = true

	if s, ok := model.(Spring); ok && s.Velocity != 0 {
		dir := target.Sub(initial)
		if n := dir.Norm(); n > 0 {
			m.velocity = dir.Mul(s.Velocity / n)
		}
	}
}

// Tick advances the motion by elapsed and returns the new value.
// Calling Tick on a finished motion returns the target unchanged.
func (m *Motion[T]) Tick(elapsed time.Duration) T {
	if !m.running {
		return m.current
	}
	if elapsed < 0 {
		elapsed = 0
	}
	m.elapsed += elapsed

	switch model := m.model.(type) {
	case Tween:
		m.tickTween(model)
	case Spring:
		m.tickSpring(model, elapsed)
	default:
		m.finish()
	}
	return m.current
}

func (m *Motion[T]) tickTween(tw Tween) {
	if tw.Duration <= 0 || m.elapsed >= tw.Duration {
		m.finish()
		return
	}
	t := float64(m.elapsed) / float64(tw.Duration)
	m.current = Lerp(m.initial, m.target, tw.ease(t))
}

func (m *Motion[T]) tickSpring(s Spring, elapsed time.Duration) {
	for remaining := elapsed; remaining > 0; {
		step := min(remaining, maxSpringStep)
		remaining -= step
		dt := step.Seconds()

		displacement := m.current.Sub(m.target)
		force := displacement.Mul(-s.Stiffness).Sub(m.velocity.Mul(s.Damping))
		accel := force.Mul(1 / s.Mass)

		// semi-implicit Euler: velocity first, then position with the new velocity
		m.velocity = m.velocity.Add(accel.Mul(dt))
		m.current = m.current.Add(m.velocity.Mul(dt))

		if m.current.Sub(m.target).Norm() < RestDisplacement && m.velocity.Norm() < RestVelocity {
			m.finish()
			return
		}
	}
}

func (m *Motion[T]) finish() {
	m.current = m.target
	m.velocity = m.target.Sub(m.target)
	m.running = false
}

// Stop snaps the motion to its target and marks it finished.
func (m *Motion[T]) Stop() {
	m.finish()
}

// IsRunning reports whether the motion has not reached its target yet.
func (m *Motion[T]) IsRunning() bool { return m.running }

// Value returns the current value without advancing.
func (m *Motion[T]) Value() T { return m.current }

// Target returns the value the motion is heading to.
func (m *Motion[T]) Target() T { return m.target }

// Velocity returns the current spring velocity; zero for tweens.
func (m *Motion[T]) Velocity() T { return m.velocity }

// Elapsed is the total time fed to Tick since the last Start.
func (m *Motion[T]) Elapsed() time.Duration { return m.elapsed }

// Model returns the model of the current run, nil before the first Start.
func (m *Motion[T]) Model() Model { return m.model }
