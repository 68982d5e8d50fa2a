package orchestrator

import (
	"log/slog"
	"time"
)

// Option configures an Orchestrator during creation.
//
// Example:
//
//	o := orchestrator.New(machine, policy.DefaultResolver(), policy.DefaultTable(),
//		orchestrator.WithRenderer(r),
//		orchestrator.WithMaxDuration(3*time.Second))
type Option func(*options)

type options struct {
	renderer    Renderer
	maxDuration time.Duration
	logger      *slog.Logger
}

// WithRenderer hands every frame to r at the end of Tick.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithMaxDuration forces a transition to settle once it has been
// animating for d, even if some motion is still running. Zero disables
// the ceiling, which is the default.
func WithMaxDuration(d time.Duration) Option {
	return func(o *options) {
		o.maxDuration = d
	}
}

// WithLogger sets the logger for transition lifecycle events. The
// default is the shared logger of the system package.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
