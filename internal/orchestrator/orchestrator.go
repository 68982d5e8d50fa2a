// Package orchestrator drives route transitions frame by frame. It feeds
// navigation requests into a navigation.Machine, resolves the transition
// policy whenever the machine starts a new transition, animates both
// layers and settles the machine once every motion has finished.
package orchestrator

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ivlev/routemotion/internal/motion"
	"github.com/ivlev/routemotion/internal/navigation"
	"github.com/ivlev/routemotion/internal/policy"
	"github.com/ivlev/routemotion/internal/system"
)

type request struct {
	route navigation.Route
	back  bool
}

// Stats counts transition lifecycle events since creation.
type Stats struct {
	Started int
	Settled int
	Forced  int
}

// Orchestrator owns one navigation context. Navigate and Back may be
// called from any goroutine; Tick must be called from a single one.
type Orchestrator struct {
	machine  *navigation.Machine
	resolver *policy.Resolver
	table    *policy.Table
	opts     options

	mu      sync.Mutex
	pending []request

	active   bool
	observed navigation.State
	config   policy.TransitionConfig
	id       uuid.UUID
	elapsed  time.Duration
	seq      uint64
	stats    Stats

	fromTransform *motion.Motion[motion.Transform]
	toTransform   *motion.Motion[motion.Transform]
	fromOpacity   *motion.Motion[motion.Scalar]
	toOpacity     *motion.Motion[motion.Scalar]
}

// New creates an orchestrator for machine. A machine that is already
// transitioning starts animating on the first Tick.
func New(machine *navigation.Machine, resolver *policy.Resolver, table *policy.Table, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		machine:       machine,
		resolver:      resolver,
		table:         table,
		fromTransform: motion.New(motion.Identity()),
		toTransform:   motion.New(motion.Identity()),
		fromOpacity:   motion.New(motion.Scalar(1)),
		toOpacity:     motion.New(motion.Scalar(1)),
	}
	for _, opt := range opts {
		opt(&o.opts)
	}
	return o
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.opts.logger != nil {
		return o.opts.logger
	}
	return system.Logger()
}

// Navigate queues a route change. It takes effect on the next Tick.
func (o *Orchestrator) Navigate(route navigation.Route) {
	o.mu.Lock()
	o.pending = append(o.pending, request{route: route})
	o.mu.Unlock()
}

// Back queues a return to the previously settled route.
func (o *Orchestrator) Back() {
	o.mu.Lock()
	o.pending = append(o.pending, request{back: true})
	o.mu.Unlock()
}

func (o *Orchestrator) drain() {
	o.mu.Lock()
	pending := o.pending
	o.pending = nil
	o.mu.Unlock()

	for _, req := range pending {
		if req.back {
			if _, ok := o.machine.Back(); !ok {
				o.logger().Debug("back ignored, history is empty", "route", string(o.machine.Target()))
			}
			continue
		}
		o.machine.SetTarget(req.route)
	}
}

// Tick advances the orchestrator by the time elapsed since the previous
// call and returns the frame to display.
//
// Navigation requests queued since the previous Tick are applied first,
// before any motion is sampled.
func (o *Orchestrator) Tick(elapsed time.Duration) Frame {
	o.drain()

	state := o.machine.State()
	if !state.IsSettled() && (!o.active || state != o.observed) {
		o.start(state)
	}

	if o.active {
		o.advance(elapsed)
	}

	o.seq++
	frame := o.frame()
	if o.opts.renderer != nil {
		o.opts.renderer.Render(frame)
	}
	return frame
}

func (o *Orchestrator) start(state navigation.State) {
	retarget := o.active
	variant := o.resolver.Resolve(state.From(), state.To())
	cfg := o.table.Config(variant)

	o.fromTransform.Start(cfg.InitialFrom, cfg.FinalFrom, cfg.Model)
	o.toTransform.Start(cfg.InitialTo, cfg.FinalTo, cfg.Model)
	o.fromOpacity.Start(motion.Scalar(cfg.FromOpacity.Start), motion.Scalar(cfg.FromOpacity.End), cfg.Model)
	o.toOpacity.Start(motion.Scalar(cfg.ToOpacity.Start), motion.Scalar(cfg.ToOpacity.End), cfg.Model)

	o.active = true
	o.observed = state
	o.config = cfg
	o.elapsed = 0
	o.id = newTransitionID()
	o.stats.Started++

	o.logger().Debug("transition started",
		"id", o.id.String(),
		"from", string(state.From()),
		"to", string(state.To()),
		"variant", variant.String(),
		"model", cfg.Model.String(),
		"retarget", retarget)
}

func (o *Orchestrator) advance(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	o.elapsed += elapsed

	o.fromTransform.Tick(elapsed)
	o.toTransform.Tick(elapsed)
	o.fromOpacity.Tick(elapsed)
	o.toOpacity.Tick(elapsed)

	if !o.running() {
		o.settle(false)
		return
	}

	if o.opts.maxDuration > 0 && o.elapsed >= o.opts.maxDuration {
		o.logger().Warn("transition exceeded max duration, forcing settle",
			"id", o.id.String(),
			"to", string(o.observed.To()),
			"elapsed", o.elapsed,
			"max", o.opts.maxDuration)
		o.fromTransform.Stop()
		o.toTransform.Stop()
		o.fromOpacity.Stop()
		o.toOpacity.Stop()
		o.settle(true)
	}
}

func (o *Orchestrator) running() bool {
	return o.fromTransform.IsRunning() || o.toTransform.IsRunning() ||
		o.fromOpacity.IsRunning() || o.toOpacity.IsRunning()
}

func (o *Orchestrator) settle(forced bool) {
	o.machine.Settle()
	o.active = false
	o.stats.Settled++
	if forced {
		o.stats.Forced++
	}
	o.logger().Debug("transition settled",
		"id", o.id.String(),
		"route", string(o.machine.Target()),
		"elapsed", o.elapsed)
}

func (o *Orchestrator) frame() Frame {
	if !o.active {
		return passThrough(o.seq, o.machine.Target())
	}
	return Frame{
		Seq:   o.seq,
		Route: o.observed.To(),
		From: Layer{
			Route:     o.observed.From(),
			Transform: o.fromTransform.Value(),
			Opacity:   clampOpacity(o.fromOpacity.Value()),
		},
		To: Layer{
			Route:     o.observed.To(),
			Transform: o.toTransform.Value(),
			Opacity:   clampOpacity(o.toOpacity.Value()),
		},
		Variant:      o.config.Variant,
		TransitionID: o.id,
	}
}

// Springs may overshoot; a layer is never more than fully opaque or
// less than invisible.
func clampOpacity(v motion.Scalar) float64 {
	return min(max(v.Float(), 0), 1)
}

func newTransitionID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// Active reports whether a transition is being animated.
func (o *Orchestrator) Active() bool { return o.active }

// State returns the navigation state as of the last Tick.
func (o *Orchestrator) State() navigation.State { return o.machine.State() }

// Config returns the config of the current or most recent transition.
func (o *Orchestrator) Config() policy.TransitionConfig { return o.config }

// Stats returns lifecycle counters.
func (o *Orchestrator) Stats() Stats { return o.stats }
