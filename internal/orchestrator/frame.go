package orchestrator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ivlev/routemotion/internal/motion"
	"github.com/ivlev/routemotion/internal/navigation"
	"github.com/ivlev/routemotion/internal/policy"
)

// Layer is one route's content handle with its current visual state.
type Layer struct {
	Route     navigation.Route
	Transform motion.Transform
	Opacity   float64
}

func (l Layer) String() string {
	return fmt.Sprintf("%s %s opacity=%.3f", l.Route, l.Transform, l.Opacity)
}

// Frame is what the renderer receives once per tick.
//
// A settled frame is a pass-through: only To is meaningful and it is at
// identity with full opacity. While transitioning, From is the departing
// layer and To the arriving one.
type Frame struct {
	Seq          uint64
	Settled      bool
	Route        navigation.Route
	From         Layer
	To           Layer
	Variant      policy.Variant
	TransitionID uuid.UUID
}

func passThrough(seq uint64, route navigation.Route) Frame {
	return Frame{
		Seq:     seq,
		Settled: true,
		Route:   route,
		To:      Layer{Route: route, Transform: motion.Identity(), Opacity: 1},
	}
}

func (f Frame) String() string {
	if f.Settled {
		return fmt.Sprintf("#%d settled %s", f.Seq, f.Route)
	}
	return fmt.Sprintf("#%d %s [%s] from(%s) to(%s)", f.Seq, f.Variant, f.TransitionID, f.From, f.To)
}

// Renderer receives frames. Implementations must not call back into the
// orchestrator's Tick.
type Renderer interface {
	Render(Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame)

func (fn RendererFunc) Render(f Frame) { fn(f) }
