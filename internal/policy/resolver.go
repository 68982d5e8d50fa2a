package policy

import (
	"sort"

	"github.com/ivlev/routemotion/internal/navigation"
	"github.com/ivlev/routemotion/internal/system"
)

// Routes of the demo application served by DefaultResolver.
const (
	RouteHome       navigation.Route = "home"
	RouteSlideLeft  navigation.Route = "slide-left"
	RouteSlideRight navigation.Route = "slide-right"
	RouteSlideUp    navigation.Route = "slide-up"
	RouteSlideDown  navigation.Route = "slide-down"
	RouteFade       navigation.Route = "fade"
	RouteScale      navigation.Route = "scale"
)

type pair struct {
	from, to navigation.Route
}

// Resolver maps ordered route pairs to variants. Lookup order is the
// exact pair, then the destination route, then the fallback, so Resolve
// always returns a variant.
//
// A Resolver is filled once at startup and read afterwards; it is not
// safe to Register concurrently with Resolve.
type Resolver struct {
	pairs    map[pair]Variant
	targets  map[navigation.Route]Variant
	fallback Variant
}

type ResolverOption func(*Resolver)

// WithFallback replaces Fade as the variant for unmapped pairs.
func WithFallback(v Variant) ResolverOption {
	return func(r *Resolver) {
		r.fallback = v
	}
}

func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		pairs:    make(map[pair]Variant),
		targets:  make(map[navigation.Route]Variant),
		fallback: Fade,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register maps the ordered pair from -> to onto v.
func (r *Resolver) Register(from, to navigation.Route, v Variant) *Resolver {
	r.pairs[pair{from, to}] = v
	return r
}

// RegisterReciprocal maps from -> to onto v and to -> from onto
// v.Reverse(), so going back plays the forward animation in reverse.
func (r *Resolver) RegisterReciprocal(from, to navigation.Route, v Variant) *Resolver {
	r.Register(from, to, v)
	r.Register(to, from, v.Reverse())
	return r
}

// RegisterTarget sets the variant for any arrival at to that has no
// pair entry.
func (r *Resolver) RegisterTarget(to navigation.Route, v Variant) *Resolver {
	r.targets[to] = v
	return r
}

func (r *Resolver) Fallback() Variant { return r.fallback }

// Resolve returns the variant for travelling from -> to.
func (r *Resolver) Resolve(from, to navigation.Route) Variant {
	if v, ok := r.pairs[pair{from, to}]; ok {
		return v
	}
	if v, ok := r.targets[to]; ok {
		return v
	}
	system.Logger().Debug("no transition mapped, using fallback",
		"from", string(from), "to", string(to), "variant", r.fallback.String())
	return r.fallback
}

// Routes lists every route the resolver has an entry for, sorted.
func (r *Resolver) Routes() []navigation.Route {
	seen := make(map[navigation.Route]struct{})
	for p := range r.pairs {
		seen[p.from] = struct{}{}
		seen[p.to] = struct{}{}
	}
	for route := range r.targets {
		seen[route] = struct{}{}
	}

	routes := make([]navigation.Route, 0, len(seen))
	for route := range seen {
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i] < routes[j] })
	return routes
}

// DefaultResolver is the demo table: every page is reached from home and
// slides, fades or scales according to its name. Going back home reverses
// the slide direction.
func DefaultResolver(opts ...ResolverOption) *Resolver {
	return NewResolver(opts...).
		RegisterReciprocal(RouteHome, RouteSlideLeft, SlideLeft).
		RegisterReciprocal(RouteHome, RouteSlideRight, SlideRight).
		RegisterReciprocal(RouteHome, RouteSlideUp, SlideUp).
		RegisterReciprocal(RouteHome, RouteSlideDown, SlideDown).
		RegisterReciprocal(RouteHome, RouteFade, Fade).
		RegisterReciprocal(RouteHome, RouteScale, Scale)
}
