package policy

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/routemotion/internal/motion"
	"github.com/ivlev/routemotion/internal/navigation"
	"github.com/ivlev/routemotion/internal/system"
)

func TestResolveIsTotal(t *testing.T) {
	r := DefaultResolver()
	routes := append(r.Routes(), "unknown")
	require.Len(t, routes, 8)

	for _, from := range routes {
		for _, to := range routes {
			v := r.Resolve(from, to)
			_, named := kindNames[v.Kind]
			assert.True(t, named, "%s -> %s resolved to %v", from, to, v)
		}
	}
}

func TestDefaultResolverMapping(t *testing.T) {
	tests := []struct {
		from, to navigation.Route
		want     Variant
	}{
		{RouteHome, RouteSlideLeft, SlideLeft},
		{RouteSlideLeft, RouteHome, SlideRight},
		{RouteHome, RouteSlideRight, SlideRight},
		{RouteSlideRight, RouteHome, SlideLeft},
		{RouteHome, RouteSlideUp, SlideUp},
		{RouteSlideUp, RouteHome, SlideDown},
		{RouteHome, RouteSlideDown, SlideDown},
		{RouteSlideDown, RouteHome, SlideUp},
		{RouteHome, RouteFade, Fade},
		{RouteFade, RouteHome, Fade},
		{RouteHome, RouteScale, Scale},
		{RouteScale, RouteHome, Scale},
		{RouteSlideLeft, RouteScale, Fade},
		{RouteHome, RouteHome, Fade},
	}

	r := DefaultResolver()
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.from, tt.to))
		})
	}
}

func TestResolveOrder(t *testing.T) {
	custom := Custom(motion.NewTransform(10, 20, 0.8, 15))
	r := NewResolver(WithFallback(Scale)).
		RegisterTarget("settings", SlideUp).
		Register("home", "settings", custom)

	assert.Equal(t, custom, r.Resolve("home", "settings"), "pair wins over target")
	assert.Equal(t, SlideUp, r.Resolve("profile", "settings"), "target wins over fallback")
	assert.Equal(t, Scale, r.Resolve("settings", "profile"))
	assert.Equal(t, Scale, r.Fallback())
	assert.Equal(t, []navigation.Route{"home", "settings"}, r.Routes())
}

func TestFallbackIsLogged(t *testing.T) {
	orig := system.Logger()
	t.Cleanup(func() { system.SetLogger(orig) })

	var buf bytes.Buffer
	system.SetLogger(system.NewTextLogger(&buf, "debug"))

	r := DefaultResolver()
	r.Resolve(RouteHome, RouteSlideLeft)
	assert.Empty(t, buf.String())

	r.Resolve(RouteFade, RouteScale)
	assert.Contains(t, buf.String(), "using fallback")
	assert.Contains(t, buf.String(), "from=fade")
}

func TestReverse(t *testing.T) {
	assert.Equal(t, SlideRight, SlideLeft.Reverse())
	assert.Equal(t, SlideLeft, SlideRight.Reverse())
	assert.Equal(t, SlideDown, SlideUp.Reverse())
	assert.Equal(t, SlideUp, SlideDown.Reverse())
	assert.Equal(t, Fade, Fade.Reverse())
	assert.Equal(t, Scale, Scale.Reverse())

	c := Custom(motion.NewTransform(30, -10, 0.9, 45))
	assert.Equal(t, Custom(motion.NewTransform(-30, 10, 0.9, -45)), c.Reverse())
}

func TestParseKind(t *testing.T) {
	for _, raw := range []string{"slide-left", "SlideLeft", "slide_left", " SLIDE-LEFT "} {
		k, err := ParseKind(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, KindSlideLeft, k)
	}

	k, err := ParseKind("custom")
	require.NoError(t, err)
	assert.Equal(t, KindCustom, k)

	_, err = ParseKind("wobble")
	assert.True(t, errors.Is(err, ErrUnknownVariant))
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestConfigSlideLeft(t *testing.T) {
	r := DefaultResolver()
	v := r.Resolve(RouteHome, RouteSlideLeft)
	require.Equal(t, SlideLeft, v)

	cfg := DefaultTable().Config(v)
	assert.Equal(t, motion.Transform{X: -100, Y: 0, Scale: 1}, cfg.FinalFrom)
	assert.Equal(t, motion.Identity(), cfg.InitialFrom)
	assert.Equal(t, motion.Transform{X: 100, Scale: 1}, cfg.InitialTo)
	assert.Equal(t, motion.Identity(), cfg.FinalTo)
	assert.Equal(t, Opacity{Start: 1, End: 0}, cfg.FromOpacity)
	assert.Equal(t, Opacity{Start: 0, End: 1}, cfg.ToOpacity)
	assert.Equal(t, motion.DefaultSpring, cfg.Model)
}

func TestConfigVariants(t *testing.T) {
	table := TweenTable()
	tests := []struct {
		variant   Variant
		finalFrom motion.Transform
		initialTo motion.Transform
	}{
		{SlideRight, motion.Transform{X: 100, Scale: 1}, motion.Transform{X: -100, Scale: 1}},
		{SlideUp, motion.Transform{Y: -100, Scale: 1}, motion.Transform{Y: 100, Scale: 1}},
		{SlideDown, motion.Transform{Y: 100, Scale: 1}, motion.Transform{Y: -100, Scale: 1}},
		{Fade, motion.Identity(), motion.Identity()},
		{Scale, motion.Transform{Scale: 0.5}, motion.Transform{Scale: 0.5}},
		{
			Custom(motion.NewTransform(50, 0, 0.75, 90)),
			motion.NewTransform(50, 0, 0.75, 90),
			motion.NewTransform(-50, 0, 0.75, -90),
		},
		{Variant{Kind: Kind(99)}, motion.Identity(), motion.Identity()},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			cfg := table.Config(tt.variant)
			assert.Equal(t, tt.finalFrom, cfg.FinalFrom)
			assert.Equal(t, tt.initialTo, cfg.InitialTo)
			tween, ok := cfg.Model.(motion.Tween)
			require.True(t, ok)
			assert.Equal(t, motion.DefaultTween.Duration, tween.Duration)
		})
	}
}

func TestTableSet(t *testing.T) {
	table := DefaultTable().Set(KindSlideLeft, Endpoints{
		Leave: motion.NewTransform(-50, 0, 1, 0),
		Enter: motion.NewTransform(50, 0, 1, 0),
	})
	assert.Equal(t, -50.0, table.Config(SlideLeft).FinalFrom.X)
	assert.Equal(t, -100.0, DefaultTable().Config(SlideLeft).FinalFrom.X)
}
