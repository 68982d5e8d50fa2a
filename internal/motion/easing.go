package motion

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// ErrUnknownEasing is returned by EasingByName for names not in the registry.
var ErrUnknownEasing = errors.New("unknown easing function")

// EasingFunc maps a normalized time fraction t in [0,1] to a progress
// fraction. It returns exactly 0 at t<=0 and exactly 1 at t>=1.
type EasingFunc func(t float64) float64

// Penner adapts a (t, b, c, d) easing equation from gween to an
// EasingFunc over the unit interval.
func Penner(fn ease.TweenFunc) EasingFunc {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var (
	// Linear applies no easing.
	Linear = Penner(ease.Linear)

	EaseInQuad    = Penner(ease.InQuad)
	EaseOutQuad   = Penner(ease.OutQuad)
	EaseInOutQuad = Penner(ease.InOutQuad)

	EaseInCubic  = Penner(ease.InCubic)
	EaseOutCubic = Penner(ease.OutCubic)
	// EaseInOutCubic is the default tween curve.
	EaseInOutCubic = Penner(ease.InOutCubic)

	// EaseOutBack overshoots slightly before coming back to 1.
	EaseOutBack    = Penner(ease.OutBack)
	EaseOutBounce  = Penner(ease.OutBounce)
	EaseOutElastic = Penner(ease.OutElastic)
)

var easings = map[string]EasingFunc{
	"linear":            Linear,
	"ease-in-quad":      EaseInQuad,
	"ease-out-quad":     EaseOutQuad,
	"ease-in-out-quad":  EaseInOutQuad,
	"ease-in-cubic":     EaseInCubic,
	"ease-out-cubic":    EaseOutCubic,
	"ease-in-out-cubic": EaseInOutCubic,
	"ease-out-back":     EaseOutBack,
	"ease-out-bounce":   EaseOutBounce,
	"ease-out-elastic":  EaseOutElastic,
}

// EasingByName looks up an easing function by its configuration name.
// An empty name selects EaseInOutCubic.
func EasingByName(name string) (EasingFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EaseInOutCubic, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// EasingNames lists the registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
