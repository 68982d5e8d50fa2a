// Package policy decides which visual treatment a transition between two
// routes gets and what the treatment's numeric endpoints are.
package policy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ivlev/routemotion/internal/motion"
)

var ErrUnknownVariant = errors.New("unknown transition variant")

// Kind is the family of a Variant.
type Kind int

const (
	KindSlideLeft Kind = iota
	KindSlideRight
	KindSlideUp
	KindSlideDown
	KindFade
	KindScale
	KindCustom
)

var kindNames = map[Kind]string{
	KindSlideLeft:  "slide-left",
	KindSlideRight: "slide-right",
	KindSlideUp:    "slide-up",
	KindSlideDown:  "slide-down",
	KindFade:       "fade",
	KindScale:      "scale",
	KindCustom:     "custom",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind accepts names like "slide-left", "SlideLeft" or "slide_left".
func ParseKind(raw string) (Kind, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(raw)))
	for k, name := range kindNames {
		if strings.ReplaceAll(name, "-", "") == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, raw)
}

// Variant is the treatment applied to one transition. Only custom
// variants carry a Transform: the departing layer's final state.
type Variant struct {
	Kind      Kind
	Transform motion.Transform
}

// Built-in variants.
var (
	SlideLeft  = Variant{Kind: KindSlideLeft}
	SlideRight = Variant{Kind: KindSlideRight}
	SlideUp    = Variant{Kind: KindSlideUp}
	SlideDown  = Variant{Kind: KindSlideDown}
	Fade       = Variant{Kind: KindFade}
	Scale      = Variant{Kind: KindScale}
)

// Custom returns a variant whose departing layer ends at t.
func Custom(t motion.Transform) Variant {
	return Variant{Kind: KindCustom, Transform: t}
}

// Reverse is the variant for travelling the same pair the other way.
// Slides swap direction, custom transforms are mirrored, anything else
// is its own reverse.
func (v Variant) Reverse() Variant {
	switch v.Kind {
	case KindSlideLeft:
		return SlideRight
	case KindSlideRight:
		return SlideLeft
	case KindSlideUp:
		return SlideDown
	case KindSlideDown:
		return SlideUp
	case KindCustom:
		return Custom(v.Transform.Mirror())
	default:
		return v
	}
}

func (v Variant) String() string {
	if v.Kind == KindCustom {
		return "custom" + v.Transform.String()
	}
	return v.Kind.String()
}
