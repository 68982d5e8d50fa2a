package policy

import (
	"fmt"

	"github.com/ivlev/routemotion/internal/motion"
)

// Opacity is the start and end opacity of one layer.
type Opacity struct {
	Start, End float64
}

// Endpoints are the off-screen states of a variant. The departing layer
// moves from identity to Leave; the arriving layer moves from Enter to
// identity.
type Endpoints struct {
	Leave motion.Transform
	Enter motion.Transform
}

// TransitionConfig holds everything needed to animate one transition.
type TransitionConfig struct {
	Variant     Variant
	InitialFrom motion.Transform
	FinalFrom   motion.Transform
	InitialTo   motion.Transform
	FinalTo     motion.Transform
	FromOpacity Opacity
	ToOpacity   Opacity
	Model       motion.Model
}

func (c TransitionConfig) String() string {
	return fmt.Sprintf("%s from %s->%s to %s->%s using %s",
		c.Variant, c.InitialFrom, c.FinalFrom, c.InitialTo, c.FinalTo, c.Model)
}

var (
	fadeOut = Opacity{Start: 1, End: 0}
	fadeIn  = Opacity{Start: 0, End: 1}
)

// BuiltinEndpoints returns the stock endpoints of every non-custom kind.
// Offsets are percentages of the viewport.
func BuiltinEndpoints() map[Kind]Endpoints {
	return map[Kind]Endpoints{
		KindSlideLeft:  {Leave: motion.NewTransform(-100, 0, 1, 0), Enter: motion.NewTransform(100, 0, 1, 0)},
		KindSlideRight: {Leave: motion.NewTransform(100, 0, 1, 0), Enter: motion.NewTransform(-100, 0, 1, 0)},
		KindSlideUp:    {Leave: motion.NewTransform(0, -100, 1, 0), Enter: motion.NewTransform(0, 100, 1, 0)},
		KindSlideDown:  {Leave: motion.NewTransform(0, 100, 1, 0), Enter: motion.NewTransform(0, -100, 1, 0)},
		KindFade:       {Leave: motion.Identity(), Enter: motion.Identity()},
		KindScale:      {Leave: motion.NewTransform(0, 0, 0.5, 0), Enter: motion.NewTransform(0, 0, 0.5, 0)},
	}
}

// Table turns variants into transition configs. It is a static lookup;
// the same variant always yields the same config.
type Table struct {
	endpoints map[Kind]Endpoints
	model     motion.Model
}

// NewTable builds a table with the built-in endpoints animated by model.
func NewTable(model motion.Model) *Table {
	return &Table{endpoints: BuiltinEndpoints(), model: model}
}

// DefaultTable animates with motion.DefaultSpring.
func DefaultTable() *Table { return NewTable(motion.DefaultSpring) }

// TweenTable animates with motion.DefaultTween.
func TweenTable() *Table { return NewTable(motion.DefaultTween) }

// Set overrides the endpoints of kind. Custom variants ignore the table.
func (t *Table) Set(kind Kind, e Endpoints) *Table {
	t.endpoints[kind] = e
	return t
}

func (t *Table) Model() motion.Model { return t.model }

// Config returns the endpoints and model for v. Custom variants carry
// their own departing endpoint and enter from its mirror image.
func (t *Table) Config(v Variant) TransitionConfig {
	var e Endpoints
	if v.Kind == KindCustom {
		e = Endpoints{Leave: v.Transform, Enter: v.Transform.Mirror()}
	} else if known, ok := t.endpoints[v.Kind]; ok {
		e = known
	} else {
		e = t.endpoints[KindFade]
	}

	return TransitionConfig{
		Variant:     v,
		InitialFrom: motion.Identity(),
		FinalFrom:   e.Leave,
		InitialTo:   e.Enter,
		FinalTo:     motion.Identity(),
		FromOpacity: fadeOut,
		ToOpacity:   fadeIn,
		Model:       t.model,
	}
}
