package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ivlev/routemotion/internal/motion"
	"github.com/ivlev/routemotion/internal/navigation"
	"github.com/ivlev/routemotion/internal/policy"
)

var (
	ErrFPSInvalid      = errors.New("fps must be positive")
	ErrWorkersInvalid  = errors.New("workers must be positive")
	ErrMaxDuration     = errors.New("max_duration must not be negative")
	ErrMotionMode      = errors.New("motion.mode must be tween or spring")
	ErrTweenDuration   = errors.New("motion.duration must not be negative")
	ErrPreviewSize     = errors.New("preview width and height must be positive")
	ErrRuleIncomplete  = errors.New("transition rule needs from and to")
	ErrCustomTransform = errors.New("custom variant needs a custom transform")
)

const (
	ModeTween  = "tween"
	ModeSpring = "spring"
)

type Config struct {
	FPS          int               `mapstructure:"fps"`
	Workers      int               `mapstructure:"workers"`
	MaxDuration  time.Duration     `mapstructure:"max_duration"`
	LogLevel     string            `mapstructure:"log_level"`
	ShowStats    bool              `mapstructure:"show_stats"`
	StatsLog     string            `mapstructure:"stats_log"`
	Motion       Motion            `mapstructure:"motion"`
	Fallback     string            `mapstructure:"fallback"`
	Transitions  []Transition      `mapstructure:"transitions"`
	Targets      map[string]string `mapstructure:"targets"`
	Preview      Preview           `mapstructure:"preview"`
	BuildVersion string            `mapstructure:"-"`
}

type Motion struct {
	Mode      string        `mapstructure:"mode"`
	Duration  time.Duration `mapstructure:"duration"`
	Easing    string        `mapstructure:"easing"`
	Stiffness float64       `mapstructure:"stiffness"`
	Damping   float64       `mapstructure:"damping"`
	Mass      float64       `mapstructure:"mass"`
	Velocity  float64       `mapstructure:"velocity"`
}

// Transition maps a route pair to a variant. With Reciprocal set the
// reverse pair gets the reversed variant.
type Transition struct {
	From       string            `mapstructure:"from"`
	To         string            `mapstructure:"to"`
	Variant    string            `mapstructure:"variant"`
	Reciprocal bool              `mapstructure:"reciprocal"`
	Custom     *motion.Transform `mapstructure:"custom"`
}

type Preview struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Validate checks every setting, including that the motion model can
// settle and that all variant names are known.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrFPSInvalid, c.FPS)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrWorkersInvalid, c.Workers)
	}
	if c.MaxDuration < 0 {
		return ErrMaxDuration
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrPreviewSize, c.Preview.Width, c.Preview.Height)
	}
	if _, err := c.Model(); err != nil {
		return err
	}
	if _, err := c.Resolver(); err != nil {
		return err
	}
	return nil
}

// Model builds the motion model described by the motion section.
func (c *Config) Model() (motion.Model, error) {
	switch strings.ToLower(c.Motion.Mode) {
	case ModeTween:
		if c.Motion.Duration < 0 {
			return nil, ErrTweenDuration
		}
		ease, err := motion.EasingByName(c.Motion.Easing)
		if err != nil {
			return nil, err
		}
		return motion.Tween{Duration: c.Motion.Duration, Easing: ease}, nil
	case ModeSpring, "":
		s := motion.Spring{
			Stiffness: c.Motion.Stiffness,
			Damping:   c.Motion.Damping,
			Mass:      c.Motion.Mass,
			Velocity:  c.Motion.Velocity,
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("motion: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrMotionMode, c.Motion.Mode)
	}
}

// Table builds the variant table animated by the configured model.
func (c *Config) Table() (*policy.Table, error) {
	model, err := c.Model()
	if err != nil {
		return nil, err
	}
	return policy.NewTable(model), nil
}

// Resolver builds the route policy. Without any transitions or targets
// the demo table is used.
func (c *Config) Resolver() (*policy.Resolver, error) {
	fallback := policy.Fade
	if c.Fallback != "" {
		v, err := variant(c.Fallback, nil)
		if err != nil {
			return nil, fmt.Errorf("fallback: %w", err)
		}
		fallback = v
	}

	if len(c.Transitions) == 0 && len(c.Targets) == 0 {
		return policy.DefaultResolver(policy.WithFallback(fallback)), nil
	}

	r := policy.NewResolver(policy.WithFallback(fallback))
	for i, t := range c.Transitions {
		if t.From == "" || t.To == "" {
			return nil, fmt.Errorf("transitions[%d]: %w", i, ErrRuleIncomplete)
		}
		v, err := variant(t.Variant, t.Custom)
		if err != nil {
			return nil, fmt.Errorf("transitions[%d]: %w", i, err)
		}
		if t.Reciprocal {
			r.RegisterReciprocal(navigation.Route(t.From), navigation.Route(t.To), v)
		} else {
			r.Register(navigation.Route(t.From), navigation.Route(t.To), v)
		}
	}
	for route, name := range c.Targets {
		v, err := variant(name, nil)
		if err != nil {
			return nil, fmt.Errorf("targets.%s: %w", route, err)
		}
		r.RegisterTarget(navigation.Route(route), v)
	}
	return r, nil
}

func variant(name string, custom *motion.Transform) (policy.Variant, error) {
	kind, err := policy.ParseKind(name)
	if err != nil {
		return policy.Variant{}, err
	}
	if kind == policy.KindCustom {
		if custom == nil {
			return policy.Variant{}, ErrCustomTransform
		}
		t := *custom
		// an omitted scale means unscaled
		if t.Scale == 0 {
			t.Scale = 1
		}
		return policy.Custom(t), nil
	}
	return policy.Variant{Kind: kind}, nil
}
