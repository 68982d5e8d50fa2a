package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/routemotion/internal/motion"
	"github.com/ivlev/routemotion/internal/navigation"
	"github.com/ivlev/routemotion/internal/policy"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routemotion.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.FPS)
	assert.Positive(t, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.MaxDuration)
	assert.Equal(t, Preview{Width: 320, Height: 180}, cfg.Preview)

	model, err := cfg.Model()
	require.NoError(t, err)
	assert.Equal(t, motion.DefaultSpring, model)

	r, err := cfg.Resolver()
	require.NoError(t, err)
	assert.Equal(t, policy.SlideLeft, r.Resolve(policy.RouteHome, policy.RouteSlideLeft))
	assert.Equal(t, policy.Fade, r.Fallback())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
fps: 30
workers: 2
max_duration: 2s
fallback: scale
motion:
  mode: tween
  duration: 250ms
  easing: linear
transitions:
  - from: inbox
    to: message
    variant: slide-up
    reciprocal: true
  - from: inbox
    to: compose
    variant: custom
    custom:
      x: 20
      rotation: 45
targets:
  settings: slide-left
preview:
  width: 64
  height: 48
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 2*time.Second, cfg.MaxDuration)
	assert.Equal(t, Preview{Width: 64, Height: 48}, cfg.Preview)

	table, err := cfg.Table()
	require.NoError(t, err)
	tween, ok := table.Model().(motion.Tween)
	require.True(t, ok, "model is %T", table.Model())
	assert.Equal(t, 250*time.Millisecond, tween.Duration)
	assert.InDelta(t, 0.3, tween.Easing(0.3), 1e-6)

	r, err := cfg.Resolver()
	require.NoError(t, err)
	tests := []struct {
		from, to navigation.Route
		want     policy.Variant
	}{
		{"inbox", "message", policy.SlideUp},
		{"message", "inbox", policy.SlideDown},
		{"inbox", "compose", policy.Custom(motion.NewTransform(20, 0, 1, 45))},
		{"compose", "inbox", policy.Scale},
		{"inbox", "settings", policy.SlideLeft},
		{"home", "slide-left", policy.Scale},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Resolve(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ROUTEMOTION_FPS", "24")
	t.Setenv("ROUTEMOTION_MOTION_MODE", "tween")
	t.Setenv("ROUTEMOTION_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.FPS)
	assert.Equal(t, "debug", cfg.LogLevel)

	model, err := cfg.Model()
	require.NoError(t, err)
	assert.IsType(t, motion.Tween{}, model)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	_, err = Load(writeConfig(t, "fps: -1\n"))
	assert.ErrorIs(t, err, ErrFPSInvalid)

	_, err = Load(writeConfig(t, "motion:\n  damping: 0\n"))
	assert.ErrorIs(t, err, motion.ErrSpringUndamped)

	_, err = Load(writeConfig(t, "fps: [1, 2\n"))
	assert.Error(t, err)
}

func validConfig() Config {
	return Config{
		FPS:     60,
		Workers: 1,
		Motion: Motion{
			Mode:      ModeSpring,
			Duration:  500 * time.Millisecond,
			Stiffness: 160,
			Damping:   20,
			Mass:      1.5,
		},
		Fallback: "fade",
		Preview:  Preview{Width: 10, Height: 10},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"valid", func(c *Config) {}, nil},
		{"zero fps", func(c *Config) { c.FPS = 0 }, ErrFPSInvalid},
		{"zero workers", func(c *Config) { c.Workers = 0 }, ErrWorkersInvalid},
		{"negative max duration", func(c *Config) { c.MaxDuration = -time.Second }, ErrMaxDuration},
		{"empty preview", func(c *Config) { c.Preview.Height = 0 }, ErrPreviewSize},
		{"unknown mode", func(c *Config) { c.Motion.Mode = "bounce" }, ErrMotionMode},
		{"undamped spring", func(c *Config) { c.Motion.Damping = 0 }, motion.ErrSpringUndamped},
		{"massless spring", func(c *Config) { c.Motion.Mass = 0 }, motion.ErrSpringMass},
		{"negative tween", func(c *Config) {
			c.Motion.Mode = ModeTween
			c.Motion.Duration = -time.Millisecond
		}, ErrTweenDuration},
		{"unknown easing", func(c *Config) {
			c.Motion.Mode = ModeTween
			c.Motion.Easing = "wobbly"
		}, motion.ErrUnknownEasing},
		{"unknown fallback", func(c *Config) { c.Fallback = "wobble" }, policy.ErrUnknownVariant},
		{"incomplete rule", func(c *Config) {
			c.Transitions = []Transition{{From: "a", Variant: "fade"}}
		}, ErrRuleIncomplete},
		{"custom without transform", func(c *Config) {
			c.Transitions = []Transition{{From: "a", To: "b", Variant: "custom"}}
		}, ErrCustomTransform},
		{"unknown target variant", func(c *Config) {
			c.Targets = map[string]string{"a": "spin"}
		}, policy.ErrUnknownVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
