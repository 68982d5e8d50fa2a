package system

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		assert.False(t, l.Enabled(context.Background(), level), "level %v", level)
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(NewTextLogger(&buf, "debug"))
	Logger().Debug("transition started", "from", "home")
	assert.Contains(t, buf.String(), "transition started")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestFramePoolReusesBySize(t *testing.T) {
	p := NewFramePool()
	rect := image.Rect(0, 0, 8, 4)

	img := p.Get(rect)
	require.Equal(t, rect, img.Rect)
	assert.EqualValues(t, 1, p.Allocations())
	p.Put(img)

	// a frame of an unknown size is dropped
	p.Put(image.NewRGBA(image.Rect(0, 0, 3, 3)))
	assert.Len(t, p.buckets, 1)

	again := p.Get(rect)
	assert.Equal(t, rect, again.Rect)
	p.Put(nil)

	other := p.Get(image.Rect(0, 0, 2, 2))
	assert.Equal(t, image.Rect(0, 0, 2, 2), other.Rect)
	assert.Len(t, p.buckets, 2)
	assert.GreaterOrEqual(t, p.Allocations(), int64(2))
}

func TestCollectHostStats(t *testing.T) {
	stats, err := CollectHostStats()
	if err != nil {
		t.Skipf("host stats unavailable: %v", err)
	}
	assert.Positive(t, stats.GoMaxProcs)
	assert.NotEmpty(t, stats.String())
	assert.Positive(t, DefaultWorkers())
}
