package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	home  Route = "home"
	left  Route = "slide-left"
	right Route = "slide-right"
)

func TestSetTarget(t *testing.T) {
	tests := []struct {
		name        string
		initial     State
		target      Route
		want        State
		wantChanged bool
	}{
		{
			name:        "settled to new route starts transition",
			initial:     Settled(home),
			target:      left,
			want:        Transitioning(home, left),
			wantChanged: true,
		},
		{
			name:    "settled to same route is a no-op",
			initial: Settled(home),
			target:  home,
			want:    Settled(home),
		},
		{
			name:        "re-target makes old destination the departure",
			initial:     Transitioning(home, left),
			target:      right,
			want:        Transitioning(left, right),
			wantChanged: true,
		},
		{
			name:    "targeting current destination is idempotent",
			initial: Transitioning(home, left),
			target:  left,
			want:    Transitioning(home, left),
		},
		{
			name:        "targeting the departure route re-targets",
			initial:     Transitioning(home, left),
			target:      home,
			want:        Transitioning(left, home),
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Machine{state: tt.initial, history: NewHistory()}
			changed := m.SetTarget(tt.target)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.want, m.State())
		})
	}
}

func TestRetargetNeverKeepsOriginalDeparture(t *testing.T) {
	m := New("A")
	m.SetTarget("B")
	m.SetTarget("C")
	assert.Equal(t, Transitioning("B", "C"), m.State())
	assert.NotEqual(t, Transitioning("A", "C"), m.State())
}

func TestSettle(t *testing.T) {
	m := New(home)
	assert.False(t, m.Settle(), "settle on settled machine is a no-op")
	assert.Equal(t, Settled(home), m.State())

	m.SetTarget(left)
	assert.True(t, m.Settle())
	assert.Equal(t, Settled(left), m.State())
	assert.Equal(t, left, m.Target())

	assert.False(t, m.Settle())
	assert.Equal(t, Settled(left), m.State())
}

func TestTarget(t *testing.T) {
	m := New(home)
	assert.Equal(t, home, m.Target())
	m.SetTarget(left)
	assert.Equal(t, left, m.Target())
	assert.Equal(t, home, m.State().From())
}

func TestBack(t *testing.T) {
	m := New(home)

	_, ok := m.Back()
	assert.False(t, ok, "nothing to go back to")
	assert.Equal(t, Settled(home), m.State())

	m.SetTarget(left)
	m.Settle()
	m.SetTarget(right)
	m.Settle()
	require.Equal(t, 2, m.History().Len())

	prev, ok := m.Back()
	require.True(t, ok)
	assert.Equal(t, left, prev)
	assert.Equal(t, Transitioning(right, left), m.State())

	m.Settle()
	assert.Equal(t, 1, m.History().Len(), "settling a back transition does not push")

	prev, ok = m.Back()
	require.True(t, ok)
	assert.Equal(t, home, prev)
	m.Settle()
	assert.Equal(t, Settled(home), m.State())
	assert.True(t, m.History().IsEmpty())
}

func TestBackDuringForwardTransition(t *testing.T) {
	m := New("A")
	m.SetTarget("B")
	m.Settle()
	m.SetTarget("C")

	prev, ok := m.Back()
	require.True(t, ok)
	assert.Equal(t, Route("B"), prev, "back returns to the route being left")
	assert.Equal(t, Transitioning("C", "B"), m.State())

	m.Settle()
	assert.Equal(t, Settled("B"), m.State())
	require.Equal(t, 1, m.History().Len(), "returning to B keeps A on the stack")

	prev, ok = m.Back()
	require.True(t, ok)
	assert.Equal(t, Route("A"), prev)
	m.Settle()
	assert.Equal(t, Settled("A"), m.State())
	assert.True(t, m.History().IsEmpty())
}

func TestBackWhileReturningPopsHistory(t *testing.T) {
	m := New(home)
	m.SetTarget(left)
	m.Settle()
	m.SetTarget(right)
	m.Settle()

	prev, ok := m.Back()
	require.True(t, ok)
	assert.Equal(t, left, prev)

	// a second back before the first one lands keeps walking the stack
	prev, ok = m.Back()
	require.True(t, ok)
	assert.Equal(t, home, prev)
	assert.Equal(t, Transitioning(left, home), m.State())
	assert.True(t, m.History().IsEmpty())

	_, ok = m.Back()
	assert.False(t, ok)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Settled(home)", Settled(home).String())
	assert.Equal(t, "Transitioning(home -> slide-left)", Transitioning(home, left).String())
	assert.True(t, Settled(home).IsSettled())
	assert.False(t, Transitioning(home, left).IsSettled())
}

func TestHistoryLimit(t *testing.T) {
	h := &History{limit: 2}
	h.Push("a")
	h.Push("b")
	h.Push("c")
	assert.Equal(t, 2, h.Len())

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, Route("c"), top)

	h.Pop()
	bottom, _ := h.Pop()
	assert.Equal(t, Route("b"), bottom)

	h.Push("x")
	h.Clear()
	assert.True(t, h.IsEmpty())
}
