package navigation

// History is the stack of routes a machine has settled away from.
// It allows Back to return to where the user came from.
type History struct {
	entries []Route
	limit   int
}

// DefaultHistoryLimit caps how many routes a History keeps.
const DefaultHistoryLimit = 64

// NewHistory creates an empty history capped at DefaultHistoryLimit entries.
func NewHistory() *History {
	return &History{
		entries: make([]Route, 0),
		limit:   DefaultHistoryLimit,
	}
}

// Push adds a route to the top of the stack, dropping the oldest entry
// once the limit is reached.
func (h *History) Push(route Route) {
	if h.limit > 0 && len(h.entries) == h.limit {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, route)
}

// Pop removes and returns the top route.
func (h *History) Pop() (Route, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	route := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return route, true
}

// Peek returns the top route without removing it.
func (h *History) Peek() (Route, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// IsEmpty returns true if the stack has no entries.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of entries in the stack.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear removes all entries from the stack.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}
