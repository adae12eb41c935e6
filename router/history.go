package router

import "sync"

// History tracks the navigation history of the host platform.
//
// Navigate records a new entry and must not notify OnChange listeners.
// OnChange listeners fire only for traversal (back/forward), with the path
// of the entry that became current.
type History interface {
	CurrentPath() string
	Navigate(path string)
	OnChange(fn func(path string)) (unsubscribe func())
}

// fragmentScroller is implemented by histories that can bring an in-page
// section into view after navigation.
type fragmentScroller interface {
	ScrollTo(fragment string)
}

// MemoryHistory is an in-memory History used by the server and by tests.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []string
	index     int
	listeners map[int]func(string)
	nextID    int
	scrolled  []string
}

// NewMemoryHistory creates a history whose only entry is initial.
func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{
		entries:   []string{initial},
		listeners: make(map[int]func(string)),
	}
}

// CurrentPath returns the current entry.
func (h *MemoryHistory) CurrentPath() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Navigate drops any forward entries and appends path.
func (h *MemoryHistory) Navigate(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], path)
	h.index++
}

// OnChange registers a traversal listener.
func (h *MemoryHistory) OnChange(fn func(path string)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// Back moves one entry back and notifies listeners. It reports false when
// already at the first entry.
func (h *MemoryHistory) Back() bool {
	return h.step(-1)
}

// Forward moves one entry forward and notifies listeners. It reports false
// when already at the last entry.
func (h *MemoryHistory) Forward() bool {
	return h.step(1)
}

func (h *MemoryHistory) step(delta int) bool {
	h.mu.Lock()
	next := h.index + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = next
	path := h.entries[next]
	listeners := make([]func(string), 0, len(h.listeners))
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(path)
	}
	return true
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// ScrollTo records the fragment; there is no viewport to scroll.
func (h *MemoryHistory) ScrollTo(fragment string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scrolled = append(h.scrolled, fragment)
}

// Scrolled returns the fragments passed to ScrollTo, oldest first.
func (h *MemoryHistory) Scrolled() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.scrolled...)
}
