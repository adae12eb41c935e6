//go:build !wasm
// +build !wasm

package router

import "testing"

func TestMemoryHistory_NavigateDoesNotNotify(t *testing.T) {
	// Arrange
	h := NewMemoryHistory("/")
	calls := 0
	h.OnChange(func(string) { calls++ })

	// Act
	h.Navigate("/settings")

	// Assert
	if calls != 0 {
		t.Errorf("Expected Navigate not to notify, got %d calls", calls)
	}
	if h.CurrentPath() != "/settings" || h.Len() != 2 {
		t.Errorf("Expected current '/settings' with 2 entries, got '%s' with %d", h.CurrentPath(), h.Len())
	}
}

func TestMemoryHistory_BackForward(t *testing.T) {
	h := NewMemoryHistory("/")
	h.Navigate("/sign-to-speech")
	var seen []string
	h.OnChange(func(p string) { seen = append(seen, p) })

	if h.Forward() {
		t.Errorf("Expected Forward at the newest entry to fail")
	}
	if !h.Back() {
		t.Fatalf("Expected Back to succeed")
	}
	if h.Back() {
		t.Errorf("Expected Back at the oldest entry to fail")
	}
	if !h.Forward() {
		t.Fatalf("Expected Forward to succeed")
	}

	if len(seen) != 2 || seen[0] != "/" || seen[1] != "/sign-to-speech" {
		t.Errorf("Expected [/ /sign-to-speech], got %v", seen)
	}
}

func TestMemoryHistory_NavigateDropsForwardEntries(t *testing.T) {
	h := NewMemoryHistory("/")
	h.Navigate("/a")
	h.Navigate("/b")
	h.Back()
	h.Back()

	h.Navigate("/settings")

	if h.Len() != 2 {
		t.Errorf("Expected forward entries dropped (2 left), got %d", h.Len())
	}
	if h.Forward() {
		t.Errorf("Expected no forward entry after Navigate")
	}
}

func TestMemoryHistory_Unsubscribe(t *testing.T) {
	h := NewMemoryHistory("/")
	h.Navigate("/x")
	calls := 0
	unsubscribe := h.OnChange(func(string) { calls++ })

	unsubscribe()
	h.Back()

	if calls != 0 {
		t.Errorf("Expected no calls after unsubscribe, got %d", calls)
	}
}
