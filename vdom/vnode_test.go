//go:build !wasm
// +build !wasm

package vdom

import "testing"

func TestNewVNode_ExtractsOnClick(t *testing.T) {
	// Arrange
	clicked := false
	attrs := map[string]any{
		"href":    "/settings",
		"onClick": func() { clicked = true },
	}

	// Act
	n := NewVNode("a", attrs, nil, "Settings")
	n.OnClick()

	// Assert
	if _, ok := n.Attributes["onClick"]; ok {
		t.Errorf("Expected onClick to be removed from attributes")
	}
	if !clicked {
		t.Errorf("Expected OnClick to invoke the handler")
	}
	if n.Attr("href") != "/settings" {
		t.Errorf("Expected href '/settings', got '%s'", n.Attr("href"))
	}
}

func TestHeading_ClampsLevel(t *testing.T) {
	if h := Heading(1, "x", nil); h.Tag != "h1" {
		t.Errorf("Expected 'h1', got '%s'", h.Tag)
	}
	if h := Heading(9, "x", nil); h.Tag != "h2" {
		t.Errorf("Expected out-of-range level to fall back to 'h2', got '%s'", h.Tag)
	}
}

func TestQueries(t *testing.T) {
	// Arrange
	tree := Div(map[string]any{"id": "root"},
		Section(map[string]any{"id": "features", "class": "grid glass"},
			Heading(4, "Accessibility-first", nil),
			Paragraph("High contrast", nil),
		),
		Anchor("/#about", "About", map[string]any{"class": "hover:underline"}),
	)

	// Act & Assert
	if n := Find(tree, ByID("features")); n == nil || n.Tag != "section" {
		t.Fatalf("Expected to find section#features, got %v", n)
	}
	if n := Find(tree, ByClass("glass")); n == nil || n.Attr("id") != "features" {
		t.Errorf("Expected class lookup to match whole words")
	}
	if n := Find(tree, ByClass("gla")); n != nil {
		t.Errorf("Expected partial class name not to match")
	}
	if got := len(FindAll(tree, ByTag("a"))); got != 1 {
		t.Errorf("Expected 1 anchor, got %d", got)
	}
	if got := TextContent(Find(tree, ByID("features"))); got != "Accessibility-first High contrast" {
		t.Errorf("Unexpected text content '%s'", got)
	}
}

func TestReleaseEventCallbacks_DetachesOnce(t *testing.T) {
	// Arrange
	n := NewVNode("a", nil, nil, "About")
	detached := 0
	n.AddEventCallback(func() { detached++ })
	n.AddEventCallback(func() { detached++ })

	// Act
	n.ReleaseEventCallbacks()
	n.ReleaseEventCallbacks()

	// Assert
	if detached != 2 {
		t.Errorf("Expected each listener to be detached once, got %d detaches", detached)
	}
	if n.EventCallbackCount() != 0 {
		t.Errorf("Expected no bindings left, got %d", n.EventCallbackCount())
	}
}

func TestReleaseEventCallbacks_RepeatedPatchesKeepOneListener(t *testing.T) {
	// Arrange: a persistent link patched on every navigation binds a fresh
	// listener on the new node after releasing the old node's bindings.
	live := 0
	bind := func(n *VNode) {
		live++
		n.AddEventCallback(func() { live-- })
	}
	prev := NewVNode("a", map[string]any{"href": "/#about"}, nil, "About")
	bind(prev)

	// Act
	for i := 0; i < 5; i++ {
		next := NewVNode("a", map[string]any{"href": "/#about"}, nil, "About")
		prev.ReleaseEventCallbacks()
		bind(next)
		prev = next
	}

	// Assert
	if live != 1 {
		t.Errorf("Expected 1 live listener after repeated patches, got %d", live)
	}
	if prev.EventCallbackCount() != 1 {
		t.Errorf("Expected the current node to hold 1 binding, got %d", prev.EventCallbackCount())
	}
}
