package runtime

import (
	"fmt"

	"github.com/vcrobe/signspeech/vdom"
)

// Compile-time assertion to ensure StaticRenderer implements the Renderer interface.
var _ Renderer = (*StaticRenderer)(nil)

// StaticRenderer renders components to an in-memory VDOM tree without a
// browser. The server uses it for server-side rendering and tests use it to
// inspect output. It follows the same instance and lifecycle rules as the
// DOM renderer: children are retained by key, OnInit runs once per key,
// OnParametersSet runs before every render and OnDestroy runs when a key
// drops out of the tree. A panicking hook is logged with its component key
// and propagates.
type StaticRenderer struct {
	navManager  NavigationManager
	root        Component
	rootKey     string
	currentVDOM *vdom.VNode
	instances   map[string]Component
	initialized map[string]bool
	activeKeys  map[string]bool
	renders     int
	rendering   bool
	pending     bool
}

// NewStaticRenderer creates a renderer. navManager may be nil, in which case
// Navigate returns an error.
func NewStaticRenderer(navManager NavigationManager) *StaticRenderer {
	return &StaticRenderer{
		navManager:  navManager,
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
	}
}

// SetCurrentComponent sets the root component.
func (r *StaticRenderer) SetCurrentComponent(comp Component, key string) {
	r.root = comp
	r.rootKey = key
	comp.SetRenderer(r)
}

// RenderRoot renders the root component and returns the resulting tree.
// A render requested while one is in progress (a lifecycle hook that
// navigates, for instance) runs once the current pass finishes.
func (r *StaticRenderer) RenderRoot() *vdom.VNode {
	if r.root == nil {
		return nil
	}
	if r.rendering {
		r.pending = true
		return r.currentVDOM
	}

	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.pending = false
		r.renderOnce()
		if !r.pending {
			return r.currentVDOM
		}
	}
}

func (r *StaticRenderer) renderOnce() {
	r.activeKeys = make(map[string]bool)
	r.root.SetRenderer(r)

	if !r.initialized["__root__"] {
		if initializer, ok := r.root.(Initializer); ok {
			runHook("OnInit", r.rootKey, false, initializer.OnInit)
		}
		r.initialized["__root__"] = true
	}
	if receiver, ok := r.root.(ParameterReceiver); ok {
		runHook("OnParametersSet", r.rootKey, false, receiver.OnParametersSet)
	}

	node := r.root.Render(r)
	if node != nil {
		node.ComponentKey = r.rootKey
	}
	r.currentVDOM = node
	r.renders++

	for key, instance := range r.instances {
		if r.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(Cleaner); ok {
			runHook("OnDestroy", key, false, cleaner.OnDestroy)
		}
		delete(r.instances, key)
		delete(r.initialized, key)
	}
}

// ReRender re-runs the render cycle. Called by StateHasChanged().
func (r *StaticRenderer) ReRender() {
	r.RenderRoot()
}

// ReRenderSlot re-renders from the root.
func (r *StaticRenderer) ReRenderSlot(slotParent Component) error {
	if slotParent == nil {
		return fmt.Errorf("re-render slot: nil slot parent")
	}
	r.RenderRoot()
	return nil
}

// RenderChild renders a child component, reusing the instance stored under key.
func (r *StaticRenderer) RenderChild(key string, child Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	if !exists {
		instance = child
		r.instances[key] = instance
	} else if instance != child {
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(child)
		}
	}

	instance.SetRenderer(r)

	if !r.initialized[key] {
		if initializer, ok := instance.(Initializer); ok {
			runHook("OnInit", key, false, initializer.OnInit)
		}
		r.initialized[key] = true
	}
	if receiver, ok := instance.(ParameterReceiver); ok {
		runHook("OnParametersSet", key, false, receiver.OnParametersSet)
	}

	node := instance.Render(r)
	if node != nil {
		node.ComponentKey = key
	}
	return node
}

// Navigate delegates to the NavigationManager.
func (r *StaticRenderer) Navigate(path string) error {
	if r.navManager == nil {
		return fmt.Errorf("no router configured for navigation")
	}
	return r.navManager.Navigate(path)
}

// GetCurrentVDOM returns the most recently rendered tree.
func (r *StaticRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// RenderCount reports how many root renders have run.
func (r *StaticRenderer) RenderCount() int {
	return r.renders
}
