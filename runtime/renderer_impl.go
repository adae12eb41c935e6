//go:build js || wasm
// +build js wasm

package runtime

import (
	"fmt"

	"github.com/vcrobe/signspeech/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the DOM-backed implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
type RendererImpl struct {
	instances        map[string]Component
	initialized      map[string]bool // Track which components have been initialized
	activeKeys       map[string]bool // Track which components are active in the current render
	currentComponent Component       // The root component (usually the AppShell)
	currentKey       string
	navManager       NavigationManager // Optional: router for client-side navigation
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	rendering        bool
	pending          bool
}

// NewRenderer creates a new runtime renderer.
// If navManager is provided, the renderer will support client-side routing.
// If navManager is nil, the renderer works without routing.
func NewRenderer(navManager NavigationManager, mountID string) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		navManager:  navManager,
		mountID:     mountID,
	}
}

// SetCurrentComponent sets the root component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	r.currentComponent = comp
	r.currentKey = key
}

// RenderRoot starts the rendering process for the entire application.
// A render requested while one is in progress runs once the current pass finishes.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}
	if r.rendering {
		r.pending = true
		return
	}

	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.pending = false
		r.renderOnce()
		if !r.pending {
			return
		}
	}
}

func (r *RendererImpl) renderOnce() {
	r.activeKeys = make(map[string]bool)

	r.currentComponent.SetRenderer(r)

	if !r.initialized["__root__"] {
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, "__root__")
		}
		r.initialized["__root__"] = true
	}

	if paramReceiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, "__root__")
	}

	newVDOM := r.currentComponent.Render(r)
	if newVDOM != nil {
		newVDOM.ComponentKey = r.currentKey
	}

	if r.prevVDOM == nil {
		// Initial render: drop whatever the server rendered and mount fresh.
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	r.prevVDOM = newVDOM

	r.cleanupUnmountedComponents()
}

// RenderChild renders a child component, reusing the instance stored under key.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	isFirstRender := false

	if !exists {
		instance = childWithProps
		r.instances[key] = instance
		isFirstRender = true
	} else if instance != childWithProps {
		// Preserve the existing instance to keep state; apply the new props to it.
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	instance.SetRenderer(r)

	if isFirstRender {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}

	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	node := instance.Render(r)
	if node != nil {
		node.ComponentKey = key
	}
	return node
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if r.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(Cleaner); ok {
			r.callOnDestroy(cleaner, key)
		}
		delete(r.instances, key)
		delete(r.initialized, key)
	}
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// ReRenderSlot re-renders from the root; the patcher limits DOM work to what changed.
func (r *RendererImpl) ReRenderSlot(slotParent Component) error {
	if slotParent == nil {
		return fmt.Errorf("re-render slot: nil slot parent")
	}
	r.RenderRoot()
	return nil
}

// Navigate delegates to the NavigationManager (router) to perform client-side navigation.
// Returns an error if no router is configured.
func (r *RendererImpl) Navigate(path string) error {
	if r.navManager == nil {
		return fmt.Errorf("no router configured for navigation")
	}
	return r.navManager.Navigate(path)
}
