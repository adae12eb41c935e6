package runtime

import "github.com/vcrobe/signspeech/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native builds.
// The Render method accepts the Renderer interface (not concrete type) so the DOM
// renderer and the static renderer can both drive it.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() and Navigate().
	SetRenderer(r Renderer)
}

// ComponentFactory creates a fresh component instance for a route.
type ComponentFactory func() Component

// Initializer is implemented by components that need setup before their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to new props before each render.
type ParameterReceiver interface {
	OnParametersSet()
}

// Cleaner is implemented by components that release resources when unmounted.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater copies props from a freshly built instance onto the retained one.
// The renderer calls it when a child with the same key is rendered again.
type PropUpdater interface {
	ApplyProps(next Component)
}
