package runtime

import (
	"fmt"

	"github.com/vcrobe/signspeech/console"
)

// ComponentBase is a struct that components can embed to gain access to the
// StateHasChanged method, which triggers a UI re-render.
// This type has no build tags and works in both WASM and native builds.
type ComponentBase struct {
	renderer   Renderer  // Use interface type, not concrete implementation
	slotParent Component // Parent layout if this component is in a []*vdom.VNode slot
}

// SetRenderer is called by the framework's runtime to inject a reference
// to the renderer, enabling StateHasChanged. This method should not be
// called by user code.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// GetRenderer returns the renderer instance associated with this component.
func (b *ComponentBase) GetRenderer() Renderer {
	return b.renderer
}

// StateHasChanged signals to the framework that the component's state has
// been updated and the UI should be re-rendered to reflect the changes.
// If this component is mounted inside a layout's slot, only that slot is
// re-rendered. Otherwise, full re-render.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		console.Error("StateHasChanged called, but renderer is nil (component not mounted?)")
		return
	}

	if b.slotParent != nil {
		if err := b.renderer.ReRenderSlot(b.slotParent); err != nil {
			console.Error("ReRenderSlot failed:", err.Error())
		}
		return
	}

	b.renderer.ReRender()
}

// SetSlotParent associates this component with a parent layout.
// The relationship is tracked entirely in Go memory.
func (b *ComponentBase) SetSlotParent(parent Component) {
	b.slotParent = parent
}

// Navigate requests client-side navigation to a new path.
// This is used by components (such as RouterLink) to trigger routing without full page reloads.
//
// Example usage in a component:
//
//	func (c *MyComponent) HandleClick() {
//	    if err := c.Navigate("/settings"); err != nil {
//	        console.Error("Navigation failed:", err.Error())
//	    }
//	}
//
// Returns an error if the renderer is not set or navigation fails.
func (b *ComponentBase) Navigate(path string) error {
	if b.renderer == nil {
		return fmt.Errorf("navigate called, but renderer is nil (component not mounted?)")
	}
	return b.renderer.Navigate(path)
}
