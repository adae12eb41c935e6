package router

import (
	"fmt"

	"github.com/vcrobe/signspeech/console"
	"github.com/vcrobe/signspeech/runtime"
	"github.com/vcrobe/signspeech/vdom"
)

// AppShell is a stable root component that holds the persistent layout
// and swaps only its BodyContent slot when navigation occurs. The layout
// instance and its state survive navigations.
type AppShell struct {
	runtime.ComponentBase

	// persistent layout instance (app shell)
	persistentLayout runtime.Component

	// current chain of component instances (from the router, volatile)
	currentChain []runtime.Component
	currentKey   string
}

// NewAppShell creates a new AppShell with the given persistent layout component.
// The layout should implement the slot convention: SetBodyContent([]*vdom.VNode).
func NewAppShell(persistentLayout runtime.Component) *AppShell {
	return &AppShell{
		persistentLayout: persistentLayout,
		currentChain:     make([]runtime.Component, 0),
	}
}

// SetPage replaces the volatile chain of component instances and triggers a re-render.
// When the chain does not start with the persistent layout it is prepended.
func (a *AppShell) SetPage(chain []runtime.Component, key string) {
	console.Log("[AppShell.SetPage] Called with", len(chain), "components, key:", key)

	if len(chain) == 0 || chain[0] != a.persistentLayout {
		fullChain := make([]runtime.Component, 0, len(chain)+1)
		fullChain = append(fullChain, a.persistentLayout)
		fullChain = append(fullChain, chain...)
		a.currentChain = fullChain
	} else {
		a.currentChain = chain
	}
	a.currentKey = key

	a.StateHasChanged()
}

// CurrentKey returns the reconciliation key of the page being shown.
func (a *AppShell) CurrentKey() string {
	return a.currentKey
}

// Layout returns the persistent layout instance.
func (a *AppShell) Layout() runtime.Component {
	return a.persistentLayout
}

// Page returns the leaf component of the current chain, or nil before the first navigation.
func (a *AppShell) Page() runtime.Component {
	if len(a.currentChain) < 2 {
		return nil
	}
	return a.currentChain[len(a.currentChain)-1]
}

// Render composes the persistent layout with the current component chain.
func (a *AppShell) Render(r runtime.Renderer) *vdom.VNode {
	if a.persistentLayout != nil {
		a.persistentLayout.SetRenderer(r)
	}

	// Link the chain bottom-up: each child goes into its parent's slot.
	// Index 0 is the persistent layout, handled last.
	var slotChildren []*vdom.VNode
	if len(a.currentChain) > 1 {
		for i := len(a.currentChain) - 1; i > 1; i-- {
			child := a.currentChain[i]
			parent := a.currentChain[i-1]

			slotKey := fmt.Sprintf("slot-chain-%d-%T-%p", i, child, child)
			if childVNode := r.RenderChild(slotKey, child); childVNode != nil {
				if layout, ok := parent.(interface{ SetBodyContent([]*vdom.VNode) }); ok {
					layout.SetBodyContent([]*vdom.VNode{childVNode})
				}
			}
		}

		rootComponent := a.currentChain[1]
		slotKey := fmt.Sprintf("slot-root-%T-%p", rootComponent, rootComponent)
		if childVNode := r.RenderChild(slotKey, rootComponent); childVNode != nil {
			slotChildren = []*vdom.VNode{childVNode}
		}
	}

	if a.persistentLayout != nil {
		if layout, ok := a.persistentLayout.(interface{ SetBodyContent([]*vdom.VNode) }); ok {
			layout.SetBodyContent(slotChildren)
		}
		return r.RenderChild("persistent-layout", a.persistentLayout)
	}

	if len(slotChildren) > 0 {
		return slotChildren[0]
	}
	return vdom.NewVNode("div", nil, nil, "")
}
