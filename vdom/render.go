//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/signspeech/console"
)

// supportedTags lists the element tags createElement knows how to build.
var supportedTags = map[string]bool{
	"div": true, "p": true, "span": true, "a": true, "button": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true,
	"nav": true, "section": true, "article": true, "header": true,
	"footer": true, "main": true, "aside": true, "small": true, "strong": true,
	"input": true, "textarea": true, "select": true, "option": true, "form": true,
}

// releaseCallbacks unbinds and releases the listeners attached for a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	v.ReleaseEventCallbacks()
}

// bindListener attaches cb to el and records on n how to remove it again.
// The listener is removed before the func is released so a later event never
// reaches a released func.
func bindListener(el js.Value, n *VNode, eventName string, cb js.Func) {
	el.Call("addEventListener", eventName, cb)
	n.AddEventCallback(func() {
		el.Call("removeEventListener", eventName, cb)
		cb.Release()
	})
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// Clear empties the mount element and releases the callbacks of the previous tree.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return
	}

	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return
	}

	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		return
	}

	// Event handlers are attached via addEventListener.
	if _, ok := value.(func(js.Value)); ok {
		return
	}

	el.Call("setAttribute", key, value)
}

// attachEventListeners attaches handlers stored under "on*" attribute keys.
func attachEventListeners(el js.Value, vnode *VNode, attributes map[string]any) {
	for key, value := range attributes {
		if len(key) <= 2 || key[0] != 'o' || key[1] != 'n' {
			continue
		}
		handler, ok := value.(func(js.Value))
		if !ok {
			continue
		}

		// "onClick" -> "click"
		eventName := key[2:]
		if eventName[0] >= 'A' && eventName[0] <= 'Z' {
			eventName = string(eventName[0]+('a'-'A')) + eventName[1:]
		}

		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				handler(args[0])
			}
			return nil
		})
		bindListener(el, vnode, eventName, cb)
	}
}

// attachClick wires VNode.OnClick. Anchors suppress the default full-page
// navigation so the router can take over.
func attachClick(el js.Value, n *VNode) {
	if n.OnClick == nil {
		return
	}
	onClick := n.OnClick
	isAnchor := n.Tag == "a"
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if isAnchor && len(args) > 0 {
			ev := args[0]
			// Let modified clicks (new tab, new window) through to the browser.
			if ev.Get("ctrlKey").Bool() || ev.Get("metaKey").Bool() || ev.Get("shiftKey").Bool() {
				return nil
			}
			ev.Call("preventDefault")
		}
		onClick()
		return nil
	})
	bindListener(el, n, "click", cb)
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == "#text" {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	if !supportedTags[n.Tag] {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n, n.Attributes)
	attachClick(el, n)

	switch n.Tag {
	case "input", "textarea", "select":
		if n.Content != "" {
			el.Set("value", n.Content)
		}
	default:
		if n.Content != "" {
			el.Set("textContent", n.Content)
		}
	}

	if n.Tag == "input" {
		return el
	}

	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}

	mount := doc.Call("querySelector", mountSelector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", mountSelector)
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	parent := domElement.Get("parentNode")
	if parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	// Different component keys mean a different page instance: replace the subtree.
	if oldVNode.ComponentKey != "" && newVNode.ComponentKey != "" && oldVNode.ComponentKey != newVNode.ComponentKey {
		console.Log("[Patch] Component keys differ, replacing subtree. Old:", oldVNode.ComponentKey, "New:", newVNode.ComponentKey)
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == "#text" {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	releaseCallbacks(oldVNode)
	attachEventListeners(domElement, newVNode, newVNode.Attributes)
	attachClick(domElement, newVNode)

	switch newVNode.Tag {
	case "input", "textarea":
		// Leave a focused field alone so typing is not interrupted.
		isFocused := domElement.Call("matches", ":focus")
		if !isFocused.Bool() && newVNode.Content != "" {
			if domElement.Get("value").String() != newVNode.Content {
				domElement.Set("value", newVNode.Content)
			}
		}
	case "select":
		if newVNode.Content != "" {
			domElement.Set("value", newVNode.Content)
		}
	default:
		// Setting textContent wipes child nodes, so only do it for leaf elements.
		if len(newVNode.Children) == 0 && oldVNode.Content != newVNode.Content {
			domElement.Set("textContent", newVNode.Content)
		}
	}

	patchChildren(domElement, oldVNode, newVNode)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; exists {
			continue
		}
		if len(key) > 2 && key[0] == 'o' && key[1] == 'n' {
			continue
		}
		domElement.Call("removeAttribute", key)
	}

	for key, value := range newAttrs {
		if len(key) > 2 && key[0] == 'o' && key[1] == 'n' {
			continue
		}
		if oldAttrs == nil || oldAttrs[key] != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element. A node carrying text
// Content occupies one extra text child in front of its element children.
func patchChildren(domElement js.Value, oldVNode, newVNode *VNode) {
	oldChildren := oldVNode.Children
	newChildren := newVNode.Children

	// A mix of own text and children does not line up index by index; rebuild.
	if (oldVNode.Content != "" && len(oldChildren) > 0) || (newVNode.Content != "" && len(newChildren) > 0) {
		for _, c := range oldChildren {
			deepReleaseCallbacks(c)
		}
		domElement.Set("textContent", "")
		if newVNode.Content != "" {
			domElement.Call("appendChild", js.Global().Get("document").Call("createTextNode", newVNode.Content))
		}
		for _, c := range newChildren {
			if el := createElement(c); el.Truthy() {
				domElement.Call("appendChild", el)
			}
		}
		return
	}

	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		oldChild := oldChildren[i]
		newChild := newChildren[i]

		switch {
		case oldChild == nil && newChild != nil:
			newChildEl := createElement(newChild)
			if !newChildEl.Truthy() {
				continue
			}
			if i < domChildren.Length() {
				domElement.Call("insertBefore", newChildEl, domChildren.Call("item", i))
			} else {
				domElement.Call("appendChild", newChildEl)
			}
		case oldChild != nil && newChild == nil:
			deepReleaseCallbacks(oldChild)
			if childElement := domChildren.Call("item", i); childElement.Truthy() {
				domElement.Call("removeChild", childElement)
			}
		case oldChild != nil && newChild != nil:
			if childElement := domChildren.Call("item", i); childElement.Truthy() {
				patchElement(childElement, oldChild, newChild)
			}
		}
	}

	for i := oldLen; i < newLen; i++ {
		if newChild := createElement(newChildren[i]); newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])
		if childElement := domChildren.Call("item", i); childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
