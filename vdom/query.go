package vdom

import "strings"

// Walk visits n and its descendants depth-first. Returning false from fn
// stops the descent into that node's children.
func Walk(n *VNode, fn func(*VNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Find returns the first node (depth-first) matching pred, or nil.
func Find(root *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching pred in depth-first order.
func FindAll(root *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(root, func(n *VNode) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ByID matches nodes whose id attribute equals id.
func ByID(id string) func(*VNode) bool {
	return func(n *VNode) bool { return n.Attr("id") == id }
}

// ByTag matches nodes with the given tag.
func ByTag(tag string) func(*VNode) bool {
	return func(n *VNode) bool { return n.Tag == tag }
}

// ByClass matches nodes whose class attribute contains class as a whole word.
func ByClass(class string) func(*VNode) bool {
	return func(n *VNode) bool {
		for _, c := range strings.Fields(n.Attr("class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// TextContent concatenates the text of n and all of its descendants,
// separating node texts with a single space.
func TextContent(n *VNode) string {
	var parts []string
	Walk(n, func(v *VNode) bool {
		if v.Content != "" {
			parts = append(parts, v.Content)
		}
		return true
	})
	return strings.Join(parts, " ")
}
