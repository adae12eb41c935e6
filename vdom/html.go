package vdom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	g "maragu.dev/gomponents"
)

// Node converts the VNode tree into a gomponents node so it can be rendered
// to HTML outside the browser. Event handlers are dropped, boolean attributes
// are emitted without a value when true and omitted when false, and
// attributes are written in sorted order so output is stable.
func (v *VNode) Node() g.Node {
	if v == nil {
		return g.Group(nil)
	}
	if v.Tag == "#text" {
		return g.Text(v.Content)
	}

	keys := make([]string, 0, len(v.Attributes))
	for k := range v.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	children := make([]g.Node, 0, len(keys)+len(v.Children)+1)
	for _, k := range keys {
		if attr, ok := attrNode(k, v.Attributes[k]); ok {
			children = append(children, attr)
		}
	}
	if v.Content != "" {
		children = append(children, g.Text(v.Content))
	}
	for _, child := range v.Children {
		if child != nil {
			children = append(children, child.Node())
		}
	}
	return g.El(v.Tag, children...)
}

func attrNode(key string, value any) (g.Node, bool) {
	if strings.HasPrefix(key, "on") && len(key) > 2 {
		return nil, false
	}
	switch val := value.(type) {
	case nil:
		return nil, false
	case bool:
		if !val {
			return nil, false
		}
		return g.Attr(key), true
	case string:
		return g.Attr(key, val), true
	case func(), func(any):
		return nil, false
	default:
		return g.Attr(key, fmt.Sprint(val)), true
	}
}

// RenderHTML writes the HTML form of the tree to w.
func RenderHTML(w io.Writer, v *VNode) error {
	return v.Node().Render(w)
}

// HTML returns the HTML form of the tree.
func HTML(v *VNode) (string, error) {
	var b strings.Builder
	if err := RenderHTML(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}
