package shared

import (
	"github.com/vcrobe/signspeech/console"
	"github.com/vcrobe/signspeech/runtime"
	"github.com/vcrobe/signspeech/vdom"
)

// RouterLink renders an <a> whose click is handled by the router instead of
// the browser. The href stays on the element so the link also works when the
// page is served without the wasm client.
type RouterLink struct {
	runtime.ComponentBase

	Href     string
	Label    string
	Class    string
	Current  bool // marks the link with aria-current="page"
	Children []*vdom.VNode
}

// ApplyProps copies props from a freshly built link onto the retained instance.
func (l *RouterLink) ApplyProps(next runtime.Component) {
	n, ok := next.(*RouterLink)
	if !ok {
		return
	}
	l.Href = n.Href
	l.Label = n.Label
	l.Class = n.Class
	l.Current = n.Current
	l.Children = n.Children
}

// Activate navigates to the link target.
func (l *RouterLink) Activate() error {
	return l.Navigate(l.Href)
}

func (l *RouterLink) Render(r runtime.Renderer) *vdom.VNode {
	attrs := map[string]any{
		"href": l.Href,
		"onClick": func() {
			if err := l.Activate(); err != nil {
				console.Error("[RouterLink] navigation to", l.Href, "failed:", err.Error())
			}
		},
	}
	if l.Class != "" {
		attrs["class"] = l.Class
	}
	if l.Current {
		attrs["aria-current"] = "page"
	}
	return vdom.NewVNode("a", attrs, l.Children, l.Label)
}
