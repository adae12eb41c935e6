package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or "#text" for a bare text node
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node
	OnClick    func()         // Optional click event handler

	// ComponentKey is set by the renderer on the root node of a component.
	// When keys differ between renders the patcher replaces the subtree.
	ComponentKey string

	// detach holds one func per listener bound to the rendered element.
	detach []func()
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// Attr returns the string form of an attribute, or "" when it is absent or not a string.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	s, _ := v.Attributes[key].(string)
	return s
}

// AddEventCallback records how to unbind a listener attached for this node.
// detach must remove the listener from its element and free it.
func (v *VNode) AddEventCallback(detach func()) {
	v.detach = append(v.detach, detach)
}

// EventCallbackCount reports how many listeners are bound for this node.
func (v *VNode) EventCallbackCount() int {
	return len(v.detach)
}

// ReleaseEventCallbacks unbinds every recorded listener, once, and forgets them.
func (v *VNode) ReleaseEventCallbacks() {
	detach := v.detach
	v.detach = nil
	for _, fn := range detach {
		fn()
	}
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return &VNode{Tag: "#text", Content: content}
}

// Element creates a VNode for an arbitrary tag with children.
func Element(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode holding text.
func Heading(level int, text string, attrs map[string]any) *VNode {
	if level < 1 || level > 6 {
		level = 2
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Span creates a <span> VNode holding text.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Section creates a <section> VNode with the given children.
func Section(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("section", attrs, children, "")
}

// Anchor creates a plain <a> VNode. Router-aware links are built by components
// that set an onClick handler.
func Anchor(href, text string, attrs map[string]any, children ...*VNode) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["href"] = href
	return NewVNode("a", attrs, children, text)
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
