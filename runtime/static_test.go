//go:build !wasm
// +build !wasm

package runtime

import (
	"errors"
	"testing"

	"github.com/vcrobe/signspeech/vdom"
)

// label is a leaf component that counts its lifecycle calls.
type label struct {
	ComponentBase
	Text string

	inits, paramSets, destroys int
}

func (l *label) OnInit()          { l.inits++ }
func (l *label) OnParametersSet() { l.paramSets++ }
func (l *label) OnDestroy()       { l.destroys++ }

func (l *label) ApplyProps(next Component) {
	if n, ok := next.(*label); ok {
		l.Text = n.Text
	}
}

func (l *label) Render(r Renderer) *vdom.VNode {
	return vdom.Span(l.Text, nil)
}

// panel renders a label child while ShowChild is set.
type panel struct {
	ComponentBase
	ShowChild bool
	ChildText string
}

func (p *panel) Render(r Renderer) *vdom.VNode {
	root := vdom.Div(map[string]any{"class": "panel"})
	if p.ShowChild {
		root.Children = append(root.Children, r.RenderChild("panel-label", &label{Text: p.ChildText}))
	}
	return root
}

type recordingNav struct {
	paths []string
	err   error
}

func (n *recordingNav) Navigate(path string) error {
	n.paths = append(n.paths, path)
	return n.err
}

func TestStaticRenderer_RetainsChildInstanceByKey(t *testing.T) {
	// Arrange
	p := &panel{ShowChild: true, ChildText: "one"}
	r := NewStaticRenderer(nil)
	r.SetCurrentComponent(p, "root")

	// Act: two renders with changed props
	first := r.RenderRoot()
	child := r.instances["panel-label"].(*label)
	p.ChildText = "two"
	p.StateHasChanged()
	second := r.GetCurrentVDOM()

	// Assert
	if first.Children[0].Content != "one" {
		t.Errorf("Expected first render 'one', got '%s'", first.Children[0].Content)
	}
	if second.Children[0].Content != "two" {
		t.Errorf("Expected props applied to retained instance, got '%s'", second.Children[0].Content)
	}
	if r.instances["panel-label"] != child {
		t.Errorf("Expected child instance to be retained across renders")
	}
	if child.inits != 1 {
		t.Errorf("Expected OnInit once, got %d", child.inits)
	}
	if child.paramSets != 2 {
		t.Errorf("Expected OnParametersSet per render (2), got %d", child.paramSets)
	}
	if second.Children[0].ComponentKey != "panel-label" {
		t.Errorf("Expected child node keyed 'panel-label', got '%s'", second.Children[0].ComponentKey)
	}
	if second.ComponentKey != "root" {
		t.Errorf("Expected root node keyed 'root', got '%s'", second.ComponentKey)
	}
	if r.RenderCount() != 2 {
		t.Errorf("Expected 2 root renders, got %d", r.RenderCount())
	}
}

func TestStaticRenderer_DestroysUnmountedChildren(t *testing.T) {
	p := &panel{ShowChild: true, ChildText: "x"}
	r := NewStaticRenderer(nil)
	r.SetCurrentComponent(p, "root")
	r.RenderRoot()
	child := r.instances["panel-label"].(*label)

	p.ShowChild = false
	r.ReRender()

	if child.destroys != 1 {
		t.Errorf("Expected OnDestroy once, got %d", child.destroys)
	}
	if _, ok := r.instances["panel-label"]; ok {
		t.Errorf("Expected unmounted instance to be dropped")
	}
}

func TestStaticRenderer_Navigate(t *testing.T) {
	// Without a navigation manager
	if err := NewStaticRenderer(nil).Navigate("/"); err == nil {
		t.Errorf("Expected error when no router is configured")
	}

	// With one, errors are passed through
	want := errors.New("boom")
	nav := &recordingNav{err: want}
	r := NewStaticRenderer(nav)
	if err := r.Navigate("/settings"); !errors.Is(err, want) {
		t.Errorf("Expected navigation error to be returned, got %v", err)
	}
	if len(nav.paths) != 1 || nav.paths[0] != "/settings" {
		t.Errorf("Expected navigation to '/settings', got %v", nav.paths)
	}
}

func TestComponentBase_NavigateWithoutRenderer(t *testing.T) {
	var b ComponentBase
	if err := b.Navigate("/"); err == nil {
		t.Errorf("Expected error for unmounted component")
	}
}

func TestComponentBase_NavigateThroughRenderer(t *testing.T) {
	nav := &recordingNav{}
	p := &panel{}
	r := NewStaticRenderer(nav)
	r.SetCurrentComponent(p, "root")

	if err := p.Navigate("/speech-to-sign"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(nav.paths) != 1 || nav.paths[0] != "/speech-to-sign" {
		t.Errorf("Expected navigation recorded, got %v", nav.paths)
	}
}
