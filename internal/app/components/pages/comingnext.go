package pages

import (
	"github.com/vcrobe/signspeech/internal/locale"
	"github.com/vcrobe/signspeech/runtime"
	"github.com/vcrobe/signspeech/vdom"
)

// ComingNextPage is the placeholder for a feature that is not built yet.
// FeatureID is the message ID of the feature's display name.
type ComingNextPage struct {
	runtime.ComponentBase

	Catalog   *locale.Catalog
	FeatureID string
}

// Message returns the placeholder text, e.g. "Settings - Coming next".
func (p *ComingNextPage) Message() string {
	return p.Catalog.Tf("ComingNext", map[string]any{"Feature": p.Catalog.T(p.FeatureID)})
}

func (p *ComingNextPage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.NewVNode("div", map[string]any{"class": "p-6 coming-next"}, nil, p.Message())
}
