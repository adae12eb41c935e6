package pages

import (
	"github.com/vcrobe/signspeech/internal/app/components/shared"
	"github.com/vcrobe/signspeech/internal/locale"
	"github.com/vcrobe/signspeech/runtime"
	"github.com/vcrobe/signspeech/vdom"
)

// NotFoundPage is rendered for any path outside the route table.
type NotFoundPage struct {
	runtime.ComponentBase

	Catalog *locale.Catalog
}

func (p *NotFoundPage) Render(r runtime.Renderer) *vdom.VNode {
	c := p.Catalog
	return vdom.Div(map[string]any{"class": "p-6 not-found"},
		vdom.Heading(1, c.T("NotFoundTitle"), map[string]any{"class": "text-2xl font-semibold"}),
		vdom.Paragraph(c.T("NotFoundBody"), map[string]any{"class": "mt-2 text-slate-300"}),
		r.RenderChild("not-found-home", &shared.RouterLink{
			Href:  "/",
			Label: c.T("NotFoundHomeLink"),
			Class: "mt-4 inline-block underline",
		}),
	)
}
