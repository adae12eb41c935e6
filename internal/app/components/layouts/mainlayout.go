package layouts

import (
	"time"

	"github.com/vcrobe/signspeech/internal/app/components/shared"
	"github.com/vcrobe/signspeech/internal/locale"
	"github.com/vcrobe/signspeech/runtime"
	"github.com/vcrobe/signspeech/vdom"
)

// MainLayout is the persistent app shell: header, routed page slot, footer.
// One instance lives for the whole session.
type MainLayout struct {
	runtime.ComponentBase

	Catalog *locale.Catalog
	Now     func() time.Time

	// CurrentPath reports the routed path; the matching nav link is marked current.
	CurrentPath func() string

	// BodyContent is the slot filled with the routed page.
	BodyContent []*vdom.VNode
}

// SetBodyContent fills the page slot.
func (l *MainLayout) SetBodyContent(body []*vdom.VNode) {
	l.BodyContent = body
}

// Year returns the calendar year shown in the footer.
func (l *MainLayout) Year() int {
	if l.Now == nil {
		return time.Now().Year()
	}
	return l.Now().Year()
}

func (l *MainLayout) activePath() string {
	if l.CurrentPath == nil {
		return ""
	}
	return l.CurrentPath()
}

func (l *MainLayout) Render(r runtime.Renderer) *vdom.VNode {
	c := l.Catalog

	brand := r.RenderChild("layout-brand", &shared.RouterLink{
		Href:  "/",
		Class: "flex items-center gap-2 font-semibold text-lg gradient-text",
		Children: []*vdom.VNode{
			vdom.Span(c.T("BrandName"), map[string]any{"class": "sr-only"}),
			vdom.Span(c.T("BrandName"), map[string]any{"aria-hidden": "true"}),
		},
	})

	nav := vdom.Element("nav", map[string]any{"class": "hidden md:flex items-center gap-6 text-sm"},
		r.RenderChild("layout-nav-features", &shared.RouterLink{Href: "/#features", Label: c.T("NavFeatures"), Class: "hover:underline"}),
		r.RenderChild("layout-nav-about", &shared.RouterLink{Href: "/#about", Label: c.T("NavAbout"), Class: "hover:underline"}),
		r.RenderChild("layout-nav-contact", &shared.RouterLink{Href: "/#contact", Label: c.T("NavContact"), Class: "hover:underline"}),
		r.RenderChild("layout-nav-settings", &shared.RouterLink{
			Href:    "/settings",
			Label:   c.T("NavSettings"),
			Class:   "px-3 py-1.5 rounded-full glass hover:glow transition-colors",
			Current: l.activePath() == "/settings",
		}),
	)

	header := vdom.Element("header", map[string]any{"class": "sticky top-0 z-40"},
		vdom.Div(map[string]any{"class": "max-w-7xl mx-auto px-4 py-4 flex items-center justify-between"}, brand, nav),
	)

	main := vdom.NewVNode("main", map[string]any{"class": "flex-1", "id": "page"}, l.BodyContent, "")

	footer := vdom.Element("footer", map[string]any{"class": "border-t border-white/10 py-8 mt-8"},
		vdom.Div(map[string]any{"class": "max-w-7xl mx-auto px-4 flex flex-col md:flex-row items-center justify-between gap-3 text-sm text-slate-400"},
			vdom.NewVNode("div", map[string]any{"class": "copyright"}, nil, c.Tf("FooterCopyright", map[string]any{"Year": l.Year()})),
			vdom.Div(map[string]any{"class": "flex items-center gap-4"},
				r.RenderChild("layout-footer-about", &shared.RouterLink{Href: "/#about", Label: c.T("FooterAbout"), Class: "hover:underline"}),
				r.RenderChild("layout-footer-privacy", &shared.RouterLink{Href: "/#privacy", Label: c.T("FooterPrivacy"), Class: "hover:underline"}),
				r.RenderChild("layout-footer-feedback", &shared.RouterLink{Href: "/#feedback", Label: c.T("FooterFeedback"), Class: "hover:underline"}),
			),
		),
	)

	return vdom.Div(map[string]any{"class": "min-h-screen flex flex-col"}, header, main, footer)
}
