package pages

import (
	"github.com/vcrobe/signspeech/internal/app/components/shared"
	"github.com/vcrobe/signspeech/internal/locale"
	"github.com/vcrobe/signspeech/runtime"
	"github.com/vcrobe/signspeech/vdom"
)

// Section ids on the home page. Shell links point at them as "/#<id>".
const (
	SectionFeatures = "features"
	SectionAbout    = "about"
	SectionContact  = "contact"
	SectionPrivacy  = "privacy"
	SectionFeedback = "feedback"
)

// SectionIDs lists every anchor target rendered by HomePage.
var SectionIDs = []string{SectionFeatures, SectionAbout, SectionContact, SectionPrivacy, SectionFeedback}

type featureCard struct {
	key     string
	href    string
	titleID string
	bodyID  string
}

var featureCards = []featureCard{
	{key: "home-card-sign-to-speech", href: "/sign-to-speech", titleID: "CardSignToSpeechTitle", bodyID: "CardSignToSpeechBody"},
	{key: "home-card-speech-to-sign", href: "/speech-to-sign", titleID: "CardSpeechToSignTitle", bodyID: "CardSpeechToSignBody"},
}

type featureTile struct {
	titleID string
	bodyID  string
}

var featureTiles = []featureTile{
	{titleID: "FeatureOnDeviceTitle", bodyID: "FeatureOnDeviceBody"},
	{titleID: "FeatureAccessibilityTitle", bodyID: "FeatureAccessibilityBody"},
	{titleID: "FeatureFuturisticTitle", bodyID: "FeatureFuturisticBody"},
}

// HomePage is the landing page at "/": hero, the two feature cards, the
// features grid and the informational sections the shell links to.
type HomePage struct {
	runtime.ComponentBase

	Catalog *locale.Catalog
}

func (p *HomePage) Render(r runtime.Renderer) *vdom.VNode {
	c := p.Catalog

	cards := make([]*vdom.VNode, 0, len(featureCards))
	for _, card := range featureCards {
		cards = append(cards, r.RenderChild(card.key, &shared.RouterLink{
			Href:  card.href,
			Class: "group feature-card",
			Children: []*vdom.VNode{
				vdom.Div(map[string]any{"class": "glass rounded-3xl p-6 card-hover"},
					vdom.Heading(3, c.T(card.titleID), map[string]any{"class": "text-xl font-semibold"}),
					vdom.Paragraph(c.T(card.bodyID), map[string]any{"class": "text-slate-300 mt-1"}),
				),
			},
		}))
	}

	hero := vdom.Section(map[string]any{"class": "hero max-w-7xl mx-auto px-4 pt-12 pb-10"},
		vdom.Heading(1, c.T("HeroTitle"), map[string]any{"class": "text-4xl md:text-6xl font-extrabold gradient-text"}),
		vdom.Paragraph(c.T("HeroSubtitle"), map[string]any{"class": "mt-4 text-lg text-slate-300 max-w-3xl"}),
		vdom.Div(map[string]any{"class": "cards mt-10 grid md:grid-cols-2 gap-6"}, cards...),
	)

	tiles := make([]*vdom.VNode, 0, len(featureTiles))
	for _, tile := range featureTiles {
		tiles = append(tiles, vdom.Div(map[string]any{"class": "feature-tile glass rounded-2xl p-5"},
			vdom.Heading(4, c.T(tile.titleID), map[string]any{"class": "font-semibold"}),
			vdom.Paragraph(c.T(tile.bodyID), map[string]any{"class": "text-sm text-slate-300 mt-1"}),
		))
	}
	features := vdom.Section(map[string]any{"id": SectionFeatures, "class": "max-w-7xl mx-auto px-4 py-10"},
		vdom.Div(map[string]any{"class": "grid md:grid-cols-3 gap-6"}, tiles...),
	)

	return vdom.Div(map[string]any{"class": "home"},
		hero,
		features,
		infoSection(c, SectionAbout, "SectionAboutTitle", "SectionAboutBody"),
		infoSection(c, SectionContact, "SectionContactTitle", "SectionContactBody"),
		infoSection(c, SectionPrivacy, "SectionPrivacyTitle", "SectionPrivacyBody"),
		infoSection(c, SectionFeedback, "SectionFeedbackTitle", "SectionFeedbackBody"),
	)
}

func infoSection(c *locale.Catalog, id, titleID, bodyID string) *vdom.VNode {
	return vdom.Section(map[string]any{"id": id, "class": "max-w-7xl mx-auto px-4 py-8"},
		vdom.Heading(2, c.T(titleID), map[string]any{"class": "text-2xl font-semibold"}),
		vdom.Paragraph(c.T(bodyID), map[string]any{"class": "mt-2 text-slate-300"}),
	)
}
