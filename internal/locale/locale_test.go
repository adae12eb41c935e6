package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func newCatalog(t *testing.T, langs ...string) *Catalog {
	t.Helper()
	bundle, err := NewBundle()
	if err != nil {
		t.Fatalf("NewBundle failed: %v", err)
	}
	return New(bundle, langs...)
}

func TestCatalog_PlainMessage(t *testing.T) {
	c := newCatalog(t, "en")

	if got := c.T("HeroTitle"); got != "AI Sign ↔ Speech Communication" {
		t.Errorf("Unexpected HeroTitle '%s'", got)
	}
}

func TestCatalog_TemplateData(t *testing.T) {
	c := newCatalog(t, "en")

	if got := c.Tf("ComingNext", map[string]any{"Feature": c.T("FeatureSettings")}); got != "Settings - Coming next" {
		t.Errorf("Expected 'Settings - Coming next', got '%s'", got)
	}
	if got := c.Tf("FooterCopyright", map[string]any{"Year": 2030}); got != "© 2030 AI Sign ↔ Speech" {
		t.Errorf("Expected '© 2030 AI Sign ↔ Speech', got '%s'", got)
	}
}

func TestCatalog_UnknownMessageFallsBackToID(t *testing.T) {
	c := newCatalog(t, "en")

	if got := c.T("NoSuchMessage"); got != "NoSuchMessage" {
		t.Errorf("Expected ID fallback, got '%s'", got)
	}
}

func TestCatalog_LanguageMatching(t *testing.T) {
	// Unsupported preferences fall back to the bundle language
	c := newCatalog(t, "fr-FR,de;q=0.8", "en")
	if base, _ := c.Language().Base(); base.String() != "en" {
		t.Errorf("Expected English match, got %s", c.Language())
	}
	if got := c.T("NavSettings"); got != "Settings" {
		t.Errorf("Expected English copy, got '%s'", got)
	}

	// Malformed preferences are ignored
	c = newCatalog(t, "!!", "")
	if c.Language() == language.Und {
		t.Errorf("Expected a concrete language even with malformed preferences")
	}
}

func TestDefault(t *testing.T) {
	if got := Default().T("BrandName"); got != "AI Sign ↔ Speech" {
		t.Errorf("Unexpected BrandName '%s'", got)
	}
}
