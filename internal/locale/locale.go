// Package locale holds the site copy as go-i18n message catalogs embedded
// into the binary.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/vcrobe/signspeech/console"
)

//go:embed locales/*.toml
var files embed.FS

// DefaultLanguage is the bundle's source language.
var DefaultLanguage = language.English

// NewBundle loads every embedded message file.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	names, err := fs.Glob(files, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("locale: list message files: %w", err)
	}
	for _, name := range names {
		if _, err := bundle.LoadMessageFileFS(files, name); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", name, err)
		}
	}
	return bundle, nil
}

// Catalog localizes message IDs for one language preference list.
type Catalog struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New creates a Catalog. Each entry of langs may be a single tag ("es") or
// an Accept-Language header value; earlier entries win.
func New(bundle *i18n.Bundle, langs ...string) *Catalog {
	var prefs []language.Tag
	for _, l := range langs {
		if l == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(l)
		if err != nil {
			console.Warn("[locale] ignoring language preference", l, err.Error())
			continue
		}
		prefs = append(prefs, tags...)
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _, _ := matcher.Match(prefs...)

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, langs...),
		tag:       tag,
	}
}

// Default returns an English catalog over the embedded bundle. It panics if
// the embedded files are malformed, which is a build defect.
func Default() *Catalog {
	bundle, err := NewBundle()
	if err != nil {
		panic(err)
	}
	return New(bundle, DefaultLanguage.String())
}

// Language returns the bundle language that best matches the preferences.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// T localizes a message without template data.
func (c *Catalog) T(id string) string {
	return c.Tf(id, nil)
}

// Tf localizes a message with template data. An unknown ID renders as the
// ID itself so a missing translation is visible but not fatal.
func (c *Catalog) Tf(id string, data map[string]any) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) && s != "" {
			// Found in the default language only.
			return s
		}
		console.Warn("[locale] message", id, "unavailable:", err.Error())
		return id
	}
	return s
}
