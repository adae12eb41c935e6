// Package app wires the site's pages, route table and app shell together.
package app

import (
	"fmt"
	"time"

	"github.com/vcrobe/signspeech/internal/app/components/layouts"
	"github.com/vcrobe/signspeech/internal/locale"
	"github.com/vcrobe/signspeech/router"
	"github.com/vcrobe/signspeech/runtime"
)

// RootRenderer is a renderer that can mount the app shell as its root.
type RootRenderer interface {
	runtime.Renderer
	SetCurrentComponent(comp runtime.Component, key string)
}

// App is the assembled site: the router, the persistent layout and the
// shell that hosts the routed page.
type App struct {
	Engine  *router.Engine
	Shell   *router.AppShell
	Layout  *layouts.MainLayout
	Catalog *locale.Catalog
}

// New builds the app over history. now supplies the clock for the footer
// year and defaults to time.Now.
func New(history router.History, catalog *locale.Catalog, now func() time.Time) (*App, error) {
	if catalog == nil {
		catalog = locale.Default()
	}
	if now == nil {
		now = time.Now
	}

	engine := router.NewEngine(history, nil)

	mainLayout := &layouts.MainLayout{
		Catalog:     catalog,
		Now:         now,
		CurrentPath: engine.CurrentPath,
	}

	if err := registerRoutes(engine, mainLayout, catalog); err != nil {
		return nil, fmt.Errorf("app: register routes: %w", err)
	}

	return &App{
		Engine:  engine,
		Shell:   router.NewAppShell(mainLayout),
		Layout:  mainLayout,
		Catalog: catalog,
	}, nil
}

// Mount makes r the renderer of the app and the shell its root component.
func (a *App) Mount(r RootRenderer) {
	a.Engine.SetRenderer(r)
	r.SetCurrentComponent(a.Shell, "app-shell")
}

// Start renders the current history entry and begins following traversal.
func (a *App) Start() error {
	return a.Engine.Start(a.Shell.SetPage)
}

// Stop detaches the app from history.
func (a *App) Stop() {
	a.Engine.Stop()
}

// Navigate moves the app to target, which may carry a "#fragment".
func (a *App) Navigate(target string) error {
	return a.Engine.Navigate(target)
}

// CurrentView reports which page is showing.
func (a *App) CurrentView() ViewKind {
	return viewForRoute(a.Engine.CurrentRouteName())
}

// Title returns the document title for the current view.
func (a *App) Title() string {
	c := a.Catalog
	var view string
	switch a.CurrentView() {
	case ViewHome:
		return c.T("BrandName")
	case ViewSignToSpeech:
		view = c.T("FeatureSignToSpeech")
	case ViewSpeechToSign:
		view = c.T("FeatureSpeechToSign")
	case ViewSettings:
		view = c.T("FeatureSettings")
	default:
		view = c.T("NotFoundTitle")
	}
	return c.Tf("PageTitle", map[string]any{"View": view})
}
