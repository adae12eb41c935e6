package app

import (
	"fmt"
	"time"

	"github.com/vcrobe/signspeech/internal/locale"
	"github.com/vcrobe/signspeech/router"
	"github.com/vcrobe/signspeech/runtime"
	"github.com/vcrobe/signspeech/vdom"
)

// ViewKind names the page a path resolves to.
type ViewKind int

const (
	ViewHome ViewKind = iota
	ViewSignToSpeech
	ViewSpeechToSign
	ViewSettings
	ViewNotFound
)

func (k ViewKind) String() string {
	switch k {
	case ViewHome:
		return RouteHome
	case ViewSignToSpeech:
		return RouteSignToSpeech
	case ViewSpeechToSign:
		return RouteSpeechToSign
	case ViewSettings:
		return RouteSettings
	default:
		return RouteNotFound
	}
}

func viewForRoute(name string) ViewKind {
	switch name {
	case RouteHome:
		return ViewHome
	case RouteSignToSpeech:
		return ViewSignToSpeech
	case RouteSpeechToSign:
		return ViewSpeechToSign
	case RouteSettings:
		return ViewSettings
	default:
		return ViewNotFound
	}
}

// View is one fully composed page: shell plus the routed page.
type View struct {
	Kind  ViewKind
	Path  string
	Title string
	Tree  *vdom.VNode
}

// Render composes the page for path as it looks at time now. It has no side
// effects: routing runs over a private in-memory history and renderer.
// A fragment ("/#about") is accepted and ignored for composition.
func Render(path string, now time.Time, catalog *locale.Catalog) (View, error) {
	a, err := New(router.NewMemoryHistory(path), catalog, func() time.Time { return now })
	if err != nil {
		return View{}, err
	}
	r := runtime.NewStaticRenderer(a.Engine)
	a.Mount(r)
	if err := a.Start(); err != nil {
		return View{}, fmt.Errorf("app: render %q: %w", path, err)
	}
	defer a.Stop()

	return View{
		Kind:  a.CurrentView(),
		Path:  a.Engine.CurrentPath(),
		Title: a.Title(),
		Tree:  r.GetCurrentVDOM(),
	}, nil
}
