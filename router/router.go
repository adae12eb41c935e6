package router

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vcrobe/signspeech/console"
	"github.com/vcrobe/signspeech/runtime"
	"github.com/vcrobe/signspeech/signals"
	"github.com/vcrobe/signspeech/vdom"
)

// ErrNoRoute is returned by Navigate when no route matches and no
// not-found route is registered.
var ErrNoRoute = errors.New("router: no route")

// Engine manages routing with the app shell pattern and pivot-based layout reuse.
// It preserves layout instances across navigations when the layout chain matches.
type Engine struct {
	mu              sync.Mutex
	history         History
	currentPath     string
	currentFragment string
	currentRoute    *Route
	activeChain     []ComponentMetadata
	liveInstances   []runtime.Component // Parallel to activeChain; instances are reused
	pivotPoint      int                 // First index where chain differs between routes
	routes          map[string]*Route
	notFound        *Route
	started         bool
	renderer        runtime.Renderer
	onRouteChange   func(chain []runtime.Component, key string)
	unsubscribe     func()
	activePath      *signals.Signal[string]
}

// NewEngine creates a new router engine over history.
// The renderer can be set later via SetRenderer if needed.
func NewEngine(history History, renderer runtime.Renderer) *Engine {
	return &Engine{
		history:       history,
		routes:        make(map[string]*Route),
		renderer:      renderer,
		liveInstances: make([]runtime.Component, 0, 4),
		activePath:    signals.NewSignal(""),
	}
}

// SetRenderer sets the renderer on the engine (used after engine creation).
func (e *Engine) SetRenderer(renderer runtime.Renderer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderer = renderer
}

// RegisterRoutes adds routes to the engine.
// Paths must be non-empty and unique, and the table is frozen once Start runs.
// Registration is all or nothing: on error the table is left unchanged.
func (e *Engine) RegisterRoutes(routes []Route) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return fmt.Errorf("router: route table is frozen after start")
	}

	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		if route.Path == "" {
			return fmt.Errorf("router: route %q has an empty path", route.Name)
		}
		if len(route.Chain) == 0 {
			return fmt.Errorf("router: route %q has no components", route.Path)
		}
		if _, exists := e.routes[route.Path]; exists || seen[route.Path] {
			return fmt.Errorf("router: duplicate route %q", route.Path)
		}
		seen[route.Path] = true
	}

	for i := range routes {
		route := routes[i]
		e.routes[route.Path] = &route
	}
	return nil
}

// HandleNotFound registers the route rendered when no path matches.
func (e *Engine) HandleNotFound(route Route) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return fmt.Errorf("router: route table is frozen after start")
	}
	if len(route.Chain) == 0 {
		return fmt.Errorf("router: not-found route has no components")
	}
	e.notFound = &route
	return nil
}

// SetRouteChangeCallback sets the callback invoked when navigation occurs.
// The callback is passed the chain of component instances and a unique key for reconciliation.
func (e *Engine) SetRouteChangeCallback(fn func(chain []runtime.Component, key string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onRouteChange = fn
}

// Navigate changes the current route, records it in history and triggers rendering.
// A target of the form "/path#section" routes on "/path" and then scrolls to
// "section"; a bare "#section" keeps the current path.
func (e *Engine) Navigate(target string) error {
	return e.navigateInternal(target, false)
}

// splitTarget separates the path from an in-page fragment.
func splitTarget(target string) (path, fragment string) {
	path, fragment, _ = strings.Cut(target, "#")
	return path, fragment
}

// navigateInternal handles the navigation logic. Traversal (back/forward)
// and the initial navigation pass skipPush so history is not written twice.
func (e *Engine) navigateInternal(target string, skipPush bool) error {
	e.mu.Lock()

	console.Log("[Engine.Navigate] Called with target:", target)

	path, fragment := splitTarget(target)
	if path == "" {
		path = e.currentPath
	}
	if path == "" {
		console.Warn("[Engine.Navigate] The path is empty string")
		path = "/"
	}

	targetRoute, ok := e.routes[path]
	if !ok {
		if e.notFound == nil {
			e.mu.Unlock()
			console.Error("[Engine.Navigate] No route found for path:", path)
			return fmt.Errorf("%w for path %q", ErrNoRoute, path)
		}
		console.Log("[Engine.Navigate] No route for path, using not-found route:", path)
		targetRoute = e.notFound
	}

	if !skipPush && e.history != nil {
		full := path
		if fragment != "" {
			full += "#" + fragment
		}
		e.history.Navigate(full)
	}

	// Calculate pivot point: first index where TypeID differs
	pivot := e.calculatePivot(targetRoute.Chain)
	console.Log("[Engine.Navigate] Pivot point:", pivot, "Chain length:", len(targetRoute.Chain))

	// Detach volatile instances from pivot onwards
	for i := pivot; i < len(e.liveInstances); i++ {
		if slotTracking, ok := e.liveInstances[i].(interface{ SetSlotParent(runtime.Component) }); ok {
			slotTracking.SetSlotParent(nil)
		}
	}

	newInstances := make([]runtime.Component, len(targetRoute.Chain))
	copy(newInstances[:pivot], e.liveInstances[:pivot])

	for i := pivot; i < len(targetRoute.Chain); i++ {
		instance := targetRoute.Chain[i].Factory()
		// Inject renderer so component can call StateHasChanged() and Navigate()
		if e.renderer != nil {
			instance.SetRenderer(e.renderer)
		}
		newInstances[i] = instance
	}

	e.currentPath = path
	e.currentFragment = fragment
	e.currentRoute = targetRoute
	e.activeChain = targetRoute.Chain
	e.liveInstances = newInstances
	e.pivotPoint = pivot

	onRouteChange := e.onRouteChange
	renderer := e.renderer
	e.mu.Unlock()

	// Rendering runs without the lock so pages may navigate from lifecycle hooks.
	if onRouteChange != nil {
		key := fmt.Sprintf("%s:%d", path, pivot)
		console.Log("[Engine.Navigate] Calling onRouteChange with", len(newInstances), "components, key:", key)
		onRouteChange(newInstances, key)
	} else if renderer != nil {
		linkChain(renderer, newInstances)
		if pivot > 0 {
			if err := renderer.ReRenderSlot(newInstances[pivot-1]); err != nil {
				return fmt.Errorf("router: re-render slot: %w", err)
			}
		} else {
			renderer.ReRender()
		}
	}

	// A nested navigation (from a lifecycle hook) may have moved on already.
	e.activePath.Set(e.CurrentPath())

	if fragment != "" {
		if scroller, ok := e.history.(fragmentScroller); ok {
			scroller.ScrollTo(fragment)
		}
	}
	return nil
}

// linkChain injects each child into its parent's BodyContent slot. Only used
// without an AppShell, which does its own linking.
func linkChain(renderer runtime.Renderer, instances []runtime.Component) {
	for i := 0; i < len(instances)-1; i++ {
		parent := instances[i]
		child := instances[i+1]

		childVNode := child.Render(renderer)
		if childVNode != nil {
			if layout, ok := parent.(interface{ SetBodyContent([]*vdom.VNode) }); ok {
				layout.SetBodyContent([]*vdom.VNode{childVNode})
			}
		}

		if slotTracking, ok := child.(interface{ SetSlotParent(runtime.Component) }); ok {
			slotTracking.SetSlotParent(parent)
		}
	}
}

// calculatePivot finds the first index where current and target chains differ by TypeID.
func (e *Engine) calculatePivot(targetChain []ComponentMetadata) int {
	minLen := min(len(e.activeChain), len(targetChain))
	for i := 0; i < minLen; i++ {
		if e.activeChain[i].TypeID != targetChain[i].TypeID {
			return i
		}
	}
	return minLen
}

// Start subscribes to history traversal and renders the history's current path.
// The initial navigation does not push a history entry. The route table is
// frozen from here on.
func (e *Engine) Start(onChange func(chain []runtime.Component, key string)) error {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return fmt.Errorf("router: already started")
	}
	e.started = true
	if onChange != nil {
		e.onRouteChange = onChange
	}
	history := e.history
	e.mu.Unlock()

	initialPath := "/"
	if history != nil {
		unsubscribe := history.OnChange(func(path string) {
			if err := e.navigateInternal(path, true); err != nil {
				console.Error("[Engine] traversal navigation failed:", err.Error())
			}
		})
		e.mu.Lock()
		e.unsubscribe = unsubscribe
		e.mu.Unlock()

		if p := history.CurrentPath(); p != "" {
			initialPath = p
		}
	}

	console.Log("[Engine.Start] Initial path:", initialPath)
	return e.navigateInternal(initialPath, true)
}

// Stop releases the history subscription.
func (e *Engine) Stop() {
	e.mu.Lock()
	unsubscribe := e.unsubscribe
	e.unsubscribe = nil
	e.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Resolve looks a path up in the route table without navigating.
// The boolean is false when the path is unmatched; the not-found route is
// returned in that case if one is registered.
func (e *Engine) Resolve(path string) (*Route, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if route, ok := e.routes[path]; ok {
		return route, true
	}
	return e.notFound, false
}

// Routes returns the registered routes sorted by path.
func (e *Engine) Routes() []Route {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Route, 0, len(e.routes))
	for _, route := range e.routes {
		out = append(out, *route)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// CurrentPath returns the path of the current route target (without fragment).
func (e *Engine) CurrentPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentPath
}

// CurrentFragment returns the in-page fragment of the last navigation.
func (e *Engine) CurrentFragment() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentFragment
}

// CurrentRouteName returns the name of the route being rendered.
func (e *Engine) CurrentRouteName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.currentRoute == nil {
		return ""
	}
	return e.currentRoute.Name
}

// CurrentPivotPoint returns the pivot point from the last navigation.
func (e *Engine) CurrentPivotPoint() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pivotPoint
}

// ActivePath publishes the current path after every navigation.
func (e *Engine) ActivePath() *signals.Signal[string] {
	return e.activePath
}
