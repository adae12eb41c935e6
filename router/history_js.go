//go:build js || wasm

package router

import (
	"syscall/js"

	"github.com/vcrobe/signspeech/console"
)

// BrowserHistory adapts the browser History API and popstate events.
type BrowserHistory struct{}

// NewBrowserHistory returns a History backed by window.history.
func NewBrowserHistory() *BrowserHistory {
	return &BrowserHistory{}
}

// CurrentPath returns location.pathname plus location.hash.
func (b *BrowserHistory) CurrentPath() string {
	location := js.Global().Get("location")
	return location.Get("pathname").String() + location.Get("hash").String()
}

// Navigate pushes a new history entry without reloading the page.
func (b *BrowserHistory) Navigate(path string) {
	js.Global().Get("history").Call("pushState", nil, "", path)
	console.Log("[BrowserHistory] pushState:", path)
}

// OnChange listens for popstate, which the browser fires on back/forward.
func (b *BrowserHistory) OnChange(fn func(path string)) func() {
	listener := js.FuncOf(func(this js.Value, args []js.Value) any {
		path := b.CurrentPath()
		console.Log("[BrowserHistory] popstate path:", path)
		fn(path)
		return nil
	})
	js.Global().Call("addEventListener", "popstate", listener)
	console.Log("[BrowserHistory] popstate listener registered")

	return func() {
		js.Global().Call("removeEventListener", "popstate", listener)
		listener.Release()
		console.Log("[BrowserHistory] popstate listener cleaned up")
	}
}

// ScrollTo brings the element with the given id into view.
func (b *BrowserHistory) ScrollTo(fragment string) {
	el := js.Global().Get("document").Call("getElementById", fragment)
	if !el.Truthy() {
		console.Warn("[BrowserHistory] no element for fragment:", fragment)
		return
	}
	el.Call("scrollIntoView")
}
