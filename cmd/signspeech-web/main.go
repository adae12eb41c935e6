//go:build js || wasm
// +build js wasm

package main

import (
	"syscall/js"
	"time"

	"github.com/vcrobe/signspeech/console"
	"github.com/vcrobe/signspeech/internal/app"
	"github.com/vcrobe/signspeech/internal/locale"
	"github.com/vcrobe/signspeech/router"
	"github.com/vcrobe/signspeech/runtime"
)

func browserLanguage() string {
	lang := js.Global().Get("navigator").Get("language")
	if lang.Type() != js.TypeString {
		return ""
	}
	return lang.String()
}

func main() {
	bundle, err := locale.NewBundle()
	if err != nil {
		console.Error("Failed to load messages:", err.Error())
		panic(err)
	}
	catalog := locale.New(bundle, browserLanguage(), locale.DefaultLanguage.String())

	// Create the app over the browser's history
	site, err := app.New(router.NewBrowserHistory(), catalog, time.Now)
	if err != nil {
		console.Error("Failed to build app:", err.Error())
		panic(err)
	}

	// Create the renderer with the engine as the navigation manager and
	// mount the app shell over the server-rendered markup
	renderer := runtime.NewRenderer(site.Engine, "#app")
	site.Mount(renderer)

	// Keep the document title in step with the routed view
	document := js.Global().Get("document")
	site.Engine.ActivePath().Subscribe(func() {
		document.Set("title", site.Title())
	})

	if err := site.Start(); err != nil {
		console.Error("Failed to start router:", err.Error())
		panic(err)
	}

	// Keep the Go program running
	select {}
}
