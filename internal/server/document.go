package server

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/vcrobe/signspeech/internal/app"
	"github.com/vcrobe/signspeech/internal/locale"
)

// wasmBootstrap starts the client bundle served under /app.
const wasmBootstrap = `const go = new Go();
WebAssembly.instantiateStreaming(fetch("/app/main.wasm"), go.importObject)
  .then((result) => go.run(result.instance))
  .catch((err) => console.error("wasm start failed:", err));`

// DocumentProps describes one server-rendered page.
type DocumentProps struct {
	View     app.View
	Catalog  *locale.Catalog
	WithWasm bool
}

// Document wraps a rendered view in a full HTML5 page. The view is mounted
// under #app, where the wasm client takes over when it is enabled.
func Document(p DocumentProps) g.Node {
	body := []g.Node{
		Div(ID("app"), p.View.Tree.Node()),
	}
	if p.WithWasm {
		body = append(body,
			Script(Src("/app/wasm_exec.js")),
			Script(g.Raw(wasmBootstrap)),
		)
	}

	return c.HTML5(c.HTML5Props{
		Title:       p.View.Title,
		Description: p.Catalog.T("MetaDescription"),
		Language:    p.Catalog.Language().String(),
		Head: []g.Node{
			Meta(Name("theme-color"), Content("#0b1020")),
			Link(Rel("stylesheet"), Href("/static/styles.css")),
		},
		Body: body,
	})
}
