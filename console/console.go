//go:build js || wasm

package console

import (
	"syscall/js"
)

// Log writes to the browser console at log level.
func Log(args ...any) {
	console := js.Global().Get("console")
	console.Call("log", args...)
}

// Warn writes to the browser console at warn level.
func Warn(args ...any) {
	console := js.Global().Get("console")
	console.Call("warn", args...)
}

// Error writes to the browser console at error level.
func Error(args ...any) {
	console := js.Global().Get("console")
	console.Call("error", args...)
}
