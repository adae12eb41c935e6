//go:build !wasm
// +build !wasm

package console

import (
	"fmt"
	"log/slog"
	"strings"
)

// Native builds (server, CLI, tests) have no browser console; messages go to
// slog.Default() instead so they follow the process logging configuration.

// Log forwards to slog at debug level.
func Log(args ...any) {
	slog.Debug(join(args))
}

// Warn forwards to slog at warn level.
func Warn(args ...any) {
	slog.Warn(join(args))
}

// Error forwards to slog at error level.
func Error(args ...any) {
	slog.Error(join(args))
}

func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
