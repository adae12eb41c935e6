package router

import (
	"github.com/vcrobe/signspeech/runtime"
)

// Route defines a path and its component chain (layout hierarchy + page).
// Path is matched exactly: no trailing-slash normalization and no parameters.
type Route struct {
	Path  string
	Name  string
	Chain []ComponentMetadata
}

// ComponentMetadata holds the factory and compile-time type ID for a component.
type ComponentMetadata struct {
	Factory runtime.ComponentFactory
	TypeID  uint32
}
