// Package web holds the site's static assets.
package web

import "embed"

// Static is the stylesheet and other assets served under /static.
//
//go:embed static
var Static embed.FS
