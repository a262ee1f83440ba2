// Package web holds the embedded browser assets.
package web

import "embed"

//go:embed index.html
var Files embed.FS
