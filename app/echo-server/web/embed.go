// Package web holds the single-page front end served at "/".
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// FS is rooted at the static directory, so "index.html" is at the top.
var FS, _ = fs.Sub(static, "static")
