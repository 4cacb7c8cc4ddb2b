// Package site serves the embedded static frontend.
package site

import (
	"embed"

	"github.com/jrazmi/tasklist/infrastructure/web"
)

//go:embed static
var staticFiles embed.FS

// AddHandlers mounts the static site at the root path. Extensionless paths
// fall back to index.html.
func AddHandlers(wh *web.WebHandler) error {
	return wh.FileServerSPA(staticFiles, "static", "/")
}
