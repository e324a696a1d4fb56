// Package resources provides the static assets compiled into the binary.
package resources

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// FS returns the static assets rooted at the static directory.
func FS() fs.FS {
	fsys, _ := fs.Sub(staticFS, "static")
	return fsys
}

// Handler returns an HTTP handler for serving static files under prefix,
// which must end in "/static/".
func Handler(prefix string) http.Handler {
	fileServer := http.FileServer(http.FS(FS()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Embedded assets only change with a new build.
		w.Header().Set("Cache-Control", "public, max-age=86400")
		http.StripPrefix(prefix, fileServer).ServeHTTP(w, r)
	})
}
