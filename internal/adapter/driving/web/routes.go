package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all web routes on the provided mux.
// The compiled front-end is served from disk at / and its assets beneath it.
// The project page stylesheet is served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Embedded assets.
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Page routes.
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /projects/{name}", h.Project)

	// Front-end assets from disk.
	mux.Handle("GET /", http.FileServer(http.Dir(h.staticDir)))
}
