package web

import (
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rook-computer/marquee/internal/assets"
)

// RegisterAPIV1 registers the preview API under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, deps APIV1Deps) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(deps)))
}

// RegisterUI serves either embedded UI assets or a directory.
func RegisterUI(mux *http.ServeMux, staticDir string) {
	mux.Handle("/", StaticUIHandler(staticDir))
}

// NewDefaultMux builds the preview mux:
// - /api/v1/* for the API
// - / for the web UI
func NewDefaultMux(staticDir string, deps APIV1Deps) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, deps)
	RegisterUI(mux, staticDir)
	return mux
}

// StaticUIHandler serves staticDir when it is an existing directory and the
// embedded UI otherwise.
func StaticUIHandler(staticDir string) http.Handler {
	var root fs.FS = assets.WebUI
	if staticDir != "" {
		if st, err := os.Stat(staticDir); err == nil && st.IsDir() {
			root = os.DirFS(staticDir)
		}
	}
	fileServer := http.FileServer(http.FS(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Clean path to avoid oddities.
		r.URL.Path = filepath.ToSlash(filepath.Clean("/" + r.URL.Path))
		fileServer.ServeHTTP(w, r)
	})
}
