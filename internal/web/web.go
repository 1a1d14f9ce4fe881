// Package web serves the embedded signup UI.
package web

import (
	"embed"
	"net/http"
)

//go:embed static
var assets embed.FS

// Index serves the landing page.
func Index(w http.ResponseWriter, r *http.Request) {
	page, err := assets.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "landing page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// Static returns a file server for /static/* assets.
func Static() http.Handler {
	return http.FileServer(http.FS(assets))
}
