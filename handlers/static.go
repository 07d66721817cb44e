package handlers

import (
	"html/template"
	"net/http"

	"worklog/web"

	"go.uber.org/zap"
)

// ShellHandler serves the pieces of the app that must load without a
// session: the service worker, the manifest, styles and the offline page.
type ShellHandler struct {
	templates map[string]*template.Template
	logger    *zap.Logger
}

func NewShellHandler(templates map[string]*template.Template, logger *zap.Logger) *ShellHandler {
	return &ShellHandler{templates: templates, logger: logger}
}

func (h *ShellHandler) ServiceWorker(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Service-Worker-Allowed", "/")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFileFS(w, r, web.Static(), "sw.js")
}

func (h *ShellHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/manifest+json")
	http.ServeFileFS(w, r, web.Static(), "manifest.json")
}

func (h *ShellHandler) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(web.Static())))
}

func (h *ShellHandler) Offline(w http.ResponseWriter, r *http.Request) {
	render(w, h.logger, h.templates["offline"], map[string]interface{}{})
}
