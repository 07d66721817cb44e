package handlers

import (
	"html/template"
	"net/http"

	"worklog/config"
	"worklog/drafting"
	"worklog/middleware"
	"worklog/session"
	"worklog/store"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Config    *config.Config
	Repo      store.Repository
	Sessions  *session.Store
	Drafter   drafting.Drafter
	Templates map[string]*template.Template
	Logger    *zap.Logger
}

func NewRouter(rc RouterConfig) http.Handler {
	authHandler := NewAuthHandler(rc.Repo, rc.Sessions, rc.Templates, rc.Logger)
	workLogHandler := NewWorkLogHandler(rc.Config, rc.Repo, rc.Drafter, rc.Templates, rc.Logger)
	shellHandler := NewShellHandler(rc.Templates, rc.Logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.RequestLogger(rc.Logger))
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Get("/login", authHandler.LoginPage)
	router.Post("/login", authHandler.Login)
	router.Get("/logout", authHandler.Logout)
	router.Get("/offline", shellHandler.Offline)
	router.Get("/sw.js", shellHandler.ServiceWorker)
	router.Get("/manifest.json", shellHandler.Manifest)
	router.Handle("/static/*", shellHandler.Static())

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(rc.Sessions))

		r.Get("/", workLogHandler.Dashboard)
		r.Get("/logs/new", workLogHandler.NewLogPage)
		r.Post("/logs/new", workLogHandler.CreateLog)
		r.Get("/logs/{id}/delete", workLogHandler.DeleteConfirmPage)
		r.Post("/logs/{id}/delete", workLogHandler.DeleteLog)
		r.Get("/reports", workLogHandler.Reports)
		r.Get("/export/csv", workLogHandler.ExportCSV)
		r.Get("/export/xlsx", workLogHandler.ExportXLSX)
	})

	return router
}
