package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"worklog/session"
	"worklog/store"

	"go.uber.org/zap"
)

type AuthHandler struct {
	repo      store.Repository
	sessions  *session.Store
	templates map[string]*template.Template
	logger    *zap.Logger
}

func NewAuthHandler(repo store.Repository, sessions *session.Store, templates map[string]*template.Template, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		repo:      repo,
		sessions:  sessions,
		templates: templates,
		logger:    logger,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, err := h.sessions.Load(r); err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if _, err := r.Cookie(session.CookieName); err == nil {
		h.sessions.Clear(w)
	}

	data := map[string]interface{}{
		"Error": r.URL.Query().Get("error"),
	}
	render(w, h.logger, h.templates["login"], data)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	identity, err := session.Resolve(r.Context(), h.repo, r.FormValue("first_name"))
	if err != nil {
		if !errors.Is(err, session.ErrEmployeeNotFound) {
			h.logger.Error("Error fetching employee", zap.Error(err))
		}
		http.Redirect(w, r, "/login?error=Employee+not+found.+Please+check+your+first+name.", http.StatusSeeOther)
		return
	}

	if err := h.sessions.Save(w, *identity); err != nil {
		h.logger.Error("Error saving session", zap.Error(err))
		http.Redirect(w, r, "/login?error=Failed+to+start+session", http.StatusSeeOther)
		return
	}

	h.logger.Info("employee signed in", zap.String("employee_id", identity.ID))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
