package api

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/terra-clan/paradigm-advisor/internal/metrics"
	"github.com/terra-clan/paradigm-advisor/internal/page"
	"github.com/terra-clan/paradigm-advisor/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))

// loadState returns the session's page state; an unknown session starts empty
func (s *Server) loadState(ctx context.Context, id string) (page.State, error) {
	state, err := s.sessions.Load(ctx, id)
	if errors.Is(err, session.ErrSessionNotFound) {
		return page.State{}, nil
	}
	return state, err
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id := SessionIDFromContext(r.Context())

	state, err := s.loadState(r.Context(), id)
	if err != nil {
		slog.Error("failed to load session", "error", err)
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}

	view := s.controller.View(state)
	if view.Recommendation != nil {
		metrics.RecordRecommendation(view.Recommendation.Paradigm)
	}

	s.renderTemplate(w, "index.html", view)
}

func (s *Server) handlePageAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	action := page.Action{
		Type: page.ActionType(r.PostFormValue("action")),
		ID:   r.PostFormValue("id"),
	}

	id := SessionIDFromContext(r.Context())
	state, err := s.loadState(r.Context(), id)
	if err != nil {
		slog.Error("failed to load session", "error", err)
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}

	next, err := s.controller.Apply(state, action)
	if err != nil {
		if errors.Is(err, page.ErrUnknownAction) {
			http.Error(w, "unknown action", http.StatusBadRequest)
			return
		}
		slog.Error("failed to apply action", "error", err, "action", action.Type)
		http.Error(w, "failed to apply action", http.StatusInternalServerError)
		return
	}

	if err := s.sessions.Save(r.Context(), id, next); err != nil {
		slog.Error("failed to save session", "error", err)
		http.Error(w, "failed to save page state", http.StatusInternalServerError)
		return
	}

	metrics.RecordAction(string(action.Type), "form")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderTemplate executes a template into a buffer first so a failure
// never leaves a half-written page
func (s *Server) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("template error", "template", name, "error", err)
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "error", err)
	}
}
