package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/terra-clan/paradigm-advisor/internal/metrics"
	"github.com/terra-clan/paradigm-advisor/internal/session"
)

// unmatchedRoute is the metrics route label for requests no route matched
const unmatchedRoute = "unmatched"

// sessionMiddleware makes sure every page request carries a session id.
// A missing or malformed cookie gets a fresh id.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if cookie, err := r.Cookie(s.session.CookieName); err == nil && session.ValidID(cookie.Value) {
			id = cookie.Value
		}

		if id == "" {
			id = session.NewID()
			slog.Debug("issuing page session", "request_id", middleware.GetReqID(r.Context()))
		}

		// Refresh the cookie on every visit so it tracks the store TTL
		http.SetCookie(w, s.sessionCookie(id))

		next.ServeHTTP(w, r.WithContext(ContextWithSessionID(r.Context(), id)))
	})
}

func (s *Server) sessionCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     s.session.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.session.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// loggingMiddleware logs HTTP requests using slog and records request metrics
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			duration := time.Since(start)

			// Unmatched paths share one label
			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			metrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(status), duration)

			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", duration.Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
