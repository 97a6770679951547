package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/terra-clan/paradigm-advisor/internal/advisor"
	"github.com/terra-clan/paradigm-advisor/internal/metrics"
	"github.com/terra-clan/paradigm-advisor/internal/models"
)

// Catalogue handlers: read-only access to scenarios, criteria and the scorer

func (s *Server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios := s.catalogue.ListScenarios()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"scenarios": scenarios,
		"total":     len(scenarios),
	})
}

func (s *Server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	scenario, ok := s.catalogue.FindScenario(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "scenario not found")
		return
	}
	respondJSON(w, http.StatusOK, scenario)
}

func (s *Server) handleListCriteria(w http.ResponseWriter, r *http.Request) {
	criteria := s.catalogue.ListCriteria()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"criteria": criteria,
		"total":    len(criteria),
	})
}

// RecommendationResult is the payload of the recommendation endpoint.
// Recommendation is null when no criteria were given.
type RecommendationResult struct {
	Criteria       []string               `json:"criteria"`
	Recommendation *models.Recommendation `json:"recommendation"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, raw := range r.URL.Query()["criteria"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	sel := advisor.NewSelection(ids...)
	result := RecommendationResult{Criteria: sel.IDs()}

	if rec, ok := s.controller.Engine().Recommend(sel); ok {
		result.Recommendation = &rec
		metrics.RecordRecommendation(rec.Paradigm)
	}

	respondJSON(w, http.StatusOK, result)
}
