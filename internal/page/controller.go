package page

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/terra-clan/paradigm-advisor/internal/advisor"
	"github.com/terra-clan/paradigm-advisor/internal/models"
)

// ActionType names a user interaction
type ActionType string

const (
	ActionToggleCriterion  ActionType = "toggle_criterion"
	ActionSelectScenario   ActionType = "select_scenario"
	ActionToggleComparison ActionType = "toggle_comparison"
)

// ErrUnknownAction is returned by Apply for an unrecognized action type
var ErrUnknownAction = errors.New("unknown action")

// Action is one user interaction with the page
type Action struct {
	Type ActionType `json:"type"`
	ID   string     `json:"id,omitempty"`
}

// Catalogue is the read-only lookup the controller renders from
type Catalogue interface {
	FindScenario(id string) (models.Scenario, bool)
	FindCriterion(id string) (models.Criterion, bool)
	ListScenarios() []models.Scenario
	ListCriteria() []models.Criterion
}

// Controller applies user actions to page state and builds the view.
// It holds no state of its own; callers own the State values.
type Controller struct {
	catalogue Catalogue
	engine    *advisor.Engine
}

// NewController creates a controller over the given catalogue
func NewController(c Catalogue) *Controller {
	return &Controller{
		catalogue: c,
		engine:    advisor.NewEngine(c.ListCriteria()),
	}
}

// Engine returns the recommendation engine used for views
func (c *Controller) Engine() *advisor.Engine {
	return c.engine
}

// Apply returns the state that results from a on s
func (c *Controller) Apply(s State, a Action) (State, error) {
	switch a.Type {
	case ActionToggleCriterion:
		if _, ok := c.catalogue.FindCriterion(a.ID); !ok {
			slog.Warn("ignoring toggle of unknown criterion", "id", a.ID)
			return s, nil
		}
		return s.ToggleCriterion(a.ID), nil

	case ActionSelectScenario:
		if _, ok := c.catalogue.FindScenario(a.ID); !ok {
			slog.Warn("unknown scenario selected", "id", a.ID)
			return s.ClearScenario(), nil
		}
		return s.SelectScenario(a.ID), nil

	case ActionToggleComparison:
		return s.ToggleComparison(), nil
	}

	return s, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
}

// View builds everything the page displays for s
func (c *Controller) View(s State) View {
	criteria := c.catalogue.ListCriteria()
	v := View{
		Criteria:      make([]CriterionView, 0, len(criteria)),
		SelectedCount: s.Selection.Len(),
	}

	for _, cr := range criteria {
		v.Criteria = append(v.Criteria, CriterionView{
			Criterion: cr,
			Checked:   s.Selection.Has(cr.ID),
		})
	}

	if rec, ok := c.engine.Recommend(s.Selection); ok {
		v.Recommendation = &rec
	}

	scenarios := c.catalogue.ListScenarios()
	v.Scenarios = make([]ScenarioView, 0, len(scenarios))
	for _, sc := range scenarios {
		v.Scenarios = append(v.Scenarios, ScenarioView{
			Scenario: sc,
			Label:    sc.Recommendation.Label(),
			Color:    sc.Recommendation.Color(),
			Selected: sc.ID == s.ScenarioID,
		})
	}

	if s.ScenarioID != "" {
		if sc, ok := c.catalogue.FindScenario(s.ScenarioID); ok {
			v.Selected = &sc
			v.ShowComparison = s.ShowComparison && sc.CodeExample.HasAny()
		}
	}

	return v
}
