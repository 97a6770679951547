package page

import (
	"github.com/terra-clan/paradigm-advisor/internal/models"
)

// View is the render model of the page
type View struct {
	Criteria       []CriterionView        `json:"criteria"`
	SelectedCount  int                    `json:"selectedCount"`
	Recommendation *models.Recommendation `json:"recommendation"`
	Scenarios      []ScenarioView         `json:"scenarios"`
	Selected       *models.Scenario       `json:"selected"`
	ShowComparison bool                   `json:"showComparison"`
}

// CriterionView is a criterion with its check state
type CriterionView struct {
	models.Criterion
	Checked bool `json:"checked"`
}

// ScenarioView is a scenario list entry annotated with its recommendation
type ScenarioView struct {
	models.Scenario
	Label    string       `json:"label"`
	Color    models.Color `json:"color"`
	Selected bool         `json:"selected"`
}
