package page

import (
	"github.com/terra-clan/paradigm-advisor/internal/advisor"
)

// State is the selection state of one page session.
// Transitions return a new State and never modify the receiver.
type State struct {
	Selection      advisor.Selection
	ScenarioID     string
	ShowComparison bool
}

// ToggleCriterion flips whether id is checked
func (s State) ToggleCriterion(id string) State {
	s.Selection = s.Selection.Toggle(id)
	return s
}

// SelectScenario makes id the chosen scenario. Choosing the current scenario
// again clears the choice. The comparison view closes whenever the choice changes.
func (s State) SelectScenario(id string) State {
	if s.ScenarioID == id {
		s.ScenarioID = ""
	} else {
		s.ScenarioID = id
	}
	s.ShowComparison = false
	return s
}

// ClearScenario removes the chosen scenario
func (s State) ClearScenario() State {
	s.ScenarioID = ""
	s.ShowComparison = false
	return s
}

// ToggleComparison shows or hides the code comparison of the chosen scenario
func (s State) ToggleComparison() State {
	if s.ScenarioID == "" {
		return s
	}
	s.ShowComparison = !s.ShowComparison
	return s
}

// Record is the serializable form of State
type Record struct {
	Criteria       []string `json:"criteria"`
	ScenarioID     string   `json:"scenario_id,omitempty"`
	ShowComparison bool     `json:"show_comparison,omitempty"`
}

// Record converts s for storage
func (s State) Record() Record {
	return Record{
		Criteria:       s.Selection.IDs(),
		ScenarioID:     s.ScenarioID,
		ShowComparison: s.ShowComparison,
	}
}

// State rebuilds the page state from a stored record
func (r Record) State() State {
	return State{
		Selection:      advisor.NewSelection(r.Criteria...),
		ScenarioID:     r.ScenarioID,
		ShowComparison: r.ShowComparison && r.ScenarioID != "",
	}
}
