package models

// Scenario is one illustrative programming situation with a precomputed recommendation
type Scenario struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Requirements   []string     `json:"requirements"`
	Recommendation Paradigm     `json:"recommendation"`
	Reason         string       `json:"reason"`
	CodeExample    *CodeExample `json:"codeExample,omitempty"`
}

// Clone returns a copy of s that shares no slices or pointers with it
func (s Scenario) Clone() Scenario {
	if s.Requirements != nil {
		reqs := make([]string, len(s.Requirements))
		copy(reqs, s.Requirements)
		s.Requirements = reqs
	}
	if s.CodeExample != nil {
		ex := *s.CodeExample
		s.CodeExample = &ex
	}
	return s
}

// CodeExample holds the comparison snippets of a scenario.
// Both snippets are display text only.
type CodeExample struct {
	ObjectOriented   string `json:"objectOriented,omitempty"`
	Alternative      string `json:"alternative,omitempty"`
	AlternativeLabel string `json:"alternativeLabel,omitempty"` // "Functional", "Procedural", ...
}

// HasAny returns true if at least one snippet is present
func (c *CodeExample) HasAny() bool {
	return c != nil && (c.ObjectOriented != "" || c.Alternative != "")
}

// Criterion is a yes/no question that argues for exactly one paradigm
type Criterion struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Favor       Paradigm `json:"favor"`
}

// Scores holds the per-paradigm tallies of a selection
type Scores struct {
	ObjectOriented int `json:"objectOriented"`
	Functional     int `json:"functional"`
	Procedural     int `json:"procedural"`
}

// Recommendation is the outcome of scoring a selection
type Recommendation struct {
	Paradigm Paradigm `json:"paradigm"`
	Label    string   `json:"label"`
	Color    Color    `json:"color"`
	Scores   Scores   `json:"scores"`
}
