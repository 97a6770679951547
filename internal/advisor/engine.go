package advisor

import (
	"github.com/terra-clan/paradigm-advisor/internal/models"
)

// Engine turns a selection of criteria into a paradigm recommendation.
// It only reads its criteria table and is safe for concurrent use.
type Engine struct {
	favors map[string]models.Paradigm
}

// NewEngine creates an engine scoring against the given criteria
func NewEngine(criteria []models.Criterion) *Engine {
	favors := make(map[string]models.Paradigm, len(criteria))
	for _, c := range criteria {
		favors[c.ID] = c.Favor
	}
	return &Engine{favors: favors}
}

// Score tallies the selected ids per paradigm. Unknown ids count for nothing.
func (e *Engine) Score(sel Selection) models.Scores {
	var scores models.Scores
	for id := range sel.ids {
		switch e.favors[id] {
		case models.ParadigmObjectOriented:
			scores.ObjectOriented++
		case models.ParadigmFunctional:
			scores.Functional++
		case models.ParadigmProcedural:
			scores.Procedural++
		}
	}
	return scores
}

// Recommend scores sel and returns the favored paradigm.
// The second result is false when sel is empty.
func (e *Engine) Recommend(sel Selection) (models.Recommendation, bool) {
	if sel.IsEmpty() {
		return models.Recommendation{}, false
	}

	scores := e.Score(sel)
	p := Decide(scores)

	return models.Recommendation{
		Paradigm: p,
		Label:    p.Label(),
		Color:    p.Color(),
		Scores:   scores,
	}, true
}

// Decide applies the tie-break policy to raw tallies. Rules are checked in
// order and the first match wins.
//
// The functional rule does not look at the procedural tally: fn=1, proc=2,
// oop=0 still yields Functional.
func Decide(s models.Scores) models.Paradigm {
	oop, fn, proc := s.ObjectOriented, s.Functional, s.Procedural

	switch {
	case oop > fn && oop > proc:
		return models.ParadigmObjectOriented
	case fn > oop:
		return models.ParadigmFunctional
	case proc > 0 && proc >= oop:
		return models.ParadigmProcedural
	default:
		return models.ParadigmHybrid
	}
}
