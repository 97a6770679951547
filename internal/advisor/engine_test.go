package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terra-clan/paradigm-advisor/internal/catalog"
	"github.com/terra-clan/paradigm-advisor/internal/models"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return NewEngine(c.ListCriteria())
}

func TestRecommendEmpty(t *testing.T) {
	e := testEngine(t)

	_, ok := e.Recommend(Selection{})
	assert.False(t, ok)

	_, ok = e.Recommend(NewSelection())
	assert.False(t, ok)
}

func TestRecommend(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name     string
		ids      []string
		paradigm models.Paradigm
		label    string
		color    models.Color
	}{
		{
			name:     "object-oriented criteria",
			ids:      []string{"state", "polymorphism"},
			paradigm: models.ParadigmObjectOriented,
			label:    "Object-Oriented",
			color:    models.ColorBlue,
		},
		{
			name:     "functional criteria",
			ids:      []string{"pure", "composition", "immutability"},
			paradigm: models.ParadigmFunctional,
			label:    "Functional",
			color:    models.ColorGreen,
		},
		{
			name:     "single procedural criterion",
			ids:      []string{"simple"},
			paradigm: models.ParadigmProcedural,
			label:    "Procedural",
			color:    models.ColorAmber,
		},
		{
			name:     "oop and functional tie",
			ids:      []string{"state", "pure"},
			paradigm: models.ParadigmHybrid,
			label:    "Hybrid Approach",
			color:    models.ColorPurple,
		},
		{
			name:     "three-way tie goes procedural",
			ids:      []string{"state", "pure", "simple"},
			paradigm: models.ParadigmProcedural,
			label:    "Procedural",
			color:    models.ColorAmber,
		},
		{
			name:     "functional wins over larger procedural tally",
			ids:      []string{"pure", "simple", "sequential"},
			paradigm: models.ParadigmFunctional,
			label:    "Functional",
			color:    models.ColorGreen,
		},
		{
			name:     "procedural ties oop",
			ids:      []string{"state", "simple"},
			paradigm: models.ParadigmProcedural,
			label:    "Procedural",
			color:    models.ColorAmber,
		},
		{
			name:     "only unknown ids",
			ids:      []string{"nonexistent"},
			paradigm: models.ParadigmHybrid,
			label:    "Hybrid Approach",
			color:    models.ColorPurple,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := e.Recommend(NewSelection(tt.ids...))
			require.True(t, ok)
			assert.Equal(t, tt.paradigm, rec.Paradigm)
			assert.Equal(t, tt.label, rec.Label)
			assert.Equal(t, tt.color, rec.Color)
		})
	}
}

func TestRecommendIgnoresUnknownIDs(t *testing.T) {
	e := testEngine(t)

	withUnknown, ok := e.Recommend(NewSelection("state", "not-a-criterion"))
	require.True(t, ok)

	alone, ok := e.Recommend(NewSelection("state"))
	require.True(t, ok)

	assert.Equal(t, alone, withUnknown)
	assert.Equal(t, models.Scores{ObjectOriented: 1}, withUnknown.Scores)
}

func TestRecommendOrderIndependent(t *testing.T) {
	e := testEngine(t)

	a, _ := e.Recommend(NewSelection("pure", "state", "simple", "composition"))
	b, _ := e.Recommend(NewSelection("composition", "simple", "state", "pure"))
	c, _ := e.Recommend(NewSelection().Toggle("simple").Toggle("pure").Toggle("composition").Toggle("state"))

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)

	// Same input, same output
	for i := 0; i < 10; i++ {
		again, _ := e.Recommend(NewSelection("pure", "state", "simple", "composition"))
		assert.Equal(t, a, again)
	}
}

// TestRecommendAllSubsets runs every non-empty subset of the default criteria
// and checks the result is always one of the four paradigms with its color.
func TestRecommendAllSubsets(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	criteria := c.ListCriteria()
	e := NewEngine(criteria)

	n := len(criteria)
	require.Less(t, n, 16)

	for mask := 1; mask < 1<<n; mask++ {
		var ids []string
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				ids = append(ids, criteria[i].ID)
			}
		}

		rec, ok := e.Recommend(NewSelection(ids...))
		require.True(t, ok)
		require.True(t, rec.Paradigm.Valid())
		require.Equal(t, rec.Paradigm.Color(), rec.Color)
		require.Equal(t, Decide(rec.Scores), rec.Paradigm)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		oop, fn, proc int
		want          models.Paradigm
	}{
		{0, 0, 0, models.ParadigmHybrid},
		{1, 0, 0, models.ParadigmObjectOriented},
		{2, 1, 1, models.ParadigmObjectOriented},
		{2, 2, 0, models.ParadigmHybrid},
		{2, 0, 2, models.ParadigmProcedural},
		{0, 1, 0, models.ParadigmFunctional},
		{0, 1, 5, models.ParadigmFunctional},
		{1, 2, 3, models.ParadigmFunctional},
		{0, 0, 1, models.ParadigmProcedural},
		{1, 1, 1, models.ParadigmProcedural},
		{2, 2, 1, models.ParadigmHybrid},
		{3, 1, 3, models.ParadigmProcedural},
	}

	for _, tt := range tests {
		got := Decide(models.Scores{ObjectOriented: tt.oop, Functional: tt.fn, Procedural: tt.proc})
		assert.Equal(t, tt.want, got, "oop=%d fn=%d proc=%d", tt.oop, tt.fn, tt.proc)
	}
}
