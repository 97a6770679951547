package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/terra-clan/paradigm-advisor/internal/models"
)

//go:embed data/*.yaml
var defaultFS embed.FS

const (
	scenariosFile = "scenarios.yaml"
	criteriaFile  = "criteria.yaml"
)

var (
	ErrDuplicateID     = errors.New("duplicate id")
	ErrInvalidParadigm = errors.New("invalid paradigm")
	ErrMissingField    = errors.New("missing required field")
)

// Catalogue holds the scenario and criterion records.
// It is built once by Load and never changes afterwards.
type Catalogue struct {
	scenarios []models.Scenario
	criteria  []models.Criterion

	scenarioIndex  map[string]int
	criterionIndex map[string]int
}

// Default loads the catalogue compiled into the binary
func Default() (*Catalogue, error) {
	sub, err := fs.Sub(defaultFS, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded catalogue: %w", err)
	}
	return Load(sub)
}

// LoadFromDir loads scenarios.yaml and criteria.yaml from a directory on disk
func LoadFromDir(dir string) (*Catalogue, error) {
	slog.Info("loading catalogue from directory", "dir", dir)
	return Load(os.DirFS(dir))
}

// Load parses and validates a catalogue from fsys
func Load(fsys fs.FS) (*Catalogue, error) {
	var sf scenariosFileSchema
	if err := readYAML(fsys, scenariosFile, &sf); err != nil {
		return nil, err
	}

	var cf criteriaFileSchema
	if err := readYAML(fsys, criteriaFile, &cf); err != nil {
		return nil, err
	}

	c := &Catalogue{
		scenarios:      make([]models.Scenario, 0, len(sf.Scenarios)),
		criteria:       make([]models.Criterion, 0, len(cf.Criteria)),
		scenarioIndex:  make(map[string]int, len(sf.Scenarios)),
		criterionIndex: make(map[string]int, len(cf.Criteria)),
	}

	for i, s := range sf.Scenarios {
		scenario, err := s.toModel()
		if err != nil {
			return nil, fmt.Errorf("scenario #%d: %w", i, err)
		}
		if _, exists := c.scenarioIndex[scenario.ID]; exists {
			return nil, fmt.Errorf("scenario %q: %w", scenario.ID, ErrDuplicateID)
		}
		c.scenarioIndex[scenario.ID] = len(c.scenarios)
		c.scenarios = append(c.scenarios, scenario)
	}

	for i, cr := range cf.Criteria {
		criterion, err := cr.toModel()
		if err != nil {
			return nil, fmt.Errorf("criterion #%d: %w", i, err)
		}
		if _, exists := c.criterionIndex[criterion.ID]; exists {
			return nil, fmt.Errorf("criterion %q: %w", criterion.ID, ErrDuplicateID)
		}
		c.criterionIndex[criterion.ID] = len(c.criteria)
		c.criteria = append(c.criteria, criterion)
	}

	slog.Info("catalogue loaded", "scenarios", len(c.scenarios), "criteria", len(c.criteria))
	return c, nil
}

// FindScenario returns the scenario with the given id
func (c *Catalogue) FindScenario(id string) (models.Scenario, bool) {
	i, ok := c.scenarioIndex[id]
	if !ok {
		return models.Scenario{}, false
	}
	return c.scenarios[i].Clone(), true
}

// FindCriterion returns the criterion with the given id
func (c *Catalogue) FindCriterion(id string) (models.Criterion, bool) {
	i, ok := c.criterionIndex[id]
	if !ok {
		return models.Criterion{}, false
	}
	return c.criteria[i], true
}

// ListScenarios returns all scenarios in definition order.
// Callers get deep copies and cannot change the catalogue.
func (c *Catalogue) ListScenarios() []models.Scenario {
	out := make([]models.Scenario, len(c.scenarios))
	for i, s := range c.scenarios {
		out[i] = s.Clone()
	}
	return out
}

// ListCriteria returns all criteria in definition order
func (c *Catalogue) ListCriteria() []models.Criterion {
	out := make([]models.Criterion, len(c.criteria))
	copy(out, c.criteria)
	return out
}

func readYAML(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// --- YAML file structs ---

type scenariosFileSchema struct {
	Scenarios []scenarioEntry `yaml:"scenarios"`
}

type criteriaFileSchema struct {
	Criteria []criterionEntry `yaml:"criteria"`
}

// scenarioEntry represents one scenario in scenarios.yaml
type scenarioEntry struct {
	ID             string            `yaml:"id"`
	Title          string            `yaml:"title"`
	Description    string            `yaml:"description"`
	Requirements   []string          `yaml:"requirements"`
	Recommendation string            `yaml:"recommendation"`
	Reason         string            `yaml:"reason"`
	CodeExample    *codeExampleEntry `yaml:"code_example"`
}

type codeExampleEntry struct {
	ObjectOriented   string `yaml:"object_oriented"`
	Alternative      string `yaml:"alternative"`
	AlternativeLabel string `yaml:"alternative_label"`
}

// criterionEntry represents one criterion in criteria.yaml
type criterionEntry struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Favor       string `yaml:"favor"`
}

func (e scenarioEntry) toModel() (models.Scenario, error) {
	if e.ID == "" {
		return models.Scenario{}, fmt.Errorf("id: %w", ErrMissingField)
	}
	if e.Title == "" {
		return models.Scenario{}, fmt.Errorf("scenario %q title: %w", e.ID, ErrMissingField)
	}

	rec := models.Paradigm(e.Recommendation)
	if !rec.Valid() {
		return models.Scenario{}, fmt.Errorf("scenario %q recommendation %q: %w", e.ID, e.Recommendation, ErrInvalidParadigm)
	}

	requirements := make([]string, len(e.Requirements))
	copy(requirements, e.Requirements)

	s := models.Scenario{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Requirements:   requirements,
		Recommendation: rec,
		Reason:         e.Reason,
	}

	if e.CodeExample != nil {
		ex := &models.CodeExample{
			ObjectOriented:   e.CodeExample.ObjectOriented,
			Alternative:      e.CodeExample.Alternative,
			AlternativeLabel: e.CodeExample.AlternativeLabel,
		}
		if ex.Alternative != "" && ex.AlternativeLabel == "" {
			ex.AlternativeLabel = "Alternative"
		}
		if ex.HasAny() {
			s.CodeExample = ex
		}
	}

	return s, nil
}

func (e criterionEntry) toModel() (models.Criterion, error) {
	if e.ID == "" {
		return models.Criterion{}, fmt.Errorf("id: %w", ErrMissingField)
	}
	if e.Label == "" {
		return models.Criterion{}, fmt.Errorf("criterion %q label: %w", e.ID, ErrMissingField)
	}

	favor := models.Paradigm(e.Favor)
	if !favor.IsCriterionTarget() {
		return models.Criterion{}, fmt.Errorf("criterion %q favor %q: %w", e.ID, e.Favor, ErrInvalidParadigm)
	}

	return models.Criterion{
		ID:          e.ID,
		Label:       e.Label,
		Description: e.Description,
		Favor:       favor,
	}, nil
}
