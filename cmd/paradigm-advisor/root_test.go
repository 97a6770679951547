package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	catalogDirFlag = ""

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestScenariosCmd(t *testing.T) {
	out, err := run(t, "scenarios")
	require.NoError(t, err)

	assert.Contains(t, out, "banking")
	assert.Contains(t, out, "Banking system")
	assert.Contains(t, out, "Hybrid Approach")
}

func TestScenarioCmd(t *testing.T) {
	out, err := run(t, "scenario", "banking")
	require.NoError(t, err)
	assert.Contains(t, out, "Banking system (Object-Oriented)")
	assert.Contains(t, out, "Requirements:")
	assert.NotContains(t, out, "class SavingsAccount")

	out, err = run(t, "scenario", "banking", "--code")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Object-Oriented ---")
	assert.Contains(t, out, "class SavingsAccount")

	_, err = run(t, "scenario", "nope")
	assert.ErrorContains(t, err, `scenario "nope" not found`)
}

func TestCriteriaCmd(t *testing.T) {
	out, err := run(t, "criteria")
	require.NoError(t, err)
	assert.Contains(t, out, "immutability")
	assert.Contains(t, out, "Functional")
}

func TestRecommendCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"state"}, "Recommended: Object-Oriented"},
		{[]string{"pure", "composition"}, "Recommended: Functional"},
		{[]string{"simple"}, "Recommended: Procedural"},
		{[]string{"state", "pure"}, "Recommended: Hybrid Approach"},
	}

	for _, tt := range tests {
		out, err := run(t, append([]string{"recommend"}, tt.args...)...)
		require.NoError(t, err, tt.args)
		assert.Contains(t, out, tt.want, tt.args)
	}

	out, err := run(t, "recommend", "state", "polymorphism")
	require.NoError(t, err)
	assert.Contains(t, out, "object-oriented 2, functional 0, procedural 0")
}

func TestRecommendCmdRejectsBadInput(t *testing.T) {
	_, err := run(t, "recommend")
	assert.Error(t, err)

	_, err = run(t, "recommend", "state", "bogus")
	assert.ErrorContains(t, err, `unknown criterion "bogus"`)
}

func TestCatalogDirFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "criteria.yaml"), []byte(`criteria:
  - id: loops
    label: Tight loops
    description: Hot inner loops
    favor: procedural
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scenarios.yaml"), []byte(`scenarios:
  - id: kernel
    title: Signal kernel
    description: Filter a sample buffer
    requirements: [Low latency]
    recommendation: procedural
    reason: Straight-line code over arrays
`), 0o644))

	out, err := run(t, "--catalog-dir", dir, "scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "Signal kernel")
	assert.NotContains(t, out, "Banking system")

	out, err = run(t, "--catalog-dir", dir, "recommend", "loops")
	require.NoError(t, err)
	assert.Contains(t, out, "Recommended: Procedural")
}
