package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/ozkayhan/wat2/api"
	"github.com/ozkayhan/wat2/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(append(args, "--log-level", "error"))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func runJSON(t *testing.T, args ...string) api.ProjectionResponse {
	t.Helper()
	out, err := run(t, append([]string{"project", "--json"}, args...)...)
	require.NoError(t, err)
	var resp api.ProjectionResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp
}

// =============================================================================
// project
// =============================================================================

func TestProject_Defaults(t *testing.T) {
	resp := runJSON(t)

	assert.True(t, resp.Result.IsValid)
	assert.Equal(t, 95, resp.Result.TotalDays)
	assert.InDelta(t, 600, resp.Result.GrossWeeklyIncome, 1e-9)
	assert.Equal(t, "-$671", resp.Display.AfterSplurge)
}

func TestProject_FlagsOverrideBase(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, r api.ProjectionResponse)
	}{
		{
			name: "overtime hours",
			args: []string{"--job1-hours", "48"},
			check: func(t *testing.T, r api.ProjectionResponse) {
				assert.InDelta(t, 780, r.Result.GrossWeeklyIncome, 1e-9)
			},
		},
		{
			name: "overtime off",
			args: []string{"--job1-hours", "48", "--overtime=false"},
			check: func(t *testing.T, r api.ProjectionResponse) {
				assert.InDelta(t, 720, r.Result.GrossWeeklyIncome, 1e-9)
			},
		},
		{
			name: "state from table",
			args: []string{"--state", "oregon"},
			check: func(t *testing.T, r api.ProjectionResponse) {
				assert.Equal(t, "Oregon", r.Input.Region)
				assert.Equal(t, "8.75", string(r.Input.StateTaxRate))
			},
		},
		{
			name: "FICA liable",
			args: []string{"--fica-exempt=false"},
			check: func(t *testing.T, r api.ProjectionResponse) {
				assert.Greater(t, r.Result.PayrollTax, 0.0)
			},
		},
		{
			name: "scenario base plus override",
			args: []string{"--scenario", "two-jobs-overtime", "--job2-hours", "0"},
			check: func(t *testing.T, r api.ProjectionResponse) {
				assert.InDelta(t, 780, r.Result.GrossWeeklyIncome, 1e-9)
			},
		},
		{
			name: "bad dates",
			args: []string{"--end", "2025-01-01"},
			check: func(t *testing.T, r api.ProjectionResponse) {
				assert.False(t, r.Result.IsValid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, runJSON(t, tt.args...))
		})
	}
}

func TestProject_Errors(t *testing.T) {
	_, err := run(t, "project", "--scenario", "nope")
	assert.Error(t, err)

	_, err = run(t, "project", "--state", "Atlantis")
	assert.Error(t, err)

	_, err = run(t, "project", "--scenario", "fica-liable", "--file", "x.toml")
	assert.Error(t, err)
}

func TestProject_SaveAndReload(t *testing.T) {
	// GIVEN: A plan edited with flags and saved
	// WHEN: Projecting from the saved file
	// THEN: The projection matches

	path := filepath.Join(t.TempDir(), "mine.toml")
	saved := runJSON(t, "--housing", "140", "--state", "Michigan", "--save", path)

	loaded := runJSON(t, "--file", path)

	assert.Equal(t, saved.Result, loaded.Result)
	assert.Equal(t, "Michigan", loaded.Input.Region)
	assert.Equal(t, "140", string(loaded.Input.HousingCost))
}

func TestProject_Table(t *testing.T) {
	out, err := run(t, "project")

	require.NoError(t, err)
	assert.Contains(t, out, "Season 2025-06-17 → 2025-09-20")
	assert.Contains(t, out, "13.6 weeks")
	assert.Contains(t, out, "$329")
}

// =============================================================================
// regions / scenarios
// =============================================================================

func TestRegions(t *testing.T) {
	out, err := run(t, "regions")
	require.NoError(t, err)
	assert.Contains(t, out, "Alabama")
	assert.Contains(t, out, "Wyoming")

	out, err = run(t, "regions", "OREGON")
	require.NoError(t, err)
	assert.Contains(t, out, "8.75")
	assert.NotContains(t, out, "Alabama")

	_, err = run(t, "regions", "Atlantis")
	assert.Error(t, err)
}

func TestScenarios(t *testing.T) {
	out, err := run(t, "scenarios")

	require.NoError(t, err)
	for _, p := range factory.Presets() {
		assert.Contains(t, out, p.ID)
	}
}

func TestScenariosExport(t *testing.T) {
	out, err := run(t, "scenarios", "export", "short-season")
	require.NoError(t, err)

	sf := factory.NewScenarioFactory()
	doc, err := sf.ParseTOML([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "short-season", doc.ID)

	got, err := sf.FromDoc(doc)
	require.NoError(t, err)
	want, err := sf.PresetState("short-season")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
