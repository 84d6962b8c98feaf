package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ozkayhan/wat2/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m PlannerModel, keys ...tea.KeyMsg) PlannerModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(PlannerModel)
	}
	return m
}

func typeText(s string) []tea.KeyMsg {
	keys := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return keys
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyReset = tea.KeyMsg{Type: tea.KeyCtrlR}
)

// focusField tabs from the first row to the given field.
func focusField(m PlannerModel, f form.Field) PlannerModel {
	for i, field := range form.Fields {
		if field == f {
			for j := 0; j < i; j++ {
				m = press(m, keyTab)
			}
			return m
		}
	}
	panic("unknown field " + string(f))
}

func TestPlanner_InitialProjection(t *testing.T) {
	m := newPlannerModel(form.New())

	require.True(t, m.result.IsValid)
	assert.Equal(t, "600", m.result.GrossWeeklyIncome.String())
	assert.Contains(t, m.View(), "$600")
}

func TestPlanner_KeystrokesRecompute(t *testing.T) {
	// GIVEN: The planner on the blank job 2 wage field
	// WHEN: Typing a wage, then hours on the next field
	// THEN: The projection follows every keystroke

	m := focusField(newPlannerModel(form.New()), form.FieldJob2Wage)

	m = press(m, typeText("12")...)
	assert.Equal(t, "12", m.form.State().Job2.Wage)
	assert.Equal(t, "600", m.result.GrossWeeklyIncome.String())

	m = press(m, keyTab)
	m = press(m, typeText("2")...)
	assert.Equal(t, "624", m.result.GrossWeeklyIncome.String())
	m = press(m, typeText("0")...)
	assert.Equal(t, "840", m.result.GrossWeeklyIncome.String())
}

func TestPlanner_RegionCycle(t *testing.T) {
	m := newPlannerModel(form.New())
	for i := 0; i < len(form.Fields)+rowRegion; i++ {
		m = press(m, keyTab)
	}

	m = press(m, keyRight)
	assert.Equal(t, "Alabama", m.form.State().SelectedRegion)

	m = press(m, keyLeft)
	assert.Equal(t, "Wyoming", m.form.State().SelectedRegion)
	assert.Equal(t, m.form.State().StateTaxRate, m.inputs[indexOf(form.FieldStateTaxRate)].Value())
}

func TestPlanner_TogglesAndReset(t *testing.T) {
	m := newPlannerModel(form.New())
	for i := 0; i < len(form.Fields)+rowFica; i++ {
		m = press(m, keyTab)
	}

	m = press(m, keySpace)
	assert.False(t, m.form.State().IsFicaExempt)
	assert.True(t, m.result.PayrollTax.IsPositive())

	m = press(m, keyReset)
	assert.Equal(t, form.DefaultState(), m.form.State())
	assert.True(t, m.result.PayrollTax.IsZero())
}

func TestPlanner_TypingRateClearsRegion(t *testing.T) {
	f := form.New()
	require.NoError(t, f.SelectRegion("Oregon"))
	m := newPlannerModel(f)
	require.GreaterOrEqual(t, m.region, 0)

	m = focusField(m, form.FieldStateTaxRate)
	m = press(m, typeText("5")...)

	assert.Equal(t, -1, m.region)
	assert.Empty(t, m.form.State().SelectedRegion)
	assert.Equal(t, "8.755", m.form.State().StateTaxRate)
}

func indexOf(f form.Field) int {
	for i, field := range form.Fields {
		if field == f {
			return i
		}
	}
	return -1
}
