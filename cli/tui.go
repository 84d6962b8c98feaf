package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ozkayhan/wat2/factory"
	"github.com/ozkayhan/wat2/form"
	"github.com/ozkayhan/wat2/projection"
	"github.com/spf13/cobra"
)

var (
	tuiFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	tuiLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	tuiHelpStyle  = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
)

var fieldLabels = map[form.Field]string{
	form.FieldStartDate:        "Start date",
	form.FieldEndDate:          "End date",
	form.FieldUpfrontCost:      "Program fee",
	form.FieldJob1Wage:         "Job 1 wage",
	form.FieldJob1Hours:        "Job 1 hours",
	form.FieldJob2Wage:         "Job 2 wage",
	form.FieldJob2Hours:        "Job 2 hours",
	form.FieldStateTaxRate:     "State tax %",
	form.FieldHousingCost:      "Housing /wk",
	form.FieldWeeklyLivingCost: "Living /wk",
	form.FieldTravelCost:       "Travel",
	form.FieldPurchaseCost:     "Purchases",
}

func newTUICmd() *cobra.Command {
	var scenario string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive planner",
		Long: `Interactive planner. Every keystroke recomputes the projection.

  tab/shift+tab  move between fields
  left/right     change state (on the State row)
  space          toggle (on FICA and overtime rows)
  ctrl+r         reset to defaults
  esc/ctrl+c     quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := form.DefaultState()
			if scenario != "" {
				s, err := factory.NewScenarioFactory().PresetState(scenario)
				if err != nil {
					return err
				}
				state = s
			}

			p := tea.NewProgram(newPlannerModel(form.NewWithState(state)), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenario, "scenario", "s", "", "start from a built-in scenario")
	return cmd
}

// =============================================================================
// PlannerModel - live form over the projection engine
// =============================================================================

// Rows after the text inputs.
const (
	rowRegion = iota
	rowFica
	rowOvertime
	extraRows
)

// PlannerModel is the bubbletea model for the interactive planner.
type PlannerModel struct {
	form    *form.Form
	inputs  []textinput.Model
	regions []string
	region  int // index into regions, -1 for a typed rate
	focus   int
	result  projection.Result
}

func newPlannerModel(f *form.Form) PlannerModel {
	m := PlannerModel{
		form:    f,
		inputs:  make([]textinput.Model, len(form.Fields)),
		regions: projection.RegionNames(),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 32
		ti.Width = 14
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.load()
	m.inputs[0].Focus()
	return m
}

// load copies form state into the widgets and recomputes.
func (m *PlannerModel) load() {
	s := m.form.State()
	for i, field := range form.Fields {
		v, _ := s.Get(field)
		m.inputs[i].SetValue(v)
	}
	m.region = -1
	for i, name := range m.regions {
		if name == s.SelectedRegion {
			m.region = i
		}
	}
	m.result = m.form.Project()
}

func (m PlannerModel) rows() int { return len(m.inputs) + extraRows }

func (m PlannerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PlannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down", "enter":
		return m.moveFocus(1), nil
	case "shift+tab", "up":
		return m.moveFocus(-1), nil
	case "ctrl+r":
		m.form.Reset()
		m.load()
		return m, nil
	}

	if m.focus < len(m.inputs) {
		return m.updateInput(key)
	}

	switch m.focus - len(m.inputs) {
	case rowRegion:
		switch key.String() {
		case "right", "l":
			m.cycleRegion(1)
		case "left", "h":
			m.cycleRegion(-1)
		}
	case rowFica:
		if isSpace(key) {
			s := m.form.State()
			_ = m.form.SetFlag(form.FlagFicaExempt, !s.IsFicaExempt)
			m.result = m.form.Project()
		}
	case rowOvertime:
		if isSpace(key) {
			s := m.form.State()
			_ = m.form.SetFlag(form.FlagOvertime, !s.IncludeOvertime)
			m.result = m.form.Project()
		}
	}
	return m, nil
}

func isSpace(k tea.KeyMsg) bool {
	return k.Type == tea.KeySpace || k.String() == " "
}

func (m PlannerModel) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)

	field := form.Fields[m.focus]
	_ = m.form.Set(field, m.inputs[m.focus].Value())
	if field == form.FieldStateTaxRate {
		m.region = -1
	}
	m.result = m.form.Project()
	return m, cmd
}

func (m PlannerModel) moveFocus(delta int) PlannerModel {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + m.rows()) % m.rows()
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m *PlannerModel) cycleRegion(delta int) {
	n := len(m.regions)
	switch {
	case m.region < 0 && delta > 0:
		m.region = 0
	case m.region < 0:
		m.region = n - 1
	default:
		m.region = (m.region + delta + n) % n
	}
	if err := m.form.SelectRegion(m.regions[m.region]); err != nil {
		return
	}
	for i, field := range form.Fields {
		if field == form.FieldStateTaxRate {
			m.inputs[i].SetValue(m.form.State().StateTaxRate)
		}
	}
	m.result = m.form.Project()
}

func (m PlannerModel) View() string {
	var b strings.Builder
	label := func(row int, text string) string {
		if row == m.focus {
			return tuiFocusStyle.Render("> " + fmt.Sprintf("%-12s", text))
		}
		return tuiLabelStyle.Render("  " + fmt.Sprintf("%-12s", text))
	}

	for i, field := range form.Fields {
		fmt.Fprintf(&b, "%s %s\n", label(i, fieldLabels[field]), m.inputs[i].View())
	}

	s := m.form.State()
	regionText := "custom rate"
	if m.region >= 0 {
		regionText = m.regions[m.region]
	}
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}
	base := len(m.inputs)
	fmt.Fprintf(&b, "%s ◀ %s ▶\n", label(base+rowRegion, "State"), regionText)
	fmt.Fprintf(&b, "%s %s\n", label(base+rowFica, "FICA exempt"), check(s.IsFicaExempt))
	fmt.Fprintf(&b, "%s %s", label(base+rowOvertime, "Overtime"), check(s.IncludeOvertime))

	left := lipgloss.NewStyle().MarginRight(2).Render(b.String())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, renderDisplay(m.result.ToDisplay()))
	help := tuiHelpStyle.Render("tab move · ←/→ state · space toggle · ctrl+r reset · esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Work & Travel season planner"), body, help)
}
