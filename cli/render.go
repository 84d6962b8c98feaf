package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ozkayhan/wat2/factory"
	"github.com/ozkayhan/wat2/form"
	"github.com/ozkayhan/wat2/projection"
)

var (
	colorProfit = lipgloss.Color("42")
	colorLoss   = lipgloss.Color("203")
	colorMuted  = lipgloss.Color("245")
	colorAccent = lipgloss.Color("75")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted).Width(16)
	valueStyle = lipgloss.NewStyle().Align(lipgloss.Right).Width(12)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
)

// signed colors a value green or red.
func signed(s string, positive bool) string {
	if positive {
		return lipgloss.NewStyle().Foreground(colorProfit).Render(s)
	}
	return lipgloss.NewStyle().Foreground(colorLoss).Render(s)
}

func line(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

// renderDisplay draws the figures panel shared by `project` and the TUI.
func renderDisplay(d projection.Display) string {
	if !d.IsValid {
		return boxStyle.Render(mutedStyle.Render(d.Status))
	}

	rows := []string{
		line("Duration", d.Duration),
		line("Depreciation", d.Depreciation),
		"",
		line("Weekly gross", d.WeeklyGross),
		line("Season tax", signed(d.TotalSeasonTax, false)),
		mutedStyle.Render(fmt.Sprintf("  federal %s  state %s  payroll %s", d.FederalTax, d.StateTax, d.PayrollTax)),
		"",
		line("Weekly profit", d.WeeklyNetProfit),
		line("Monthly profit", d.MonthlyNetProfit),
		line("Season profit", signed(d.SeasonProfit, d.SeasonInProfit)),
		line("After splurge", signed(d.AfterSplurge, d.FinalInProfit)),
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func renderProjection(s form.State, d projection.Display) string {
	title := fmt.Sprintf("Season %s → %s", s.StartDate, s.EndDate)
	rate := s.StateTaxRate + "%"
	if s.SelectedRegion != "" {
		rate = fmt.Sprintf("%s (%s%%)", s.SelectedRegion, s.StateTaxRate)
	}
	sub := mutedStyle.Render(fmt.Sprintf("state tax %s · FICA exempt %t · overtime %t", rate, s.IsFicaExempt, s.IncludeOvertime))

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), sub, renderDisplay(d))
}

func renderRegions(regions []projection.Region) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("State", "Rate %").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true).Foreground(colorAccent)
			}
			if col == 1 {
				return s.Align(lipgloss.Right)
			}
			return s
		})
	for _, r := range regions {
		t.Row(r.Name, r.Rate.StringFixed(2))
	}
	return t.String()
}

func renderScenarios(docs []factory.ScenarioDoc) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("ID", "Name", "Category", "Description").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true).Foreground(colorAccent)
			}
			return s
		})
	for _, d := range docs {
		t.Row(d.ID, d.Name, d.Category, d.Description)
	}
	return t.String()
}
