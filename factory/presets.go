package factory

import (
	"fmt"

	"github.com/ozkayhan/wat2/form"
	"github.com/ozkayhan/wat2/projection"
)

// =============================================================================
// BUILT-IN SCENARIOS
// =============================================================================

// PresetDefault is the ID of the default J-1 summer plan.
const PresetDefault = "j1-summer-default"

func text(v string) *Text {
	t := Text(v)
	return &t
}

func boolPtr(b bool) *bool { return &b }

// presets are kept in display order.
var presets = []ScenarioDoc{
	{
		ID:          PresetDefault,
		Name:        "J-1 Summer (Default)",
		Description: "Mid-June to late September, one 40h job at $15, FICA exempt",
		Category:    "summer",
		// Empty plan: every field takes the default.
	},
	{
		ID:          "two-jobs-overtime",
		Name:        "Two Jobs + Overtime",
		Description: "48h main job with overtime plus a 20h evening job in Wisconsin",
		Category:    "summer",
		Plan: PlanDoc{
			StartDate:   text("2025-06-10"),
			EndDate:     text("2025-09-15"),
			UpfrontCost: text("3800"),
			HousingCost: text("120"),
			Region:      "Wisconsin",
			Job1:        &JobDoc{Wage: text("15"), Hours: text("48")},
			Job2:        &JobDoc{Wage: text("12"), Hours: text("20")},
		},
	},
	{
		ID:          "fica-liable",
		Name:        "FICA Liable",
		Description: "Default plan without the payroll tax exemption",
		Category:    "tax",
		Plan: PlanDoc{
			FicaExempt: boolPtr(false),
		},
	},
	{
		ID:          "no-income-tax-state",
		Name:        "No State Income Tax",
		Description: "Florida beach season, 45h weeks",
		Category:    "tax",
		Plan: PlanDoc{
			Region: "Florida",
			Job1:   &JobDoc{Wage: text("14"), Hours: text("45")},
		},
	},
	{
		ID:          "short-season",
		Name:        "Short Season",
		Description: "Six weeks of 60h seafood processing in Alaska",
		Category:    "summer",
		Plan: PlanDoc{
			StartDate:        text("2025-07-01"),
			EndDate:          text("2025-08-15"),
			UpfrontCost:      text("3000"),
			HousingCost:      text("60"),
			WeeklyLivingCost: text("80"),
			TravelCost:       text("0"),
			Region:           "Alaska",
			Job1:             &JobDoc{Wage: text("17"), Hours: text("60")},
		},
	},
}

// Presets returns the built-in scenarios in display order.
func Presets() []ScenarioDoc {
	out := make([]ScenarioDoc, len(presets))
	copy(out, presets)
	return out
}

// Preset returns a built-in scenario by ID.
func Preset(id string) (ScenarioDoc, error) {
	for _, p := range presets {
		if p.ID == id {
			return p, nil
		}
	}
	return ScenarioDoc{}, fmt.Errorf("%w: %q", projection.ErrScenarioNotFound, id)
}

// PresetState resolves a built-in scenario to planner state.
func (f *ScenarioFactory) PresetState(id string) (form.State, error) {
	doc, err := Preset(id)
	if err != nil {
		return form.State{}, err
	}
	return f.FromDoc(doc)
}
