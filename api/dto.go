/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. The engine works on
  raw text and decimals; clients see snake_case JSON with float64 money.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Request structs carry go-playground/validator tags for length bounds
  only. Numeric text is never rejected here: "12abc" is a legal request
  and projects as zero.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/scenario.go: Text accepts JSON strings or numbers
*/
package api

import (
	"github.com/ozkayhan/wat2/factory"
	"github.com/ozkayhan/wat2/form"
	"github.com/ozkayhan/wat2/projection"
	"github.com/shopspring/decimal"
)

// =============================================================================
// PROJECTION
// =============================================================================

// JobRequest is one job as typed by the user.
type JobRequest struct {
	Wage  factory.Text `json:"wage" validate:"max=32"`
	Hours factory.Text `json:"hours" validate:"max=32"`
}

// ProjectionRequest is the full plan. Omitted fields are blank, which the
// engine reads as zero. A non-empty Region replaces StateTaxRate.
type ProjectionRequest struct {
	StartDate        factory.Text `json:"start_date" validate:"max=40"`
	EndDate          factory.Text `json:"end_date" validate:"max=40"`
	UpfrontCost      factory.Text `json:"upfront_cost" validate:"max=32"`
	HousingCost      factory.Text `json:"housing_cost" validate:"max=32"`
	WeeklyLivingCost factory.Text `json:"weekly_living_cost" validate:"max=32"`
	TravelCost       factory.Text `json:"travel_cost" validate:"max=32"`
	PurchaseCost     factory.Text `json:"purchase_cost" validate:"max=32"`
	StateTaxRate     factory.Text `json:"state_tax_rate" validate:"max=32"`
	Region           string       `json:"region,omitempty" validate:"max=64"`
	FicaExempt       bool         `json:"fica_exempt"`
	Overtime         bool         `json:"overtime"`
	Job1             JobRequest   `json:"job1"`
	Job2             JobRequest   `json:"job2"`
}

// Input converts the request to an engine input. Region is not resolved here.
func (r ProjectionRequest) Input() projection.Input {
	return projection.Input{
		StartDate:        string(r.StartDate),
		EndDate:          string(r.EndDate),
		UpfrontCost:      string(r.UpfrontCost),
		HousingCost:      string(r.HousingCost),
		WeeklyLivingCost: string(r.WeeklyLivingCost),
		TravelCost:       string(r.TravelCost),
		PurchaseCost:     string(r.PurchaseCost),
		StateTaxRate:     string(r.StateTaxRate),
		IsFicaExempt:     r.FicaExempt,
		IncludeOvertime:  r.Overtime,
		Job1:             projection.Job{Wage: string(r.Job1.Wage), Hours: string(r.Job1.Hours)},
		Job2:             projection.Job{Wage: string(r.Job2.Wage), Hours: string(r.Job2.Hours)},
	}
}

func toProjectionRequest(s form.State) ProjectionRequest {
	return ProjectionRequest{
		StartDate:        factory.Text(s.StartDate),
		EndDate:          factory.Text(s.EndDate),
		UpfrontCost:      factory.Text(s.UpfrontCost),
		HousingCost:      factory.Text(s.HousingCost),
		WeeklyLivingCost: factory.Text(s.WeeklyLivingCost),
		TravelCost:       factory.Text(s.TravelCost),
		PurchaseCost:     factory.Text(s.PurchaseCost),
		StateTaxRate:     factory.Text(s.StateTaxRate),
		Region:           s.SelectedRegion,
		FicaExempt:       s.IsFicaExempt,
		Overtime:         s.IncludeOvertime,
		Job1:             JobRequest{Wage: factory.Text(s.Job1.Wage), Hours: factory.Text(s.Job1.Hours)},
		Job2:             JobRequest{Wage: factory.Text(s.Job2.Wage), Hours: factory.Text(s.Job2.Hours)},
	}
}

// ProjectionResultDTO is a projection.Result with float64 money.
type ProjectionResultDTO struct {
	IsValid                  bool    `json:"is_valid"`
	TotalDays                int     `json:"total_days"`
	TotalWeeks               float64 `json:"total_weeks"`
	UpfrontCost              float64 `json:"upfront_cost"`
	TravelCost               float64 `json:"travel_cost"`
	PurchaseCost             float64 `json:"purchase_cost"`
	WeeklyProgramCost        float64 `json:"weekly_program_cost"`
	Job1WeeklyPay            float64 `json:"job1_weekly_pay"`
	Job2WeeklyPay            float64 `json:"job2_weekly_pay"`
	GrossWeeklyIncome        float64 `json:"gross_weekly_income"`
	TotalSeasonGross         float64 `json:"total_season_gross"`
	FederalTax               float64 `json:"federal_tax"`
	StateTax                 float64 `json:"state_tax"`
	PayrollTax               float64 `json:"payroll_tax"`
	TotalSeasonTax           float64 `json:"total_season_tax"`
	WeeklyTax                float64 `json:"weekly_tax"`
	NetWeeklyIncome          float64 `json:"net_weekly_income"`
	WeeklyOperationalExpense float64 `json:"weekly_operational_expense"`
	WeeklyNetProfit          float64 `json:"weekly_net_profit"`
	MonthlyNetProfit         float64 `json:"monthly_net_profit"`
	TotalSeasonProfit        float64 `json:"total_season_profit"`
	TotalAfterSplurge        float64 `json:"total_after_splurge"`
	TotalLivingCost          float64 `json:"total_living_cost"`
	TotalOperationalCash     float64 `json:"total_operational_cash"`
}

func toResultDTO(r projection.Result) ProjectionResultDTO {
	f := func(d decimal.Decimal) float64 { return d.InexactFloat64() }
	return ProjectionResultDTO{
		IsValid:                  r.IsValid,
		TotalDays:                r.TotalDays,
		TotalWeeks:               f(r.TotalWeeks),
		UpfrontCost:              f(r.UpfrontCost),
		TravelCost:               f(r.TravelCost),
		PurchaseCost:             f(r.PurchaseCost),
		WeeklyProgramCost:        f(r.WeeklyProgramCost),
		Job1WeeklyPay:            f(r.Job1WeeklyPay),
		Job2WeeklyPay:            f(r.Job2WeeklyPay),
		GrossWeeklyIncome:        f(r.GrossWeeklyIncome),
		TotalSeasonGross:         f(r.TotalSeasonGross),
		FederalTax:               f(r.FederalTax),
		StateTax:                 f(r.StateTax),
		PayrollTax:               f(r.PayrollTax),
		TotalSeasonTax:           f(r.TotalSeasonTax),
		WeeklyTax:                f(r.WeeklyTax),
		NetWeeklyIncome:          f(r.NetWeeklyIncome),
		WeeklyOperationalExpense: f(r.WeeklyOperationalExpense),
		WeeklyNetProfit:          f(r.WeeklyNetProfit),
		MonthlyNetProfit:         f(r.MonthlyNetProfit),
		TotalSeasonProfit:        f(r.TotalSeasonProfit),
		TotalAfterSplurge:        f(r.TotalAfterSplurge),
		TotalLivingCost:          f(r.TotalLivingCost),
		TotalOperationalCash:     f(r.TotalOperationalCash),
	}
}

// ProjectionResponse echoes the resolved input next to the figures.
type ProjectionResponse struct {
	Input   ProjectionRequest   `json:"input"`
	Result  ProjectionResultDTO `json:"result"`
	Display projection.Display  `json:"display"`
}

// =============================================================================
// REFERENCE DATA
// =============================================================================

// RegionDTO is one row of the state tax table.
type RegionDTO struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

func toRegionDTO(r projection.Region) RegionDTO {
	return RegionDTO{Name: r.Name, Rate: r.Rate.InexactFloat64()}
}

// ScenarioDTO summarizes a built-in scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ScenarioDetailDTO is a scenario with its plan fully resolved.
type ScenarioDetailDTO struct {
	ScenarioDTO
	Plan ProjectionRequest `json:"plan"`
}

func toScenarioDTO(doc factory.ScenarioDoc) ScenarioDTO {
	return ScenarioDTO{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		Category:    doc.Category,
	}
}

// =============================================================================
// MISC
// =============================================================================

// HealthResponse reports liveness and the size of the reference data.
type HealthResponse struct {
	Status    string `json:"status"`
	Regions   int    `json:"regions"`
	Scenarios int    `json:"scenarios"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// NewProjectionResponse builds a response for a resolved planner state.
func NewProjectionResponse(s form.State, r projection.Result) ProjectionResponse {
	return ProjectionResponse{
		Input:   toProjectionRequest(s),
		Result:  toResultDTO(r),
		Display: r.ToDisplay(),
	}
}
