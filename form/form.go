/*
Package form holds the mutable planner state that feeds the projection engine.

PURPOSE:
  The engine is pure; something still has to own the half-typed values a
  user is editing. A Form is that owner. Every edit mutates the Form, and
  every projection takes a fresh Snapshot so the engine never sees (or
  changes) shared state.

LIFECYCLE:
  f := form.New()                       // default J-1 summer plan
  f.Set(form.FieldHousingCost, "120")   // keystroke
  f.SelectRegion("Oregon")              // dropdown
  r := f.Project()                      // snapshot + compute
  f.Reset()                             // back to defaults

CONCURRENCY:
  Form is safe for concurrent use. Snapshot copies under a read lock.

SEE ALSO:
  - projection/engine.go: the pure core
  - factory/scenario.go: builds State from scenario documents
*/
package form

import (
	"fmt"
	"sync"

	"github.com/ozkayhan/wat2/projection"
)

// =============================================================================
// STATE
// =============================================================================

// State is the full editable plan. It is a plain value; copying it is safe.
type State struct {
	StartDate        string
	EndDate          string
	UpfrontCost      string
	HousingCost      string
	WeeklyLivingCost string
	TravelCost       string
	PurchaseCost     string
	StateTaxRate     string
	SelectedRegion   string
	IsFicaExempt     bool
	IncludeOvertime  bool
	Job1             projection.Job
	Job2             projection.Job
}

// DefaultState is a typical J-1 summer: mid-June to late September, one
// full-time job, FICA exempt.
func DefaultState() State {
	return State{
		StartDate:        "2025-06-17",
		EndDate:          "2025-09-20",
		UpfrontCost:      "4000",
		HousingCost:      "100",
		WeeklyLivingCost: "100",
		TravelCost:       "1000",
		PurchaseCost:     "",
		StateTaxRate:     "3.5",
		IsFicaExempt:     true,
		IncludeOvertime:  true,
		Job1:             projection.Job{Wage: "15", Hours: "40"},
		Job2:             projection.Job{},
	}
}

// Input converts the state to an engine input.
func (s State) Input() projection.Input {
	return projection.Input{
		StartDate:        s.StartDate,
		EndDate:          s.EndDate,
		UpfrontCost:      s.UpfrontCost,
		HousingCost:      s.HousingCost,
		WeeklyLivingCost: s.WeeklyLivingCost,
		TravelCost:       s.TravelCost,
		PurchaseCost:     s.PurchaseCost,
		StateTaxRate:     s.StateTaxRate,
		IsFicaExempt:     s.IsFicaExempt,
		IncludeOvertime:  s.IncludeOvertime,
		Job1:             s.Job1,
		Job2:             s.Job2,
	}
}

// =============================================================================
// FIELDS
// =============================================================================

// Field names a text field of the form.
type Field string

const (
	FieldStartDate        Field = "start_date"
	FieldEndDate          Field = "end_date"
	FieldUpfrontCost      Field = "upfront_cost"
	FieldHousingCost      Field = "housing_cost"
	FieldWeeklyLivingCost Field = "weekly_living_cost"
	FieldTravelCost       Field = "travel_cost"
	FieldPurchaseCost     Field = "purchase_cost"
	FieldStateTaxRate     Field = "state_tax_rate"
	FieldJob1Wage         Field = "job1_wage"
	FieldJob1Hours        Field = "job1_hours"
	FieldJob2Wage         Field = "job2_wage"
	FieldJob2Hours        Field = "job2_hours"
)

// Fields lists the text fields in display order.
var Fields = []Field{
	FieldStartDate, FieldEndDate, FieldUpfrontCost,
	FieldJob1Wage, FieldJob1Hours, FieldJob2Wage, FieldJob2Hours,
	FieldStateTaxRate,
	FieldHousingCost, FieldWeeklyLivingCost,
	FieldTravelCost, FieldPurchaseCost,
}

// Flag names a boolean toggle.
type Flag string

const (
	FlagFicaExempt Flag = "fica_exempt"
	FlagOvertime   Flag = "overtime"
)

// JobSlot selects job 1 or job 2.
type JobSlot int

const (
	Job1 JobSlot = iota + 1
	Job2
)

// fieldPtr returns the address of a text field within s.
func (s *State) fieldPtr(f Field) (*string, error) {
	switch f {
	case FieldStartDate:
		return &s.StartDate, nil
	case FieldEndDate:
		return &s.EndDate, nil
	case FieldUpfrontCost:
		return &s.UpfrontCost, nil
	case FieldHousingCost:
		return &s.HousingCost, nil
	case FieldWeeklyLivingCost:
		return &s.WeeklyLivingCost, nil
	case FieldTravelCost:
		return &s.TravelCost, nil
	case FieldPurchaseCost:
		return &s.PurchaseCost, nil
	case FieldStateTaxRate:
		return &s.StateTaxRate, nil
	case FieldJob1Wage:
		return &s.Job1.Wage, nil
	case FieldJob1Hours:
		return &s.Job1.Hours, nil
	case FieldJob2Wage:
		return &s.Job2.Wage, nil
	case FieldJob2Hours:
		return &s.Job2.Hours, nil
	}
	return nil, fmt.Errorf("%w: %q", projection.ErrUnknownField, f)
}

// Get returns the current text of a field.
func (s State) Get(f Field) (string, error) {
	p, err := s.fieldPtr(f)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// =============================================================================
// FORM
// =============================================================================

// Form is the mutable owner of a State.
type Form struct {
	mu     sync.RWMutex
	state  State
	engine *projection.Engine
}

// New returns a Form holding DefaultState.
func New() *Form {
	return NewWithState(DefaultState())
}

// NewWithState returns a Form holding s.
func NewWithState(s State) *Form {
	return &Form{state: s, engine: projection.NewEngine()}
}

// Set replaces the text of one field. Typing into the rate field clears
// the selected region, since the rate no longer comes from the table.
func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, err := f.state.fieldPtr(field)
	if err != nil {
		return err
	}
	*p = value
	if field == FieldStateTaxRate {
		f.state.SelectedRegion = ""
	}
	return nil
}

// SetJob replaces both values of one job.
func (f *Form) SetJob(slot JobSlot, wage, hours string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch slot {
	case Job1:
		f.state.Job1 = projection.Job{Wage: wage, Hours: hours}
	case Job2:
		f.state.Job2 = projection.Job{Wage: wage, Hours: hours}
	default:
		return fmt.Errorf("%w: job slot %d", projection.ErrUnknownField, slot)
	}
	return nil
}

// SetFlag sets a toggle.
func (f *Form) SetFlag(flag Flag, on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch flag {
	case FlagFicaExempt:
		f.state.IsFicaExempt = on
	case FlagOvertime:
		f.state.IncludeOvertime = on
	default:
		return fmt.Errorf("%w: %q", projection.ErrUnknownField, flag)
	}
	return nil
}

// SelectRegion sets the state tax rate from the region table. The form is
// unchanged when the name is not in the table.
func (f *Form) SelectRegion(name string) error {
	region, err := projection.LookupRegion(name)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.SelectedRegion = region.Name
	f.state.StateTaxRate = region.Rate.String()
	return nil
}

// Replace swaps in a whole new state, e.g. a loaded scenario.
func (f *Form) Replace(s State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = s
}

// Reset restores DefaultState.
func (f *Form) Reset() {
	f.Replace(DefaultState())
}

// State returns a copy of the current state.
func (f *Form) State() State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Snapshot returns a fresh engine input built from the current state.
func (f *Form) Snapshot() projection.Input {
	return f.State().Input()
}

// Project computes the projection for the current state.
func (f *Form) Project() projection.Result {
	return f.engine.Compute(f.Snapshot())
}
