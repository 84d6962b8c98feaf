/*
Package factory converts scenario documents into planner state.

PURPOSE:
  A scenario is a saved plan: dates, jobs, costs, tax settings. Scenarios
  are authored as JSON (API clients) or TOML (files on disk), and the
  factory turns either into a form.State the engine can project.

JSON SCHEMA:
  {
    "id": "two-jobs-overtime",
    "name": "Two Jobs + Overtime",
    "description": "...",
    "category": "summer",
    "plan": {
      "start_date": "2025-06-10",
      "end_date": "2025-09-15",
      "upfront_cost": 3800,
      "housing_cost": "120",
      "region": "Wisconsin",
      "fica_exempt": true,
      "overtime": true,
      "job1": {"wage": 15, "hours": 48},
      "job2": {"wage": "12", "hours": "20"}
    }
  }

  Numeric fields accept JSON numbers or strings. Omitted fields keep the
  default plan's value. "region" resolves through the state table and
  takes precedence over "state_tax_rate".

TOML:
  Same keys. Decoded to a generic map first, so integers, floats and local
  dates are all accepted as field values.

SEE ALSO:
  - form/form.go: State and DefaultState
  - factory/presets.go: built-in scenarios
*/
package factory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ozkayhan/wat2/form"
	"github.com/ozkayhan/wat2/projection"
)

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

// Text is a form value that may be written as a JSON string or number.
type Text string

// UnmarshalJSON accepts "12.5", 12.5 and null.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*t = Text(n.String())
	return nil
}

// JobDoc is one job in a plan.
type JobDoc struct {
	Wage  *Text `json:"wage,omitempty" toml:"wage"`
	Hours *Text `json:"hours,omitempty" toml:"hours"`
}

// PlanDoc is the editable plan. Nil fields fall back to defaults.
type PlanDoc struct {
	StartDate        *Text   `json:"start_date,omitempty" toml:"start_date"`
	EndDate          *Text   `json:"end_date,omitempty" toml:"end_date"`
	UpfrontCost      *Text   `json:"upfront_cost,omitempty" toml:"upfront_cost"`
	HousingCost      *Text   `json:"housing_cost,omitempty" toml:"housing_cost"`
	WeeklyLivingCost *Text   `json:"weekly_living_cost,omitempty" toml:"weekly_living_cost"`
	TravelCost       *Text   `json:"travel_cost,omitempty" toml:"travel_cost"`
	PurchaseCost     *Text   `json:"purchase_cost,omitempty" toml:"purchase_cost"`
	StateTaxRate     *Text   `json:"state_tax_rate,omitempty" toml:"state_tax_rate"`
	Region           string  `json:"region,omitempty" toml:"region,omitempty"`
	FicaExempt       *bool   `json:"fica_exempt,omitempty" toml:"fica_exempt"`
	Overtime         *bool   `json:"overtime,omitempty" toml:"overtime"`
	Job1             *JobDoc `json:"job1,omitempty" toml:"job1"`
	Job2             *JobDoc `json:"job2,omitempty" toml:"job2"`
}

// ScenarioDoc is a named plan.
type ScenarioDoc struct {
	ID          string  `json:"id" toml:"id"`
	Name        string  `json:"name" toml:"name"`
	Description string  `json:"description,omitempty" toml:"description,omitempty"`
	Category    string  `json:"category,omitempty" toml:"category,omitempty"`
	Plan        PlanDoc `json:"plan" toml:"plan"`
}

// =============================================================================
// SCENARIO FACTORY
// =============================================================================

// ScenarioFactory converts scenario documents to planner state.
type ScenarioFactory struct{}

// NewScenarioFactory creates a new scenario factory.
func NewScenarioFactory() *ScenarioFactory {
	return &ScenarioFactory{}
}

// ParseJSON decodes a JSON scenario document.
func (f *ScenarioFactory) ParseJSON(data []byte) (ScenarioDoc, error) {
	var doc ScenarioDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return ScenarioDoc{}, fmt.Errorf("%w: %v", projection.ErrInvalidDocument, err)
	}
	return doc, nil
}

// ParseTOML decodes a TOML scenario document.
func (f *ScenarioFactory) ParseTOML(data []byte) (ScenarioDoc, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return ScenarioDoc{}, fmt.Errorf("%w: %v", projection.ErrInvalidDocument, err)
	}
	normalized, err := json.Marshal(normalizeTOML(raw))
	if err != nil {
		return ScenarioDoc{}, fmt.Errorf("%w: %v", projection.ErrInvalidDocument, err)
	}
	return f.ParseJSON(normalized)
}

// LoadFile reads a .json or .toml scenario from disk.
func (f *ScenarioFactory) LoadFile(path string) (ScenarioDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenarioDoc{}, fmt.Errorf("read scenario %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return f.ParseTOML(data)
	case ".json":
		return f.ParseJSON(data)
	default:
		return ScenarioDoc{}, fmt.Errorf("%w: unsupported extension %q", projection.ErrInvalidDocument, filepath.Ext(path))
	}
}

// FromDoc builds a planner state from a document, starting from the
// default plan.
func (f *ScenarioFactory) FromDoc(doc ScenarioDoc) (form.State, error) {
	s := form.DefaultState()
	p := doc.Plan

	apply := func(dst *string, src *Text) {
		if src != nil {
			*dst = string(*src)
		}
	}
	apply(&s.StartDate, p.StartDate)
	apply(&s.EndDate, p.EndDate)
	apply(&s.UpfrontCost, p.UpfrontCost)
	apply(&s.HousingCost, p.HousingCost)
	apply(&s.WeeklyLivingCost, p.WeeklyLivingCost)
	apply(&s.TravelCost, p.TravelCost)
	apply(&s.PurchaseCost, p.PurchaseCost)
	apply(&s.StateTaxRate, p.StateTaxRate)

	if p.FicaExempt != nil {
		s.IsFicaExempt = *p.FicaExempt
	}
	if p.Overtime != nil {
		s.IncludeOvertime = *p.Overtime
	}
	if p.Job1 != nil {
		s.Job1 = projection.Job{}
		apply(&s.Job1.Wage, p.Job1.Wage)
		apply(&s.Job1.Hours, p.Job1.Hours)
	}
	if p.Job2 != nil {
		s.Job2 = projection.Job{}
		apply(&s.Job2.Wage, p.Job2.Wage)
		apply(&s.Job2.Hours, p.Job2.Hours)
	}

	if p.Region != "" {
		region, err := projection.LookupRegion(p.Region)
		if err != nil {
			return form.State{}, fmt.Errorf("scenario %q: %w", doc.ID, err)
		}
		s.SelectedRegion = region.Name
		s.StateTaxRate = region.Rate.String()
	}

	return s, nil
}

// ToDoc captures a full planner state as a document.
func (f *ScenarioFactory) ToDoc(id, name string, s form.State) ScenarioDoc {
	text := func(v string) *Text {
		t := Text(v)
		return &t
	}
	fica, overtime := s.IsFicaExempt, s.IncludeOvertime

	return ScenarioDoc{
		ID:   id,
		Name: name,
		Plan: PlanDoc{
			StartDate:        text(s.StartDate),
			EndDate:          text(s.EndDate),
			UpfrontCost:      text(s.UpfrontCost),
			HousingCost:      text(s.HousingCost),
			WeeklyLivingCost: text(s.WeeklyLivingCost),
			TravelCost:       text(s.TravelCost),
			PurchaseCost:     text(s.PurchaseCost),
			StateTaxRate:     text(s.StateTaxRate),
			Region:           s.SelectedRegion,
			FicaExempt:       &fica,
			Overtime:         &overtime,
			Job1:             &JobDoc{Wage: text(s.Job1.Wage), Hours: text(s.Job1.Hours)},
			Job2:             &JobDoc{Wage: text(s.Job2.Wage), Hours: text(s.Job2.Hours)},
		},
	}
}

// EncodeTOML writes a document as TOML.
func (f *ScenarioFactory) EncodeTOML(doc ScenarioDoc) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encode scenario %q: %w", doc.ID, err)
	}
	return buf.Bytes(), nil
}

// normalizeTOML rewrites decoded TOML values so they survive a JSON round
// trip into ScenarioDoc: dates become YYYY-MM-DD, numbers stay numbers.
func normalizeTOML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = normalizeTOML(val)
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = normalizeTOML(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = normalizeTOML(val)
		}
		return out
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(projection.DateLayout)
		}
		return x.Format(time.RFC3339)
	case int64:
		return json.Number(strconv.FormatInt(x, 10))
	case float64:
		return json.Number(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return v
	}
}
