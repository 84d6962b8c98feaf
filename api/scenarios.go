/*
scenarios.go - Built-in scenario endpoints

PURPOSE:
  Serves the factory presets so a frontend can offer "start from" plans
  and show their projections without posting a body.

AVAILABLE SCENARIOS:
  j1-summer-default:   Default plan
  two-jobs-overtime:   Two jobs, overtime, Wisconsin
  fica-liable:         Default plan paying payroll tax
  no-income-tax-state: Florida
  short-season:        Six weeks in Alaska

ADDING NEW SCENARIOS:
  Append to the presets slice in factory/presets.go. Nothing here changes.

SEE ALSO:
  - factory/presets.go: Scenario definitions
  - handlers.go: Shared helpers
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ozkayhan/wat2/factory"
)

// ListScenarios returns every built-in scenario.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	presets := factory.Presets()
	dtos := make([]ScenarioDTO, len(presets))
	for i, p := range presets {
		dtos[i] = toScenarioDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetScenario returns a scenario with its plan resolved against defaults.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	doc, req, err := h.loadScenario(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ScenarioDetailDTO{ScenarioDTO: toScenarioDTO(doc), Plan: req})
}

// GetScenarioProjection projects a scenario.
func (h *Handler) GetScenarioProjection(w http.ResponseWriter, r *http.Request) {
	_, req, err := h.loadScenario(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.project(req))
}

func (h *Handler) loadScenario(id string) (factory.ScenarioDoc, ProjectionRequest, error) {
	doc, err := factory.Preset(id)
	if err != nil {
		return factory.ScenarioDoc{}, ProjectionRequest{}, err
	}
	state, err := h.ScenarioFactory.FromDoc(doc)
	if err != nil {
		return factory.ScenarioDoc{}, ProjectionRequest{}, err
	}
	return doc, toProjectionRequest(state), nil
}
