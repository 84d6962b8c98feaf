/*
handlers.go - HTTP API handlers for the season projection engine

PURPOSE:
  Exposes the projection engine, the state tax table and the built-in
  scenarios over REST. Handles JSON in/out and delegates all math to the
  projection package.

ENDPOINTS:
  Projections:
    POST   /api/projections               Project a plan

  Regions:
    GET    /api/regions                   State tax table
    GET    /api/regions/{name}            One state (case-insensitive)

  Scenarios:
    GET    /api/scenarios                 List built-in scenarios
    GET    /api/scenarios/{id}            Scenario with resolved plan
    GET    /api/scenarios/{id}/projection Project a scenario

  Health:
    GET    /api/health

REQUEST FLOW:
  1. Decode JSON
  2. Validate lengths
  3. Resolve region, if any
  4. Compute (never fails; bad dates give is_valid=false)
  5. Serialize result plus display strings

ERROR HANDLING:
  - 400: malformed JSON, oversize fields, unknown region in a request body
  - 404: unknown region or scenario in the path
  - 500: anything else

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Scenario handlers
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/ozkayhan/wat2/factory"
	"github.com/ozkayhan/wat2/projection"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidJSON      = "invalid_json"
	CodeValidation       = "validation_failed"
	CodeRegionNotFound   = "region_not_found"
	CodeScenarioNotFound = "scenario_not_found"
	CodeInternal         = "internal"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine          *projection.Engine
	ScenarioFactory *factory.ScenarioFactory

	validate *validator.Validate
}

// NewHandler creates a handler using the default tax schedule.
func NewHandler() *Handler {
	return &Handler{
		Engine:          projection.NewEngine(),
		ScenarioFactory: factory.NewScenarioFactory(),
		validate:        validator.New(),
	}
}

// =============================================================================
// PROJECTION ENDPOINTS
// =============================================================================

// CreateProjection computes a projection for the posted plan.
func (h *Handler) CreateProjection(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidJSON, "invalid JSON", err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, "validation failed", err)
		return
	}

	if req.Region != "" {
		region, err := projection.LookupRegion(req.Region)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeRegionNotFound, "unknown region", err)
			return
		}
		req.Region = region.Name
		req.StateTaxRate = factory.Text(region.Rate.String())
	}

	writeJSON(w, http.StatusOK, h.project(req))
}

func (h *Handler) project(req ProjectionRequest) ProjectionResponse {
	result := h.Engine.Compute(req.Input())
	return ProjectionResponse{
		Input:   req,
		Result:  toResultDTO(result),
		Display: result.ToDisplay(),
	}
}

// =============================================================================
// REGION ENDPOINTS
// =============================================================================

// ListRegions returns the state tax table in alphabetical order.
func (h *Handler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions := projection.Regions()
	dtos := make([]RegionDTO, len(regions))
	for i, reg := range regions {
		dtos[i] = toRegionDTO(reg)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetRegion returns one state.
func (h *Handler) GetRegion(w http.ResponseWriter, r *http.Request) {
	region, err := projection.LookupRegion(chi.URLParam(r, "name"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegionDTO(region))
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Regions:   len(projection.Regions()),
		Scenarios: len(factory.Presets()),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps projection errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, projection.ErrRegionNotFound):
		writeError(w, http.StatusNotFound, CodeRegionNotFound, "region not found", err)
	case errors.Is(err, projection.ErrScenarioNotFound):
		writeError(w, http.StatusNotFound, CodeScenarioNotFound, "scenario not found", err)
	case projection.IsClientError(err):
		writeError(w, http.StatusBadRequest, CodeValidation, "bad request", err)
	default:
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal error", err)
	}
}
