/*
errors.go - Error types for lookups around the engine

PURPOSE:
  The engine itself never fails. Errors only come from the lookups that feed
  it: region names, preset scenarios, and form fields. They live here so the
  API and CLI layers can classify them in one place.

USAGE:
  if errors.Is(err, projection.ErrRegionNotFound) {
      // 400 / "pick a state from the list"
  }

SEE ALSO:
  - regions.go: returns RegionNotFoundError
  - form/form.go, factory/scenario.go: wrap these errors
*/
package projection

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrRegionNotFound is returned when a state name is not in the table.
	ErrRegionNotFound = errors.New("region not found")

	// ErrScenarioNotFound is returned when a preset scenario ID is unknown.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrUnknownField is returned when a form field name is not recognized.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidDocument is returned when a scenario document cannot be decoded.
	ErrInvalidDocument = errors.New("invalid scenario document")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// RegionNotFoundError names the region that failed to resolve.
type RegionNotFoundError struct {
	Name string
}

func (e *RegionNotFoundError) Error() string {
	return fmt.Sprintf("region not found: %q", e.Name)
}

func (e *RegionNotFoundError) Unwrap() error {
	return ErrRegionNotFound
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrRegionNotFound) ||
		errors.Is(err, ErrUnknownField) ||
		errors.Is(err, ErrInvalidDocument)
}

// IsNotFound returns true if the error indicates a missing lookup entry.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRegionNotFound) ||
		errors.Is(err, ErrScenarioNotFound)
}
