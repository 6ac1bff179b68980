package itineraries

import (
	"errors"

	"github.com/triply-travel/itinerary-api/internal/planner"
	"github.com/triply-travel/itinerary-api/internal/ports/out/itineraryrepo"
)

// Error is an application-layer error that can be mapped to an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func notFound() *Error {
	return &Error{Status: 404, Code: "ITINERARY_NOT_FOUND", Message: "itinerary not found"}
}

// mapError turns planner and repository errors into *Error. Anything it does not
// recognize is returned unchanged and surfaces as a 500.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var ve *planner.ValidationError
	if errors.As(err, &ve) {
		details := make(map[string]any, len(ve.Details))
		for k, v := range ve.Details {
			details[k] = v
		}
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "validation failed", Details: details}
	}

	var ie *planner.IndexError
	if errors.As(err, &ie) {
		return &Error{
			Status:  422,
			Code:    "INDEX_OUT_OF_RANGE",
			Message: ie.Error(),
			Details: map[string]any{"field": ie.Field, "index": ie.Index, "length": ie.Len},
		}
	}

	if errors.Is(err, planner.ErrProviderUnavailable) {
		var pe *planner.ProviderError
		details := map[string]any{}
		if errors.As(err, &pe) {
			details["provider"] = pe.Provider
		}
		return &Error{Status: 502, Code: "PROVIDER_UNAVAILABLE", Message: "an upstream provider is unavailable", Details: details}
	}

	if errors.Is(err, itineraryrepo.ErrNotFound) {
		return notFound()
	}

	return err
}
