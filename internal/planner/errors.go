package planner

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation marks a trip or activity that cannot be planned as given.
	ErrValidation = errors.New("validation failed")
	// ErrIndexOutOfRange marks a day or activity index outside the itinerary.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrProviderUnavailable marks a collaborator (places, commute, weather, events) failure.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Details) == 0 {
		return ErrValidation.Error()
	}
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+" "+e.Details[f])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// IndexError reports which index was rejected and the valid length.
type IndexError struct {
	Field string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s %d out of range [0,%d)", e.Field, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// ProviderError wraps a collaborator failure.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrProviderUnavailable, e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() []error { return []error{ErrProviderUnavailable, e.Err} }

func checkIndex(field string, index, length int) error {
	if index < 0 || index >= length {
		return &IndexError{Field: field, Index: index, Len: length}
	}
	return nil
}
