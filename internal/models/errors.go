package models

import (
	"errors"
	"fmt"
)

// ValidationError reports a request that failed schema validation at a trust
// boundary. Field-level details are preserved for the HTTP 400 payload.
type ValidationError struct {
	Details []FieldError
}

// FieldError describes a single failed validation rule
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value string `json:"value,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: field %q violates rule %q", e.Details[0].Field, e.Details[0].Rule)
}

// GenerationError reports that the model returned no usable output for a
// required structured call. Fatal for the agent invocation, never retried.
type GenerationError struct {
	Agent string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("the model failed to generate a response for the %s agent", e.Agent)
}

// LocationDataError reports that environmental data could not be backfilled
// for a location. The router recognizes this error and answers with a
// tailored message naming the curated locations.
type LocationDataError struct {
	Location string
}

func (e *LocationDataError) Error() string {
	return fmt.Sprintf("could not retrieve environmental data for the location: %q. Please provide a valid location or specify environmental conditions manually", e.Location)
}

// IsLocationDataError reports whether err carries a LocationDataError
// anywhere in its chain.
func IsLocationDataError(err error) bool {
	var lde *LocationDataError
	return errors.As(err, &lde)
}
