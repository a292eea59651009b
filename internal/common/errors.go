// Package common defines shared constants and sentinel errors used across
// the companion client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Storage errors (secure local store read/write/delete failed).
	ErrStorage = errors.New("secure storage failure")

	// Transport errors (the request never reached the server).
	ErrNetwork = errors.New("network unavailable")

	// Validation errors (local precondition failed; never sent to the network).
	ErrValidation = errors.New("validation failed")

	// Cart-session errors.
	ErrNoActiveSession = errors.New("no active cart session")

	// Local mirror lookups.
	ErrNotFound = errors.New("not found")

	// Concurrency guard: another mutation for the same entity is still running.
	ErrMutationInFlight = errors.New("mutation already in flight")
)
