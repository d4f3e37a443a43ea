// Package domain defines domain-level errors for the onboarding feature.
package domain

import "errors"

var (
	// ErrUnknownKind is returned when a prerequisite kind name is not recognised.
	ErrUnknownKind = errors.New("unknown prerequisite kind")

	// ErrInvalidDismissReason is returned when a dismissal reason is not one of close, later or action.
	ErrInvalidDismissReason = errors.New("invalid dismiss reason")
)
