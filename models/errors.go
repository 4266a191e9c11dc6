package models

import "errors"

// Recoverable error kinds surfaced to the boundary layer. Wrap with
// fmt.Errorf("%w: ...", Err...) to attach detail; callers discriminate
// with errors.Is.
var (
	// ErrNotFound means a referenced doctor, service, appointment or user
	// does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrSlotConflict means the requested interval falls outside the
	// doctor's working hours or overlaps an existing booking.
	ErrSlotConflict = errors.New("doctor is not available in the specified time slot")

	// ErrValidation means the request itself is malformed: bad work-hours
	// string, non-positive duration, illegal status transition, and so on.
	ErrValidation = errors.New("validation failed")
)
