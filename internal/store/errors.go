package store

import "errors"

// Sentinel errors returned by the event store. Callers can match them with
// [errors.Is]; the underlying driver error is attached via wrapping.
var (
	// ErrEventNotSaved indicates that an event insert did not reach the
	// database.
	ErrEventNotSaved = errors.New("event not saved")

	// ErrQueryingEvents indicates a failure while building or executing
	// an event SELECT.
	ErrQueryingEvents = errors.New("error querying events")
)
