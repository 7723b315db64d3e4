// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Well-known event kinds recorded by the add-on itself.
const (
	EventStartup  = "startup"
	EventShutdown = "shutdown"
)

// Event is a single row of the optional add-on event log, persisted to the
// Postgres event store when a database is configured.
type Event struct {
	// EventID is the server-assigned identifier. Zero until the event is
	// persisted.
	EventID int64 `json:"event_id"`

	// Kind groups events (e.g. EventStartup, EventShutdown, or any
	// application-defined kind).
	Kind string `json:"kind"`

	// Message is a free-form description.
	Message string `json:"message"`

	// CreatedAt is when the event was recorded. Zero means "now" when
	// passed to the store for recording.
	CreatedAt time.Time `json:"created_at"`
}
