// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-addon-kit/internal/logger"
	"github.com/MKhiriev/go-addon-kit/models"
)

const insertEvent = `INSERT INTO addon_events (kind, message, created_at)
	VALUES ($1, $2, $3)
	RETURNING event_id;`

// defaultEventsLimit bounds RecentEvents when the filter does not set one.
const defaultEventsLimit = 50

// EventStore persists and queries the add-on event log.
type EventStore interface {
	// RecordEvent persists event and returns it with the server-assigned
	// EventID. A zero CreatedAt is replaced with the current time.
	RecordEvent(ctx context.Context, event models.Event) (models.Event, error)

	// RecentEvents returns events matching filter, newest first.
	RecentEvents(ctx context.Context, filter EventFilter) ([]models.Event, error)

	// Ping verifies the database connection is alive.
	Ping(ctx context.Context) error
}

// EventFilter narrows a RecentEvents query. Zero fields are ignored.
type EventFilter struct {
	// Kind restricts results to a single event kind.
	Kind string

	// Since restricts results to events recorded at or after this time.
	Since time.Time

	// Limit caps the number of returned events; 0 means the default cap.
	Limit uint64
}

// eventRepository is the PostgreSQL-backed implementation of [EventStore].
type eventRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEventRepository constructs an [EventStore] backed by the provided
// database connection and logger.
func NewEventRepository(db *DB, logger *logger.Logger) EventStore {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

func (r *eventRepository) RecordEvent(ctx context.Context, event models.Event) (models.Event, error) {
	log := logger.FromContext(ctx)

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	row := r.db.QueryRowContext(ctx, insertEvent, event.Kind, event.Message, event.CreatedAt)
	if err := row.Scan(&event.EventID); err != nil {
		log.Err(err).Str("kind", event.Kind).Msg("error inserting event")
		return models.Event{}, fmt.Errorf("%w: %w", ErrEventNotSaved, err)
	}

	return event, nil
}

func (r *eventRepository) RecentEvents(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentEventsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryingEvents, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error querying events")
		return nil, fmt.Errorf("%w: %w", ErrQueryingEvents, err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err = rows.Scan(&event.EventID, &event.Kind, &event.Message, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrQueryingEvents, err)
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryingEvents, err)
	}

	return events, nil
}

func (r *eventRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// buildRecentEventsQuery assembles the SELECT dynamically, since every
// filter field is optional.
func buildRecentEventsQuery(filter EventFilter) (string, []any, error) {
	builder := sq.Select("event_id", "kind", "message", "created_at").
		From("addon_events").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Kind != "" {
		builder = builder.Where(sq.Eq{"kind": filter.Kind})
	}
	if !filter.Since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"created_at": filter.Since})
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultEventsLimit
	}

	return builder.Limit(limit).ToSql()
}
