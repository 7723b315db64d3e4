// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-addon-kit/internal/logger"
	"github.com/MKhiriev/go-addon-kit/internal/store"
	"github.com/MKhiriev/go-addon-kit/models"
)

// EventHomeAssistantUnreachable is the event kind the heartbeat records
// when a reachability check fails.
const EventHomeAssistantUnreachable = "ha_unreachable"

// Pinger is the slice of the Supervisor client the heartbeat consumes.
type Pinger interface {
	Ping(ctx context.Context) bool
}

// Heartbeat periodically checks that Home Assistant is reachable through
// the Supervisor. Failed checks are logged and, when an event store is
// configured, recorded to the event log.
type Heartbeat struct {
	supervisor Pinger
	events     store.EventStore // nil when persistence is disabled
	interval   time.Duration

	logger *logger.Logger
}

// NewHeartbeat constructs a heartbeat worker ticking every interval. A
// non-positive interval falls back to five minutes.
func NewHeartbeat(supervisor Pinger, events store.EventStore, interval time.Duration, logger *logger.Logger) *Heartbeat {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &Heartbeat{
		supervisor: supervisor,
		events:     events,
		interval:   interval,
		logger:     logger,
	}
}

// Run implements [Worker]. It blocks until ctx is cancelled.
func (h *Heartbeat) Run(ctx context.Context) {
	t := time.NewTicker(h.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			h.beat(ctx)
		}
	}
}

func (h *Heartbeat) beat(ctx context.Context) {
	if h.supervisor.Ping(ctx) {
		h.logger.Debug().Msg("heartbeat: home assistant reachable")
		return
	}

	h.logger.Warn().Msg("heartbeat: home assistant unreachable")

	if h.events == nil {
		return
	}

	event := models.Event{
		Kind:    EventHomeAssistantUnreachable,
		Message: fmt.Sprintf("home assistant did not answer the reachability check at %s", time.Now().Format(time.RFC3339)),
	}
	if _, err := h.events.RecordEvent(ctx, event); err != nil {
		h.logger.Err(err).Msg("heartbeat: error recording event")
	}
}
