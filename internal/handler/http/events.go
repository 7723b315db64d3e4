// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-addon-kit/internal/logger"
	"github.com/MKhiriev/go-addon-kit/internal/store"
)

// listEvents returns the recent entries of the add-on event log. Without a
// configured database the endpoint answers 404, matching the store being
// absent rather than broken.
//
// Query parameters: kind (exact match), limit (positive integer).
func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.events == nil {
		http.Error(w, "event log is not configured", http.StatusNotFound)
		return
	}

	filter := store.EventFilter{Kind: r.URL.Query().Get("kind")}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil || limit == 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	events, err := h.events.RecentEvents(r.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("error listing events")
		http.Error(w, "error listing events", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, events)
}
