// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-addon-kit/internal/logger"
	"github.com/MKhiriev/go-addon-kit/models"
)

// health reports whether the add-on can reach its collaborators: the
// Supervisor API always, the database only when an event store is
// configured. Any failure yields 500 with an unhealthy body naming the
// cause.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	info, err := h.supervisor.SelfInfo(ctx)
	if err != nil {
		log.Error().Err(err).Msg("health check failed: supervisor unreachable")
		writeJSON(w, http.StatusInternalServerError, models.HealthResponse{
			Status: models.StatusUnhealthy,
			Error:  err.Error(),
		})
		return
	}

	response := models.HealthResponse{
		Status: models.StatusHealthy,
		Addon:  info.Name,
	}

	if h.events != nil {
		if err = h.events.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("health check failed: database unreachable")
			writeJSON(w, http.StatusInternalServerError, models.HealthResponse{
				Status: models.StatusUnhealthy,
				Addon:  info.Name,
				Error:  err.Error(),
			})
			return
		}
		response.Database = "connected"
	}

	writeJSON(w, http.StatusOK, response)
}
