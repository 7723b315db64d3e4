// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-addon-kit/internal/config"
	"github.com/MKhiriev/go-addon-kit/internal/logger"
	"github.com/MKhiriev/go-addon-kit/internal/store"
	"github.com/MKhiriev/go-addon-kit/models"
)

// SupervisorAPI is the slice of the Supervisor client the handlers consume.
// Keeping it an interface lets tests substitute a fake.
type SupervisorAPI interface {
	SelfInfo(ctx context.Context) (models.AddonInfo, error)
	Ping(ctx context.Context) bool
}

// Handler carries the dependencies of all HTTP endpoints. The event store is
// nil when no database is configured; handlers treat that as "persistence
// disabled", not as an error.
type Handler struct {
	cfg        *config.Config
	supervisor SupervisorAPI
	events     store.EventStore

	buildVersion string

	logger *logger.Logger
}

func NewHandler(cfg *config.Config, supervisor SupervisorAPI, events store.EventStore, buildVersion string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		cfg:          cfg,
		supervisor:   supervisor,
		events:       events,
		buildVersion: buildVersion,
		logger:       logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
