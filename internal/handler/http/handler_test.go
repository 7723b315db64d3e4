// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-addon-kit/internal/config"
	"github.com/MKhiriev/go-addon-kit/internal/logger"
	"github.com/MKhiriev/go-addon-kit/internal/store"
	"github.com/MKhiriev/go-addon-kit/models"
)

type fakeSupervisor struct {
	info models.AddonInfo
	err  error
	ping bool
}

func (f *fakeSupervisor) SelfInfo(ctx context.Context) (models.AddonInfo, error) {
	return f.info, f.err
}

func (f *fakeSupervisor) Ping(ctx context.Context) bool {
	return f.ping
}

type fakeEventStore struct {
	events    []models.Event
	queryErr  error
	pingErr   error
	gotFilter store.EventFilter
}

func (f *fakeEventStore) RecordEvent(ctx context.Context, event models.Event) (models.Event, error) {
	return event, nil
}

func (f *fakeEventStore) RecentEvents(ctx context.Context, filter store.EventFilter) ([]models.Event, error) {
	f.gotFilter = filter
	return f.events, f.queryErr
}

func (f *fakeEventStore) Ping(ctx context.Context) error {
	return f.pingErr
}

func newTestHandler(supervisor SupervisorAPI, events store.EventStore) *Handler {
	return NewHandler(config.Default(), supervisor, events, "1.2.3", logger.Nop())
}

func doRequest(t *testing.T, h *Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestIndex(t *testing.T) {
	// Arrange
	h := newTestHandler(&fakeSupervisor{}, nil)

	// Act
	rec := doRequest(t, h, http.MethodGet, "/")

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "The add-on is running!")
}

func TestGetAddonVersion(t *testing.T) {
	// Arrange
	h := newTestHandler(&fakeSupervisor{}, nil)

	// Act
	rec := doRequest(t, h, http.MethodGet, "/api/version/")

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestHealth_Healthy_WithoutDatabase(t *testing.T) {
	// Arrange
	h := newTestHandler(&fakeSupervisor{info: models.AddonInfo{Name: "Example Add-on"}}, nil)

	// Act
	rec := doRequest(t, h, http.MethodGet, "/health")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.StatusHealthy, body.Status)
	assert.Equal(t, "Example Add-on", body.Addon)
	assert.Empty(t, body.Database)
}

func TestHealth_Healthy_WithDatabase(t *testing.T) {
	// Arrange
	h := newTestHandler(
		&fakeSupervisor{info: models.AddonInfo{Name: "Example Add-on"}},
		&fakeEventStore{},
	)

	// Act
	rec := doRequest(t, h, http.MethodGet, "/health")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "connected", body.Database)
}

func TestHealth_SupervisorDown(t *testing.T) {
	// Arrange
	h := newTestHandler(&fakeSupervisor{err: errors.New("connection refused")}, nil)

	// Act
	rec := doRequest(t, h, http.MethodGet, "/health")

	// Assert
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.StatusUnhealthy, body.Status)
	assert.Contains(t, body.Error, "connection refused")
}

func TestHealth_DatabaseDown(t *testing.T) {
	// Arrange
	h := newTestHandler(
		&fakeSupervisor{info: models.AddonInfo{Name: "Example Add-on"}},
		&fakeEventStore{pingErr: errors.New("no connection to the database")},
	)

	// Act
	rec := doRequest(t, h, http.MethodGet, "/health")

	// Assert
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.StatusUnhealthy, body.Status)
	assert.Contains(t, body.Error, "database")
}

func TestListEvents_NotConfigured(t *testing.T) {
	// Arrange
	h := newTestHandler(&fakeSupervisor{}, nil)

	// Act
	rec := doRequest(t, h, http.MethodGet, "/api/events/")

	// Assert
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEvents_ReturnsEvents(t *testing.T) {
	// Arrange
	events := &fakeEventStore{events: []models.Event{
		{EventID: 2, Kind: models.EventShutdown},
		{EventID: 1, Kind: models.EventStartup},
	}}
	h := newTestHandler(&fakeSupervisor{}, events)

	// Act
	rec := doRequest(t, h, http.MethodGet, "/api/events/?kind=startup&limit=20")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "startup", events.gotFilter.Kind)
	assert.Equal(t, uint64(20), events.gotFilter.Limit)

	var body []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 2)
}

func TestListEvents_InvalidLimit(t *testing.T) {
	// Arrange
	h := newTestHandler(&fakeSupervisor{}, &fakeEventStore{})

	tests := []string{"0", "-5", "many"}
	for _, limit := range tests {
		// Act
		rec := doRequest(t, h, http.MethodGet, "/api/events/?limit="+limit)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func TestListEvents_StoreError(t *testing.T) {
	// Arrange
	h := newTestHandler(&fakeSupervisor{}, &fakeEventStore{queryErr: store.ErrQueryingEvents})

	// Act
	rec := doRequest(t, h, http.MethodGet, "/api/events/")

	// Assert
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
