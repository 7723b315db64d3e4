// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-addon-kit/internal/logger"
	"github.com/MKhiriev/go-addon-kit/internal/store"
	"github.com/MKhiriev/go-addon-kit/models"
)

type fakePinger struct {
	mu        sync.Mutex
	reachable bool
	calls     int
}

func (f *fakePinger) Ping(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.reachable
}

func (f *fakePinger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingEventStore struct {
	mu       sync.Mutex
	recorded []models.Event
}

func (s *recordingEventStore) RecordEvent(ctx context.Context, event models.Event) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorded = append(s.recorded, event)
	return event, nil
}

func (s *recordingEventStore) RecentEvents(ctx context.Context, filter store.EventFilter) ([]models.Event, error) {
	return nil, nil
}

func (s *recordingEventStore) Ping(ctx context.Context) error {
	return nil
}

func (s *recordingEventStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recorded)
}

func TestHeartbeat_TicksUntilCancelled(t *testing.T) {
	// Arrange
	pinger := &fakePinger{reachable: true}
	hb := NewHeartbeat(pinger, nil, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	// Act
	go func() {
		hb.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return pinger.callCount() >= 3 },
		time.Second, 5*time.Millisecond)
	cancel()

	// Assert
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("heartbeat did not stop after context cancellation")
	}
}

func TestHeartbeat_RecordsEventOnFailure(t *testing.T) {
	// Arrange
	pinger := &fakePinger{reachable: false}
	events := &recordingEventStore{}
	hb := NewHeartbeat(pinger, events, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Act
	go hb.Run(ctx)

	// Assert
	require.Eventually(t, func() bool { return events.count() >= 1 },
		time.Second, 5*time.Millisecond)

	events.mu.Lock()
	defer events.mu.Unlock()
	assert.Equal(t, EventHomeAssistantUnreachable, events.recorded[0].Kind)
}

func TestHeartbeat_NoEventsWhenReachable(t *testing.T) {
	// Arrange
	pinger := &fakePinger{reachable: true}
	events := &recordingEventStore{}
	hb := NewHeartbeat(pinger, events, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Act
	go hb.Run(ctx)

	require.Eventually(t, func() bool { return pinger.callCount() >= 3 },
		time.Second, 5*time.Millisecond)

	// Assert
	assert.Zero(t, events.count())
}

func TestNewHeartbeat_DefaultsNonPositiveInterval(t *testing.T) {
	hb := NewHeartbeat(&fakePinger{}, nil, 0, logger.Nop())
	assert.Equal(t, 5*time.Minute, hb.interval)
}

func TestWorkers_RunStartsAllWorkers(t *testing.T) {
	// Arrange
	pinger := &fakePinger{reachable: true}
	first := NewHeartbeat(pinger, nil, 10*time.Millisecond, logger.Nop())
	second := NewHeartbeat(pinger, nil, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Act
	NewWorkers(first, second).Run(ctx)

	// Assert: both tickers contribute pings.
	require.Eventually(t, func() bool { return pinger.callCount() >= 4 },
		time.Second, 5*time.Millisecond)
}
