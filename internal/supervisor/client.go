// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package supervisor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-addon-kit/internal/config"
	"github.com/MKhiriev/go-addon-kit/internal/logger"
	"github.com/MKhiriev/go-addon-kit/models"
)

// Client is a REST client for the Supervisor API the host exposes to the
// add-on. It holds no global state: the bearer token and base URL come in
// via the configuration and the client is passed explicitly to consumers.
type Client struct {
	client *resty.Client
	logger *logger.Logger
}

// NewClient constructs a Supervisor API client from the host-environment
// configuration. An empty token (local development outside the host) sends
// requests unauthenticated; the other endpoints of a development stub
// usually accept that.
//
// Transport failures and 5xx responses are retried a bounded number of
// times with backoff before being reported to the caller.
func NewClient(cfg config.Supervisor, log *logger.Logger) *Client {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(250 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	if cfg.Token != "" {
		cli.SetAuthToken(cfg.Token)
	}

	return &Client{client: cli, logger: log}
}

// Info returns general host information from GET /info.
func (c *Client) Info(ctx context.Context) (models.SupervisorInfo, error) {
	var info models.SupervisorInfo
	if err := c.get(ctx, "/info", &info); err != nil {
		return models.SupervisorInfo{}, err
	}

	return info, nil
}

// SelfInfo returns the host's view of this add-on from GET /addons/self/info.
func (c *Client) SelfInfo(ctx context.Context) (models.AddonInfo, error) {
	var info models.AddonInfo
	if err := c.get(ctx, "/addons/self/info", &info); err != nil {
		return models.AddonInfo{}, err
	}

	return info, nil
}

// HomeAssistantAPI returns connection details for the Home Assistant core
// API from GET /homeassistant/api.
func (c *Client) HomeAssistantAPI(ctx context.Context) (models.HomeAssistantAPIInfo, error) {
	var info models.HomeAssistantAPIInfo
	if err := c.get(ctx, "/homeassistant/api", &info); err != nil {
		return models.HomeAssistantAPIInfo{}, err
	}

	return info, nil
}

// Ping reports whether Home Assistant is reachable through the Supervisor.
// It never returns an error; failures are logged at warn level and reported
// as false.
func (c *Client) Ping(ctx context.Context) bool {
	if _, err := c.HomeAssistantAPI(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("failed to ping home assistant")
		return false
	}

	return true
}

// envelope is the response wrapper every Supervisor endpoint uses:
// {"result": "ok", "data": {...}} on success,
// {"result": "error", "message": "..."} on failure.
type envelope struct {
	Result  string          `json:"result"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		return fmt.Errorf("supervisor request %s: %w", endpoint, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var env envelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode supervisor response %s: %w", endpoint, err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err = json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode supervisor data %s: %w", endpoint, err)
	}

	return nil
}
