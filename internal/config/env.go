// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envOptions mirrors the per-field environment variables consulted when no
// options document exists. As with [optionsDocument], pointer fields keep
// "variable unset" distinguishable from an explicit zero value.
type envOptions struct {
	LogLevel          *string        `env:"LOG_LEVEL"`
	Port              *int           `env:"PORT"`
	HeartbeatInterval *time.Duration `env:"HEARTBEAT_INTERVAL"`

	Database struct {
		DSN *string `env:"DSN"`
	} `envPrefix:"DATABASE_"`
}

// parseEnvOptions reads the option fields from the environment using the
// caarlos0/env library. Unset variables are left nil and fall through to
// defaults; explicitly set values are validated as written.
func parseEnvOptions() (*Config, error) {
	var opts envOptions
	if err := env.Parse(&opts); err != nil {
		return nil, &ParseError{Path: "environment", Err: err}
	}

	if opts.LogLevel != nil {
		if err := validateLogLevel(LogLevel(*opts.LogLevel)); err != nil {
			return nil, err
		}
	}
	if opts.Port != nil {
		if err := validatePort(*opts.Port); err != nil {
			return nil, err
		}
	}
	if opts.HeartbeatInterval != nil {
		if err := validateHeartbeatInterval(*opts.HeartbeatInterval); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if opts.LogLevel != nil {
		cfg.LogLevel = LogLevel(*opts.LogLevel)
	}
	if opts.Port != nil {
		cfg.Port = *opts.Port
	}
	if opts.HeartbeatInterval != nil {
		cfg.HeartbeatInterval = *opts.HeartbeatInterval
	}
	if opts.Database.DSN != nil {
		cfg.Database.DSN = *opts.Database.DSN
	}

	return cfg, nil
}

// parseSupervisorEnv reads the host-injected Supervisor settings. These are
// consulted on every load, independently of the option sources, because the
// host supplies them even when an options document is present.
func parseSupervisorEnv() (Supervisor, error) {
	var sup Supervisor
	if err := env.Parse(&sup); err != nil {
		return Supervisor{}, &ParseError{Path: "environment", Err: err}
	}

	return sup, nil
}
