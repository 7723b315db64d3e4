// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// optionsDocument mirrors the JSON options document the host writes for the
// add-on. Every field is a pointer so that an explicitly supplied value is
// distinguishable from an absent key: absent keys fall back to defaults,
// explicit values are validated as written (an explicit "port": 0 is a
// validation failure, not a silent fallback to 8000).
type optionsDocument struct {
	LogLevel          *string           `json:"log_level"`
	Port              *int              `json:"port"`
	HeartbeatInterval *Duration         `json:"heartbeat_interval"`
	Database          *databaseDocument `json:"database"`
}

type databaseDocument struct {
	DSN *string `json:"dsn"`
}

// parseOptions reads and decodes the options document at path. The decode is
// schema-checked: unknown keys and type-mismatched values are reported as
// [*ValidationError] naming the key, while malformed JSON is reported as
// [*ParseError] carrying the path.
func parseOptions(path string) (*Config, error) {
	optionsFile, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer optionsFile.Close()

	decoder := json.NewDecoder(optionsFile)
	decoder.DisallowUnknownFields()

	var doc optionsDocument
	if err := decoder.Decode(&doc); err != nil {
		return nil, classifyDecodeError(path, err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return doc.toConfig(), nil
}

// validate checks every explicitly supplied field as written, before absent
// fields are filled from defaults.
func (doc *optionsDocument) validate() error {
	if doc.LogLevel != nil {
		if err := validateLogLevel(LogLevel(*doc.LogLevel)); err != nil {
			return err
		}
	}

	if doc.Port != nil {
		if err := validatePort(*doc.Port); err != nil {
			return err
		}
	}

	if doc.HeartbeatInterval != nil {
		if err := validateHeartbeatInterval(time.Duration(*doc.HeartbeatInterval)); err != nil {
			return err
		}
	}

	return nil
}

// toConfig converts the document into a partial Config holding only the
// fields the document actually supplied; everything else stays zero and is
// filled by later merge layers.
func (doc *optionsDocument) toConfig() *Config {
	cfg := &Config{}

	if doc.LogLevel != nil {
		cfg.LogLevel = LogLevel(*doc.LogLevel)
	}
	if doc.Port != nil {
		cfg.Port = *doc.Port
	}
	if doc.HeartbeatInterval != nil {
		cfg.HeartbeatInterval = time.Duration(*doc.HeartbeatInterval)
	}
	if doc.Database != nil && doc.Database.DSN != nil {
		cfg.Database.DSN = *doc.Database.DSN
	}

	return cfg
}

// classifyDecodeError separates schema violations (unknown keys, wrong value
// types) from genuine syntax problems. Only the latter are parse errors; the
// former surface as deterministic validation errors naming the key.
func classifyDecodeError(path string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "(document root)"
		}
		return &ValidationError{
			Field:      field,
			Constraint: fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value),
		}
	}

	// encoding/json reports unknown keys as a plain error string:
	//   json: unknown field "some_key"
	if msg := err.Error(); strings.Contains(msg, "unknown field") {
		field := strings.Trim(msg[strings.LastIndex(msg, " ")+1:], `"`)
		return &ValidationError{
			Field:      field,
			Constraint: "unknown option",
		}
	}

	return &ParseError{Path: path, Err: err}
}
