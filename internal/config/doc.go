// Package config resolves the add-on configuration from the first available
// source in a fixed precedence order and produces a validated, immutable
// [Config] value.
//
// Precedence (highest first):
//  1. The first existing options document among the candidate paths
//     (in production /data/options.json, written by the host; then the
//     local-development copy data/options.json).
//  2. Per-field environment variables, consulted only when no candidate
//     file exists.
//  3. Documented defaults for every remaining field.
//
// The Supervisor section is host-environment data and is read from the
// environment on every load, independent of the option sources.
//
// The main entry point is [Load]. Failures are reported as [*ParseError]
// (the located source is not valid JSON) or [*ValidationError] (a field
// violates its constraint); the absence of a source is never an error.
package config
