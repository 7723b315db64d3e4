package config

import "fmt"

// ParseError reports that a located configuration source exists but is not
// valid structured data. It is distinct from a source simply being absent,
// which is never an error. Callers can match it with [errors.As].
type ParseError struct {
	// Path is the location of the offending source: a file path, or
	// "environment" when the environment variables themselves could not
	// be parsed.
	Path string
	// Err is the underlying syntax problem.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse configuration source %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports that an assembled configuration value violates a
// field constraint. The message always names the offending field and the
// constraint violated. Callers can match it with [errors.As].
type ValidationError struct {
	// Field is the option key of the offending field (e.g. "port").
	Field string
	// Constraint describes the violated constraint, including the
	// offending value.
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration field %q: %s", e.Field, e.Constraint)
}
