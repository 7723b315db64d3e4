// Package store implements the optional Postgres-backed event log of the
// add-on skeleton.
//
// The store is only constructed when the configuration carries a database
// DSN; without one the add-on runs with persistence disabled and the rest of
// the application treats the [EventStore] as absent. Schema management is
// delegated to the migrations package (goose).
package store
