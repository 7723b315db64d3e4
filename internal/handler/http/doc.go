// Package http wires the add-on's example web surface onto a chi router:
// an index page, a health check backed by the Supervisor API and the
// optional event store, a build-version endpoint, and the event log
// listing. Middleware attaches a trace identifier and a request-scoped
// structured logger to every request.
package http
