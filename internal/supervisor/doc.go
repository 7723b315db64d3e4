// Package supervisor implements the REST client for the Supervisor API the
// host exposes to installed add-ons.
//
// The client authenticates with the bearer token the host injects via the
// environment (see [config.Supervisor]) and talks to a fixed set of
// endpoints: host information, the add-on's own metadata, and the Home
// Assistant core API details. A failed request surfaces either as
// [ErrUnauthorized] or as an [*APIError] carrying the status code and the
// host's error message.
package supervisor
