// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SupervisorInfo is the payload of GET /info on the Supervisor API. Only the
// fields the add-on skeleton consumes are modelled; the host sends more.
type SupervisorInfo struct {
	// Version is the currently installed Supervisor version.
	Version string `json:"version"`

	// VersionLatest is the newest Supervisor version available on the
	// configured channel.
	VersionLatest string `json:"version_latest"`

	// Channel is the update channel the host follows
	// ("stable", "beta" or "dev").
	Channel string `json:"channel"`

	// Arch is the machine architecture the host reports (e.g. "amd64").
	Arch string `json:"arch"`

	// Supported reports whether the host runs a supported installation.
	Supported bool `json:"supported"`

	// Healthy reports whether the Supervisor considers itself healthy.
	Healthy bool `json:"healthy"`

	// Timezone is the host timezone (e.g. "Europe/Amsterdam").
	Timezone string `json:"timezone"`
}

// AddonInfo is the payload of GET /addons/self/info: the host's view of the
// calling add-on itself.
type AddonInfo struct {
	// Name is the human-readable add-on name.
	Name string `json:"name"`

	// Slug is the unique add-on identifier assigned by the host.
	Slug string `json:"slug"`

	// Version is the installed add-on version.
	Version string `json:"version"`

	// Hostname is the DNS name of the add-on container on the internal
	// network.
	Hostname string `json:"hostname"`

	// State is the lifecycle state the host reports
	// ("started", "stopped", ...).
	State string `json:"state"`

	// Ingress reports whether the add-on exposes its web interface
	// through the host's ingress proxy.
	Ingress bool `json:"ingress"`

	// IngressURL is the ingress entry path when Ingress is true.
	IngressURL string `json:"ingress_url"`
}

// HomeAssistantAPIInfo is the payload of GET /homeassistant/api: connection
// details for reaching the Home Assistant core API through the Supervisor.
type HomeAssistantAPIInfo struct {
	// Version is the running Home Assistant core version.
	Version string `json:"version"`

	// Port is the port the core API listens on.
	Port int `json:"port"`

	// SSL reports whether the core API requires TLS.
	SSL bool `json:"ssl"`
}
