// Package timeouts defines the shared timeout budgets for portfolio servers.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server drains in-flight requests.
const Shutdown = 5 * time.Second

// ContactRelay caps one call to the transactional email provider.
const ContactRelay = 10 * time.Second

// TelemetryShutdown caps the final span flush on process exit.
const TelemetryShutdown = 5 * time.Second
