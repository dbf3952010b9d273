// Package client talks to the EasyPost REST API.
//
// # Overview
//
// ShippingClient is the transport-agnostic contract used by the CLI;
// EasyPostClient implements it over HTTPS with basic auth (the API key is the
// user name) and JSON bodies wrapped in the object name, e.g.
// {"address": {...}}.
//
// # Error Handling
//
// Non-2xx responses become *APIError. Its Unwrap maps status codes onto the
// sentinels ErrUnauthorized, ErrNotFound and ErrUnavailable; transport
// failures wrap ErrUnavailable as well. Match them with errors.Is.
//
// # Retries
//
// Read requests go through a pester client configured with the requested
// number of attempts. Writes (create, buy) are always attempted once, so a
// retried timeout can never buy the same label twice.
package client
