// Package api is the typed REST client for the roulette admin backend.
//
// All responses travel in a JSON envelope: {code, message, data} on success
// and {code, message, errors?} on failure, where errors is an optional
// field-name to message map used for field-level validation. Failures with a
// decodable envelope become *Error carrying the HTTP status, machine code,
// message, and field map; transport and decoding failures are wrapped as
// plain errors.
//
// Paginated endpoints take 0-based page and size query parameters.
package api
