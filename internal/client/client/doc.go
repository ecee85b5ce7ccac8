// Package client contains the client-side building blocks that talk to the
// outside world.
//
// # Overview
//
// The package provides:
//  1. The Client interface: the four remote contact operations (List,
//     Create, Update, Delete), one round trip each, no retries.
//  2. HTTPClient, the JSON-over-HTTP implementation against the /contacto
//     endpoint. It stamps every request with an X-Request-Id and bounds it
//     with the configured timeout.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite database and applies the embedded goose migrations.
//
// # Error Handling
//
// Every remote failure is a *TransportError wrapping one of the sentinels
// ErrUnavailable (network failure, timeout, 5xx), ErrNotFound (404) or
// ErrRejected (400/422, the server refused the payload). Match them with
// errors.Is.
package client
