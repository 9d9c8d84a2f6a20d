// Package api contains the client-side building blocks for talking to the
// Flicksy backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     whole API surface the terminal client consumes: authentication, the
//     post feed, comments, likes, search, trending topics, verification
//     requests, and the admin dashboard.
//  2. A concrete HTTP implementation (see HTTPClient) that serializes
//     JSON bodies, attaches the bearer credential obtained from a
//     CredentialSource, and maps transport and status failures to sentinel
//     errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers match with
// errors.Is: ErrUnauthorized, ErrNotFound, ErrUnavailable. Responses with a
// backend-supplied reason additionally carry a *APIError whose Detail field
// holds the human-readable message for inline display.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation and timeouts.
package api
