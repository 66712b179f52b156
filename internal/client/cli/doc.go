// Package cli provides the interactive terminal client.
//
// It wires the runtime env reader, the persistent key-value store, the API
// request layer and the UI state containers behind a small REPL.
//
// Key features:
//   - Login / Register / Logout against the API (or the built-in mock)
//   - Health check with a retry control
//   - Status and a protected area guarded by the access token predicate
//   - Persisted light/dark theme
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
