// Package common contains shared constants, sentinel errors and tiny helpers
// used by the client, the request layer and the dev server.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// BearerPrefix precedes the access token inside the Authorization header.
	BearerPrefix = "Bearer "
	// RequestIDHeaderName correlates a live request with server-side logs.
	RequestIDHeaderName = "X-Request-ID"
	// ContentTypeHeaderName is the canonical Content-Type header.
	ContentTypeHeaderName = "Content-Type"
	// JSONContentType is the default body type for requests with a payload.
	JSONContentType = "application/json"
)
