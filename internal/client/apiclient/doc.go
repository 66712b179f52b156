// Package apiclient is the client's HTTP request layer.
//
// # Overview
//
// Client.Do builds a request (method, headers, JSON body, bearer token),
// then dispatches it either to the live backend or to the in-process Mock,
// depending on the runtime configuration read before every call: an empty
// API base URL or the "__MOCK__" sentinel selects the mock.
//
// Login, Register and Health wrap Do for the three known endpoints. Login
// additionally normalizes the response envelope into a LoginResponse.
//
// # Error Handling
//
// Every failure is a *APIError carrying a status and a message:
//   - 0: no HTTP response (transport failure, cancelled context);
//   - 500: response shape not recognized (synthesized locally);
//   - otherwise the HTTP status of the response.
//
// Match with errors.As, or with the IsUnauthorized / IsNetwork / IsNotFound
// helpers. Any live 401 clears the stored auth data before the error is
// returned. There are no retries; retrying is the caller's decision.
//
// # Concurrency
//
// A Client is safe for concurrent use. Calls are independent: no queue, no
// rate limit, no cap on in-flight requests. Cancellation is through ctx.
package apiclient
