// Package httputil provides shared HTTP response/request utilities for handlers.
//
// JSON handlers should use these helpers instead of writing raw
// http.ResponseWriter calls so that every endpoint returns the same error
// envelope.
package httputil
