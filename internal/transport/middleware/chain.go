// Package middleware carries audit context (request id and actor) from
// incoming HTTP requests into the request context, where the audit service
// picks it up when it records entries.
package middleware

import (
	"log/slog"
	"net/http"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one runs outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Audit is the standard stack: request id, actor resolution, request log.
func Audit(logger *slog.Logger, resolver ActorResolver) Middleware {
	return Chain(RequestID(), Actor(resolver), Logger(logger))
}
