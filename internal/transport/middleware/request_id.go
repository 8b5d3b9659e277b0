package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/snaptrail/pkg/ctxutil"
)

// RequestIDHeader is read from requests and echoed on responses.
const RequestIDHeader = "X-Request-Id"

// RequestID reuses the incoming request id or generates one, and stores it
// in the context for audit logs.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
