package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/snaptrail/pkg/ctxutil"
)

// Logger writes one "http.request" record per request. Server errors are
// logged at error level.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			ctx := r.Context()
			attrs := make([]slog.Attr, 0, 7)
			attrs = append(attrs,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			if actor, ok := ctxutil.ActorFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("actor", actor))
			}

			level := slog.LevelInfo
			if rw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

// responseRecorder keeps the first status code and counts body bytes.
type responseRecorder struct {
	http.ResponseWriter
	status  int
	written int64
	sent    bool
}

func (w *responseRecorder) WriteHeader(code int) {
	if !w.sent {
		w.status = code
		w.sent = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.sent = true
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}
