// Package middleware holds HTTP middleware shared by the API routes.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/deckstudy/internal/api/shared"
	"github.com/phrazzld/deckstudy/internal/platform/logger"
)

// Trace adds a trace ID to the request context and response headers, and
// stores a request-scoped logger tagged with it so that handlers and
// services picking their logger from the context log the same trace_id.
// A nil base logger means slog.Default().
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			l := base
			if l == nil {
				l = slog.Default()
			}
			l = l.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, l)

			l.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(shared.TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
