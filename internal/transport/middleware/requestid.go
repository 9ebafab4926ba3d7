package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/techhive/user-api/pkg/logger"
)

// RequestID tags each request with a trace id, reusing one supplied by the
// caller when present. The id rides in the context-scoped logger and is
// echoed back on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)

		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
