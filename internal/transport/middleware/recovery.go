package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/techhive/user-api/internal"
)

// Recovery is the outermost stage of the chain: it contains any panic from
// the stages and handlers nested inside it. The full panic value and stack
// are logged server-side; the client only ever sees the generic 500 body.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"error", err,
						"method", r.Method,
						"url", r.URL.String(),
						"stack", string(debug.Stack()))

					writeStageError(w, internal.NewInternalError(nil))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// writeStageError writes an AppError from middleware, outside any handler.
func writeStageError(w http.ResponseWriter, appErr *internal.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)
	_ = json.NewEncoder(w).Encode(appErr)
}
