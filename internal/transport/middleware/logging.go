package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
)

// RequestLogger is the innermost stage: it runs only for requests that
// passed authentication. It records method and path before dispatch, then
// emits one summary line per request once the handler has written a status.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("handling request",
				"method", r.Method,
				"path", r.URL.Path)

			ww := &responseWriter{ResponseWriter: w}

			next.ServeHTTP(ww, r)

			status := ww.statusCode
			if status == 0 {
				status = http.StatusOK
			}

			logger.Info(fmt.Sprintf("HTTP %s %s => %d", r.Method, r.URL.Path, status))
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	return rw.ResponseWriter.Write(b)
}
