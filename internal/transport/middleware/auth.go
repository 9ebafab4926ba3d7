package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/techhive/user-api/internal"
)

const (
	bearerPrefix        = "Bearer "
	fallbackTokenHeader = "X-API-TOKEN"
)

// TokenAuth gates every request behind a shared-secret token, except paths
// under the given exempt prefixes (the documentation endpoints). The token
// comes from "Authorization: Bearer <t>" or, when that header is absent,
// from X-API-TOKEN, and is compared case-sensitive and exact.
//
// A denial short-circuits the chain: the logging stage nested inside never
// runs for that request, so the warning emitted here is the only audit
// record of an unauthorized attempt. That gap is a documented trade-off of
// the chain ordering, not an oversight.
func TokenAuth(expectedToken string, exemptPrefixes []string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range exemptPrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			token := extractToken(r)
			if token == "" || token != expectedToken {
				logger.Warn("unauthorized request",
					"method", r.Method,
					"path", r.URL.Path)
				writeStageError(w, internal.NewUnauthorizedError())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		if strings.HasPrefix(authHeader, bearerPrefix) {
			return authHeader[len(bearerPrefix):]
		}
		return ""
	}
	return r.Header.Get(fallbackTokenHeader)
}
