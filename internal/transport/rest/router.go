package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/techhive/user-api/internal"
	"github.com/techhive/user-api/internal/transport/middleware"
	"github.com/techhive/user-api/internal/transport/swagger"
	"github.com/techhive/user-api/internal/user"
)

// DocPrefixes are the documentation endpoints exempt from authentication.
var DocPrefixes = []string{"/swagger", "/openapi.yml"}

// RegisterAllRoutes wires the middleware chain and the API surface onto the
// router. The chain order is a contract: Recovery wraps everything so it
// sees faults from auth and logging too; TokenAuth gates route execution
// before any business logic; RequestLogger runs only for authenticated
// requests. RequestID sits inside Recovery as plain plumbing with nothing
// to short-circuit.
func RegisterAllRoutes(router *chi.Mux, cfg *internal.Config, userHandler *user.Handler, store StoreStats, logger *slog.Logger) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.TokenAuth(cfg.Security.Token(), DocPrefixes, logger))
	router.Use(middleware.RequestLogger(logger))

	// Documentation endpoints live outside the API prefix and are the only
	// paths the auth stage lets through without a token.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	healthHandler := NewHealthHandler(store)

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", healthHandler.pingHandler)
		r.Get("/health", healthHandler.healthCheckHandler)

		r.Route("/users", userHandler.Routes)

		// Deliberate fault to exercise the containment stage end to end.
		r.Get("/test/throw", throwHandler)
	})
}

// throwHandler always panics. The recovery stage converts the fault into
// the generic 500 contract; the panic message must never reach the client.
func throwHandler(w http.ResponseWriter, r *http.Request) {
	panic("deliberate test fault from /api/test/throw")
}
