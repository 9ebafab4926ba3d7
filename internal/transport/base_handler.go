package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/techhive/user-api/internal"
	"github.com/techhive/user-api/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an AppError using its wire shape.
func (h *BaseHandler) WriteError(w http.ResponseWriter, appErr *internal.AppError) {
	h.Logger.Debug("http error", "status", appErr.StatusCode, "message", appErr.Message)
	h.WriteJSON(w, appErr.StatusCode, appErr)
}
