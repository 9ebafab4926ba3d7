package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/techhive/user-api/internal"
	"github.com/techhive/user-api/internal/transport"
	"github.com/techhive/user-api/pkg/logger"
)

type ServiceAPI interface {
	ListUsers() []User
	GetUser(id int64) (*User, error)
	CreateUser(dto *CreateUserDTO) (*User, error)
	UpdateUser(id int64, dto *UpdateUserDTO) (*User, error)
	DeleteUser(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// Routes registers the CRUD surface on the given subrouter.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListUsers)
	r.Post("/", h.CreateUser)
	r.Get("/{id}", h.GetUser)
	r.Put("/{id}", h.UpdateUser)
	r.Delete("/{id}", h.DeleteUser)
}

// ListUsers handles GET /users. It never fails.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.ListUsers())
}

// GetUser handles GET /users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	u, err := h.Service.GetUser(id)
	if err != nil {
		h.writeServiceError(w, err, id)
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("CreateUser: invalid request body", "error", err)
		h.WriteError(w, internal.NewBadRequestError("Invalid request body."))
		return
	}

	u, err := h.Service.CreateUser(&dto)
	if err != nil {
		h.writeServiceError(w, err, 0)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", u.ID))
	h.WriteJSON(w, http.StatusCreated, u)
}

// UpdateUser handles PUT /users/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	var dto UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("UpdateUser: invalid request body", "user_id", id, "error", err)
		h.WriteError(w, internal.NewBadRequestError("Invalid request body."))
		return
	}

	u, err := h.Service.UpdateUser(id, &dto)
	if err != nil {
		h.writeServiceError(w, err, id)
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

// DeleteUser handles DELETE /users/{id}. Repeated deletes of the same ID
// keep returning 404.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteUser(id); err != nil {
		h.writeServiceError(w, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// userID parses the {id} route parameter. A non-integer ID can never match
// a stored user, so it is reported as not found rather than bad request.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.WriteError(w, internal.NewNotFoundError(fmt.Sprintf("User with ID %s not found.", raw)))
		return 0, false
	}
	return id, true
}

// writeServiceError maps service errors onto the wire contract. Validation
// and not-found are normal local outcomes; anything else is a fault and
// surfaces as a generic 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, id int64) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.WriteError(w, appErr)
		return
	}
	if errors.Is(err, ErrNotFound) {
		h.WriteError(w, internal.NewNotFoundError(fmt.Sprintf("User with ID %d not found.", id)))
		return
	}
	if errors.Is(err, ErrConflict) {
		h.WriteError(w, internal.NewConflictError(fmt.Sprintf("User with ID %d already exists.", id)))
		return
	}
	h.Logger.Error("unexpected service error", "error", err)
	h.WriteError(w, internal.NewInternalError(err))
}
