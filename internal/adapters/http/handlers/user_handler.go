package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	users ports.UserService
}

// NewUserHandler creates a new UserHandler with the given service port.
func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers handles GET /api/v1/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePage(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	users, err := h.users.ListUsers(r.Context(), limit, offset)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// Me handles GET /api/v1/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := ports.ActorFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("%w: no actor", domain.ErrUnauthenticated))
		return
	}

	u, err := h.users.GetUser(r.Context(), actor.UserID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// GetUser handles GET /api/v1/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	u, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// UpdateUser handles PATCH /api/v1/users/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	u, err := h.users.UpdateUser(r.Context(), id, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}
