package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// AuthHandler serves the public account endpoints.
type AuthHandler struct {
	users ports.UserService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(users ports.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reg, err := req.ToRegistration()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	u, err := h.users.Register(r.Context(), reg)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(u))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pair, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTokenResponse(pair))
}

// Refresh handles POST /api/v1/auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pair, err := h.users.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTokenResponse(pair))
}
