// Package auth, as part of the authentication module.
// This file, `handlers.go`, handles the HTTP side of authentication: the login
// endpoint, plus the shared response-writing helpers used across the API.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/market-go/apperror"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleLogin godoc
// @Summary User Login
// @Description Logs in the demo user and returns a signed session token valid for the configured window (2h by default).
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.LoginResponse "Login successful, token provided"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - email or password missing"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid credentials"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("email y password son obligatorios", nil))
			return
		}
		defer r.Body.Close()

		// Presence validation only; anything beyond that is the service's job.
		if req.Email == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("email y password son obligatorios", nil))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// Helper functions for writing responses.
// These centralize response writing so every endpoint emits the same shapes.

// WriteJSON serializes `data` to JSON and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil { // Avoid writing nil, which would produce a "null" body
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"message":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into the standardized `{"message": ...}` body
// with the status code dictated by its apperror type. Errors that are not
// AppErrors fall outside the documented contract and become generic 500s.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("error interno del servidor", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
