package handler

import (
	"errors"
	"net/http"

	"github.com/mediatrack/mediatrack-go/internal/middleware"
	"github.com/mediatrack/mediatrack-go/internal/model"
	"github.com/mediatrack/mediatrack-go/internal/service"
)

// AuthHandler handles HTTP requests for registration, login and the current
// user's profile.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/users requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		var verrs service.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			writeErrors(w, http.StatusUnprocessableEntity, verrs...)
		case errors.Is(err, service.ErrEmailTaken):
			writeErrors(w, http.StatusBadRequest, service.FieldError{Msg: "User already exists"})
		default:
			writeInternal(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleLogin handles POST /api/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		var verrs service.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			writeErrors(w, http.StatusUnprocessableEntity, verrs...)
		case errors.Is(err, service.ErrInvalidCredentials):
			writeErrors(w, http.StatusBadRequest, service.FieldError{Msg: "Invalid email or password"})
		default:
			writeInternal(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleMe handles GET /api/auth requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Token is not valid, authorization denied")
		return
	}

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeMsg(w, http.StatusUnauthorized, "Token is not valid, authorization denied")
			return
		}
		writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
