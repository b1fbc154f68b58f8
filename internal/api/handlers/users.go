package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mkj/summerhouse-voting/internal/api/middleware"
	"github.com/mkj/summerhouse-voting/internal/config"
	"github.com/mkj/summerhouse-voting/internal/domain"
	"github.com/mkj/summerhouse-voting/internal/service"
	"github.com/mkj/summerhouse-voting/internal/session"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	userService *service.UserService
	cfg         *config.Config
}

func NewUserHandler(userService *service.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{userService: userService, cfg: cfg}
}

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CheckUserRequest struct {
	Email string `json:"email"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

type CheckUserResponse struct {
	Exists bool `json:"exists"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type CurrentUserResponse struct {
	User UserResponse `json:"user"`
}

// Register handles POST /api/users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		respondError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	user, token, err := h.userService.Register(r.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			respondError(w, http.StatusConflict, "Email already registered")
			return
		}
		logrus.Errorf("users.Register: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	session.Attach(w, token, h.cfg.SessionMaxAge())
	respondJSON(w, http.StatusOK, CurrentUserResponse{User: newUserResponse(user)})
}

// Check handles POST /api/users/check.
func (h *UserHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req CheckUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	exists, err := h.userService.EmailExists(r.Context(), req.Email)
	if err != nil {
		logrus.Errorf("users.Check: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to check user")
		return
	}

	respondJSON(w, http.StatusOK, CheckUserResponse{Exists: exists})
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	user, token, err := h.userService.Login(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		logrus.Errorf("users.Login: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	session.Attach(w, token, h.cfg.SessionMaxAge())
	respondJSON(w, http.StatusOK, CurrentUserResponse{User: newUserResponse(user)})
}

// Me handles GET /api/users. The 401 for a missing cookie comes from
// RequireSession; a cookie that no longer resolves to a user is a 404.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.SessionToken(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "No session found")
		return
	}

	user, err := h.userService.CurrentUser(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		logrus.Errorf("users.Me: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	respondJSON(w, http.StatusOK, CurrentUserResponse{User: newUserResponse(user)})
}

// Logout handles DELETE /api/users. Logout needs no valid session; it just
// expires the cookie.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.Clear(w)
	respondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
