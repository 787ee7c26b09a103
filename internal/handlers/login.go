package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/blog-platform/internal/logger"
	"github.com/sbilibin2017/blog-platform/internal/services"
	"github.com/sbilibin2017/blog-platform/internal/sessions"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates a user, sets the session cookie, and redirects to the dashboard.
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 302 "Redirect to /dashboard.html"
// @Failure 401 {object} handlers.errorResponse "User not found / Invalid credentials"
// @Failure 500 {object} handlers.errorResponse "Error logging in"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if isJSON(r) {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusInternalServerError, "Error logging in")
				return
			}
		} else {
			req.Username = r.FormValue("username")
			req.Password = r.FormValue("password")
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusUnauthorized, "User not found")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid credentials")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Error logging in")
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessions.CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})
		http.Redirect(w, r, "/dashboard.html", http.StatusFound)
	}
}
