package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/blog-platform/internal/logger"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) error
}

// RegisterRequest represents the body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a hashed password and redirects to the login page.
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 302 "Redirect to /login.html"
// @Failure 500 {object} handlers.errorResponse "Error registering user"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if isJSON(r) {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusInternalServerError, "Error registering user")
				return
			}
		} else {
			req.Username = r.FormValue("username")
			req.Password = r.FormValue("password")
		}

		// Uniqueness violations and store failures share one message on
		// the wire; the cause is only logged server-side.
		if err := svc.Register(r.Context(), req.Username, req.Password); err != nil {
			logger.Log.Errorw("registration failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Error registering user")
			return
		}

		http.Redirect(w, r, "/login.html", http.StatusFound)
	}
}
