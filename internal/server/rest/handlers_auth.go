package rest

import (
	"net/http"

	"github.com/dmitrijs2005/carekeeper/internal/models"
)

type messageBody struct {
	Message string `json:"message"`
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "CareKeeper backend is running",
	})
}

func (s *HTTPServer) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, token, err := s.users.Register(r.Context(), req)
	if err != nil {
		s.logger.Error(r.Context(), "signup failed", "error", err.Error())
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", user.Email)
	writeJSON(w, http.StatusCreated, models.AuthResponse{User: *user, Token: token})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, token, err := s.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.AuthResponse{User: *user, Token: token})
}

// handleLogout acknowledges the client's teardown. The bearer token is not
// invalidated server-side: verification is stateless, so a captured token
// stays valid until natural expiry.
func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageBody{Message: "Logged out"})
}
