package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/FrancisEgan/TodoApp/internal/core/domain"
)

// SignupRequest is the payload for POST /auth/signup.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// SetPasswordRequest is the payload for POST /auth/set-password.
type SetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is a message-style auth reply.
type AuthResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId,omitempty"`
}

// LoginResponse carries a fresh bearer token and the account identity.
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)

		return
	}

	user, err := s.app.Signup(r.Context(), req.FirstName, req.LastName, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail), errors.Is(err, domain.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, AuthResponse{Message: err.Error()})
		default:
			log.Printf("Failed to sign up: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Message: "Verification email sent. Please check your inbox.",
		UserID:  user.ID,
	})
}

func (s *Server) handleSetPassword(w http.ResponseWriter, r *http.Request) {
	var req SetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)

		return
	}

	user, bearer, err := s.app.SetPassword(r.Context(), req.Token, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrWeakPassword):
			writeJSON(w, http.StatusBadRequest, AuthResponse{Message: err.Error()})
		default:
			log.Printf("Failed to set password: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, loginResponse(user, bearer))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)

		return
	}

	user, bearer, err := s.app.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		} else {
			log.Printf("Failed to log in: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, loginResponse(user, bearer))
}

func (s *Server) handleResendVerification(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	if err := s.app.ResendVerification(r.Context(), email); err != nil {
		log.Printf("Failed to resend verification: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	// Same reply whether or not the email exists.
	writeJSON(w, http.StatusOK, AuthResponse{
		Message: "If the email exists, a verification link has been sent.",
	})
}

func loginResponse(user *domain.User, bearer string) LoginResponse {
	return LoginResponse{
		Token:     bearer,
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
