// Package server provides the HTTP REST API for the portal backend.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sarkariportal/backend/internal/types"
)

// sessionCookie is the name of the admin session cookie.
const sessionCookie = "portal_session"

type contextKey string

const claimsKey contextKey = "claims"

// requireAuth rejects requests without a valid session cookie and stashes
// the claims in the request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "authentication required")
			return
		}

		claims, err := s.jwtService.ValidateToken(cookie.Value)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "invalid session")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

// handleLogin checks the admin credentials and issues the session cookie.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if s.adminEmail == "" || req.Email != s.adminEmail ||
		!s.passwords.VerifyPassword(req.Password, s.adminPasswordHash) {
		err := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(s.jwtService.config.ExpirationHours) * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.jsonResponse(w, http.StatusOK, map[string]string{"email": req.Email})
}

// handleMe returns the logged-in admin identity.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(claimsKey).(*Claims)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"email": claims.Email})
}

// handleLogout clears the session cookie.
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
