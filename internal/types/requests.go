// Package types provides type definitions for structured data used throughout the portal backend.
package types

import "github.com/go-playground/validator/v10"

// LoginRequest represents the admin login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ParseRequest represents a notification text parse request.
type ParseRequest struct {
	RawText string `json:"rawText" validate:"required"`
}

// TrackRequest represents one recorded page view. All fields are optional;
// blank session ids are replaced server-side.
type TrackRequest struct {
	Page      string `json:"page,omitempty"`
	PostID    string `json:"postId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the request envelope of a Job create or update. The
// publish-time invariants are checked separately by ValidatePublishable.
func (j *Job) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
