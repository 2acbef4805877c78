// Package server provides the HTTP REST API for the portal backend.
package server

import (
	"errors"
	"net/http"

	"github.com/sarkariportal/backend/internal/parsing"
	"github.com/sarkariportal/backend/internal/types"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		insufficient   *parsing.InsufficientInputError
		apiCall        *parsing.APICallError
		parse          *parsing.ParseError
		notPublishable *types.ErrNotPublishable
		credentials    *ErrInvalidCredentials
	)

	switch {
	case errors.As(err, &insufficient), errors.As(err, &notPublishable):
		return http.StatusBadRequest
	case errors.As(err, &credentials):
		return http.StatusUnauthorized
	case errors.As(err, &apiCall), errors.As(err, &parse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
