package api

import (
	"errors"
	"net/http"

	"subscription-api/internal/services"

	"gorm.io/gorm"
)

// statusForError maps service layer errors onto HTTP status codes
func statusForError(err error) int {
	var validationErr *services.ValidationError
	var conflictErr *services.ConflictError
	var dependencyErr *services.DependencyError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.As(err, &dependencyErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
