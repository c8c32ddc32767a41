package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shravani12148/Goal--Based-Diversification-System/internal/apperror"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/logger"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/repository"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/service"
)

// ErrorResponse represents a JSON error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// respondJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondError writes a JSON error response with the given status code and message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps service and repository errors onto HTTP responses.
func respondServiceError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		respondJSON(w, appErr.StatusCode, ErrorResponse{Error: appErr.Message, Field: appErr.Field})
		return
	}

	switch {
	case errors.Is(err, repository.ErrRecordNotFound),
		errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrDuplicateRecord):
		respondError(w, http.StatusConflict, "a record for this month already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(w, http.StatusConflict, "email already in use")
	case errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidEmail):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// splitAndTrim splits a string by separator and trims whitespace from each part.
func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
