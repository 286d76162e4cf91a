// Package commons holds the HTTP plumbing shared by the feature
// controllers: JSON responses and the error-kind to status mapping.
package commons

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "radagast/internal/errors"
)

type errorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// WriteError translates an error into its HTTP response. Unknown kinds are
// reported as a generic 500 without leaking the cause.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteJSON(w, logger, http.StatusBadRequest, errorResponse{
			Error:   "VALIDATION_ERROR",
			Message: ve.Message,
			Details: ve.Details,
		})
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		logger.Info("resource not found", zap.String("reason", nfe.Message))
		WriteJSON(w, logger, http.StatusNotFound, errorResponse{
			Error:   "NOT_FOUND",
			Message: nfe.Message,
		})
		return
	}

	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		logger.Warn("authentication failed", zap.String("reason", ue.Message))
		WriteJSON(w, logger, http.StatusUnauthorized, errorResponse{
			Error:   "UNAUTHORIZED",
			Message: ue.Message,
		})
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		WriteJSON(w, logger, http.StatusConflict, errorResponse{
			Error:   "CONFLICT",
			Message: ce.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteJSON(w, logger, http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}
