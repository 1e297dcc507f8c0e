package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chaintrace/custody-api/internal/domain"
	"github.com/chaintrace/custody-api/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest        ErrorCode = "bad_request"
	errCodeNotFound          ErrorCode = "not_found"
	errCodeValidationFailed  ErrorCode = "validation_failed"
	errCodeInvalidSignature  ErrorCode = "invalid_signature"
	errCodeSignatureMismatch ErrorCode = "signature_mismatch"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeLedgerError   ErrorCode = "ledger_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// mismatchDetails aids debugging a failed verification without exposing the
// signature itself
type mismatchDetails struct {
	Recovered string `json:"recovered"`
	Handler   string `json:"handler"`
	ChainID   uint64 `json:"chain_id"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details interface{}) {
	c.JSON(statusCode, errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondServiceError maps a custody-service error onto the wire taxonomy
func respondServiceError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", validationErr.Detail)
		return
	}

	var mismatchErr *domain.SignatureMismatchError
	if errors.As(err, &mismatchErr) {
		respondWithError(c, http.StatusUnauthorized, errCodeSignatureMismatch,
			"Signature does not match handler", mismatchDetails{
				Recovered: mismatchErr.Recovered,
				Handler:   mismatchErr.Handler,
				ChainID:   mismatchErr.ChainID,
			})
		return
	}

	if errors.Is(err, domain.ErrMalformedSignature) || errors.Is(err, domain.ErrRecovery) {
		respondWithError(c, http.StatusBadRequest, errCodeInvalidSignature, "Signature could not be verified", err.Error())
		return
	}

	if errors.Is(err, domain.ErrItemNotFound) {
		respondWithError(c, http.StatusNotFound, errCodeNotFound, "Item not found", err.Error())
		return
	}

	var writeErr *domain.LedgerWriteError
	if errors.As(err, &writeErr) {
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusBadGateway, errCodeLedgerError, "Ledger write failed", writeErr.Err.Error())
		return
	}

	logger.Error(err, zap.String("path", c.Request.URL.Path))
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, "Internal error", nil)
}
