package dto

import (
	"net/http"

	"github.com/finvoice/backend/internal/domain/shared"
)

// Wire error codes. Domain error codes pass through unchanged; the
// HTTP-only codes below cover failures that never reach a service.
const (
	ErrCodeValidation     = shared.CodeValidation
	ErrCodeNotFound       = shared.CodeNotFound
	ErrCodeAlreadyExists  = shared.CodeAlreadyExists
	ErrCodeConflict       = shared.CodeConflict
	ErrCodeReferenceInUse = shared.CodeReferenceInUse
	ErrCodeConcurrency    = shared.CodeConcurrencyConflict
	ErrCodeInvalidState   = shared.CodeInvalidState
	ErrCodeUnauthorized   = shared.CodeUnauthorized
	ErrCodeInternal       = shared.CodeInternal

	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeRateLimited     = "RATE_LIMIT_EXCEEDED"
	ErrCodePayloadTooLarge = "REQUEST_TOO_LARGE"
)

// errorCodeHTTPStatus maps wire error codes to HTTP status codes.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeAlreadyExists:   http.StatusConflict,
	ErrCodeConflict:        http.StatusConflict,
	ErrCodeReferenceInUse:  http.StatusConflict,
	ErrCodeConcurrency:     http.StatusConflict,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeInvalidState:    http.StatusUnprocessableEntity,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeInternal:        http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a wire error code. Unknown
// codes map to 500 so a missing entry can never hide a failure.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
