package dto

import (
	"net/http"

	"github.com/fakturo/backend/internal/domain/shared"
)

// Error codes used by the HTTP layer itself. Domain errors carry their own
// codes from the shared package.
const (
	// ErrCodeBadRequest is used for malformed request bodies and parameters
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInternal is used for unexpected server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	shared.CodeInvalidInput:    http.StatusBadRequest,
	shared.CodeUnauthenticated: http.StatusUnauthorized,
	shared.CodeForbidden:       http.StatusForbidden,
	shared.CodeNotFound:        http.StatusNotFound,
	shared.CodeAlreadyExists:   http.StatusConflict,
	shared.CodeConflict:        http.StatusConflict,
	shared.CodeInvalidState:    http.StatusConflict,

	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code. Unknown
// codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
