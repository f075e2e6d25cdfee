package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes used across the domain
const (
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadyExists   = "ALREADY_EXISTS"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidState    = "INVALID_STATE"
	CodeConflict        = "CONFLICT"
	CodeForbidden       = "FORBIDDEN"
	CodeUnauthenticated = "UNAUTHENTICATED"
)

// Common domain errors
var (
	ErrNotFound        = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists   = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput    = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrForbidden       = NewDomainError(CodeForbidden, "Access to this resource is forbidden")
	ErrUnauthenticated = NewDomainError(CodeUnauthenticated, "Authentication required")
	ErrInvalidState    = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
)

// NewValidationError creates a validation error for malformed or
// business-rule-violating input.
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeInvalidInput, message)
}

// NewNotFoundError creates a not-found error for a missing entity reference.
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewConflictError creates a conflict error for uniqueness violations or
// mutations rejected by the current document state.
func NewConflictError(message string) *DomainError {
	return NewDomainError(CodeConflict, message)
}

// NewForbiddenError creates a forbidden error for insufficient role.
func NewForbiddenError(message string) *DomainError {
	return NewDomainError(CodeForbidden, message)
}

// NewUnauthenticatedError creates an error for a missing or invalid credential.
func NewUnauthenticatedError(message string) *DomainError {
	return NewDomainError(CodeUnauthenticated, message)
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	if de, ok := err.(*DomainError); ok {
		return de.Code == code
	}
	return false
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	return IsCode(err, CodeNotFound)
}
