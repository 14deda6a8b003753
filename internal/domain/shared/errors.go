package shared

import "fmt"

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

// Error codes recognised by the CLI boundary
const (
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeSchemaMissing = "SCHEMA_MISSING"
)

// NotFound creates a NOT_FOUND error with a formatted message
func NotFound(format string, args ...any) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf(format, args...))
}

// Conflict creates a CONFLICT error with a formatted message
func Conflict(format string, args ...any) *DomainError {
	return NewDomainError(CodeConflict, fmt.Sprintf(format, args...))
}

// Invalid creates an INVALID_INPUT error with a formatted message
func Invalid(format string, args ...any) *DomainError {
	return NewDomainError(CodeInvalidInput, fmt.Sprintf(format, args...))
}

// ErrSchemaMissing is returned by the persistence layer when the store has not
// been initialised yet. The CLI boundary turns it into init-db guidance.
var ErrSchemaMissing = NewDomainError(CodeSchemaMissing, "database schema not found")

func hasCode(err error, code string) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == code
}

// IsNotFound reports whether err is a NOT_FOUND domain error
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsConflict reports whether err is a CONFLICT domain error
func IsConflict(err error) bool { return hasCode(err, CodeConflict) }

// IsValidation reports whether err is an INVALID_INPUT domain error
func IsValidation(err error) bool { return hasCode(err, CodeInvalidInput) }

// IsSchemaMissing reports whether err indicates an uninitialised store
func IsSchemaMissing(err error) bool { return hasCode(err, CodeSchemaMissing) }
