package domain

import "errors"

var (
	ErrDuplicateResource = errors.New("duplicate resource")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInternal          = errors.New("internal failure")
)

// Error codes reported in logs and HTTP error bodies.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeStateConflict    = "STATE_CONFLICT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInternalFailure  = "INTERNAL_FAILURE"
)

// ErrorCode classifies a wrapped domain error.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrForbidden), errors.Is(err, ErrDuplicateResource):
		return CodeValidationFailed
	case errors.Is(err, ErrConflict):
		return CodeStateConflict
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	default:
		return CodeInternalFailure
	}
}
