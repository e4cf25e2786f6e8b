package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents an error attached to a specific field or identifier
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound         = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest       = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer   = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict         = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrUnprocessable    = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}
	ErrStoreUnavailable = &AppError{Code: http.StatusServiceUnavailable, Message: "Store temporarily unavailable"}
	ErrEmptyCart        = &AppError{Code: http.StatusBadRequest, Message: "Cart is empty"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewSaleConflictError creates a 409 naming every identifier that lost the
// race during sale finalization.
func NewSaleConflictError(ornamentIDs []string) *AppError {
	fieldErrors := make([]FieldError, 0, len(ornamentIDs))
	for _, id := range ornamentIDs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   id,
			Message: "Item not found or already sold",
		})
	}
	return &AppError{
		Code:    http.StatusConflict,
		Message: "One or more items are no longer available",
		Errors:  fieldErrors,
	}
}

// NewDuplicateItemError creates a 400 for a cart listing the same identifier twice
func NewDuplicateItemError(ornamentID string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Duplicate item in cart: " + ornamentID,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsConflict reports whether the error is a 409 conflict
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusConflict
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
