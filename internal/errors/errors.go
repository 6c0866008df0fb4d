// Package errors provides custom error types for the Centavo API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Validation errors.
var (
	ErrInvalidDate        = &AppError{Code: "INVALID_DATE", Message: "Invalid date", StatusCode: http.StatusBadRequest}
	ErrInvalidPeriod      = &AppError{Code: "INVALID_PERIOD", Message: "Period must be 'week', 'month', or 'custom'", StatusCode: http.StatusBadRequest}
	ErrInvalidPeriodRange = &AppError{Code: "INVALID_PERIOD_RANGE", Message: "Budget end date must be on or after start date", StatusCode: http.StatusBadRequest}
	ErrEmptyBudgetName    = &AppError{Code: "EMPTY_BUDGET_NAME", Message: "Budget name must not be empty", StatusCode: http.StatusBadRequest}
	ErrInvalidAmount      = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be a positive integer", StatusCode: http.StatusBadRequest}
	ErrPaidByRequired     = &AppError{Code: "PAID_BY_REQUIRED", Message: "Paid by is required", StatusCode: http.StatusBadRequest}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)

// Assignment errors.
var (
	ErrOutsidePeriod = &AppError{Code: "OUTSIDE_PERIOD", Message: "Expense is outside the budget period", StatusCode: http.StatusBadRequest}
	ErrWeekMismatch  = &AppError{Code: "WEEK_MISMATCH", Message: "Budget does not belong to the requested week", StatusCode: http.StatusBadRequest}
)
