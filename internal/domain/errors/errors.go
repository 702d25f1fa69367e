package errors

import (
	"net/http"

	"gwdining/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Cart / checkout validation failures. None of these mutate state; the
	// user corrects the input and retries.
	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Your cart is empty.",
		"",
	)

	ErrModeNotSelected = NewBaseError(
		http.StatusBadRequest,
		"MODE_NOT_SELECTED",
		"Please select Dine In or Pickup first.",
		"",
	)

	ErrInvalidMode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MODE",
		"Order mode must be dinein or pickup.",
		"",
	)

	ErrPaymentIncomplete = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_INCOMPLETE",
		"Please fill in all card details.",
		"",
	)

	ErrPaymentNotExpected = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_NOT_EXPECTED",
		"There is no pickup payment to complete.",
		"",
	)

	ErrCheckoutNotReady = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_NOT_READY",
		"Generate a ticket before checking out.",
		"",
	)

	ErrNoTicket = NewBaseError(
		http.StatusNotFound,
		"NO_TICKET",
		"No ticket has been issued yet.",
		"",
	)

	// Login validation failures.
	ErrMissingLoginFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_LOGIN_FIELDS",
		"Please fill in all fields.",
		"",
	)

	ErrInvalidGWID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GWID",
		"Invalid GWID. It must start with 'G' followed by 8 digits (e.g., G34488884).",
		"",
	)

	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"No user is logged in.",
		"",
	)

	// Review / accommodation validation failures.
	ErrReviewTextEmpty = NewBaseError(
		http.StatusBadRequest,
		"REVIEW_TEXT_EMPTY",
		"Please write a short review before posting.",
		"",
	)

	ErrRequestTextEmpty = NewBaseError(
		http.StatusBadRequest,
		"REQUEST_TEXT_EMPTY",
		"Please describe your dietary accommodation request.",
		"",
	)

	// External collaborator failures.
	ErrMenuUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"MENU_UNAVAILABLE",
		"Unable to load menu items.",
		"",
	)

	ErrLocationsUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATIONS_UNAVAILABLE",
		"Unable to load dining locations.",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"No dining location with that ID.",
		"",
	)

	ErrRouteFailed = NewBaseError(
		http.StatusBadGateway,
		"ROUTE_FAILED",
		"Unable to calculate route.",
		"",
	)

	// Validation-related errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found.",
		"",
	)
)
