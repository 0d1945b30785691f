package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// Kind is the closed set of failure categories surfaced to clients.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindPaymentRequired
	KindForbidden
	KindNotFound
	KindMethodNotAllowed
	KindConflict
)

var kindHTTPCodes = map[Kind]int{
	KindInternal:         http.StatusInternalServerError,
	KindValidation:       http.StatusBadRequest,
	KindUnauthorized:     http.StatusUnauthorized,
	KindPaymentRequired:  http.StatusPaymentRequired,
	KindForbidden:        http.StatusForbidden,
	KindNotFound:         http.StatusNotFound,
	KindMethodNotAllowed: http.StatusMethodNotAllowed,
	KindConflict:         http.StatusConflict,
}

// HTTPCode returns the status code for the kind.
func (k Kind) HTTPCode() int {
	if code, ok := kindHTTPCodes[k]; ok {
		return code
	}

	return http.StatusInternalServerError
}

// String returns a stable name for logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindPaymentRequired:
		return "payment_required"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Kind returns the failure category
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
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

// Is matches errors carrying the same business code, so WithDetails copies
// still compare equal to their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode && t.kind == e.kind
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// KindOf classifies any error; errors outside the AppError family are internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}

	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindInternal
}

// IsKind reports whether err classifies as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		"USER_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		KindInternal,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		KindInternal,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	// Authentication-related errors
	ErrAuthRequired = NewBaseError(
		KindUnauthorized,
		"AUTH_REQUIRED",
		"Authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		KindUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		KindUnauthorized,
		"SESSION_INVALID",
		"Session is invalid or has expired",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		KindValidation,
		"PASSWORD_STRENGTH",
		"Password does not meet length requirements",
		"",
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		KindUnauthorized,
		"OAUTH_FAILED",
		"OAuth authentication failed",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		KindValidation,
		"OAUTH_TOKEN_INVALID",
		"Invalid ID token",
		"",
	)

	ErrOAuthNotConfigured = NewBaseError(
		KindMethodNotAllowed,
		"OAUTH_NOT_CONFIGURED",
		"Google sign-in is not enabled",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		KindNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrCatalogReadOnly = NewBaseError(
		KindMethodNotAllowed,
		"CATALOG_READ_ONLY",
		"Product catalog is read-only",
		"",
	)

	ErrCatalogUnavailable = NewBaseError(
		KindInternal,
		"CATALOG_UNAVAILABLE",
		"Product catalog is unavailable",
		"",
	)

	// Cart-related errors
	ErrCartNotFound = NewBaseError(
		KindNotFound,
		"CART_NOT_FOUND",
		"Cart not found",
		"",
	)

	ErrCartAlreadyExists = NewBaseError(
		KindConflict,
		"CART_ALREADY_EXISTS",
		"User already has a cart",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		KindNotFound,
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		"",
	)

	ErrCartEmpty = NewBaseError(
		KindValidation,
		"CART_EMPTY",
		"Cart is empty",
		"",
	)

	ErrCartChanged = NewBaseError(
		KindConflict,
		"CART_CHANGED",
		"Cart changed during checkout",
		"",
	)

	ErrCartOwnershipViolation = NewBaseError(
		KindForbidden,
		"CART_OWNERSHIP_VIOLATION",
		"You do not have access to this cart",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		KindNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderOwnershipViolation = NewBaseError(
		KindForbidden,
		"ORDER_OWNERSHIP_VIOLATION",
		"You do not have access to this order",
		"",
	)

	ErrPaymentDeclined = NewBaseError(
		KindPaymentRequired,
		"PAYMENT_DECLINED",
		"Payment was not authorized",
		"",
	)

	ErrPaymentMethodNotFound = NewBaseError(
		KindValidation,
		"PAYMENT_METHOD_NOT_FOUND",
		"Payment method does not exist for this user",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		KindInternal,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		KindConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the failure category
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
