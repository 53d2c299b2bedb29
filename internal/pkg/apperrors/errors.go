package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Condominium errors
var (
	ErrCondominiumNotFound      = errors.New("condominium not found")
	ErrCondominiumAlreadyExists = errors.New("condominium with this tax id already exists")
	ErrCommonAreaNotFound       = errors.New("common area not found")
	ErrCommonAreaUnavailable    = errors.New("common area is not available for booking")
)

// Membership errors
var (
	ErrMembershipNotFound      = errors.New("membership not found")
	ErrMembershipAlreadyExists = errors.New("membership request already exists")
	ErrMembershipNotActive     = errors.New("membership is not active")
)

// Reservation errors
var (
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrReservationConflict   = errors.New("reservation conflicts with an existing booking")
	ErrInvalidTimeRange      = errors.New("reservation start must be before end")
	ErrIllegalStatusChange   = errors.New("status change is not allowed from the current status")
	ErrReservationOutsideDay = errors.New("reservation must fall within the bookable day range")
)

// Assembly errors
var (
	ErrAssemblyNotFound = errors.New("assembly not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrNoticeNotFound   = errors.New("notice not found")
)

// Gallery errors
var (
	ErrGalleryNotFound    = errors.New("gallery not found")
	ErrPhotoNotFound      = errors.New("photo not found")
	ErrInvalidPhotoStatus = errors.New("invalid photo status")
	ErrMissingPhotoUpload = errors.New("photo file is required")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewCustomError creates a CustomError with an underlying sentinel error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}
