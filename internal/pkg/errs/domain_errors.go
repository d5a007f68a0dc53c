package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Course errors
	ErrCourseNotFound       = errors.New("course not found")
	ErrCourseFull           = errors.New("course capacity exceeded")
	ErrCourseAlreadyStarted = errors.New("course has already started")

	// Discount errors
	ErrDiscountNotFound     = errors.New("discount code not found")
	ErrDiscountNotYetActive = errors.New("discount code not yet active")
	ErrDiscountExpired      = errors.New("discount code expired")
	ErrDiscountCapReached   = errors.New("discount code usage cap reached")

	// Registration errors
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrTermsNotAgreed        = errors.New("terms must be agreed")
	ErrConfirmationExhausted = errors.New("confirmation number generation exhausted")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
