package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Scheduling errors
	ErrScheduleRequestNotFound = errors.New("schedule request not found")
	ErrScheduleOptionNotFound  = errors.New("schedule option not found")
	ErrNoAvailability          = errors.New("no available time slots")
	ErrInvalidScheduleState    = errors.New("invalid schedule state")
	ErrAlreadyConfirmed        = errors.New("schedule already confirmed")
	ErrInvalidWindow           = errors.New("invalid scheduling window")
	ErrInvalidDuration         = errors.New("invalid slot duration")
	ErrPendingScheduleExists   = errors.New("a pending schedule request already exists for this candidate")

	// Candidate errors
	ErrCandidateNotFound = errors.New("candidate not found")

	// Job / JD request errors
	ErrJobNotFound       = errors.New("job not found")
	ErrJDRequestNotFound = errors.New("jd request not found")

	// Pipeline errors
	ErrProcessNotFound = errors.New("process not found")
	ErrStageNotFound   = errors.New("stage not found")

	// Offer errors
	ErrOfferNotFound    = errors.New("offer not found")
	ErrOfferNotSendable = errors.New("offer cannot be sent in its current state")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
