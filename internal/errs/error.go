package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")

	ErrIncompleteBooking = errors.New("incomplete booking data")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("unknown booking status")

	ErrAdminExists        = errors.New("an administrator already exists")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("account is not verified")

	ErrEmailTaken = errors.New("email already in use")
	ErrPlateTaken = errors.New("plate already registered")
	ErrCarInUse   = errors.New("car is referenced by bookings")
)
