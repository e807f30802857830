package utils

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")

	// Identity
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Trip collaboration
	ErrTripNotFound       = errors.New("trip not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrShareTokenNotFound = errors.New("share token not found")
	ErrNotTripMember      = errors.New("not a trip member")
	ErrNoEditPermission   = errors.New("no edit permission")
	ErrDayRequired        = errors.New("day number required")
	ErrDayTripMismatch    = errors.New("day does not belong to trip")
	ErrEmptyMessage       = errors.New("message text required")
)
