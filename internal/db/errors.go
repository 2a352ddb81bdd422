package db

import "errors"

// Domain-level database error sentinels.
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username or email already exists")

	// Price update errors
	ErrPriceUpdateNotFound = errors.New("price update not found")

	// Claim request errors
	ErrClaimRequestNotFound = errors.New("claim request not found")
	ErrUnknownSubmitter     = errors.New("submitting user does not exist")
)
