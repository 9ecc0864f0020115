package services

import "errors"

var (
	// ErrValidityUnknown wraps every failure of a validate call. It means the
	// password could not be checked, not that it does not match.
	ErrValidityUnknown = errors.New("password validity unknown")

	ErrInvalidUser       = errors.New("invalid user")
	ErrEmptyHashResponse = errors.New("hash stream completed without a response")
	ErrShuttingDown      = errors.New("hashing service is shutting down")

	// ErrIncompleteHashResponse means the remote answered without a salt or
	// without a hash. Such an answer is never stored.
	ErrIncompleteHashResponse = errors.New("hash response lacks salt or hash")
)
