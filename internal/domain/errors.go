package domain

import "errors"

var (
	// ErrNotFound signals a missing mountain.
	ErrNotFound = errors.New("mountain not found")
	// ErrQueryRejected signals that the store answered with a failure status.
	ErrQueryRejected = errors.New("query rejected by store")
	// ErrStoreUnavailable signals that the store produced no response at all.
	ErrStoreUnavailable = errors.New("store unavailable")
)
