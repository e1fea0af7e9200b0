package tiktok

import "errors"

var (
	// ErrIllegalIdentifier means the identifier failed upstream validation.
	// Retrying with the same identifier will not help.
	ErrIllegalIdentifier = errors.New("tiktok: illegal identifier")
	// ErrNotFound means a well-formed identifier resolved to no resource.
	ErrNotFound = errors.New("tiktok: resource not found")
	// ErrIllegalArgument means an identity object was passed without its
	// required field set. Raised before any network call happens.
	ErrIllegalArgument = errors.New("tiktok: illegal argument")
	// ErrInvalidResponse means the upstream response was unusable at the
	// transport level (non-200 HTTP status or malformed JSON).
	ErrInvalidResponse = errors.New("tiktok: invalid response")

	ErrSigningFailed  = errors.New("tiktok: url signing failed")
	ErrSignerNotReady = errors.New("tiktok: signer not initialized")
)
