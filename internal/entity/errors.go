package entity

import "errors"

// Error taxonomy. Usecases wrap these sentinels with context via %w; the
// HTTP controllers map them to status codes with errors.Is.
var (
	// ErrAuthRequired marks actions that need a signed-in identity.
	ErrAuthRequired = errors.New("authentication required")

	// ErrValidation marks rejected input (empty required field, bad image
	// reference). Nothing was dispatched to the store.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden marks mutations on records the caller does not own.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks lookups of records that do not exist.
	ErrNotFound = errors.New("not found")

	// ErrStore marks any remote CRUD or storage failure; the underlying
	// message is passed through.
	ErrStore = errors.New("store error")

	// ErrUpstream marks a failed or empty chat provider response.
	ErrUpstream = errors.New("upstream error")

	// ErrConfig marks a missing relay credential. Fatal for the single
	// call, not for the process.
	ErrConfig = errors.New("configuration error")
)
