package entity

import "errors"

// Domain errors
var (
	// Webpage Q&A errors
	ErrEmptyContent     = errors.New("content is empty")
	ErrInvalidChunking  = errors.New("invalid chunking parameters")
	ErrNoChunksProduced = errors.New("no chunks created from content")
	ErrSessionNotFound  = errors.New("session not found")
	ErrStorageFailed    = errors.New("storage failed")
	ErrQueryFailed      = errors.New("query failed")

	// Provider errors
	ErrProviderUnavailable = errors.New("provider unavailable")

	// File errors
	ErrInvalidFile       = errors.New("invalid file")
	ErrFileTooLarge      = errors.New("file too large")
	ErrInvalidExtension  = errors.New("invalid file extension")
	ErrUnsupportedFormat = errors.New("unsupported format")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
