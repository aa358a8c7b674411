package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidChart is returned when a size chart violates its invariants
	ErrInvalidChart = errors.New("invalid size chart")

	// ErrUnknownSeason is returned when a season has no palette
	ErrUnknownSeason = errors.New("unknown season")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRenderFailure is returned when a palette swatch cannot be rendered
	ErrRenderFailure = errors.New("swatch rendering failed")
)
