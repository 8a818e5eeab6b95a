package reminder

import "github.com/pkg/errors"

// Configuration errors are rejected at the boundary rather than silently
// clamped, so a bad interval never produces a surprising schedule gap.
var (
	// ErrInvalidInterval indicates a non-positive reminder interval.
	ErrInvalidInterval = errors.New("reminder interval must be positive")

	// ErrInvalidTime indicates a malformed HH:MM time string.
	ErrInvalidTime = errors.New("invalid time of day, expected HH:MM")
)
