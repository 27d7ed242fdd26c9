package backtrack

import "errors"

var (
	// ErrInvalidProgram is returned for a nil, empty or unterminated program.
	ErrInvalidProgram = errors.New("backtrack: invalid program")

	// ErrInvalidWindow is returned when the search window is not
	// 0 <= start <= end.
	ErrInvalidWindow = errors.New("backtrack: invalid search window")

	// ErrBacktrackLimit is returned when a search resumes more alternatives
	// than the configured limit allows.
	ErrBacktrackLimit = errors.New("backtrack: backtrack limit exceeded")
)
