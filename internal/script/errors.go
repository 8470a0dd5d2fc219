package script

import (
	"errors"
)

var (
	// ErrUnknownOperation is returned for a script line or operation whose
	// name is not one of the supported kinds.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidArguments is returned when an operation is given the wrong
	// number of arguments.
	ErrInvalidArguments = errors.New("invalid number of arguments")

	// ErrDiverged is returned when the reference cross-check finds the deque
	// holding a different sequence than the reference deque.
	ErrDiverged = errors.New("deque diverged from reference")
)
