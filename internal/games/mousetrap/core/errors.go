package core

import "errors"

var (
	// ErrOutOfRange is returned when a level index is not in the catalog.
	ErrOutOfRange = errors.New("level index out of range")

	// ErrInvalidConfiguration is returned when level or generator parameters
	// cannot produce a valid board.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrPersistence wraps save store failures surfaced to the host.
	ErrPersistence = errors.New("persistence failure")

	// ErrUnknownCell is returned when a cell id does not belong to the board.
	ErrUnknownCell = errors.New("unknown cell")

	// ErrSessionEnded is returned for any event applied after Quit.
	ErrSessionEnded = errors.New("session ended")
)
