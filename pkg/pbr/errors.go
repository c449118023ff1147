package pbr

import "errors"

var (
	// ErrNotFound is returned when no session, tag, buffer or matching tag exists
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for malformed or missing required input
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfMemory is returned when a returned copy cannot be allocated
	ErrOutOfMemory = errors.New("out of memory")

	// ErrAborted is returned when the backend fails for any reason other than not found
	ErrAborted = errors.New("aborted")
)
