package engine

import "errors"

var (
	// ErrTerminated is returned when mounting an engine that was already
	// unmounted or whose canvas had no drawing context.
	ErrTerminated = errors.New("engine: instance terminated, create a new engine")

	// ErrMounted is returned when mounting a running engine.
	ErrMounted = errors.New("engine: already mounted")
)
