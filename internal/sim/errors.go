package sim

import "errors"

var (
	// ErrTickLimit indicates a run used up its tick budget before every ball
	// settled.
	ErrTickLimit = errors.New("sim: tick limit reached before all balls settled")

	// ErrInvalidConfig indicates run parameters that can never complete.
	ErrInvalidConfig = errors.New("sim: invalid run configuration")
)
