package geo

import "errors"

// ErrInvalidArgument is returned by Update when the supplied agent id or
// coordinates fail validation. It is the only error class the core ever
// returns — NotFound is conveyed as a boolean, never an error (Get, Remove).
var ErrInvalidArgument = errors.New("geo: invalid argument")
