package models

import "errors"

// Domain specific errors surfaced by the planner boundary.
var (
	ErrBadRequest = errors.New("bad request")
	ErrValidation = errors.New("validation failed")
)
