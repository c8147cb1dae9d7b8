package engine

import "errors"

// Sentinel errors
var (
	ErrInvalidGrid = errors.New("invalid grid dimensions")
	ErrSessionOver = errors.New("session is over")
	ErrOutOfBounds = errors.New("point outside grid")
	ErrOccupied    = errors.New("cell occupied by snake")
)
