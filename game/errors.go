package game

import "errors"

var (
	ErrMoveLimitTooSmall = errors.New("move limit too small")
	ErrInvalidSquare     = errors.New("invalid square")
	ErrInvalidMove       = errors.New("invalid move")
)
