package engine

import (
	"errors"
	"loa/game"
)

var (
	ErrGameOver     = errors.New("game is over - no moves allowed")
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoHistory    = errors.New("no moves to undo")
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrTooManyTries = errors.New("player exceeded illegal move attempts")
	// ErrQuit is returned by a player that wants to abandon the game.
	ErrQuit = errors.New("player quit")
)

// Player chooses moves for one side. The board passed in is a copy the player may
// mutate freely.
type Player interface {
	FindMove(board *game.Board) (game.Move, error)
}

// Update records an applied move and the position it produced.
type Update struct {
	Move game.Move
	Hash game.StateHash
}
