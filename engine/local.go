package engine

import (
	"errors"
	"fmt"
	"loa/experiments/metrics"
	"loa/game"
	"loa/meta"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine drives a game between two players on a board it owns.
type Engine struct {
	Board   *game.Board
	Players map[game.Piece]Player
	Updates []Update

	maxAttempts int
	collector   metrics.Collector
	moveMetrics []metrics.MoveMetric
	gameMetric  metrics.GameMetric
}

func WithMaxAttempts(attempts int) Option {
	return func(e *Engine) {
		if attempts > 0 {
			e.maxAttempts = attempts
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.collector = metrics.NewCollector()
	}
}

func LocalEngine(board *game.Board, black, white Player, options ...Option) *Engine {
	if board == nil {
		panic("engine needs a board")
	}
	if black == nil || white == nil {
		panic("need a player for each side")
	}

	e := &Engine{ // Default values
		Board: board,
		Players: map[game.Piece]Player{
			game.Black: black,
			game.White: white,
		},
		maxAttempts: meta.MAX_ATTEMPTS,
		collector:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Play applies move for the side to move after checking it against the rules.
func (e *Engine) Play(move game.Move) error {
	if e.Board.GameOver() {
		return ErrGameOver
	}
	if !e.Board.IsLegalMove(move) {
		return fmt.Errorf("%w: %v for %v", ErrIllegalMove, move, e.Board.Turn())
	}

	e.Board.MakeMove(move)
	e.Updates = append(e.Updates, Update{
		Move: e.lastMove(),
		Hash: e.Board.Hash(),
	})
	return nil
}

// Undo takes back the last move. The last update is dropped only when it records that
// move, so moves made directly on Board leave Updates alone.
func (e *Engine) Undo() error {
	if e.Board.MovesMade() == 0 {
		return ErrNoHistory
	}
	if n := len(e.Updates); n > 0 && n == e.Board.MovesMade() && e.Updates[n-1].Hash == e.Board.Hash() {
		e.Updates = e.Updates[:n-1]
	}
	e.Board.Retract()
	return nil
}

// Run plays until the game is decided or a player quits, and returns the outcome.
func (e *Engine) Run() (game.Outcome, error) {
	start := time.Now()
	e.moveMetrics = nil
	e.gameMetric = metrics.GameMetric{
		StartingPlayer: e.Board.Turn().String(),
		StartTime:      start,
	}
	defer func() {
		e.gameMetric.EndTime = time.Now()
		e.gameMetric.Duration = e.gameMetric.EndTime.Sub(start)
		e.gameMetric.TotalMoves = e.Board.MovesMade()
		e.gameMetric.Winner = e.Board.Winner().String()
	}()

	log.Info().Msgf("%v is starting", e.Board.Turn())

	for !e.Board.GameOver() {
		if err := e.takeTurn(); err != nil {
			if errors.Is(err, ErrQuit) {
				log.Info().Msgf("%v quit after %d moves", e.Board.Turn(), e.Board.MovesMade())
			}
			return e.Board.Winner(), err
		}
	}

	outcome := e.Board.Winner()
	log.Info().Msgf("game over after %d moves: %v", e.Board.MovesMade(), outcome)
	return outcome, nil
}

func (e *Engine) takeTurn() error {
	side := e.Board.Turn()
	if len(e.Board.LegalMoves()) == 0 {
		return fmt.Errorf("%w for %v", ErrNoLegalMoves, side)
	}

	e.collector.Start()
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		e.collector.AddAttempt()

		move, err := e.Players[side].FindMove(e.Board.Copy())
		if err != nil {
			if errors.Is(err, ErrQuit) {
				return err
			}
			log.Warn().Err(err).Msgf("%v failed to find a move (attempt %d of %d)", side, attempt, e.maxAttempts)
			continue
		}

		if err := e.Play(move); err != nil {
			log.Warn().Err(err).Msgf("%v proposed a rejected move (attempt %d of %d)", side, attempt, e.maxAttempts)
			continue
		}

		played := e.lastMove()
		e.moveMetrics = append(e.moveMetrics, e.collector.Complete(e.Board.MovesMade(), side.String(), played.String(), played.Capture))
		log.Debug().Msgf("move %d: %v plays %v", e.Board.MovesMade(), side, played)
		return nil
	}
	return fmt.Errorf("%w: %v after %d attempts", ErrTooManyTries, side, e.maxAttempts)
}

func (e *Engine) lastMove() game.Move {
	move, _ := e.Board.LastMove()
	return move
}

// Metrics returns the timings recorded by the last call to Run.
func (e *Engine) Metrics() (metrics.GameMetric, []metrics.MoveMetric) {
	return e.gameMetric, e.moveMetrics
}
