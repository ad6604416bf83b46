package engine

import (
	"errors"
	"loa/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// scripted plays the given moves in order, then quits.
type scripted struct {
	moves []string
	calls int
}

func (s *scripted) FindMove(board *game.Board) (game.Move, error) {
	if s.calls >= len(s.moves) {
		return game.Move{}, ErrQuit
	}
	s.calls++
	return game.ParseMove(s.moves[s.calls-1])
}

// firstLegal always plays the first legal move, and scribbles on the board it is given.
type firstLegal struct{}

func (firstLegal) FindMove(board *game.Board) (game.Move, error) {
	move := board.LegalMoves()[0]
	board.MakeMove(move)
	return move, nil
}

type broken struct{}

func (broken) FindMove(board *game.Board) (game.Move, error) {
	return game.Move{}, errors.New("no idea")
}

func mustMove(t *testing.T, s string) game.Move {
	t.Helper()
	move, err := game.ParseMove(s)
	require.NoError(t, err)
	return move
}

func TestLocalEnginePlay(t *testing.T) {
	t.Run("legal move is applied and recorded", func(t *testing.T) {
		e := LocalEngine(game.NewBoard(), firstLegal{}, firstLegal{})

		require.NoError(t, e.Play(mustMove(t, "b1-b3")))

		require.Equal(t, game.Black, e.Board.Get(mustMove(t, "b1-b3").To))
		require.Equal(t, game.White, e.Board.Turn())
		require.Len(t, e.Updates, 1)
		require.Equal(t, mustMove(t, "b1-b3"), e.Updates[0].Move)
		require.Equal(t, e.Board.Hash(), e.Updates[0].Hash)
	})

	t.Run("illegal move is rejected without change", func(t *testing.T) {
		e := LocalEngine(game.NewBoard(), firstLegal{}, firstLegal{})

		err := e.Play(mustMove(t, "b1-a1"))

		require.ErrorIs(t, err, ErrIllegalMove)
		require.True(t, e.Board.Equal(game.NewBoard()))
		require.Empty(t, e.Updates)
	})

	t.Run("capture flag in updates comes from the board", func(t *testing.T) {
		var layout game.Layout
		layout[0][0] = game.Black
		layout[0][2] = game.Black
		layout[2][0] = game.White
		layout[7][7] = game.White
		e := LocalEngine(game.NewBoardFrom(layout, game.Black), firstLegal{}, firstLegal{})

		require.NoError(t, e.Play(mustMove(t, "a1-a3")))
		require.True(t, e.Updates[0].Move.Capture)
	})

	t.Run("no moves after the game is over", func(t *testing.T) {
		var layout game.Layout
		layout[0][0] = game.Black
		layout[0][1] = game.Black
		layout[7][7] = game.White
		layout[5][5] = game.White
		e := LocalEngine(game.NewBoardFrom(layout, game.Black), firstLegal{}, firstLegal{})

		require.ErrorIs(t, e.Play(mustMove(t, "a1-a2")), ErrGameOver)
	})
}

func TestLocalEngineUndo(t *testing.T) {
	e := LocalEngine(game.NewBoard(), firstLegal{}, firstLegal{})
	require.ErrorIs(t, e.Undo(), ErrNoHistory)

	require.NoError(t, e.Play(mustMove(t, "b1-b3")))
	require.NoError(t, e.Undo())

	require.True(t, e.Board.Equal(game.NewBoard()))
	require.Empty(t, e.Updates)

	t.Run("moves made on the board directly keep their updates", func(t *testing.T) {
		e := LocalEngine(game.NewBoard(), firstLegal{}, firstLegal{})
		require.NoError(t, e.Play(mustMove(t, "b1-b3")))
		e.Board.MakeMove(mustMove(t, "a2-c2"))

		require.NoError(t, e.Undo())
		require.Len(t, e.Updates, 1)
		require.Equal(t, e.Board.Hash(), e.Updates[0].Hash)

		require.NoError(t, e.Undo())
		require.Empty(t, e.Updates)
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("plays to a draw at the move limit", func(t *testing.T) {
		board := game.NewBoard()
		require.NoError(t, board.SetMoveLimit(3))
		e := LocalEngine(board, firstLegal{}, firstLegal{}, WithMetrics())

		outcome, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Draw, outcome)
		require.Equal(t, 6, e.Board.MovesMade(), "Players must not be able to touch the engine's board")

		gameMetric, moveMetrics := e.Metrics()
		require.Equal(t, "black", gameMetric.StartingPlayer)
		require.Equal(t, "draw", gameMetric.Winner)
		require.Equal(t, 6, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 6)
		require.Equal(t, "black", moveMetrics[0].Player)
		require.Equal(t, "white", moveMetrics[1].Player)
		require.Equal(t, 1, moveMetrics[0].Attempts)
		require.Equal(t, e.Updates[5].Move.String(), moveMetrics[5].Move)
	})

	t.Run("plays to a win", func(t *testing.T) {
		var layout game.Layout
		layout[0][0] = game.Black
		layout[0][2] = game.Black
		layout[7][7] = game.White
		layout[4][4] = game.White
		black := &scripted{moves: []string{"c1-b2"}}
		e := LocalEngine(game.NewBoardFrom(layout, game.Black), black, &scripted{})

		outcome, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.BlackWins, outcome)
	})

	t.Run("retries rejected moves", func(t *testing.T) {
		black := &scripted{moves: []string{"b1-a1", "b1-b3"}}
		white := &scripted{}
		e := LocalEngine(game.NewBoard(), black, white, WithMetrics())

		_, err := e.Run()

		require.ErrorIs(t, err, ErrQuit, "White has no moves scripted")
		_, moveMetrics := e.Metrics()
		require.Len(t, moveMetrics, 1)
		require.Equal(t, 2, moveMetrics[0].Attempts)
	})

	t.Run("gives up after too many attempts", func(t *testing.T) {
		e := LocalEngine(game.NewBoard(), broken{}, firstLegal{}, WithMaxAttempts(2))

		outcome, err := e.Run()

		require.ErrorIs(t, err, ErrTooManyTries)
		require.Equal(t, game.InProgress, outcome)
		require.Equal(t, 0, e.Board.MovesMade())
	})

	t.Run("side without moves stops the game", func(t *testing.T) {
		var layout game.Layout
		layout[0][0] = game.Black
		layout[0][2] = game.Black
		e := LocalEngine(game.NewBoardFrom(layout, game.White), firstLegal{}, firstLegal{})

		_, err := e.Run()

		require.ErrorIs(t, err, ErrNoLegalMoves)
	})
}

func TestLocalEngineNeedsPlayers(t *testing.T) {
	require.Panics(t, func() { LocalEngine(game.NewBoard(), nil, firstLegal{}) })
	require.Panics(t, func() { LocalEngine(nil, firstLegal{}, firstLegal{}) })
}
