package player

import (
	"bytes"
	"errors"
	"loa/engine"
	"loa/game"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestRandom(t *testing.T) {
	t.Run("always picks a legal move", func(t *testing.T) {
		p := NewRandom(3)
		board := game.NewBoard()
		for i := 0; i < 20 && !board.GameOver(); i++ {
			move, err := p.FindMove(board)
			require.NoError(t, err)
			require.True(t, board.IsLegalMove(move))
			board.MakeMove(move)
		}
	})

	t.Run("equal seeds play equal games", func(t *testing.T) {
		p1, p2 := NewRandom(11), NewRandom(11)
		b1, b2 := game.NewBoard(), game.NewBoard()
		for i := 0; i < 10; i++ {
			m1, err := p1.FindMove(b1)
			require.NoError(t, err)
			m2, err := p2.FindMove(b2)
			require.NoError(t, err)
			require.Equal(t, m1, m2)
			b1.MakeMove(m1)
			b2.MakeMove(m2)
		}
	})

	t.Run("no legal moves", func(t *testing.T) {
		var layout game.Layout
		layout[0][0] = game.Black
		board := game.NewBoardFrom(layout, game.White)

		_, err := NewRandom(1).FindMove(board)
		require.ErrorIs(t, err, engine.ErrNoLegalMoves)
	})
}

func TestText(t *testing.T) {
	t.Run("reads a legal move", func(t *testing.T) {
		var out bytes.Buffer
		p := NewText(strings.NewReader("b1-b3\n"), &out)

		move, err := p.FindMove(game.NewBoard())

		require.NoError(t, err)
		require.Equal(t, "b1-b3", move.String())
		require.Contains(t, out.String(), "Next move: black")
		require.Contains(t, out.String(), "black> ")
	})

	t.Run("reprompts on bad and illegal input", func(t *testing.T) {
		var out bytes.Buffer
		p := NewText(strings.NewReader("\nnonsense\nb1-a1\nb1 b3\n"), &out)

		move, err := p.FindMove(game.NewBoard())

		require.NoError(t, err)
		require.Equal(t, "b1-b3", move.String())
		require.Contains(t, out.String(), game.ErrInvalidMove.Error())
		require.Contains(t, out.String(), "illegal move: b1-a1")
		require.Equal(t, 4, strings.Count(out.String(), "black> "))
	})

	t.Run("lists legal moves", func(t *testing.T) {
		var out bytes.Buffer
		p := NewText(strings.NewReader("moves\nb1-b3\n"), &out)

		_, err := p.FindMove(game.NewBoard())

		require.NoError(t, err)
		require.Contains(t, out.String(), "b1-b3\n")
	})

	t.Run("quit and end of input", func(t *testing.T) {
		_, err := NewText(strings.NewReader("quit\n"), &bytes.Buffer{}).FindMove(game.NewBoard())
		require.ErrorIs(t, err, engine.ErrQuit)

		_, err = NewText(strings.NewReader(""), &bytes.Buffer{}).FindMove(game.NewBoard())
		require.ErrorIs(t, err, engine.ErrQuit)
	})

	t.Run("read failure", func(t *testing.T) {
		_, err := NewText(failingReader{}, &bytes.Buffer{}).FindMove(game.NewBoard())
		require.Error(t, err)
		require.NotErrorIs(t, err, engine.ErrQuit)
	})
}
