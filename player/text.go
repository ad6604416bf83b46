package player

import (
	"bufio"
	"fmt"
	"io"
	"loa/engine"
	"loa/game"
	"strings"
)

type text struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewText returns a player that reads moves such as "b1-b3" line by line from in and
// writes the board and prompts to out. "quit" or the end of input abandons the game.
func NewText(in io.Reader, out io.Writer) engine.Player {
	return &text{in: bufio.NewScanner(in), out: out}
}

func (p *text) FindMove(board *game.Board) (game.Move, error) {
	fmt.Fprintln(p.out, board)
	for {
		fmt.Fprintf(p.out, "%v> ", board.Turn())
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return game.Move{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Move{}, engine.ErrQuit
		}

		line := strings.TrimSpace(p.in.Text())
		switch line {
		case "":
			continue
		case "quit":
			return game.Move{}, engine.ErrQuit
		case "moves":
			for _, m := range board.LegalMoves() {
				fmt.Fprintln(p.out, m)
			}
			continue
		}

		move, err := game.ParseMove(line)
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		if !board.IsLegalMove(move) {
			fmt.Fprintf(p.out, "%v: %v\n", engine.ErrIllegalMove, move)
			continue
		}
		return move, nil
	}
}
