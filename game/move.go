package game

import (
	"fmt"
	"strings"
)

// Move is a single ply. Capture records whether the destination held an opposing
// piece when the move was made; the board recomputes it on MakeMove.
type Move struct {
	From    Square
	To      Square
	Capture bool
}

// Mv builds a non-capturing move.
func Mv(from, to Square) Move {
	return Move{From: from, To: to}
}

// ParseMove reads "a1-b3" (or "a1 b3"). The result never has Capture set.
func ParseMove(s string) (Move, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '-' || r == ' '
	})
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := ParseSquare(fields[0])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	to, err := ParseSquare(fields[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	return Mv(from, to), nil
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// WithCapture returns m with the capture flag set to capture.
func (m Move) WithCapture(capture bool) Move {
	m.Capture = capture
	return m
}
