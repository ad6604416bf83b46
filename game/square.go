package game

import (
	"fmt"
	"regexp"
)

const BoardSize = 8

const NumSquares = BoardSize * BoardSize

// Compass directions, clockwise from north. The opposite of d is (d+4)%8.
const (
	N = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// Column and row deltas per direction
var dirCol = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
var dirRow = [8]int{1, 1, 0, -1, -1, -1, 0, 1}

var squarePattern = regexp.MustCompile(`^[a-h][1-8]$`)

// Square is a position on the board, indexed row*8+col (a1=0, h1=7, a8=56, h8=63).
type Square uint8

// AllSquares lists every square in index order.
var AllSquares = func() [NumSquares]Square {
	var all [NumSquares]Square
	for i := range all {
		all[i] = Square(i)
	}
	return all
}()

// Sq returns the square at (col, row). Both must be in [0, 7].
func Sq(col, row int) Square {
	if !onBoard(col, row) {
		panic(fmt.Sprintf("square (%d, %d) is off the board", col, row))
	}
	return Square(row*BoardSize + col)
}

// ParseSquare reads a designator such as "e4".
func ParseSquare(s string) (Square, error) {
	if !squarePattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Sq(int(s[0]-'a'), int(s[1]-'1')), nil
}

func (s Square) Index() int {
	return int(s)
}

func (s Square) Col() int {
	return int(s) % BoardSize
}

func (s Square) Row() int {
	return int(s) / BoardSize
}

func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+s.Col(), '1'+s.Row())
}

// Opposite returns the direction pointing the other way.
func Opposite(dir int) int {
	return (dir + 4) % 8
}

// Direction returns the compass direction from s to other. ok is false when the two
// squares are equal or do not share a row, column or diagonal.
func (s Square) Direction(other Square) (dir int, ok bool) {
	dc := other.Col() - s.Col()
	dr := other.Row() - s.Row()
	if dc == 0 && dr == 0 {
		return 0, false
	}
	if dc != 0 && dr != 0 && abs(dc) != abs(dr) {
		return 0, false
	}
	sc, sr := sign(dc), sign(dr)
	for d := range dirCol {
		if dirCol[d] == sc && dirRow[d] == sr {
			return d, true
		}
	}
	return 0, false
}

// Aligned reports whether a move from s to other would travel along a single line.
func (s Square) Aligned(other Square) bool {
	_, ok := s.Direction(other)
	return ok
}

// Distance is the Chebyshev distance between s and other.
func (s Square) Distance(other Square) int {
	return max(abs(other.Col()-s.Col()), abs(other.Row()-s.Row()))
}

// Dest returns the square steps squares away from s in direction dir. ok is false
// once the walk leaves the board.
func (s Square) Dest(dir, steps int) (Square, bool) {
	col := s.Col() + dirCol[dir]*steps
	row := s.Row() + dirRow[dir]*steps
	if !onBoard(col, row) {
		return 0, false
	}
	return Square(row*BoardSize + col), true
}

// Adjacent returns the up to eight squares touching s.
func (s Square) Adjacent() []Square {
	adjacent := make([]Square, 0, 8)
	for dir := N; dir <= NW; dir++ {
		if next, ok := s.Dest(dir, 1); ok {
			adjacent = append(adjacent, next)
		}
	}
	return adjacent
}

func onBoard(col, row int) bool {
	return col >= 0 && col < BoardSize && row >= 0 && row < BoardSize
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
