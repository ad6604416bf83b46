package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// DefaultMoveLimit is the number of moves per side after which an undecided game is drawn.
const DefaultMoveLimit = 60

type StateHash uint64

// Layout is a full assignment of cell contents, indexed [row][col] with row 0 as rank 1.
type Layout [BoardSize][BoardSize]Piece

// InitialLayout is the standard opening position.
var InitialLayout = Layout{
	{Empty, Black, Black, Black, Black, Black, Black, Empty},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{Empty, Black, Black, Black, Black, Black, Black, Empty},
}

// Board is the mutable state of a game. A Board is owned by a single driver and is not
// safe for concurrent use; use Copy for speculative play.
type Board struct {
	cells     [NumSquares]Piece
	turn      Piece
	moves     []Move // Unretracted moves, oldest first
	moveLimit int    // In half-moves

	regionsKnown bool
	blackRegions []int // Component sizes, descending
	whiteRegions []int

	winnerKnown bool
	winner      Outcome
}

// NewBoard returns a board in the standard opening position with Black to move.
func NewBoard() *Board {
	return NewBoardFrom(InitialLayout, Black)
}

// NewBoardFrom returns a board with the given contents and turn to move.
func NewBoardFrom(layout Layout, turn Piece) *Board {
	b := &Board{}
	b.Initialize(layout, turn)
	return b
}

// Initialize resets b to layout with turn to move, clearing history and the move limit.
func (b *Board) Initialize(layout Layout, turn Piece) {
	if turn != Black && turn != White {
		panic(fmt.Sprintf("invalid side to move: %v", turn))
	}
	for row := range layout {
		for col, p := range layout[row] {
			b.cells[Sq(col, row)] = p
		}
	}
	b.turn = turn
	b.moves = b.moves[:0]
	b.moveLimit = 2 * DefaultMoveLimit
	b.invalidate()
}

// Copy returns a deep copy; mutating it never affects b.
func (b *Board) Copy() *Board {
	movesCopy := make([]Move, len(b.moves))
	copy(movesCopy, b.moves)

	return &Board{
		cells:     b.cells,
		turn:      b.turn,
		moves:     movesCopy,
		moveLimit: b.moveLimit,
	}
}

// Play returns a copy of b with move applied. b is left untouched.
func (b *Board) Play(move Move) *Board {
	next := b.Copy()
	next.MakeMove(move)
	return next
}

func (b *Board) Get(sq Square) Piece {
	return b.cells[sq]
}

// Set places p on sq, bypassing the rules, and hands the turn to next unless next is
// Empty.
func (b *Board) Set(sq Square, p Piece, next Piece) {
	b.cells[sq] = p
	if next != Empty {
		b.turn = next
	}
	b.invalidate()
}

// Turn returns the side to move.
func (b *Board) Turn() Piece {
	return b.turn
}

// SetMoveLimit sets the number of moves per side after which the game is drawn. The new
// limit, counted in half-moves, must exceed the moves already made.
func (b *Board) SetMoveLimit(perSide int) error {
	if 2*perSide <= b.MovesMade() {
		return fmt.Errorf("%w: %d moves per side with %d half-moves made", ErrMoveLimitTooSmall, perSide, b.MovesMade())
	}
	b.moveLimit = 2 * perSide
	b.winnerKnown = false
	return nil
}

// MoveLimit is the draw limit in half-moves.
func (b *Board) MoveLimit() int {
	return b.moveLimit
}

func (b *Board) MovesMade() int {
	return len(b.moves)
}

// History returns a copy of the moves made so far, oldest first.
func (b *Board) History() []Move {
	history := make([]Move, len(b.moves))
	copy(history, b.moves)
	return history
}

// LastMove returns the most recent unretracted move.
func (b *Board) LastMove() (Move, bool) {
	if len(b.moves) == 0 {
		return Move{}, false
	}
	return b.moves[len(b.moves)-1], true
}

// MakeMove applies move, which must be legal. The capture flag stored in the history is
// taken from the board, not from move.
func (b *Board) MakeMove(move Move) {
	if !b.IsLegalMove(move) {
		panic(fmt.Sprintf("illegal move %v for %v", move, b.turn))
	}
	move.Capture = b.cells[move.To] != Empty
	b.moves = append(b.moves, move)
	b.cells[move.To] = b.cells[move.From]
	b.cells[move.From] = Empty
	b.turn = b.turn.Opponent()
	b.invalidate()
}

// Retract undoes the last move. It panics when no moves have been made.
func (b *Board) Retract() {
	if len(b.moves) == 0 {
		panic("no moves to retract")
	}
	last := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]

	mover := b.cells[last.To]
	b.cells[last.From] = mover
	if last.Capture {
		b.cells[last.To] = mover.Opponent()
	} else {
		b.cells[last.To] = Empty
	}
	b.turn = b.turn.Opponent()
	b.invalidate()
}

// Winner returns the outcome of the game, computing it at most once per position.
func (b *Board) Winner() Outcome {
	if b.winnerKnown {
		return b.winner
	}
	b.computeRegions()
	blackJoined := len(b.blackRegions) == 1
	whiteJoined := len(b.whiteRegions) == 1
	switch {
	case blackJoined:
		b.winner = BlackWins
	case whiteJoined:
		b.winner = WhiteWins
	case b.MovesMade() >= b.moveLimit:
		b.winner = Draw
	default:
		b.winner = InProgress
	}
	b.winnerKnown = true
	return b.winner
}

// GameOver reports whether either side has won or the game is drawn.
func (b *Board) GameOver() bool {
	return b.Winner() != InProgress
}

// PiecesContiguous reports whether all of side's pieces form a single region.
func (b *Board) PiecesContiguous(side Piece) bool {
	return len(b.regionSizes(side)) == 1
}

// RegionSizes returns the sizes of side's connected regions, largest first.
func (b *Board) RegionSizes(side Piece) []int {
	regions := b.regionSizes(side)
	sizes := make([]int, len(regions))
	copy(sizes, regions)
	return sizes
}

func (b *Board) regionSizes(side Piece) []int {
	b.computeRegions()
	if side == White {
		return b.whiteRegions
	}
	return b.blackRegions
}

func (b *Board) invalidate() {
	b.regionsKnown = false
	b.winnerKnown = false
}

// Equal reports whether b and other have the same contents and side to move.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells && b.turn == other.turn
}

// Hash identifies the position (contents and side to move).
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int8(b.turn))
	for _, p := range b.cells {
		binary.Write(hasher, binary.LittleEndian, int8(p))
	}

	return StateHash(hasher.Sum64())
}

// String renders rank 8 down to rank 1, followed by the side to move.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("===\n")
	for row := BoardSize - 1; row >= 0; row-- {
		sb.WriteString("    ")
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.cells[Sq(col, row)].Abbrev())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Next move: %v\n===", b.turn)
	return sb.String()
}
