package game

// Piece is the content of a cell: a side's piece or nothing.
type Piece int8

const (
	Empty Piece = iota
	Black       // Moves first
	White
)

// Opponent returns the other side. Empty has no opponent and maps to itself.
func (p Piece) Opponent() Piece {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// Abbrev is the single character used when rendering a board.
func (p Piece) Abbrev() byte {
	switch p {
	case Black:
		return 'b'
	case White:
		return 'w'
	}
	return '-'
}

func (p Piece) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// Outcome is the state of a game: still going, drawn, or won by one side.
type Outcome int

const (
	InProgress Outcome = iota
	Draw
	BlackWins
	WhiteWins
)

// Side returns the winning side, Empty for a draw, and Empty for a game in progress.
// Callers that must tell those two apart compare against InProgress first.
func (o Outcome) Side() Piece {
	switch o {
	case BlackWins:
		return Black
	case WhiteWins:
		return White
	}
	return Empty
}

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case BlackWins:
		return "black wins"
	case WhiteWins:
		return "white wins"
	}
	return "in progress"
}
