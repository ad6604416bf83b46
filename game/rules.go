package game

// IsLegal reports whether from-to is a legal move for the side to move. A piece moves in a
// straight line exactly as many squares as there are pieces on that whole line, may jump
// its own pieces, and may not jump the opponent's.
func (b *Board) IsLegal(from, to Square) bool {
	dir, ok := from.Direction(to)
	if !ok {
		return false
	}
	mover := b.cells[from]
	if mover != b.turn || mover == Empty {
		return false
	}
	if b.cells[to] == mover {
		return false
	}
	if b.blocked(from, to, dir) {
		return false
	}
	return b.lineCount(from, dir) == from.Distance(to)
}

// IsLegalMove is IsLegal for a Move; the Capture flag is ignored.
func (b *Board) IsLegalMove(move Move) bool {
	return b.IsLegal(move.From, move.To)
}

// LegalMoves returns every legal move for the side to move, ordered by origin then
// destination index.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	for _, from := range AllSquares {
		if b.cells[from] != b.turn {
			continue
		}
		for _, to := range AllSquares {
			if b.IsLegal(from, to) {
				moves = append(moves, Move{From: from, To: to, Capture: b.cells[to] != Empty})
			}
		}
	}
	return moves
}

// blocked reports whether an opposing piece sits strictly between from and to.
func (b *Board) blocked(from, to Square, dir int) bool {
	enemy := b.cells[from].Opponent()
	for step := 1; step < from.Distance(to); step++ {
		sq, _ := from.Dest(dir, step)
		if b.cells[sq] == enemy {
			return true
		}
	}
	return false
}

// lineCount counts the pieces on the full line through from along dir, including from.
func (b *Board) lineCount(from Square, dir int) int {
	count := 1
	for _, d := range [2]int{dir, Opposite(dir)} {
		for step := 1; ; step++ {
			sq, ok := from.Dest(d, step)
			if !ok {
				break
			}
			if b.cells[sq] != Empty {
				count++
			}
		}
	}
	return count
}
