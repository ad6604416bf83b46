package game

import "sort"

// computeRegions fills the per-side region caches unless they are current.
func (b *Board) computeRegions() {
	if b.regionsKnown {
		return
	}
	var visited [NumSquares]bool
	b.blackRegions = b.blackRegions[:0]
	b.whiteRegions = b.whiteRegions[:0]

	for _, sq := range AllSquares {
		switch side := b.cells[sq]; side {
		case Black:
			if size := b.floodFill(sq, side, &visited); size > 0 {
				b.blackRegions = append(b.blackRegions, size)
			}
		case White:
			if size := b.floodFill(sq, side, &visited); size > 0 {
				b.whiteRegions = append(b.whiteRegions, size)
			}
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(b.blackRegions)))
	sort.Sort(sort.Reverse(sort.IntSlice(b.whiteRegions)))
	b.regionsKnown = true
}

// floodFill marks the unvisited region of side containing start and returns its size.
// Just an explicit-stack DFS over the eight neighbours.
func (b *Board) floodFill(start Square, side Piece, visited *[NumSquares]bool) int {
	if visited[start] || b.cells[start] != side {
		return 0
	}
	visited[start] = true
	stack := []Square{start}
	size := 0

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++

		for _, adj := range current.Adjacent() {
			if !visited[adj] && b.cells[adj] == side {
				visited[adj] = true
				stack = append(stack, adj)
			}
		}
	}
	return size
}
