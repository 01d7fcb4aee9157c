package game

// directions lists the 8 compass steps as (dx, dy).
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// sandwiches reports whether walking from (x, y) in direction (dx, dy)
// crosses one or more opposing pieces and then reaches a piece of color.
// The starting cell itself is not inspected.
func (b *Board) sandwiches(x, y, dx, dy int, color Color) bool {
	own := color.Cell()
	opp := color.Opponent().Cell()
	seenOpp := false
	for cx, cy := x+dx, y+dy; ; cx, cy = cx+dx, cy+dy {
		switch b.cells[cy][cx] {
		case opp:
			seenOpp = true
		case own:
			return seenOpp
		default: // Empty or Border
			return false
		}
	}
}

// IsLegalMove reports whether color may play at (x, y): the cell must be
// playable and empty, and at least one direction must sandwich opposing
// pieces against one of color's own.
func (b *Board) IsLegalMove(x, y int, color Color) bool {
	if !InBounds(x, y) || b.cells[y][x] != Empty {
		return false
	}
	for _, d := range directions {
		if b.sandwiches(x, y, d[0], d[1], color) {
			return true
		}
	}
	return false
}

// ApplyMove places a piece of color at (x, y). It neither validates the
// move nor flips captured pieces; call ResolveCaptures afterwards.
// Coordinates outside the playable region are ignored.
func (b *Board) ApplyMove(x, y int, color Color) {
	if !InBounds(x, y) {
		return
	}
	b.cells[y][x] = color.Cell()
}

// ResolveCaptures flips every run of opposing pieces bracketed between the
// piece at (x, y) and the nearest piece of the same color, in all 8
// directions. It returns the number of flipped pieces.
func (b *Board) ResolveCaptures(x, y int, color Color) int {
	if !InBounds(x, y) {
		return 0
	}
	own := color.Cell()
	flipped := 0
	for _, d := range directions {
		if !b.sandwiches(x, y, d[0], d[1], color) {
			continue
		}
		for cx, cy := x+d[0], y+d[1]; b.cells[cy][cx] != own; cx, cy = cx+d[0], cy+d[1] {
			b.cells[cy][cx] = own
			flipped++
		}
	}
	return flipped
}

// Play applies a move for color and resolves its captures.
func (b *Board) Play(move Move, color Color) int {
	b.ApplyMove(move.X, move.Y, color)
	return b.ResolveCaptures(move.X, move.Y, color)
}

// HasAnyLegalMove reports whether color can move anywhere on the board.
func (b *Board) HasAnyLegalMove(color Color) bool {
	for y := 1; y <= Size; y++ {
		for x := 1; x <= Size; x++ {
			if b.IsLegalMove(x, y, color) {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether neither side has a legal move.
func (b *Board) IsTerminal() bool {
	return !b.HasAnyLegalMove(Black) && !b.HasAnyLegalMove(White)
}

// LegalMoves enumerates color's legal moves in row-major order.
func (b *Board) LegalMoves(color Color) []Move {
	var moves []Move
	for y := 1; y <= Size; y++ {
		for x := 1; x <= Size; x++ {
			if b.IsLegalMove(x, y, color) {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}
	return moves
}
