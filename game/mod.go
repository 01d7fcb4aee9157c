package game

import "fmt"

const (
	Size     = 8        // Playable cells per side
	BoardDim = Size + 2 // Playable region plus one layer of border on each side
)

// Color is the side a piece or a player belongs to.
type Color int8

const (
	Black Color = iota
	White
)

func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

// Cell returns the cell value holding a piece of this color.
func (c Color) Cell() Cell {
	if c == Black {
		return BlackPiece
	}
	return WhitePiece
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("Color(%d)", int8(c))
	}
}

// ParseColor accepts "black"/"b" or "white"/"w" in any case.
func ParseColor(s string) (Color, error) {
	switch s {
	case "black", "Black", "BLACK", "b", "B":
		return Black, nil
	case "white", "White", "WHITE", "w", "W":
		return White, nil
	}
	return Black, fmt.Errorf("unknown color %q", s)
}

// Cell is the content of one square of the grid. Border cells ring the
// playable region and never hold a piece.
type Cell int8

const (
	Empty Cell = iota
	BlackPiece
	WhitePiece
	Border
)

// Holds reports whether the cell contains a piece of the given color.
// Border and Empty never match either color.
func (c Cell) Holds(color Color) bool {
	return c == color.Cell()
}

type BoardHash uint64

// Evaluate scores the board from the perspective of the given color.
// Larger is better for that color.
type Evaluate func(b *Board, color Color) int
