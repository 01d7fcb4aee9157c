package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Board is the 8x8 Othello grid surrounded by a ring of border cells, so
// that a directional scan always stops on a sentinel before leaving the
// array. Playable coordinates run from 1 to Size on both axes.
type Board struct {
	cells   [BoardDim][BoardDim]Cell
	weights *[Size][Size]int // Static positional values, shared between copies
}

// NewEmptyBoard returns a board with its border in place and no pieces.
func NewEmptyBoard() *Board {
	b := &Board{weights: &SquareValues}
	for y := 0; y < BoardDim; y++ {
		for x := 0; x < BoardDim; x++ {
			if !InBounds(x, y) {
				b.cells[y][x] = Border
			}
		}
	}
	return b
}

// NewBoard returns the starting position: the four center cells filled on
// the diagonals, Black on (4,4) and (5,5), White on (5,4) and (4,5).
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.setUpStartPieces()
	return b
}

func (b *Board) setUpStartPieces() {
	b.cells[4][4] = BlackPiece
	b.cells[4][5] = WhitePiece
	b.cells[5][4] = WhitePiece
	b.cells[5][5] = BlackPiece
}

// Reset clears the playable region and restores the starting position.
func (b *Board) Reset() {
	for y := 1; y <= Size; y++ {
		for x := 1; x <= Size; x++ {
			b.cells[y][x] = Empty
		}
	}
	b.setUpStartPieces()
}

// Clone returns an independent copy. The cell grid is copied by value; the
// weight table is immutable and shared.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// InBounds reports whether (x, y) lies in the playable region.
func InBounds(x, y int) bool {
	return x >= 1 && x <= Size && y >= 1 && y <= Size
}

// Cell returns the content at (x, y), or Border for anything outside the
// playable region.
func (b *Board) Cell(x, y int) Cell {
	if !InBounds(x, y) {
		return Border
	}
	return b.cells[y][x]
}

// Weight returns the static positional value of a playable cell, 0 elsewhere.
func (b *Board) Weight(x, y int) int {
	if !InBounds(x, y) {
		return 0
	}
	return b.weights[y-1][x-1]
}

// Hash returns an FNV-64a digest of the playable cells.
func (b *Board) Hash() BoardHash {
	hasher := fnv.New64a()
	for y := 1; y <= Size; y++ {
		binary.Write(hasher, binary.LittleEndian, b.cells[y][1:Size+1])
	}
	return BoardHash(hasher.Sum64())
}

// String renders the board as 8 rows of '.', 'B' and 'W' with column
// letters and row numbers.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for y := 1; y <= Size; y++ {
		fmt.Fprintf(&sb, "%d", y)
		for x := 1; x <= Size; x++ {
			sb.WriteByte(' ')
			sb.WriteByte(cellRune(b.cells[y][x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(c Cell) byte {
	switch c {
	case BlackPiece:
		return 'B'
	case WhitePiece:
		return 'W'
	case Empty:
		return '.'
	default:
		return '#'
	}
}

// ParseBoard builds a board from 8 rows of 8 cells written as '.', 'B' or
// 'W'. Whitespace is ignored, so rows may be spaced out for readability.
func ParseBoard(s string) (*Board, error) {
	b := NewEmptyBoard()
	cells := make([]Cell, 0, Size*Size)
	for _, r := range s {
		switch r {
		case '.':
			cells = append(cells, Empty)
		case 'B', 'b':
			cells = append(cells, BlackPiece)
		case 'W', 'w':
			cells = append(cells, WhitePiece)
		case ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("parse board: unexpected character %q", r)
		}
	}
	if len(cells) != Size*Size {
		return nil, fmt.Errorf("parse board: expected %d cells, got %d", Size*Size, len(cells))
	}
	for i, c := range cells {
		b.cells[i/Size+1][i%Size+1] = c
	}
	return b, nil
}
