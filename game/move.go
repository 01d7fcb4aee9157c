package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a board coordinate plus the utility the search assigned to it.
// Value is meaningless until a search sets it.
type Move struct {
	X     int
	Y     int
	Value int
}

// SameSquare reports whether two moves target the same cell, ignoring Value.
func (m Move) SameSquare(other Move) bool {
	return m.X == other.X && m.Y == other.Y
}

// Square returns the move without its search value, so moves can be
// compared by the cell they target.
func (m Move) Square() Move {
	return Move{X: m.X, Y: m.Y}
}

// String renders the move in column-letter, row-number notation, e.g. "d3".
func (m Move) String() string {
	if !InBounds(m.X, m.Y) {
		return fmt.Sprintf("(%d,%d)", m.X, m.Y)
	}
	return fmt.Sprintf("%c%d", 'a'+m.X-1, m.Y)
}

// ParseMove accepts "d3" notation or a pair of coordinates "4 3" / "4,3".
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8' {
		return Move{X: int(s[0]-'a') + 1, Y: int(s[1] - '0')}, nil
	}

	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("parse move %q: expected notation like d3 or \"4 3\"", s)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Move{}, fmt.Errorf("parse move %q: %w", s, err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, fmt.Errorf("parse move %q: %w", s, err)
	}
	if !InBounds(x, y) {
		return Move{}, fmt.Errorf("parse move %q: coordinates out of range", s)
	}
	return Move{X: x, Y: y}, nil
}
