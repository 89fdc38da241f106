package model

// Cell is the content of a single board square
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// String renders the cell the way the board is drawn
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// IsSymbol returns true for the two playable symbols
func (c Cell) IsSymbol() bool {
	return c == X || c == O
}

// Opponent returns the other playable symbol, or Empty for Empty
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseSymbol converts "X" or "O" (any case) to a Cell
func ParseSymbol(s string) (Cell, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	default:
		return Empty, ErrInvalidSymbol
	}
}
