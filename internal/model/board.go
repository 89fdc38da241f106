package model

import (
	"fmt"
	"strings"
)

// Size is the board dimension
const Size = 3

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Board is the 3x3 grid, row-major: Board[row][col]
type Board [Size][Size]Cell

// Get returns the cell at the given position
func (b *Board) Get(pos Position) Cell {
	return b[pos.Row][pos.Col]
}

// Set places a cell at the given position. Callers validate the position.
func (b *Board) Set(pos Position, cell Cell) {
	b[pos.Row][pos.Col] = cell
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == Empty
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < Size && pos.Col >= 0 && pos.Col < Size
}

// IsFull returns true if all cells are filled
func (b *Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == Empty {
				count++
			}
		}
	}
	return count
}

// EmptyPositions lists the empty cells in row-major order
func (b *Board) EmptyPositions() []Position {
	var empty []Position
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == Empty {
				empty = append(empty, Position{Row: row, Col: col})
			}
		}
	}
	return empty
}

// Count returns how many cells hold the given value
func (b *Board) Count(cell Cell) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == cell {
				count++
			}
		}
	}
	return count
}

// String returns the compact form used by ParseBoard, e.g. "XO./.X./..O"
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < Size; col++ {
			if b[row][col] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(b[row][col].String())
			}
		}
	}
	return sb.String()
}

// ParseBoard reads a board in compact form. Rows may be separated by '/',
// and '.', '-', '_' or ' ' mark empty cells.
func ParseBoard(s string) (Board, error) {
	var board Board

	cells := strings.ReplaceAll(s, "/", "")
	if len(cells) != Size*Size {
		return board, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, Size*Size, len(cells))
	}

	for i, ch := range cells {
		pos := Position{Row: i / Size, Col: i % Size}
		switch ch {
		case 'X', 'x':
			board.Set(pos, X)
		case 'O', 'o':
			board.Set(pos, O)
		case '.', '-', '_', ' ':
		default:
			return board, fmt.Errorf("%w: unexpected %q", ErrInvalidBoard, ch)
		}
	}

	return board, nil
}
