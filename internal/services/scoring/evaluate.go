package scoring

import "github.com/mcoot/tictactoe/internal/model"

// Line is three positions that win when held by one symbol
type Line [3]model.Position

// Lines lists every winning line in scan order: rows, columns, main diagonal, anti-diagonal
var Lines = buildLines()

func buildLines() []Line {
	lines := make([]Line, 0, 2*model.Size+2)
	for row := 0; row < model.Size; row++ {
		lines = append(lines, Line{{Row: row, Col: 0}, {Row: row, Col: 1}, {Row: row, Col: 2}})
	}
	for col := 0; col < model.Size; col++ {
		lines = append(lines, Line{{Row: 0, Col: col}, {Row: 1, Col: col}, {Row: 2, Col: col}})
	}
	lines = append(lines,
		Line{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		Line{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}},
	)
	return lines
}

// Evaluate reports whether the board is won, tied or still in progress.
// Every line is checked; if more than one is won the last one in scan order decides.
func Evaluate(board *model.Board) model.Outcome {
	winner := model.Empty
	for _, line := range Lines {
		if held := lineHolder(board, line); held != model.Empty {
			winner = held
		}
	}

	if winner != model.Empty {
		return model.WinFor(winner)
	}
	if board.EmptyCount() == 0 {
		return model.Tie
	}
	return model.InProgress
}

// lineHolder returns the symbol occupying all three cells, or Empty
func lineHolder(board *model.Board, line Line) model.Cell {
	first := board.Get(line[0])
	if first == model.Empty {
		return model.Empty
	}
	if board.Get(line[1]) != first || board.Get(line[2]) != first {
		return model.Empty
	}
	return first
}
