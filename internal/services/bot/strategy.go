package bot

import "github.com/mcoot/tictactoe/internal/model"

// Strategy defines how the computer chooses its next cell
type Strategy interface {
	// ChoosePosition selects an empty position for the computer's symbol.
	// The board must be left exactly as it was passed in.
	ChoosePosition(board *model.Board, roles model.Roles) (model.Position, error)
}
