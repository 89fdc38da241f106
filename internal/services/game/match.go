package game

import (
	"github.com/google/uuid"

	"github.com/mcoot/tictactoe/internal/model"
)

// State is a phase of the turn state machine
type State uint8

const (
	StateComputerTurn State = iota
	StateHumanTurn
	StateMatchOver
)

func (s State) String() string {
	switch s {
	case StateComputerTurn:
		return "computer_turn"
	case StateHumanTurn:
		return "human_turn"
	case StateMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Match is one game between the computer and the human. It owns the board.
type Match struct {
	ID      uuid.UUID
	Board   model.Board
	Roles   model.Roles
	State   State
	Outcome model.Outcome
}

// MatchOptions fixes parts of the match setup that are otherwise random
type MatchOptions struct {
	// Computer is the computer's symbol; Empty picks X or O at random
	Computer model.Cell
	// First is the side that moves first; empty picks at random
	First model.Role
}

// Input supplies the human's raw move lines
type Input interface {
	ReadLine(prompt string) (string, error)
}

// View renders the match as it progresses
type View interface {
	ShowRoles(roles model.Roles)
	ShowTurn(symbol model.Cell, role model.Role)
	ShowBoard(board *model.Board)
	ShowSpacer()
	ShowInputError(err error)
	ShowResult(board *model.Board, outcome model.Outcome, winner model.Role)
}
