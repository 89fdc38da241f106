package model

import "fmt"

// Role is which side of the match a symbol belongs to
type Role string

const (
	RoleComputer Role = "computer"
	RoleHuman    Role = "human"
)

// Roles binds the computer and the human to distinct symbols for one match
type Roles struct {
	Computer Cell
	Human    Cell
}

// NewRoles gives the computer the given symbol and the human the other one
func NewRoles(computer Cell) (Roles, error) {
	if !computer.IsSymbol() {
		return Roles{}, fmt.Errorf("%w: %q", ErrInvalidSymbol, computer.String())
	}
	return Roles{Computer: computer, Human: computer.Opponent()}, nil
}

// RoleOf reports which side plays the given symbol
func (r Roles) RoleOf(cell Cell) (Role, error) {
	switch cell {
	case r.Computer:
		return RoleComputer, nil
	case r.Human:
		return RoleHuman, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlayer, cell.String())
	}
}

// Mover returns the symbol placed by the maximizing (computer) or minimizing (human) side
func (r Roles) Mover(maximizing bool) Cell {
	if maximizing {
		return r.Computer
	}
	return r.Human
}
