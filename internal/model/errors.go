package model

import "errors"

// Common errors used across the application
var (
	// Input errors, recoverable: the human is asked again
	ErrMalformedInput  = errors.New("input must be two comma-separated integers")
	ErrInvalidPosition = errors.New("position is outside the board")
	ErrCellOccupied    = errors.New("cell is already occupied")

	// Match errors
	ErrUnknownPlayer = errors.New("unknown player symbol")
	ErrMatchOver     = errors.New("match is already over")
	ErrInvalidSymbol = errors.New("symbol must be X or O")

	// Setup errors
	ErrInvalidBoard    = errors.New("invalid board")
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrInvalidStarter  = errors.New("first player must be computer or human")
)
