package board

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mcoot/tictactoe/internal/model"
)

// Service parses and validates human moves before they touch the board
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// ParseCoords reads "row,col". Surrounding whitespace on either number is ignored.
func (s *Service) ParseCoords(input string) (model.Position, error) {
	parts := strings.Split(strings.TrimSpace(input), ",")
	if len(parts) != 2 {
		return model.Position{}, fmt.Errorf("%w: got %d values", model.ErrMalformedInput, len(parts))
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: invalid row: %w", model.ErrMalformedInput, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: invalid col: %w", model.ErrMalformedInput, err)
	}

	return model.Position{Row: row, Col: col}, nil
}

// ValidatePlacement checks if a position is on the board and empty.
// Negative indices are rejected rather than wrapped to the far edge.
func (s *Service) ValidatePlacement(board *model.Board, pos model.Position) error {
	if !board.IsValidPosition(pos) {
		return model.ErrInvalidPosition
	}
	if !board.IsEmpty(pos) {
		return model.ErrCellOccupied
	}
	return nil
}

// Place validates and applies a move
func (s *Service) Place(board *model.Board, pos model.Position, cell model.Cell) error {
	if err := s.ValidatePlacement(board, pos); err != nil {
		s.logger.Debug("placement rejected",
			slog.Int("row", pos.Row),
			slog.Int("col", pos.Col),
			slog.String("error", err.Error()),
		)
		return err
	}

	board.Set(pos, cell)
	return nil
}

// PlaceInput parses the human's line and applies it for the given symbol
func (s *Service) PlaceInput(board *model.Board, input string, cell model.Cell) (model.Position, error) {
	pos, err := s.ParseCoords(input)
	if err != nil {
		return model.Position{}, err
	}
	if err := s.Place(board, pos, cell); err != nil {
		return model.Position{}, err
	}
	return pos, nil
}

// IsFull checks if all cells are filled
func (s *Service) IsFull(board *model.Board) bool {
	return board.IsFull()
}
