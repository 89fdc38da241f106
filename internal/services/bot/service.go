package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/tictactoe/internal/model"
	"github.com/mcoot/tictactoe/internal/services/board"
)

// ErrNoAvailableMoves is returned when the computer is asked to move on a full board
var ErrNoAvailableMoves = errors.New("no available moves")

// Service plays the computer's half-turns
type Service struct {
	boardService *board.Service
	strategy     Strategy
	logger       *slog.Logger
}

// NewService creates a new bot Service
func NewService(boardService *board.Service, strategy Strategy, logger *slog.Logger) *Service {
	return &Service{
		boardService: boardService,
		strategy:     strategy,
		logger:       logger.With(slog.String("component", "bot-service")),
	}
}

// PlayTurn chooses the computer's move and applies it to the board
func (s *Service) PlayTurn(ctx context.Context, b *model.Board, roles model.Roles) (model.Position, error) {
	if err := ctx.Err(); err != nil {
		return model.Position{}, err
	}
	if s.boardService.IsFull(b) {
		return model.Position{}, ErrNoAvailableMoves
	}

	pos, err := s.strategy.ChoosePosition(b, roles)
	if err != nil {
		return model.Position{}, err
	}

	if err := s.boardService.Place(b, pos, roles.Computer); err != nil {
		return model.Position{}, fmt.Errorf("bot chose an illegal move: %w", err)
	}

	s.logger.Debug("bot moved",
		slog.String("symbol", roles.Computer.String()),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
	)

	return pos, nil
}
