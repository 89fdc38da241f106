package bot

import (
	"github.com/mcoot/tictactoe/internal/dependencies/random"
	"github.com/mcoot/tictactoe/internal/model"
)

// RandomStrategy picks a random empty position
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChoosePosition picks a random empty cell on the board
func (s *RandomStrategy) ChoosePosition(board *model.Board, _ model.Roles) (model.Position, error) {
	empty := board.EmptyPositions()
	if len(empty) == 0 {
		return model.Position{}, ErrNoAvailableMoves
	}
	return random.Choose(s.random, empty...), nil
}
