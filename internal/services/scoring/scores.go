package scoring

import (
	"fmt"

	"github.com/mcoot/tictactoe/internal/model"
)

// Utilities of terminal boards, from the computer's point of view
const (
	WinScore  = 10
	LossScore = -10
	TieScore  = 0
)

// Scores maps terminal outcomes to utilities for one role assignment
type Scores struct {
	bySymbol map[model.Cell]int
}

// NewScores orients the score mapping to the symbol the computer holds
func NewScores(roles model.Roles) Scores {
	return Scores{
		bySymbol: map[model.Cell]int{
			roles.Computer: WinScore,
			roles.Human:    LossScore,
		},
	}
}

// Utility returns the score of a terminal outcome. A winner outside the role
// assignment cannot come from a legal board and panics.
func (s Scores) Utility(outcome model.Outcome) int {
	switch outcome.Kind {
	case model.OutcomeTie:
		return TieScore
	case model.OutcomeWin:
		score, ok := s.bySymbol[outcome.Winner]
		if !ok {
			panic(fmt.Errorf("%w: %q", model.ErrUnknownPlayer, outcome.Winner.String()))
		}
		return score
	default:
		panic(fmt.Sprintf("utility of non-terminal outcome %q", outcome))
	}
}
