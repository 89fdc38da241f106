package bot

import (
	"log/slog"

	"github.com/mcoot/tictactoe/internal/model"
	"github.com/mcoot/tictactoe/internal/services/scoring"
)

// MoveValue is the minimax value of placing the computer's symbol at Position
type MoveValue struct {
	Position model.Position
	Value    int
}

// Searcher runs a full minimax search for one role assignment. The board is
// mutated in place while exploring and restored after every branch.
type Searcher struct {
	roles  model.Roles
	scores scoring.Scores
	nodes  int
}

// NewSearcher creates a Searcher scoring from the computer's perspective
func NewSearcher(roles model.Roles) *Searcher {
	return &Searcher{
		roles:  roles,
		scores: scoring.NewScores(roles),
	}
}

// Nodes returns how many boards have been evaluated so far
func (s *Searcher) Nodes() int {
	return s.nodes
}

// Value returns the minimax value of the board. maximizing is true when the
// computer moves next.
func (s *Searcher) Value(board *model.Board, maximizing bool) int {
	s.nodes++

	outcome := scoring.Evaluate(board)
	if outcome.IsTerminal() {
		return s.scores.Utility(outcome)
	}

	mover := s.roles.Mover(maximizing)
	best := 0
	for i, pos := range board.EmptyPositions() {
		score := explore(board, pos, mover, func() int {
			return s.Value(board, !maximizing)
		})
		if i == 0 || (maximizing && score > best) || (!maximizing && score < best) {
			best = score
		}
	}
	return best
}

// MoveValues scores every empty cell, in row-major order, as a computer move
// followed by the human's reply
func (s *Searcher) MoveValues(board *model.Board) []MoveValue {
	var values []MoveValue
	for _, pos := range board.EmptyPositions() {
		value := explore(board, pos, s.roles.Computer, func() int {
			return s.Value(board, false)
		})
		values = append(values, MoveValue{Position: pos, Value: value})
	}
	return values
}

// BestMove returns the highest valued move. ok is false when the board has no empty cell.
func (s *Searcher) BestMove(board *model.Board) (MoveValue, bool) {
	return Best(s.MoveValues(board))
}

// Best picks the highest value. Equal values keep the earliest entry.
func Best(values []MoveValue) (best MoveValue, ok bool) {
	for _, mv := range values {
		if !ok || mv.Value > best.Value {
			best = mv
			ok = true
		}
	}
	return best, ok
}

// explore places cell at pos, runs fn, and clears pos again however fn returns
func explore(board *model.Board, pos model.Position, cell model.Cell, fn func() int) int {
	board.Set(pos, cell)
	defer board.Set(pos, model.Empty)
	return fn()
}

// MinimaxStrategy plays the move with the best minimax value
type MinimaxStrategy struct {
	logger *slog.Logger
}

// NewMinimaxStrategy creates a new MinimaxStrategy
func NewMinimaxStrategy(logger *slog.Logger) *MinimaxStrategy {
	return &MinimaxStrategy{
		logger: logger.With(slog.String("component", "minimax")),
	}
}

// ChoosePosition runs the search and returns the best move
func (s *MinimaxStrategy) ChoosePosition(board *model.Board, roles model.Roles) (model.Position, error) {
	searcher := NewSearcher(roles)
	best, ok := searcher.BestMove(board)
	if !ok {
		return model.Position{}, ErrNoAvailableMoves
	}

	s.logger.Debug("search complete",
		slog.String("board", board.String()),
		slog.Int("nodes", searcher.Nodes()),
		slog.Int("row", best.Position.Row),
		slog.Int("col", best.Position.Col),
		slog.Int("value", best.Value),
	)

	return best.Position, nil
}
