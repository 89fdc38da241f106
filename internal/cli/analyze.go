package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe/internal/model"
	"github.com/mcoot/tictactoe/internal/services/bot"
	"github.com/mcoot/tictactoe/internal/services/scoring"
)

func newAnalyzeCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <board>",
		Short: "Score every legal move on a board",
		Long: `Run the full minimax search on a board and print the value of every legal move.

The board is written row by row, for example "XO./.X./..O". Use '.', '-', '_' or
a space for an empty cell. The computer plays the side to move unless --computer
is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := app.analyze(args[0])
			if err != nil {
				return err
			}

			NewOutput(app.cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(analysis)
			return nil
		},
	}
}

func (app *application) analyze(input string) (Analysis, error) {
	board, err := model.ParseBoard(input)
	if err != nil {
		return Analysis{}, err
	}

	computer, err := app.cfg.ComputerSymbol()
	if err != nil {
		return Analysis{}, err
	}
	if computer == model.Empty {
		computer = sideToMove(&board)
	}

	roles, err := model.NewRoles(computer)
	if err != nil {
		return Analysis{}, err
	}

	outcome := scoring.Evaluate(&board)
	analysis := Analysis{
		Board:    board.String(),
		Computer: computer.String(),
		Outcome:  outcome.String(),
	}
	if outcome.IsTerminal() {
		return analysis, nil
	}

	searcher := bot.NewSearcher(roles)
	values := searcher.MoveValues(&board)
	for _, mv := range values {
		analysis.Moves = append(analysis.Moves, toMoveScore(mv))
	}
	if best, ok := bot.Best(values); ok {
		score := toMoveScore(best)
		analysis.Best = &score
	}
	analysis.Nodes = searcher.Nodes()

	app.logger.Debug("analysis complete",
		slog.String("board", analysis.Board),
		slog.String("computer", analysis.Computer),
		slog.Int("nodes", analysis.Nodes),
	)

	return analysis, nil
}

// sideToMove assumes X opens, so O is to move when X has one extra mark
func sideToMove(board *model.Board) model.Cell {
	if board.Count(model.X) > board.Count(model.O) {
		return model.O
	}
	return model.X
}

func toMoveScore(mv bot.MoveValue) MoveScore {
	return MoveScore{Row: mv.Position.Row, Col: mv.Position.Col, Value: mv.Value}
}
