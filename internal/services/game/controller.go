package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/tictactoe/internal/dependencies/random"
	"github.com/mcoot/tictactoe/internal/model"
	"github.com/mcoot/tictactoe/internal/services/board"
	"github.com/mcoot/tictactoe/internal/services/bot"
	"github.com/mcoot/tictactoe/internal/services/scoring"
)

// PromptCoords is shown whenever the human is asked for a move
const PromptCoords = "Input coords: "

// Controller manages the turn state machine of a match
type Controller struct {
	boardService     *board.Service
	botService       *bot.Service
	random           random.Random
	immediateOutcome bool
	logger           *slog.Logger
}

// NewController creates a new GameController. With immediateOutcome the board
// is also evaluated right after the human's move; otherwise only after the
// computer's.
func NewController(
	boardService *board.Service,
	botService *bot.Service,
	random random.Random,
	immediateOutcome bool,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		boardService:     boardService,
		botService:       botService,
		random:           random,
		immediateOutcome: immediateOutcome,
		logger:           logger.With(slog.String("component", "game-controller")),
	}
}

// NewMatch assigns roles and the starting side and returns a match on an empty board
func (c *Controller) NewMatch(opts MatchOptions) (*Match, error) {
	computer := opts.Computer
	if computer == model.Empty {
		computer = random.Choose(c.random, model.X, model.O)
	}

	roles, err := model.NewRoles(computer)
	if err != nil {
		return nil, err
	}

	var state State
	switch opts.First {
	case "":
		state = random.Choose(c.random, StateComputerTurn, StateHumanTurn)
	case model.RoleComputer:
		state = StateComputerTurn
	case model.RoleHuman:
		state = StateHumanTurn
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidStarter, opts.First)
	}

	match := &Match{
		ID:      uuid.New(),
		Roles:   roles,
		State:   state,
		Outcome: model.InProgress,
	}

	c.logger.Info("match created",
		slog.String("match_id", match.ID.String()),
		slog.String("computer", roles.Computer.String()),
		slog.String("human", roles.Human.String()),
		slog.String("first", state.String()),
	)

	return match, nil
}

// Play runs the match to completion and renders the result
func (c *Controller) Play(ctx context.Context, match *Match, input Input, view View) (model.Outcome, error) {
	view.ShowRoles(match.Roles)

	for match.State != StateMatchOver {
		if err := ctx.Err(); err != nil {
			return match.Outcome, err
		}
		if err := c.Step(ctx, match, input, view); err != nil {
			return match.Outcome, err
		}
	}

	if err := c.showResult(match, view); err != nil {
		return match.Outcome, err
	}
	return match.Outcome, nil
}

// Step performs a single transition of the state machine
func (c *Controller) Step(ctx context.Context, match *Match, input Input, view View) error {
	switch match.State {
	case StateComputerTurn:
		return c.computerTurn(ctx, match, view)
	case StateHumanTurn:
		return c.humanTurn(match, input, view)
	case StateMatchOver:
		return model.ErrMatchOver
	default:
		return fmt.Errorf("unknown match state %d", match.State)
	}
}

func (c *Controller) computerTurn(ctx context.Context, match *Match, view View) error {
	// The opening move is announced on the empty board before it is played
	if match.Board.EmptyCount() == model.Size*model.Size {
		if err := c.announce(match, match.Roles.Computer, view); err != nil {
			return err
		}
		view.ShowSpacer()

		if err := c.playComputerMove(ctx, match); err != nil {
			return err
		}
		match.State = StateHumanTurn
		return nil
	}

	if err := c.playComputerMove(ctx, match); err != nil {
		return err
	}

	if err := c.announce(match, match.Roles.Computer, view); err != nil {
		return err
	}
	view.ShowSpacer()

	if !c.checkOutcome(match) {
		match.State = StateHumanTurn
	}
	return nil
}

func (c *Controller) playComputerMove(ctx context.Context, match *Match) error {
	pos, err := c.botService.PlayTurn(ctx, &match.Board, match.Roles)
	switch {
	case errors.Is(err, bot.ErrNoAvailableMoves):
		c.logger.Debug("computer has no move",
			slog.String("match_id", match.ID.String()),
		)
	case err != nil:
		return fmt.Errorf("computer turn: %w", err)
	default:
		c.logMove(match, model.RoleComputer, pos)
	}
	return nil
}

func (c *Controller) humanTurn(match *Match, input Input, view View) error {
	if err := c.announce(match, match.Roles.Human, view); err != nil {
		return err
	}

	var pos model.Position
	for {
		line, err := input.ReadLine(PromptCoords)
		if err != nil {
			return fmt.Errorf("reading human move: %w", err)
		}

		pos, err = c.boardService.PlaceInput(&match.Board, line, match.Roles.Human)
		if err == nil {
			break
		}
		if !isInputError(err) {
			return err
		}
		view.ShowInputError(err)
	}
	view.ShowSpacer()
	c.logMove(match, model.RoleHuman, pos)

	if c.immediateOutcome && c.checkOutcome(match) {
		return nil
	}
	match.State = StateComputerTurn
	return nil
}

// checkOutcome evaluates the board and ends the match if it is decided
func (c *Controller) checkOutcome(match *Match) bool {
	outcome := scoring.Evaluate(&match.Board)
	if !outcome.IsTerminal() {
		return false
	}

	match.Outcome = outcome
	match.State = StateMatchOver

	c.logger.Info("match finished",
		slog.String("match_id", match.ID.String()),
		slog.String("outcome", outcome.String()),
		slog.String("board", match.Board.String()),
	)
	return true
}

func (c *Controller) announce(match *Match, symbol model.Cell, view View) error {
	role, err := match.Roles.RoleOf(symbol)
	if err != nil {
		return err
	}
	view.ShowTurn(symbol, role)
	view.ShowBoard(&match.Board)
	return nil
}

func (c *Controller) showResult(match *Match, view View) error {
	var winner model.Role
	if match.Outcome.Kind == model.OutcomeWin {
		role, err := match.Roles.RoleOf(match.Outcome.Winner)
		if err != nil {
			return err
		}
		winner = role
	}
	view.ShowResult(&match.Board, match.Outcome, winner)
	return nil
}

func (c *Controller) logMove(match *Match, role model.Role, pos model.Position) {
	c.logger.Debug("move played",
		slog.String("match_id", match.ID.String()),
		slog.String("role", string(role)),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
	)
}

func isInputError(err error) bool {
	return errors.Is(err, model.ErrMalformedInput) ||
		errors.Is(err, model.ErrInvalidPosition) ||
		errors.Is(err, model.ErrCellOccupied)
}
