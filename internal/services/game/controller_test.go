package game_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe/internal/dependencies/mocks"
	"github.com/mcoot/tictactoe/internal/model"
	"github.com/mcoot/tictactoe/internal/services/board"
	"github.com/mcoot/tictactoe/internal/services/bot"
	"github.com/mcoot/tictactoe/internal/services/game"
	"github.com/mcoot/tictactoe/internal/services/scoring"
	"github.com/mcoot/tictactoe/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	random       *mocks.MockRandom
	boardService *board.Service
	botService   *bot.Service
	controller   *game.Controller
	view         *recordingView
	ctx          context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.random = mocks.NewMockRandom()
	s.boardService = board.New(logger)
	s.botService = bot.NewService(s.boardService, bot.NewMinimaxStrategy(logger), logger)
	s.controller = game.NewController(s.boardService, s.botService, s.random, false, logger)
	s.view = &recordingView{}
	s.ctx = context.Background()
}

// newMatch builds a match in the given state on a preset board
func (s *ControllerSuite) newMatch(computer model.Cell, state game.State, compact string) *game.Match {
	first := model.RoleComputer
	if state == game.StateHumanTurn {
		first = model.RoleHuman
	}
	match, err := s.controller.NewMatch(game.MatchOptions{Computer: computer, First: first})
	s.Require().NoError(err)

	match.Board, err = model.ParseBoard(compact)
	s.Require().NoError(err)
	return match
}

// NewMatch tests

func (s *ControllerSuite) TestNewMatchRandomSetup() {
	s.random.QueueIntn(1, 0) // computer gets O, computer moves first

	match, err := s.controller.NewMatch(game.MatchOptions{})
	s.Require().NoError(err)

	s.Equal(model.O, match.Roles.Computer)
	s.Equal(model.X, match.Roles.Human)
	s.Equal(game.StateComputerTurn, match.State)
	s.Equal(model.InProgress, match.Outcome)
	s.Equal(9, match.Board.EmptyCount())
	s.NotEmpty(match.ID.String())
	s.Equal([]int{2, 2}, s.random.Calls)
}

func (s *ControllerSuite) TestNewMatchRandomHumanFirst() {
	s.random.QueueIntn(0, 1)

	match, err := s.controller.NewMatch(game.MatchOptions{})
	s.Require().NoError(err)

	s.Equal(model.X, match.Roles.Computer)
	s.Equal(game.StateHumanTurn, match.State)
}

func (s *ControllerSuite) TestNewMatchFixedSetupSkipsRandom() {
	match, err := s.controller.NewMatch(game.MatchOptions{Computer: model.O, First: model.RoleHuman})
	s.Require().NoError(err)

	s.Equal(model.O, match.Roles.Computer)
	s.Equal(game.StateHumanTurn, match.State)
	s.Empty(s.random.Calls)
}

func (s *ControllerSuite) TestNewMatchIDsDiffer() {
	first, err := s.controller.NewMatch(game.MatchOptions{})
	s.Require().NoError(err)
	second, err := s.controller.NewMatch(game.MatchOptions{})
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
}

func (s *ControllerSuite) TestNewMatchInvalidOptions() {
	_, err := s.controller.NewMatch(game.MatchOptions{First: "spectator"})
	s.ErrorIs(err, model.ErrInvalidStarter)

	_, err = s.controller.NewMatch(game.MatchOptions{Computer: model.Cell(5)})
	s.ErrorIs(err, model.ErrInvalidSymbol)
}

// Step tests

func (s *ControllerSuite) TestComputerTurnWinsMatch() {
	match := s.newMatch(model.X, game.StateComputerTurn, "XX./OO./...")

	outcome, err := s.controller.Play(s.ctx, match, &scriptedInput{}, s.view)
	s.Require().NoError(err)

	s.Equal(model.WinFor(model.X), outcome)
	s.Equal(game.StateMatchOver, match.State)
	s.Equal(model.RoleComputer, s.view.winner)
	s.Equal([]string{
		"roles X/O",
		"turn X computer",
		"board XXX/OO./...",
		"spacer",
		"result X wins XXX/OO./...",
	}, s.view.events)
}

func (s *ControllerSuite) TestComputerTurnHandsOverToHuman() {
	match := s.newMatch(model.X, game.StateComputerTurn, ".../.../...")

	err := s.controller.Step(s.ctx, match, &scriptedInput{}, s.view)
	s.Require().NoError(err)

	s.Equal(game.StateHumanTurn, match.State)
	s.Equal("X../.../...", match.Board.String())
	// the opening move is announced on the empty board before it is played
	s.Equal([]string{
		"turn X computer",
		"board .../.../...",
		"spacer",
	}, s.view.events)
}

func (s *ControllerSuite) TestHumanTurnRepromptsOnInvalidInput() {
	match := s.newMatch(model.X, game.StateHumanTurn, "X../.../...")
	input := &scriptedInput{lines: []string{"abc", "1", "3,0", "-1,0", "0,0", " 1 , 1 "}}

	err := s.controller.Step(s.ctx, match, input, s.view)
	s.Require().NoError(err)

	s.Equal(game.StateComputerTurn, match.State)
	s.Equal("X../.O./...", match.Board.String())
	s.Len(input.prompts, 6)
	s.Equal(game.PromptCoords, input.prompts[0])

	s.Require().Len(s.view.errors, 5)
	s.ErrorIs(s.view.errors[0], model.ErrMalformedInput)
	s.ErrorIs(s.view.errors[1], model.ErrMalformedInput)
	s.ErrorIs(s.view.errors[2], model.ErrInvalidPosition)
	s.ErrorIs(s.view.errors[3], model.ErrInvalidPosition)
	s.ErrorIs(s.view.errors[4], model.ErrCellOccupied)
}

func (s *ControllerSuite) TestHumanTurnInputClosed() {
	match := s.newMatch(model.X, game.StateHumanTurn, ".../.../...")

	_, err := s.controller.Play(s.ctx, match, &scriptedInput{lines: []string{"9,9"}}, s.view)
	s.ErrorIs(err, io.EOF)
	s.Equal(game.StateHumanTurn, match.State)
	s.Zero(s.view.results)
}

func (s *ControllerSuite) TestHumanWinDetectedAfterComputerReply() {
	match := s.newMatch(model.X, game.StateHumanTurn, "OO./X../X..")

	outcome, err := s.controller.Play(s.ctx, match, &scriptedInput{lines: []string{"0,2"}}, s.view)
	s.Require().NoError(err)

	s.Equal(model.WinFor(model.O), outcome)
	s.Equal(model.RoleHuman, s.view.winner)
	// the computer still plays its half of the round before the board is checked
	s.Equal("OOO/XX./X..", match.Board.String())
}

func (s *ControllerSuite) TestHumanWinDetectedImmediately() {
	logger := testutil.NopLogger()
	controller := game.NewController(s.boardService, s.botService, s.random, true, logger)
	match, err := controller.NewMatch(game.MatchOptions{Computer: model.X, First: model.RoleHuman})
	s.Require().NoError(err)
	match.Board, err = model.ParseBoard("OO./X../X..")
	s.Require().NoError(err)

	outcome, err := controller.Play(s.ctx, match, &scriptedInput{lines: []string{"0,2"}}, s.view)
	s.Require().NoError(err)

	s.Equal(model.WinFor(model.O), outcome)
	s.Equal("OOO/X../X..", match.Board.String())
}

func (s *ControllerSuite) TestHumanFillsLastCellTie() {
	match := s.newMatch(model.O, game.StateHumanTurn, "XOX/XOO/OX.")

	outcome, err := s.controller.Play(s.ctx, match, &scriptedInput{lines: []string{"2,2"}}, s.view)
	s.Require().NoError(err)

	s.Equal(model.Tie, outcome)
	s.Equal(model.Role(""), s.view.winner)
	s.Equal(1, s.view.results)
}

func (s *ControllerSuite) TestStepAfterMatchOver() {
	match := s.newMatch(model.X, game.StateComputerTurn, "XX./OO./...")
	match.State = game.StateMatchOver

	err := s.controller.Step(s.ctx, match, &scriptedInput{}, s.view)
	s.ErrorIs(err, model.ErrMatchOver)
}

func (s *ControllerSuite) TestUnknownWinnerIsFatal() {
	match := s.newMatch(model.X, game.StateComputerTurn, "OOO/XX./X..")
	match.Roles = model.Roles{Computer: model.X, Human: model.Cell(9)}
	match.State = game.StateMatchOver
	match.Outcome = model.WinFor(model.O)

	_, err := s.controller.Play(s.ctx, match, &scriptedInput{}, s.view)
	s.ErrorIs(err, model.ErrUnknownPlayer)
	s.Zero(s.view.results)
}

func (s *ControllerSuite) TestCanceledContextStopsMatch() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	match := s.newMatch(model.X, game.StateComputerTurn, ".../.../...")

	_, err := s.controller.Play(ctx, match, &scriptedInput{}, s.view)
	s.ErrorIs(err, context.Canceled)
}

// Full match tests

func (s *ControllerSuite) TestFullMatchComputerNeverLoses() {
	for _, first := range []model.Role{model.RoleComputer, model.RoleHuman} {
		s.Run(string(first), func() {
			view := &recordingView{}
			match, err := s.controller.NewMatch(game.MatchOptions{Computer: model.X, First: first})
			s.Require().NoError(err)

			outcome, err := s.controller.Play(s.ctx, match, &firstEmptyInput{board: &match.Board}, view)
			s.Require().NoError(err)

			s.True(outcome.IsTerminal())
			s.NotEqual(model.WinFor(model.O), outcome)
			s.Equal(outcome, scoring.Evaluate(&match.Board))
			s.Equal(1, view.results)
			s.Empty(view.errors)
		})
	}
}
