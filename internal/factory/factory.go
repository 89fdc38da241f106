package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/tictactoe/internal/dependencies/random"
	"github.com/mcoot/tictactoe/internal/model"
	"github.com/mcoot/tictactoe/internal/services/board"
	"github.com/mcoot/tictactoe/internal/services/bot"
	"github.com/mcoot/tictactoe/internal/services/game"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Random random.Random

	// Services
	BoardService   *board.Service
	BotService     *bot.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Strategy selects how the computer plays
	// If empty, defaults to minimax
	Strategy string
	// ImmediateOutcome checks the board after the human's move too
	ImmediateOutcome bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	return newWithDependencies(cfg, random.New())
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(cfg Config, rnd random.Random) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	strategyName := cfg.Strategy
	if strategyName == "" {
		strategyName = model.BotStrategyMinimax
	}

	strategies := map[string]bot.Strategy{
		model.BotStrategyMinimax: bot.NewMinimaxStrategy(logger),
		model.BotStrategyRandom:  bot.NewRandomStrategy(rnd),
	}
	strategy, ok := strategies[strategyName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, strategyName)
	}

	boardService := board.New(logger)
	botService := bot.NewService(boardService, strategy, logger)
	gameController := game.NewController(boardService, botService, rnd, cfg.ImmediateOutcome, logger)

	logger.Debug("application wired",
		slog.String("strategy", model.BotStrategyDisplayName(strategyName)),
		slog.Bool("immediate_outcome", cfg.ImmediateOutcome),
	)

	return &App{
		Random:         rnd,
		BoardService:   boardService,
		BotService:     botService,
		GameController: gameController,
	}, nil
}
