package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mcoot/tictactoe/internal/model"
	"github.com/mcoot/tictactoe/internal/services/game"
)

// Config holds CLI configuration. Environment variables set the defaults and
// command-line flags override them.
type Config struct {
	LogLevel         string `env:"TICTACTOE_LOG_LEVEL" env-default:"warn" env-description:"Log level: debug, info, warn, error"`
	Strategy         string `env:"TICTACTOE_STRATEGY" env-default:"minimax" env-description:"Computer strategy: minimax, random"`
	Computer         string `env:"TICTACTOE_COMPUTER" env-description:"Computer symbol, X or O; empty picks at random"`
	First            string `env:"TICTACTOE_FIRST" env-description:"Side that moves first, computer or human; empty picks at random"`
	ImmediateOutcome bool   `env:"TICTACTOE_IMMEDIATE_OUTCOME" env-default:"false" env-description:"Check for a result right after the human's move"`
	Output           string `env:"TICTACTOE_OUTPUT" env-default:"text" env-description:"Output format for analyze: text, json"`
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return cfg, fmt.Errorf("unable to load config from environment: %w", err)
	}
	return cfg, nil
}

// EnvHelp describes the environment variables understood by the CLI
func EnvHelp() string {
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return ""
	}
	return text
}

// ComputerSymbol returns the configured computer symbol, or Empty for random
func (c *Config) ComputerSymbol() (model.Cell, error) {
	if c.Computer == "" {
		return model.Empty, nil
	}
	return model.ParseSymbol(c.Computer)
}

// MatchOptions converts the configuration into controller options
func (c *Config) MatchOptions() (game.MatchOptions, error) {
	computer, err := c.ComputerSymbol()
	if err != nil {
		return game.MatchOptions{}, err
	}

	var first model.Role
	switch strings.ToLower(c.First) {
	case "":
	case string(model.RoleComputer), "cpu":
		first = model.RoleComputer
	case string(model.RoleHuman), "player":
		first = model.RoleHuman
	default:
		return game.MatchOptions{}, fmt.Errorf("%w: %q", model.ErrInvalidStarter, c.First)
	}

	return game.MatchOptions{Computer: computer, First: first}, nil
}

// NewLogger builds the JSON logger for the configured level
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level

	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), nil
}
