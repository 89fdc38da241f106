package cli

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe/internal/model"
)

// application carries state shared by every command of one CLI invocation
type application struct {
	cfg     *Config
	loadErr error
	logger  *slog.Logger
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newApplication().rootCmd()
}

func newApplication() *application {
	cfg, err := LoadConfig()
	return &application{cfg: cfg, loadErr: err}
}

func (app *application) rootCmd() *cobra.Command {
	cfg := app.cfg

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against the computer",
		Long: `tictactoe is a terminal game of noughts and crosses against a computer player
that searches every possible continuation before it moves.

Moves are entered as "row,col" with both indices between 0 and 2.

` + EnvHelp(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.loadErr != nil {
				return app.loadErr
			}

			logger, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			app.logger = logger
			return nil
		},
		RunE:          func(cmd *cobra.Command, args []string) error { return app.play(cmd) },
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: TICTACTOE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&cfg.Strategy, "strategy", cfg.Strategy,
		fmt.Sprintf("Computer strategy: %v (env: TICTACTOE_STRATEGY)", model.ValidBotStrategies()))
	rootCmd.PersistentFlags().StringVar(&cfg.Computer, "computer", cfg.Computer, "Computer symbol X or O, random if empty (env: TICTACTOE_COMPUTER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: TICTACTOE_OUTPUT)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd(app))
	rootCmd.AddCommand(newAnalyzeCmd(app))

	addPlayFlags(rootCmd, cfg)

	return rootCmd
}

// Execute runs the root command
func Execute() {
	app := newApplication()

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	if err := app.rootCmd().Execute(); err != nil {
		NewOutput(app.cfg.Output, os.Stdout, os.Stderr).PrintError(err)
		os.Exit(1)
	}
}
