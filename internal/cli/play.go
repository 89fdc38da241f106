package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe/internal/factory"
)

func newPlayCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match against the computer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.play(cmd)
		},
	}

	addPlayFlags(cmd, app.cfg)

	return cmd
}

func addPlayFlags(cmd *cobra.Command, cfg *Config) {
	cmd.Flags().StringVar(&cfg.First, "first", cfg.First, "Side that moves first: computer or human, random if empty (env: TICTACTOE_FIRST)")
	cmd.Flags().BoolVar(&cfg.ImmediateOutcome, "immediate-outcome", cfg.ImmediateOutcome,
		"End the match as soon as the human completes a line (env: TICTACTOE_IMMEDIATE_OUTCOME)")
}

func (app *application) play(cmd *cobra.Command) error {
	opts, err := app.cfg.MatchOptions()
	if err != nil {
		return err
	}

	a, err := factory.New(factory.Config{
		Logger:           app.logger,
		Strategy:         app.cfg.Strategy,
		ImmediateOutcome: app.cfg.ImmediateOutcome,
	})
	if err != nil {
		return err
	}

	match, err := a.GameController.NewMatch(opts)
	if err != nil {
		return err
	}

	console := NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	_, err = a.GameController.Play(cmd.Context(), match, console, console)
	return err
}
