package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ytwiz/internal/logging"
	"ytwiz/internal/ui"
)

func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "tui",
		Short:         "Start the interactive download wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWizard(cmd)
		},
	}
}

func runWizard(cmd *cobra.Command) error {
	opts, err := optionsFrom(cmd)
	if err != nil {
		return err
	}
	if !isTerminal() {
		return &ExitError{Code: ExitCLIError, Err: errors.New("the wizard needs a terminal; use 'ytwiz run' for scripted downloads")}
	}

	logger, closer, err := logging.OpenFile(opts.LogFile, opts.Verbose)
	if err != nil {
		return cliError("open log file: %w", err)
	}
	defer closer.Close()

	if err := ui.Run(cmd.Context(), opts, logger); err != nil {
		logger.Error("wizard failed", "err", err)
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}
