package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ytwiz/internal/config"
	"ytwiz/internal/model"
)

const (
	ExitOK            = 0
	ExitCLIError      = 1
	ExitMissingDep    = 2
	ExitDownloadError = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

type ctxKey string

const optionsKey ctxKey = "options"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ytwiz",
		Short: "Step-by-step YouTube downloader for the terminal",
		Long: "ytwiz walks you through a download in four steps: pick video, audio or subtitles, " +
			"paste a URL, choose a format and confirm. The download itself is handed to yt-dlp " +
			"while a spinner keeps you company.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: loadOptions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWizard(cmd)
		},
	}

	// Persistent flags available to all subcommands
	bindPersistentFlags(root.PersistentFlags())

	root.AddCommand(newTuiCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newFormatsCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

func bindPersistentFlags(fs *pflag.FlagSet) {
	fs.String("base-dir", "", "Directory holding setup/ and output/ (default: current directory)")
	fs.String("tool-path", "", "Path to yt-dlp (default: <base-dir>/setup/yt-dlp, then PATH)")
	fs.StringP("output-dir", "o", "", "Download destination (default: <base-dir>/output)")
	fs.BoolP("verbose", "v", false, "Log subprocess commands and output")
	fs.String("log-file", "", "Log file used while the wizard runs (default: state dir)")
	fs.Duration("poll-interval", config.DefaultPollInterval, "Wizard refresh interval")
}

// loadOptions resolves flags, env and config once per invocation and stores
// the result on the command context.
func loadOptions(cmd *cobra.Command, _ []string) error {
	if err := config.Init(cmd.Root()); err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	opts, err := config.Load()
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	cmd.SetContext(context.WithValue(cmd.Context(), optionsKey, opts))
	return nil
}

func optionsFrom(cmd *cobra.Command) (model.CLIOptions, error) {
	if v, ok := cmd.Context().Value(optionsKey).(model.CLIOptions); ok {
		return v, nil
	}
	return model.CLIOptions{}, &ExitError{Code: ExitCLIError, Err: errors.New("options not loaded")}
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

func cliError(format string, args ...any) error {
	return &ExitError{Code: ExitCLIError, Err: fmt.Errorf(format, args...)}
}
