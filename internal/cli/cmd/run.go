package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ytwiz/internal/progress"
)

var (
	errDownload    = errors.New("download failed")
	errNoSubtitles = errors.New("no subtitles available")
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "run --type TYPE --format FORMAT <url>",
		Short:         "Download one URL without the wizard",
		Example:       "  ytwiz run --type audio --format mp3 https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := optionsFrom(cmd)
			if err != nil {
				return err
			}
			req, err := requestFromFlags(cmd, args[0])
			if err != nil {
				return err
			}

			orch := newOrchestrator(cmd, opts)
			_, plan, err := orch.Command(req)
			if err != nil {
				return cliError("%w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, plan.Message)

			rec := progress.NewRecord()
			rec.Begin()
			switch outcome := orch.Run(cmd.Context(), req, rec); outcome {
			case progress.OutcomeComplete:
				fmt.Fprintf(out, "Saved to %s\n", opts.OutputDir)
				return nil
			case progress.OutcomeNoSubtitles:
				return &ExitError{Code: ExitDownloadError, Err: errNoSubtitles}
			default:
				return &ExitError{Code: ExitDownloadError, Err: fmt.Errorf("%w: run with --verbose for yt-dlp output", errDownload)}
			}
		},
	}
	bindRequestFlags(cmd.Flags())
	return cmd
}
