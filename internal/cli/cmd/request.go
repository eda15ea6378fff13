package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ytwiz/internal/downloader"
	"ytwiz/internal/logging"
	"ytwiz/internal/model"
)

func bindRequestFlags(fs *pflag.FlagSet) {
	fs.StringP("type", "t", "", "Download type: video, audio or subtitles")
	fs.StringP("format", "f", "", "Format: mp4|mkv|webm, flac|mp3|wav|aac|m4a, en|all")
}

// requestFromFlags builds the same Request the wizard would for the given
// --type, --format and URL.
func requestFromFlags(cmd *cobra.Command, url string) (downloader.Request, error) {
	rawType, _ := cmd.Flags().GetString("type")
	rawFormat, _ := cmd.Flags().GetString("format")
	if rawType == "" || rawFormat == "" {
		return downloader.Request{}, cliError("--type and --format are required")
	}

	t, err := model.ParseDownloadType(rawType)
	if err != nil {
		return downloader.Request{}, cliError("%w", err)
	}
	f, err := model.ParseFormat(t, rawFormat)
	if err != nil {
		return downloader.Request{}, cliError("%w", err)
	}
	req := downloader.Request{Type: t, Format: f, Locator: url}
	if err := req.Validate(); err != nil {
		return downloader.Request{}, cliError("%w", err)
	}
	return req, nil
}

func newOrchestrator(cmd *cobra.Command, opts model.CLIOptions) *downloader.Orchestrator {
	return downloader.NewOrchestrator(
		downloader.WithToolPath(opts.ToolPath),
		downloader.WithOutputDir(opts.OutputDir),
		downloader.WithLogger(logging.New(cmd.ErrOrStderr(), opts.Verbose)),
	)
}
