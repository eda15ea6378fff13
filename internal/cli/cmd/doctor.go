package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/spf13/cobra"

	"ytwiz/internal/config"
	"ytwiz/internal/util"
	"ytwiz/internal/util/deps"
	"ytwiz/internal/util/format"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose external dependencies (yt-dlp, ffmpeg) and the output directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := optionsFrom(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			tool, terr := config.ResolveTool(opts.BaseDir)
			if terr != nil {
				return &ExitError{Code: ExitMissingDep, Err: terr}
			}
			fmt.Fprintf(out, "yt-dlp:     %s\n", tool)

			if ff, ferr := deps.FindFFmpeg(); ferr != nil {
				fmt.Fprintf(out, "ffmpeg:     missing (%v)\n", ferr)
			} else {
				fmt.Fprintf(out, "ffmpeg:     %s\n", ff)
			}

			if err := util.EnsureDir(opts.OutputDir); err != nil {
				return cliError("create output dir: %w", err)
			}
			fmt.Fprintf(out, "Output dir: %s\n", opts.OutputDir)
			fmt.Fprintf(out, "Free space: %s\n", freeSpace(opts.OutputDir))
			fmt.Fprintf(out, "Log file:   %s\n", opts.LogFile)
			return nil
		},
	}
}

func freeSpace(dir string) string {
	u, err := disk.Usage(filepath.Clean(dir))
	if err != nil {
		return fmt.Sprintf("unknown (%v)", err)
	}
	return format.FreeSpace(u.Free, u.Total)
}
