package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"ytwiz/internal/downloader"
	"ytwiz/internal/model"
)

func newFormatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "formats",
		Short:         "List download types, formats and the yt-dlp arguments they map to",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			style, _ := cmd.Flags().GetString("style")
			out, err := renderFormats(style, 100)
			if err != nil {
				return cliError("render formats: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String("style", "auto", "glamour style: auto, dark, light, ascii, notty")
	return cmd
}

// formatsMarkdown builds the decision table, one row per type and format.
func formatsMarkdown() string {
	var b strings.Builder
	b.WriteString("# Formats\n\n")
	b.WriteString("| Type | # | Format | Label | yt-dlp arguments |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, t := range model.DownloadTypes {
		for i := 0; i < model.FormatCount(t); i++ {
			name, _ := model.FormatName(t, i)
			plan, err := downloader.BuildPlan(downloader.Request{Type: t, Format: i, Locator: "URL"})
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, "| %s | %d | `%s` | %s | `%s` |\n",
				t, i, name, model.FormatLabel(t, i), strings.ReplaceAll(strings.Join(plan.Args, " "), "|", "\\|"))
		}
	}
	b.WriteString("\nFiles are written to the output directory as `" + downloader.OutputTemplate + "`.\n")
	return b.String()
}

func renderFormats(style string, width int) (string, error) {
	opt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	return r.Render(formatsMarkdown())
}
