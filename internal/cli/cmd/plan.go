package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ytwiz/internal/util"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "plan --type TYPE --format FORMAT <url>",
		Short:         "Show the yt-dlp command without running it",
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
			spec, plan, err := newOrchestrator(cmd, opts).Command(req)
			if err != nil {
				return cliError("%w", err)
			}
			printPlan(cmd, spec, plan.FormatName)
			return nil
		},
	}
	bindRequestFlags(cmd.Flags())
	return cmd
}

// printPlan outputs the resolved invocation without executing it.
func printPlan(cmd *cobra.Command, spec util.CmdSpec, format string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Plan:")
	fmt.Fprintf(out, "- Tool:        %s\n", spec.Path)
	fmt.Fprintf(out, "- Working dir: %s\n", spec.Dir)
	fmt.Fprintf(out, "- Format:      %s\n", format)
	fmt.Fprintf(out, "- Command:     %s\n", util.ShellQuote(spec.Path, spec.Args))
}
