package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"ytwiz/internal/downloader"
	"ytwiz/internal/model"
	"ytwiz/internal/progress"
	"ytwiz/internal/util"
	"ytwiz/internal/wizard"
)

// Run starts the wizard on the terminal and blocks until the user quits.
// A download still in flight at that point is abandoned; its subprocess is
// bound to ctx.
func Run(ctx context.Context, opts model.CLIOptions, logger *log.Logger) error {
	if err := util.EnsureDir(opts.OutputDir); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	orch := downloader.NewOrchestrator(
		downloader.WithToolPath(opts.ToolPath),
		downloader.WithOutputDir(opts.OutputDir),
		downloader.WithLogger(logger),
	)
	machine := wizard.New(wizard.LauncherFunc(func(req downloader.Request, rec *progress.Record) {
		orch.Launch(ctx, req, rec)
	}))

	logger.Info("wizard started", "tool", opts.ToolPath, "output", opts.OutputDir)
	prog := tea.NewProgram(
		NewModel(machine, opts.PollInterval, logger),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run wizard: %w", err)
	}
	logger.Info("wizard exited", "step", machine.Step())
	return nil
}
