// Package downloader turns wizard selections into a yt-dlp invocation, runs
// it on a background worker and reports the outcome through a progress.Record.
package downloader

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"ytwiz/internal/progress"
	"ytwiz/internal/util"
)

// Orchestrator runs downloads against a fixed tool path and output directory.
type Orchestrator struct {
	toolPath  string
	outputDir string
	runner    util.CmdRunner
	logger    *log.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithToolPath sets the yt-dlp executable path.
func WithToolPath(p string) Option {
	return func(o *Orchestrator) {
		o.toolPath = p
	}
}

// WithOutputDir sets the download destination, used as the tool's working dir.
func WithOutputDir(dir string) Option {
	return func(o *Orchestrator) {
		o.outputDir = dir
	}
}

// WithRunner overrides the subprocess runner.
func WithRunner(r util.CmdRunner) Option {
	return func(o *Orchestrator) {
		o.runner = r
	}
}

// WithLogger sets the logger. Defaults to discarding output.
func WithLogger(l *log.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// NewOrchestrator constructs an Orchestrator with the given options.
func NewOrchestrator(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		runner: util.ExecRunner{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Command resolves req into the subprocess spec that Run would execute.
func (o *Orchestrator) Command(req Request) (util.CmdSpec, Plan, error) {
	plan, err := BuildPlan(req)
	if err != nil {
		return util.CmdSpec{}, Plan{}, err
	}
	return util.CmdSpec{
		Path: o.toolPath,
		Args: plan.Args,
		Dir:  o.outputDir,
	}, plan, nil
}

// Launch starts a download for req on a new goroutine and returns
// immediately. rec must already be active (see progress.Record.Begin); the
// worker writes its in-progress and terminal messages there.
func (o *Orchestrator) Launch(ctx context.Context, req Request, rec *progress.Record) {
	go o.Run(ctx, req, rec)
}

// Run performs the download synchronously, finishes rec with the outcome and
// returns it. Failures, including panics, end as progress.OutcomeFailed.
func (o *Orchestrator) Run(ctx context.Context, req Request, rec *progress.Record) (outcome progress.Outcome) {
	logger := o.logger.With("attempt", attemptID())
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("download worker panicked", "panic", r)
			outcome = progress.OutcomeFailed
		}
		rec.Finish(outcome)
		logger.Info("download finished",
			"outcome", outcome,
			"elapsed", time.Since(start).Round(time.Millisecond))
	}()

	logger.Info("download started",
		"type", req.Type,
		"format", req.Format,
		"url", req.Locator)
	return o.run(ctx, req, rec, logger)
}

func (o *Orchestrator) run(ctx context.Context, req Request, rec *progress.Record, logger *log.Logger) progress.Outcome {
	spec, plan, err := o.Command(req)
	if err != nil {
		logger.Error("invalid request", "err", err)
		return progress.OutcomeFailed
	}
	rec.SetMessage(plan.Message)

	if err := util.EnsureDir(o.outputDir); err != nil {
		logger.Error("output directory unavailable", "dir", o.outputDir, "err", fmt.Errorf("create output dir: %w", err))
		return progress.OutcomeFailed
	}

	spec.Logger = logger
	res, err := o.runner.Run(ctx, spec)
	if err != nil {
		logger.Warn("yt-dlp failed", "code", res.Code, "started", res.Started, "err", err)
	}
	return Classify(req.Type, res)
}

// attemptID returns a time-ordered ID so attempts sort in the log.
func attemptID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
