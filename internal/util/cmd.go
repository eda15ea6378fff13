package util

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// CmdSpec describes a subprocess to run.
type CmdSpec struct {
	Path string   // Binary path
	Args []string // Arguments
	Dir  string   // Working directory; empty = inherit.

	// Logger receives the command line and every output line at debug level.
	// Nil disables logging.
	Logger *log.Logger
}

// CmdResult contains captured output and exit status.
type CmdResult struct {
	Stdout  []byte
	Stderr  []byte
	Code    int
	Started bool // False when the process could not be started at all.
	Err     error
}

// CmdRunner runs subprocesses. ExecRunner is the real implementation; tests
// substitute fakes.
type CmdRunner interface {
	Run(ctx context.Context, spec CmdSpec) (CmdResult, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements CmdRunner.
func (ExecRunner) Run(ctx context.Context, spec CmdSpec) (CmdResult, error) {
	return Run(ctx, spec)
}

// Run executes the command and captures both output streams line by line.
// On non-zero exit, returns an error describing the exit code, while also
// populating CmdResult.Code and captured buffers.
func Run(ctx context.Context, spec CmdSpec) (CmdResult, error) {
	var stdoutBuf, stderrBuf bytes.Buffer

	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return CmdResult{Code: -1, Err: err}, err
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return CmdResult{Code: -1, Err: err}, err
	}

	if spec.Logger != nil {
		spec.Logger.Debug("exec", "cmd", ShellQuote(spec.Path, spec.Args), "dir", spec.Dir)
	}

	if err := cmd.Start(); err != nil {
		return CmdResult{Code: -1, Err: err}, fmt.Errorf("start %s: %w", spec.Path, err)
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		scanLines(stdoutPipe, spec.Logger, "stdout", func(line string) {
			stdoutBuf.WriteString(line)
			stdoutBuf.WriteByte('\n')
		})
	}()

	go func() {
		defer wg.Done()
		scanLines(stderrPipe, spec.Logger, "stderr", func(line string) {
			stderrBuf.WriteString(line)
			stderrBuf.WriteByte('\n')
		})
	}()

	// Readers must drain before Wait closes the pipes.
	wg.Wait()
	waitErr := cmd.Wait()

	code := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			code = exitErr.ExitCode()
		} else {
			code = -1
		}
	}

	res := CmdResult{
		Stdout:  stdoutBuf.Bytes(),
		Stderr:  stderrBuf.Bytes(),
		Code:    code,
		Started: true,
		Err:     waitErr,
	}

	if waitErr != nil {
		return res, fmt.Errorf("command failed (exit %d): %w", code, waitErr)
	}
	return res, nil
}

// maxLineBytes caps a single logged line. Longer runs without a newline,
// such as \r-joined progress output, are split into chunks of this size.
const maxLineBytes = 1024 * 1024

func scanLines(r io.Reader, logger *log.Logger, stream string, fn func(string)) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	sc.Split(splitLines(maxLineBytes))
	for sc.Scan() {
		line := sc.Text()
		if logger != nil {
			logger.Debug(line, "stream", stream)
		}
		fn(line)
	}
	if err := sc.Err(); err != nil {
		if logger != nil {
			logger.Warn("scan error, discarding rest of stream", "stream", stream, "err", err)
		}
		// The child blocks on a full pipe unless someone keeps reading.
		_, _ = io.Copy(io.Discard, r)
	}
}

// splitLines behaves like bufio.ScanLines but emits a full buffer as a token
// instead of failing with bufio.ErrTooLong.
func splitLines(max int) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := bufio.ScanLines(data, atEOF)
		if advance == 0 && token == nil && err == nil && len(data) >= max {
			return len(data), data, nil
		}
		return advance, token, err
	}
}

// ShellQuote returns a printable shell-like command string for logging.
func ShellQuote(path string, args []string) string {
	b := &strings.Builder{}
	b.WriteString(quote(path))
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(quote(a))
	}
	return b.String()
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	// Simple quoting: wrap in single quotes and escape existing single quotes.
	if strings.ContainsAny(s, " \t\n\"'\\$`(){}[]*&;|<>?!%") {
		return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
	}
	return s
}
