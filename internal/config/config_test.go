package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ytwiz/internal/util/deps"
)

func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "ytwiz"}
	pf := root.PersistentFlags()
	pf.String("base-dir", "", "")
	pf.String("tool-path", "", "")
	pf.String("output-dir", "", "")
	pf.Bool("verbose", false, "")
	pf.String("log-file", "", "")
	pf.Duration("poll-interval", DefaultPollInterval, "")
	return root
}

// isolate points config lookup, PATH and the state dir at empty temp dirs.
func isolate(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("config isolation relies on XDG variables")
	}
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("PATH", t.TempDir())
	for _, k := range []string{"YTWIZ_BASE_DIR", "YTWIZ_TOOL_PATH", "YTWIZ_OUTPUT_DIR", "YTWIZ_VERBOSE", "YTWIZ_LOG_FILE", "YTWIZ_POLL_INTERVAL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	base := t.TempDir()
	root := newTestRoot()
	if err := root.PersistentFlags().Set("base-dir", base); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := Init(root); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}

	opts, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if opts.BaseDir != base {
		t.Errorf("BaseDir = %q, want %q", opts.BaseDir, base)
	}
	if want := filepath.Join(base, "output"); opts.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q", opts.OutputDir, want)
	}
	if want := deps.DefaultToolPath(filepath.Join(base, "setup")); opts.ToolPath != want {
		t.Errorf("ToolPath = %q, want %q", opts.ToolPath, want)
	}
	if opts.PollInterval != 100*time.Millisecond {
		t.Errorf("PollInterval = %v, want 100ms", opts.PollInterval)
	}
	if opts.Verbose {
		t.Error("Verbose = true, want false")
	}
	if filepath.Base(opts.LogFile) != "ytwiz.log" {
		t.Errorf("LogFile = %q, want ytwiz.log under the state dir", opts.LogFile)
	}
}

func TestLoadPrecedence(t *testing.T) {
	isolate(t)
	base := t.TempDir()
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)

	cfgDir := filepath.Join(cfgHome, "ytwiz")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := "output_dir: from-file\npoll_interval: 250ms\nverbose: true\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("YTWIZ_POLL_INTERVAL", "50ms")

	root := newTestRoot()
	_ = root.PersistentFlags().Set("base-dir", base)
	_ = root.PersistentFlags().Set("output-dir", "from-flag")
	if err := Init(root); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}

	opts, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if want := filepath.Join(base, "from-flag"); opts.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q (flag beats file)", opts.OutputDir, want)
	}
	if opts.PollInterval != 50*time.Millisecond {
		t.Errorf("PollInterval = %v, want 50ms (env beats file)", opts.PollInterval)
	}
	if !opts.Verbose {
		t.Error("Verbose = false, want true from file")
	}
}

func TestLoadResolvesSetupTool(t *testing.T) {
	isolate(t)
	base := t.TempDir()
	setup := filepath.Join(base, "setup")
	if err := os.MkdirAll(setup, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	tool := deps.DefaultToolPath(setup)
	if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write tool: %v", err)
	}

	root := newTestRoot()
	_ = root.PersistentFlags().Set("base-dir", base)
	if err := Init(root); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}
	opts, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if opts.ToolPath != tool {
		t.Errorf("ToolPath = %q, want %q", opts.ToolPath, tool)
	}
}

func TestInitMalformedConfig(t *testing.T) {
	isolate(t)
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	cfgDir := filepath.Join(cfgHome, "ytwiz")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("output_dir: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := Init(newTestRoot()); err == nil {
		t.Error("Init() expected error for malformed config, got nil")
	}
}

func TestLoadAnchorsRelativeToolPath(t *testing.T) {
	isolate(t)
	base := t.TempDir()
	tool := filepath.Join(base, "bin", "yt")
	if err := os.MkdirAll(filepath.Dir(tool), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(tool, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write tool: %v", err)
	}

	root := newTestRoot()
	_ = root.PersistentFlags().Set("base-dir", base)
	_ = root.PersistentFlags().Set("tool-path", filepath.Join("bin", "yt"))
	if err := Init(root); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}
	opts, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if opts.ToolPath != tool {
		t.Errorf("ToolPath = %q, want %q", opts.ToolPath, tool)
	}

	got, err := ResolveTool(base)
	if err != nil || got != tool {
		t.Errorf("ResolveTool() = %q, %v; want %q", got, err, tool)
	}
}
