package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ytwiz/internal/dirs"
	"ytwiz/internal/model"
	"ytwiz/internal/util"
	"ytwiz/internal/util/deps"
)

// DefaultPollInterval is the interaction loop tick.
const DefaultPollInterval = 100 * time.Millisecond

// File mirrors the keys accepted in config files, YTWIZ_* variables and
// persistent flags.
type File struct {
	BaseDir      string        `mapstructure:"base_dir"`
	ToolPath     string        `mapstructure:"tool_path"`
	OutputDir    string        `mapstructure:"output_dir"`
	Verbose      bool          `mapstructure:"verbose"`
	LogFile      string        `mapstructure:"log_file"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// flagKeys maps persistent flag names to Viper keys.
var flagKeys = map[string]string{
	"base-dir":      "base_dir",
	"tool-path":     "tool_path",
	"output-dir":    "output_dir",
	"verbose":       "verbose",
	"log-file":      "log_file",
	"poll-interval": "poll_interval",
}

// Init wires Viper with config paths, env, defaults, and flag bindings.
// A missing config file is not an error; a malformed one is.
func Init(root *cobra.Command) error {
	if cfgDir, err := dirs.ConfigDir(); err == nil {
		viper.AddConfigPath(cfgDir)
	}
	viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	// Environment variables: YTWIZ_*
	viper.SetEnvPrefix("YTWIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("verbose", false)
	viper.SetDefault("poll_interval", DefaultPollInterval)

	for name, key := range flagKeys {
		if f := root.PersistentFlags().Lookup(name); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// Load resolves the effective options. Relative directories are anchored at
// the base dir; the tool path goes through deps.ResolveTool, keeping the fixed
// setup location when yt-dlp cannot be found.
func Load() (model.CLIOptions, error) {
	var f File
	if err := viper.Unmarshal(&f); err != nil {
		return model.CLIOptions{}, fmt.Errorf("decode config: %w", err)
	}

	base, err := dirs.BaseDir(f.BaseDir)
	if err != nil {
		return model.CLIOptions{}, fmt.Errorf("resolve base dir: %w", err)
	}

	opts := model.CLIOptions{
		BaseDir:      base,
		OutputDir:    anchor(base, f.OutputDir, dirs.OutputDir(base)),
		Verbose:      f.Verbose,
		LogFile:      f.LogFile,
		PollInterval: f.PollInterval,
	}

	opts.ToolPath, _ = deps.ResolveTool(toolSetting(base, f.ToolPath), dirs.SetupDir(base))

	if opts.LogFile == "" {
		if p, err := dirs.DefaultLogFile(); err == nil {
			opts.LogFile = p
		}
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	return opts, nil
}

// ResolveTool locates yt-dlp for the configured tool_path. A path with a
// separator is anchored at base like the other directories; a bare name is
// looked up on PATH. The result is absolute.
func ResolveTool(base string) (string, error) {
	return deps.ResolveTool(toolSetting(base, viper.GetString("tool_path")), dirs.SetupDir(base))
}

func toolSetting(base, p string) string {
	if p == "" || !strings.ContainsAny(p, `/\`) {
		return p
	}
	return util.Resolve(base, p)
}

func anchor(base, p, def string) string {
	if p == "" {
		return def
	}
	return util.Resolve(base, p)
}
