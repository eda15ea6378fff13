package model

import "time"

// CLIOptions holds user-configurable runtime options as resolved from flags,
// environment and config file.
type CLIOptions struct {
	BaseDir      string // Directory that setup/ and output/ resolve against.
	ToolPath     string // Path to the yt-dlp executable.
	OutputDir    string // Download destination; the tool runs with this as its working dir.
	Verbose      bool
	LogFile      string
	PollInterval time.Duration // Interaction loop tick.
}
