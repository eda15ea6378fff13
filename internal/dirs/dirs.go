package dirs

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "ytwiz"

// Layout names under the base directory.
const (
	SetupDirName  = "setup"
	OutputDirName = "output"
	LogFileName   = "ytwiz.log"
)

// AppName returns the canonical application name for directory paths.
func AppName() string {
	return appName
}

// ConfigDir returns the app's configuration directory.
// - Linux: $XDG_CONFIG_HOME/ytwiz or ~/.config/ytwiz
// - macOS: ~/Library/Application Support/ytwiz
// - Windows: %AppData%/ytwiz (fallback to os.UserConfigDir)
func ConfigDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", AppName()), nil
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName()), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName()), nil
	default:
		cfg, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(cfg, AppName()), nil
	}
}

// StateDir returns the app's state directory, home of the log file.
// - Linux: $XDG_STATE_HOME/ytwiz or ~/.local/state/ytwiz
// - macOS: ~/Library/Application Support/ytwiz/state
// - Windows: %LocalAppData%/ytwiz/state (fallback to ConfigDir/state)
func StateDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", AppName(), "state"), nil
	case "linux":
		if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName()), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "state", AppName()), nil
	default:
		if la := os.Getenv("LOCALAPPDATA"); la != "" {
			return filepath.Join(la, AppName(), "state"), nil
		}
		cfg, err := ConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(cfg, "state"), nil
	}
}

// DefaultLogFile returns the log path under the state dir.
func DefaultLogFile() (string, error) {
	d, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, LogFileName), nil
}

// BaseDir returns the directory that setup/ and output/ resolve against:
// base when set, otherwise the process working directory.
func BaseDir(base string) (string, error) {
	if base != "" {
		return filepath.Abs(base)
	}
	return os.Getwd()
}

// SetupDir returns the directory holding the bundled yt-dlp executable.
func SetupDir(base string) string {
	return filepath.Join(base, SetupDirName)
}

// OutputDir returns the default download destination.
func OutputDir(base string) string {
	return filepath.Join(base, OutputDirName)
}
