package deps

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrToolNotFound is returned when no yt-dlp executable can be located.
var ErrToolNotFound = errors.New("yt-dlp not found")

var errFFmpegNotFound = errors.New("ffmpeg not found in PATH; audio conversion and stream merging will fail")

// ToolName returns the platform-specific yt-dlp executable name.
func ToolName() string {
	if runtime.GOOS == "windows" {
		return "yt-dlp.exe"
	}
	return "yt-dlp"
}

// DefaultToolPath returns the fixed tool location under setupDir.
func DefaultToolPath(setupDir string) string {
	return filepath.Join(setupDir, ToolName())
}

// ResolveTool locates yt-dlp. An explicit customPath wins if it exists or is
// on PATH; otherwise the copy under setupDir; otherwise yt-dlp on PATH.
// On failure the fixed setup path is still returned together with
// ErrToolNotFound, so callers can keep it as the invocation target.
//
// Returned paths are absolute: the tool runs with the output directory as
// its working dir, where a relative path would resolve differently.
func ResolveTool(customPath, setupDir string) (string, error) {
	fixed := absPath(DefaultToolPath(setupDir))
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			return absPath(customPath), nil
		}
		if p, err := exec.LookPath(customPath); err == nil {
			return absPath(p), nil
		}
		return absPath(customPath), fmt.Errorf("%w at %q", ErrToolNotFound, customPath)
	}
	if _, err := os.Stat(fixed); err == nil {
		return fixed, nil
	}
	if p, err := exec.LookPath("yt-dlp"); err == nil {
		return absPath(p), nil
	}
	return fixed, fmt.Errorf("%w: place %s in %s or install yt-dlp on PATH", ErrToolNotFound, ToolName(), setupDir)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// FindFFmpeg returns the path to the ffmpeg binary in PATH. yt-dlp needs it
// for audio extraction and for merging separate video and audio streams.
func FindFFmpeg() (string, error) {
	if p, err := exec.LookPath("ffmpeg"); err == nil {
		return p, nil
	}
	return "", errFFmpegNotFound
}
