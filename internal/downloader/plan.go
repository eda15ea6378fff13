package downloader

import (
	"errors"
	"fmt"
	"strings"

	"ytwiz/internal/model"
)

// OutputTemplate names downloaded files after the video title.
const OutputTemplate = "%(title)s.%(ext)s"

// Request carries the validated wizard selections for one download.
type Request struct {
	Type    model.DownloadType
	Format  int
	Locator string
}

// Validate checks that the type, format and locator form a usable request.
func (r Request) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("invalid download type %d", int(r.Type))
	}
	if _, ok := model.FormatName(r.Type, r.Format); !ok {
		return fmt.Errorf("invalid format %d for %s", r.Format, strings.ToLower(r.Type.String()))
	}
	if r.Locator == "" {
		return errors.New("locator is required")
	}
	return nil
}

// Plan is the resolved yt-dlp invocation for a Request.
type Plan struct {
	Args       []string
	FormatName string // Resolved container, codec or language scope.
	Message    string // In-progress status shown while the tool runs.
}

// videoSelectors prefer the container's own streams, then a single file in
// that container, then anything.
var videoSelectors = map[string]string{
	"mp4":  "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best",
	"mkv":  "bestvideo[ext=webm]+bestaudio/best[ext=mkv]/best",
	"webm": "bestvideo[ext=webm]+bestaudio/best[ext=webm]/best",
}

// BuildPlan resolves the decision table for req.
func BuildPlan(req Request) (Plan, error) {
	if err := req.Validate(); err != nil {
		return Plan{}, err
	}
	name, _ := model.FormatName(req.Type, req.Format)

	switch req.Type {
	case model.TypeVideo:
		sel, ok := videoSelectors[name]
		if !ok {
			sel = "bestvideo+bestaudio/best"
		}
		return Plan{
			Args: []string{
				"-f", sel,
				"-ciw",
				"-o", OutputTemplate,
				"--merge-output-format", name,
				req.Locator,
			},
			FormatName: name,
			Message:    fmt.Sprintf("Downloading video in %s format...", name),
		}, nil

	case model.TypeAudio:
		return Plan{
			Args: []string{
				"-f", "bestaudio/best",
				"-ciw",
				"-o", OutputTemplate,
				"--extract-audio",
				"--audio-format", name,
				req.Locator,
			},
			FormatName: name,
			Message:    fmt.Sprintf("Downloading audio in %s format...", name),
		}, nil

	case model.TypeSubtitles:
		scope := "in English"
		if name == "all" {
			scope = "in all languages"
		}
		return Plan{
			Args: []string{
				"--skip-download",
				"--write-subs",
				"--write-auto-subs",
				"--sub-format", "srt",
				"-o", OutputTemplate,
				req.Locator,
				"--sub-langs", name,
			},
			FormatName: name,
			Message:    fmt.Sprintf("Downloading subtitles %s...", scope),
		}, nil
	}
	return Plan{}, fmt.Errorf("unsupported download type %s", req.Type)
}
