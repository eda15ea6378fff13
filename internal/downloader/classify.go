package downloader

import (
	"bytes"

	"ytwiz/internal/model"
	"ytwiz/internal/progress"
	"ytwiz/internal/util"
)

// noSubtitlesMarker is matched case-insensitively against yt-dlp's stderr.
// yt-dlp reports missing tracks as a warning, so the exit status alone does
// not reveal it.
const noSubtitlesMarker = "no subtitles"

// Classify maps an invocation result to a terminal outcome.
func Classify(t model.DownloadType, res util.CmdResult) progress.Outcome {
	if !res.Started {
		return progress.OutcomeFailed
	}
	if t == model.TypeSubtitles && bytes.Contains(bytes.ToLower(res.Stderr), []byte(noSubtitlesMarker)) {
		return progress.OutcomeNoSubtitles
	}
	if res.Code == 0 && res.Err == nil {
		return progress.OutcomeComplete
	}
	return progress.OutcomeFailed
}
