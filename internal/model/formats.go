package model

import (
	"fmt"
	"strconv"
	"strings"
)

// DownloadType selects what the downloader fetches.
type DownloadType int

const (
	TypeVideo DownloadType = iota
	TypeAudio
	TypeSubtitles

	// NoType marks a type that has not been chosen yet.
	NoType DownloadType = -1
)

// NoFormat marks a format index that has not been chosen yet.
const NoFormat = -1

// DownloadTypes lists the selectable types in menu order.
var DownloadTypes = []DownloadType{TypeVideo, TypeAudio, TypeSubtitles}

var (
	videoFormats    = []string{"mp4", "mkv", "webm"}
	audioFormats    = []string{"flac", "mp3", "wav", "aac", "m4a"}
	subtitleFormats = []string{"en", "all"}

	videoLabels    = []string{"MP4", "MKV", "WebM"}
	audioLabels    = []string{"FLAC", "MP3", "WAV", "AAC", "M4A"}
	subtitleLabels = []string{"English", "All"}
)

func (t DownloadType) String() string {
	switch t {
	case TypeVideo:
		return "Video"
	case TypeAudio:
		return "Audio"
	case TypeSubtitles:
		return "Subtitles"
	case NoType:
		return "Not selected"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the selectable types.
func (t DownloadType) Valid() bool {
	return t >= TypeVideo && t <= TypeSubtitles
}

// FormatCount returns how many formats exist for t, or 0 for an unset or unknown type.
func FormatCount(t DownloadType) int {
	return len(formatNames(t))
}

// FormatName returns the yt-dlp facing name of format index i for t
// (container, codec or subtitle language scope).
func FormatName(t DownloadType, i int) (string, bool) {
	names := formatNames(t)
	if i < 0 || i >= len(names) {
		return "", false
	}
	return names[i], true
}

// FormatLabel returns the display label of format index i for t.
func FormatLabel(t DownloadType, i int) string {
	labels := formatLabels(t)
	if i < 0 || i >= len(labels) {
		return "Not selected"
	}
	return labels[i]
}

// FormatLabels returns the display labels for every format of t.
func FormatLabels(t DownloadType) []string {
	return append([]string(nil), formatLabels(t)...)
}

func formatNames(t DownloadType) []string {
	switch t {
	case TypeVideo:
		return videoFormats
	case TypeAudio:
		return audioFormats
	case TypeSubtitles:
		return subtitleFormats
	default:
		return nil
	}
}

func formatLabels(t DownloadType) []string {
	switch t {
	case TypeVideo:
		return videoLabels
	case TypeAudio:
		return audioLabels
	case TypeSubtitles:
		return subtitleLabels
	default:
		return nil
	}
}

// ParseDownloadType accepts "video", "audio" or "subtitles" (plus short forms).
func ParseDownloadType(s string) (DownloadType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "video", "v":
		return TypeVideo, nil
	case "audio", "a":
		return TypeAudio, nil
	case "subtitles", "subs", "s":
		return TypeSubtitles, nil
	default:
		return NoType, fmt.Errorf("invalid type %q (valid: video|audio|subtitles)", s)
	}
}

// ParseFormat resolves a format name such as "mp3" or "all" to its index for t.
// A plain index ("1") is accepted as well.
func ParseFormat(t DownloadType, s string) (int, error) {
	names := formatNames(t)
	if len(names) == 0 {
		return NoFormat, fmt.Errorf("no formats for type %s", t)
	}
	want := strings.ToLower(strings.TrimSpace(s))
	if want == "english" {
		want = "en"
	}
	for i, n := range names {
		if n == want {
			return i, nil
		}
	}
	if idx, err := strconv.Atoi(want); err == nil && idx >= 0 && idx < len(names) {
		return idx, nil
	}
	return NoFormat, fmt.Errorf("invalid format %q for %s (valid: %s)", s, strings.ToLower(t.String()), strings.Join(names, "|"))
}
