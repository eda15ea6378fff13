// Package progress holds the status record shared between the download
// worker and the interaction loop.
package progress

import "sync"

// SpinnerFrames is the number of spinner animation frames.
const SpinnerFrames = 8

// InitialMessage is shown between launch and the worker's first update.
const InitialMessage = "Initializing download..."

// Outcome classifies how a download attempt ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeComplete
	OutcomeNoSubtitles
	OutcomeFailed
)

// Terminal messages, one per finished outcome.
const (
	MessageComplete    = "Download complete! Press 'r' to restart or 'q' to quit"
	MessageNoSubtitles = "No subtitles available! Press 'r' to restart or 'q' to quit"
	MessageFailed      = "Download failed! Press 'r' to restart or 'q' to quit"
)

// Message returns the terminal message for o, or "" for OutcomeNone.
func (o Outcome) Message() string {
	switch o {
	case OutcomeComplete:
		return MessageComplete
	case OutcomeNoSubtitles:
		return MessageNoSubtitles
	case OutcomeFailed:
		return MessageFailed
	default:
		return ""
	}
}

// Succeeded reports whether o is a successful terminal outcome.
func (o Outcome) Succeeded() bool { return o == OutcomeComplete }

func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomeNoSubtitles:
		return "no-subtitles"
	case OutcomeFailed:
		return "failed"
	default:
		return "none"
	}
}

// Snapshot is a consistent copy of a Record's fields.
type Snapshot struct {
	Active       bool
	Message      string
	SpinnerIndex int
	Outcome      Outcome
}

// Record describes the in-flight download. The worker writes it; the
// interaction loop reads it and animates the spinner. The lock is never held
// across the external invocation.
type Record struct {
	mu           sync.Mutex
	active       bool
	message      string
	spinnerIndex int
	outcome      Outcome
}

// NewRecord returns an idle record.
func NewRecord() *Record {
	return &Record{}
}

// Begin marks a new attempt as active and clears any previous outcome.
func (r *Record) Begin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = true
	r.message = InitialMessage
	r.spinnerIndex = 0
	r.outcome = OutcomeNone
}

// SetMessage updates the in-progress message. It has no effect once the
// attempt has finished.
func (r *Record) SetMessage(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return
	}
	r.message = msg
}

// Finish deactivates the record and writes the terminal message for o.
// Only the first call per attempt has an effect; it reports whether it did.
func (r *Record) Finish(o Outcome) bool {
	if o == OutcomeNone {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return false
	}
	r.active = false
	r.message = o.Message()
	r.outcome = o
	return true
}

// Completed returns the terminal message once the worker has finished.
// active and message are read under a single lock acquisition.
func (r *Record) Completed() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active || r.message == "" {
		return "", false
	}
	return r.message, true
}

// Advance steps the spinner by one frame while the attempt is active.
func (r *Record) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active {
		r.spinnerIndex = (r.spinnerIndex + 1) % SpinnerFrames
	}
}

// Snapshot returns a copy of the current fields.
func (r *Record) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Active:       r.active,
		Message:      r.message,
		SpinnerIndex: r.spinnerIndex,
		Outcome:      r.outcome,
	}
}
