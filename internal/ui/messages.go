package ui

import "time"

// tickMsg drives completion checks and the spinner.
type tickMsg time.Time
