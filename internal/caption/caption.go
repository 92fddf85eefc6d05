package caption

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrParse is returned when a caption file cannot be read or decoded.
var ErrParse = errors.New("caption: parse failed")

// Caption is one timed cue from a caption track.
type Caption struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Trimmed returns the cue text without surrounding whitespace.
func (c Caption) Trimmed() string {
	return strings.TrimSpace(c.Text)
}

// IsEmpty reports whether the cue carries no text.
func (c Caption) IsEmpty() bool {
	return c.Trimmed() == ""
}

// FormatTimestamp renders d as HH:MM:SS.mmm.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	ms := int(d/time.Millisecond) % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// FormatRange renders "start — end".
func FormatRange(start, end time.Duration) string {
	return FormatTimestamp(start) + " — " + FormatTimestamp(end)
}
