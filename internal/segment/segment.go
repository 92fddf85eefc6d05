// Package segment turns rolling-window caption cues into deduplicated,
// time-ranged text segments.
package segment

import (
	"strings"
	"time"

	"github.com/rex-sheridan/web-transcriptor/internal/caption"
)

const (
	DefaultMinOverlapWords = 3
	DefaultMinWords        = 3
)

// Segment is a merged run of caption text with its combined time range.
type Segment struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// WordCount returns the number of whitespace delimited words in the segment.
func (s Segment) WordCount() int {
	return len(strings.Fields(s.Text))
}

// Range renders the segment's time range as "start — end".
func (s Segment) Range() string {
	return caption.FormatRange(s.Start, s.End)
}

// FromCaptions converts cues one-to-one, dropping empty ones. Used for the
// unmerged rendering mode.
func FromCaptions(captions []caption.Caption) []Segment {
	out := make([]Segment, 0, len(captions))
	for _, c := range captions {
		if c.IsEmpty() {
			continue
		}
		out = append(out, Segment{Start: c.Start, End: c.End, Text: c.Trimmed()})
	}
	return out
}
