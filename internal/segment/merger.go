package segment

import (
	"strings"

	"github.com/rex-sheridan/web-transcriptor/internal/caption"
)

// accumulator is the running state of the merge fold: the segments already
// closed plus the one still open.
type accumulator struct {
	done    []Segment
	current Segment
	open    bool
}

// Merge fuses consecutive captions whose leading words already appear in the
// open segment. A caption whose first k or more words occur verbatim in the
// accumulated text only contributes the words after that prefix; any other
// caption closes the open segment and starts a new one.
//
// Empty captions are skipped and never seed a segment, so a leading run of
// empty cues does not affect the first segment's start time.
func Merge(captions []caption.Caption, minOverlapWords int) []Segment {
	if minOverlapWords < 1 {
		minOverlapWords = 1
	}

	acc := accumulator{}
	for _, c := range captions {
		acc = acc.step(c, minOverlapWords)
	}
	return acc.finish()
}

func (a accumulator) step(c caption.Caption, k int) accumulator {
	text := c.Trimmed()
	if text == "" {
		return a
	}
	if !a.open {
		a.current = Segment{Start: c.Start, End: c.End, Text: text}
		a.open = true
		return a
	}

	words := strings.Fields(text)
	n := overlapLength(a.current.Text, words, k)
	if n == 0 {
		a.done = append(a.done, a.current)
		a.current = Segment{Start: c.Start, End: c.End, Text: text}
		return a
	}

	if rest := words[n:]; len(rest) > 0 {
		a.current.Text += " " + strings.Join(rest, " ")
	}
	if c.End > a.current.End {
		a.current.End = c.End
	}
	return a
}

func (a accumulator) finish() []Segment {
	if !a.open {
		return nil
	}
	return append(a.done, a.current)
}

// overlapLength returns the length of the longest prefix of words, at least k
// long, that occurs as a literal substring of text. Zero means no such prefix.
func overlapLength(text string, words []string, k int) int {
	for i := len(words); i >= k; i-- {
		if strings.Contains(text, strings.Join(words[:i], " ")) {
			return i
		}
	}
	return 0
}
