package segment

import "strings"

// buffer is the refiner's output stack.
type buffer struct {
	items []Segment
}

func (b *buffer) push(s Segment) {
	b.items = append(b.items, s)
}

func (b *buffer) peek() (Segment, bool) {
	if len(b.items) == 0 {
		return Segment{}, false
	}
	return b.items[len(b.items)-1], true
}

func (b *buffer) replaceLast(s Segment) {
	b.items[len(b.items)-1] = s
}

// Refine folds every segment with fewer than minWords words into the segment
// before it. The first segment has no predecessor and is kept as-is.
func Refine(segments []Segment, minWords int) []Segment {
	var out buffer
	for _, s := range segments {
		prev, ok := out.peek()
		if ok && s.WordCount() < minWords {
			out.replaceLast(Segment{
				Start: prev.Start,
				End:   s.End,
				Text:  strings.TrimSpace(prev.Text + " " + s.Text),
			})
			continue
		}
		out.push(s)
	}
	return out.items
}
