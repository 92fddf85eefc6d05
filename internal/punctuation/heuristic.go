package punctuation

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultChunkWords = 15

type heuristic struct {
	chunkWords int
}

// NewHeuristic returns a local Restorer that splits text into fixed-size word
// chunks, capitalizes each chunk and ends it with a period unless it already
// ends in '.', '!' or '?'.
func NewHeuristic(chunkWords int) Restorer {
	if chunkWords <= 0 {
		chunkWords = defaultChunkWords
	}
	return &heuristic{chunkWords: chunkWords}
}

func (h *heuristic) Restore(_ context.Context, text string) (string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", nil
	}

	chunks := make([]string, 0, len(words)/h.chunkWords+1)
	for i := 0; i < len(words); i += h.chunkWords {
		end := min(i+h.chunkWords, len(words))
		chunk := capitalizeFirst(strings.Join(words[i:end], " "))
		if !endsSentence(chunk) {
			chunk += "."
		}
		chunks = append(chunks, chunk)
	}
	return strings.Join(chunks, " "), nil
}

func (h *heuristic) Close() error { return nil }

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func endsSentence(s string) bool {
	switch s[len(s)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}
