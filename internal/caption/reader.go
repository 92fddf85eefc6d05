package caption

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/asticode/go-astisub"
	"golang.org/x/text/unicode/norm"
)

var (
	// webVTTSignature matches the mandatory first line of a WebVTT file.
	webVTTSignature = regexp.MustCompile(`^WEBVTT([ \t\r\n]|$)`)
	// cueTagRe matches inline cue markup: <c>, <i>, <v Name>, </c> and
	// karaoke timestamps such as <00:00:01.500>.
	cueTagRe = regexp.MustCompile(`<[^>\n]*>`)
)

// Format identifies a caption container.
type Format string

const (
	FormatVTT Format = "vtt"
	FormatSRT Format = "srt"
)

// DetectFormat picks the container from the file extension. Unknown extensions
// are treated as WebVTT.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSRT
	default:
		return FormatVTT
	}
}

// IsCaptionFile reports whether path has a supported caption extension.
func IsCaptionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt", ".srt":
		return true
	}
	return false
}

// ReadFile reads every cue of the caption file at path, in file order.
func ReadFile(path string) ([]Caption, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrParse, path, err)
	}
	captions, err := Read(bytes.NewReader(data), DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return captions, nil
}

// Read decodes cues from r. An input with a header but no cues yields an empty
// slice and no error. A WebVTT input without the WEBVTT signature, or a
// non-blank SRT input without a single cue, fails with ErrParse.
func Read(r io.Reader, format Format) ([]Caption, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	var subs *astisub.Subtitles
	switch format {
	case FormatSRT:
		subs, err = astisub.ReadFromSRT(bytes.NewReader(stripCueTags(data)))
	case FormatVTT:
		if !webVTTSignature.Match(data) {
			return nil, fmt.Errorf("%w: missing WEBVTT header", ErrParse)
		}
		subs, err = astisub.ReadFromWebVTT(bytes.NewReader(stripCueTags(data)))
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrParse, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(subs.Items) == 0 && format == FormatSRT && len(bytes.TrimSpace(data)) > 0 {
		return nil, fmt.Errorf("%w: no cues found", ErrParse)
	}

	captions := make([]Caption, 0, len(subs.Items))
	for _, item := range subs.Items {
		captions = append(captions, Caption{
			Start: item.StartAt,
			End:   item.EndAt,
			Text:  itemText(item),
		})
	}
	return captions, nil
}

// stripCueTags removes inline markup before decoding. The decoder trims the
// text between tags, so stripping afterwards would lose the spaces that
// separate words in rolling ASR cues like "we are<00:00:00.500><c> going</c>".
func stripCueTags(data []byte) []byte {
	return cueTagRe.ReplaceAll(data, nil)
}

// itemText flattens a cue into one line of text. Items of a line are
// concatenated as they appear; lines are separated by a single space.
func itemText(item *astisub.Item) string {
	lines := make([]string, 0, len(item.Lines))
	for _, line := range item.Lines {
		var b strings.Builder
		for _, li := range line.Items {
			b.WriteString(li.Text)
		}
		if t := strings.TrimSpace(b.String()); t != "" {
			lines = append(lines, t)
		}
	}
	return norm.NFC.String(strings.Join(strings.Fields(strings.Join(lines, " ")), " "))
}
