package render

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	FormatHTML     = "html"
	FormatMarkdown = "md"
	FormatDOCX     = "docx"
)

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatHTML, "htm", "":
		return htmlRenderer{}, nil
	case FormatMarkdown, "markdown":
		return markdownRenderer{}, nil
	case FormatDOCX:
		return docxRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// FormatFromPath infers the output format from the file extension, defaulting
// to HTML.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".docx":
		return FormatDOCX
	default:
		return FormatHTML
	}
}

// visible drops entries whose text is blank.
func (d Document) visible() []entry {
	out := make([]entry, 0, len(d.Segments))
	for _, s := range d.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		out = append(out, entry{Range: s.Range(), Text: text})
	}
	return out
}

func (d Document) title() string {
	if strings.TrimSpace(d.Title) == "" {
		return "Transcript"
	}
	return d.Title
}

type entry struct {
	Range string
	Text  string
}
