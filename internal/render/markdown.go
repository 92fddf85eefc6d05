package render

import (
	"bufio"
	"fmt"
	"io"
)

type markdownRenderer struct{}

func (markdownRenderer) Render(w io.Writer, doc Document) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "# %s\n", doc.title())
	for _, e := range doc.visible() {
		fmt.Fprintf(b, "\n**%s**\n\n%s\n", e.Range, e.Text)
	}
	if err := b.Flush(); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	return nil
}

func (markdownRenderer) Extension() string { return ".md" }
