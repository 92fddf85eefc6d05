package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

type docxRenderer struct{}

// Render builds the document in a scratch file, since godocx only saves to
// paths, and streams it to w.
func (docxRenderer) Render(w io.Writer, doc Document) error {
	d, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create docx: %w", err)
	}

	addStyledRun(d.AddParagraph(""), doc.title(), true, 16, "000000")
	for _, e := range doc.visible() {
		addStyledRun(d.AddParagraph(""), e.Range, false, 10, "555555")
		addStyledRun(d.AddParagraph(""), e.Text, false, fontSize, "000000")
	}

	tmpDir, err := os.MkdirTemp("", "transcript-docx-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, "transcript.docx")
	if err := d.SaveTo(tmpPath); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}

	f, err := os.Open(tmpPath)
	if err != nil {
		return fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

func (docxRenderer) Extension() string { return ".docx" }

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64, color string) {
	run := p.AddText(text).Font(fontName).Size(size).Color(color)
	if bold {
		run.Bold(true)
	}
}
