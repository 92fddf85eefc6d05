// Package render writes transcript documents as HTML, Markdown or DOCX.
package render

import (
	"io"

	"github.com/rex-sheridan/web-transcriptor/internal/segment"
)

// Variant selects how entries are labelled in the output.
type Variant string

const (
	// VariantMinimal renders raw caption cues.
	VariantMinimal Variant = "minimal"
	// VariantFull renders merged, refined segments.
	VariantFull Variant = "full"
)

// Document is everything a renderer needs.
type Document struct {
	Title    string
	Variant  Variant
	Segments []segment.Segment
}

// Renderer writes a Document to w.
type Renderer interface {
	Render(w io.Writer, doc Document) error
	Extension() string
}
