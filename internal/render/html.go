package render

import (
	"fmt"
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("transcript").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset='utf-8'>
  <title>{{.Title}}</title>
  <style>
    body { font-family: sans-serif; padding: 20px; line-height: 1.5; }
    .caption, .segment { margin-bottom: 1em; }
    .timestamp { color: #555; font-size: 0.9em; }
    .text { margin: 0.2em 0 0 0; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
{{- range .Entries}}
  <div class='{{$.Class}}'>
    <div class='timestamp'>{{.Range}}</div>
    <p class='text'>{{.Text}}</p>
  </div>
{{- end}}
</body>
</html>
`))

type htmlRenderer struct{}

type htmlData struct {
	Title   string
	Class   string
	Entries []entry
}

func (htmlRenderer) Render(w io.Writer, doc Document) error {
	class := "segment"
	if doc.Variant == VariantMinimal {
		class = "caption"
	}

	data := htmlData{
		Title:   doc.title(),
		Class:   class,
		Entries: doc.visible(),
	}
	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func (htmlRenderer) Extension() string { return ".html" }
