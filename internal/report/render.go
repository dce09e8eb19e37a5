package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: "Times New Roman", serif; max-width: 18cm; margin: 2cm auto; line-height: 1.5; }
table { border-collapse: collapse; margin: 1em 0; }
td, th { border: 1px solid #999; padding: 4px 8px; text-align: left; }
blockquote { border-left: 3px solid #999; margin-left: 0; padding-left: 1em; }
@media print { body { margin: 0 auto; } }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTML renders a document as a standalone printable page.
func HTML(doc Document) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(doc.Markdown), &body); err != nil {
		return nil, fmt.Errorf("convert %s: %w", doc.Kind, err)
	}

	var out bytes.Buffer
	err := page.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{doc.Title, template.HTML(body.String())})
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Terminal renders a document for the console. theme is "dark" or "light".
func Terminal(doc Document, theme string, width int) (string, error) {
	if theme != "light" {
		theme = "dark"
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(theme),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("terminal renderer: %w", err)
	}
	return r.Render(doc.Markdown)
}
