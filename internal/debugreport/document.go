package debugreport

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"
)

var (
	docTmplOnce sync.Once
	docTmpl     *template.Template
)

// documentData holds the template data for the document wrapper. Index and
// Content are already rendered by the sections.
type documentData struct {
	Title     string
	RunID     string
	Generated string
	Index     template.HTML
	Content   template.HTML
}

// Print writes the complete document to w: the index of every top-level
// section, followed by the content of every top-level section, both in
// insertion order. Print does not modify the report, so repeated calls
// produce identical output.
func (r *Report) Print(w io.Writer) error {
	docTmplOnce.Do(func() {
		docTmpl = template.Must(template.New("document").Parse(documentTemplate))
	})

	var index, content bytes.Buffer
	index.WriteString("<ul>\n")
	for _, s := range r.sections {
		index.WriteString("<li>")
		if err := s.PrintIndex(&index); err != nil {
			return fmt.Errorf("render index of %s: %w", s.id, err)
		}
		index.WriteString("</li>\n")
	}
	index.WriteString("</ul>\n")

	for _, s := range r.sections {
		if err := s.PrintContent(&content); err != nil {
			return fmt.Errorf("render content of %s: %w", s.id, err)
		}
	}

	data := documentData{
		Title:     r.title,
		RunID:     r.runID,
		Generated: r.generated.UTC().Format("2006-01-02 15:04 UTC"),
		Index:     template.HTML(index.String()),   //nolint:gosec // section markup is pre-rendered
		Content:   template.HTML(content.String()), //nolint:gosec // section markup is pre-rendered
	}
	if err := docTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute document template: %w", err)
	}
	return nil
}

// Render returns the document as a string.
func (r *Report) Render() (string, error) {
	var sb strings.Builder
	if err := r.Print(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
{{- if .RunID}}
<meta name="run-id" content="{{.RunID}}">
{{- end}}
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 0; color: #1f2933; }
.headerdiv { background: #1f2933; color: #ffffff; padding: 0.75rem 1.5rem; }
.headerdiv h1 { margin: 0; font-size: 1.4rem; }
.meta { color: #9aa5b1; font-size: 0.85rem; }
.wrapper { display: flex; }
.index { position: sticky; top: 0; align-self: flex-start; max-height: 100vh; overflow-y: auto; min-width: 18rem; padding: 1rem; border-right: 1px solid #d2d6dc; }
.index ul { padding-left: 1.1rem; margin: 0.2rem 0; }
.content { flex: 1; padding: 1rem 1.5rem; overflow-x: auto; }
.section .section { margin-left: 1.25rem; }
h3 { border-bottom: 1px solid #d2d6dc; padding-bottom: 0.2rem; }
pre { background: #f5f7fa; padding: 0.75rem; overflow-x: auto; }
</style>
</head>
<body>
<div class="headerdiv">
<h1>{{.Title}}</h1>
<div class="meta">Generated {{.Generated}}{{if .RunID}} &middot; run {{.RunID}}{{end}}</div>
</div>
<div class="wrapper">
<div class="index">
{{.Index}}</div>
<div class="content">
{{.Content}}</div>
</div>
</body>
</html>
`
