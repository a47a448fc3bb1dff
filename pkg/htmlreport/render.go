package htmlreport

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(
	template.New("report.html.tmpl").
		Option("missingkey=error").
		ParseFS(templateFS, "templates/report.html.tmpl"),
)

// Render substitutes f into the report template. The raw checker output is
// HTML-escaped. Rendering is pure: equal Fields produce identical documents.
func Render(f Fields) (string, error) {
	return execute(reportTemplate, f)
}

func execute(t *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", &RenderError{Err: err}
	}
	return sb.String(), nil
}
