package render

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"resume-builder/resume/layout"
)

// PreviewBullet prefixes bullet lines in the HTML preview.
const PreviewBullet = "●"

//go:embed templates/*.tmpl
var templateFS embed.FS

var previewTemplate = template.Must(template.New("preview.html.tmpl").Funcs(template.FuncMap{
	"bullet":    func() string { return PreviewBullet },
	"separator": func() string { return layout.ContactSeparator },
	"linkHref":  linkHref,
}).ParseFS(templateFS, "templates/preview.html.tmpl"))

// Preview renders doc as an HTML fragment. User text is escaped by html/template.
func Preview(doc layout.Document) (template.HTML, error) {
	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, doc); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// linkHref turns a bare profile handle such as "linkedin.com/in/x" into an absolute URL.
// Unsafe schemes are left for html/template to neutralize.
func linkHref(value string) string {
	value = strings.TrimSpace(value)
	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.Contains(lower, ":") {
		return value
	}
	return "https://" + value
}
