// Package renderer turns a consolidated snapshot plus live market data
// into the HTML dashboard and the markdown daily brief. Templates are
// embedded so the binary is self-contained.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

//go:embed templates/*.html templates/*.md
var templates embed.FS

// renderMarkdown renders an embedded text template to a markdown string.
func renderMarkdown(templateName, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := texttemplate.New(templateName).Funcs(texttemplate.FuncMap(helpers)).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// renderHTML renders an embedded html template with contextual escaping.
func renderHTML(templateName, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := htmltemplate.New(templateName).Funcs(htmltemplate.FuncMap(helpers)).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// BriefHTML converts the markdown brief into the HTML email body.
func BriefHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("converting brief to HTML: %w", err)
	}
	return buf.String(), nil
}
