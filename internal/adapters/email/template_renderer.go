package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"eventdesk/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// templateRenderer renders the embedded subject/html/text triple for a
// template name. Parsing happens per call; the template set is tiny.
type templateRenderer struct{}

// NewTemplateRenderer returns the renderer backed by the embedded templates
// directory.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{}
}

func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	parts := []struct {
		suffix string
		html   bool
		out    *string
	}{
		{"_subject.txt", false, &subject},
		{".html", true, &htmlBody},
		{".txt", false, &textBody},
	}
	for _, p := range parts {
		*p.out, err = renderFile(templateName+p.suffix, data, p.html)
		if err != nil {
			return "", "", "", fmt.Errorf("render %s%s: %w", templateName, p.suffix, err)
		}
	}
	return strings.TrimSpace(subject), htmlBody, textBody, nil
}

// renderFile executes one embedded template file. HTML bodies go through
// html/template for escaping; subjects and text bodies must not be escaped.
func renderFile(name string, data any, asHTML bool) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if asHTML {
		t, err := template.New(name).Parse(string(raw))
		if err != nil {
			return "", err
		}
		err = t.Execute(&buf, data)
		return buf.String(), err
	}
	t, err := texttemplate.New(name).Parse(string(raw))
	if err != nil {
		return "", err
	}
	err = t.Execute(&buf, data)
	return buf.String(), err
}
