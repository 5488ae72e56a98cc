// Package web holds the embedded HTML and mail templates and the Echo
// renderer that serves them.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	texttemplate "text/template"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var content embed.FS

// Renderer satisfies echo.Renderer over the embedded page templates.
// Template names are the file names: index.html, user.html, 404.html,
// 500.html.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render satisfies the echo.Renderer interface.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

// RenderMail renders both variants of a named mail template, e.g.
// "new_user" resolves templates/mail/new_user.txt.tmpl and
// templates/mail/new_user.html.tmpl.
func RenderMail(name string, data any) (text, html string, err error) {
	txtTmpl, err := texttemplate.ParseFS(content, "templates/mail/"+name+".txt.tmpl")
	if err != nil {
		return "", "", fmt.Errorf("parse mail template %s: %w", name, err)
	}
	var txt strings.Builder
	if err := txtTmpl.Execute(&txt, data); err != nil {
		return "", "", fmt.Errorf("render mail text %s: %w", name, err)
	}

	htmlTmpl, err := template.ParseFS(content, "templates/mail/"+name+".html.tmpl")
	if err != nil {
		return "", "", fmt.Errorf("parse mail template %s: %w", name, err)
	}
	var out strings.Builder
	if err := htmlTmpl.Execute(&out, data); err != nil {
		return "", "", fmt.Errorf("render mail html %s: %w", name, err)
	}

	return txt.String(), out.String(), nil
}
