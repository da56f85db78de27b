package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageData is what the page template executes against. BasePath prefixes
// every form action, e.g. "/orders/{sessionId}".
type PageData struct {
	Title    string
	BasePath string
	View     View
}

type Page struct {
	tmpl *template.Template
}

func NewPage() (*Page, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"display": display,
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Page{tmpl: tmpl}, nil
}

// Render executes the template into a buffer first so a failure never
// leaves a half-written page behind.
func (p *Page) Render(w io.Writer, data PageData) error {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	return nil
}

// StaticHandler serves the embedded stylesheet under the path it is mounted on.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

func display(visible bool) string {
	if visible {
		return "block"
	}
	return "none"
}
