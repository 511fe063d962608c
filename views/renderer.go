// Package views holds the embedded HTML templates and the gin renderer that
// serves them.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Pages lists every view name the application renders.
var Pages = []string{
	"discussions/new",
	"discussions/index",
	"discussions/show",
	"discussions/edit",
	"error",
}

var functions = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
	"join": strings.Join,
}

// Renderer keeps one template set per page, each parsed together with the
// shared layout so page blocks never clash.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	return NewRendererFS(templateFS)
}

// NewRendererFS parses the layout and pages from fsys.
func NewRendererFS(fsys fs.FS) (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(Pages))}
	for _, name := range Pages {
		ts, err := template.New("").Funcs(functions).ParseFS(fsys, layoutFile, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.templates[name] = ts
	}
	return r, nil
}

// Instance implements render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	ts, ok := r.templates[name]
	if !ok {
		return missingTemplate{name: name}
	}
	return render.HTML{Template: ts, Name: "layout", Data: data}
}

type missingTemplate struct {
	name string
}

func (m missingTemplate) Render(w http.ResponseWriter) error {
	return fmt.Errorf("views: no template named %q", m.name)
}

func (m missingTemplate) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}
