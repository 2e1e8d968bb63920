package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/dmitrijs2005/wanttogo/internal/server/catalog"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
	"github.com/dmitrijs2005/wanttogo/internal/server/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData is the single view model shared by all templates.
type pageData struct {
	Title        string
	UserName     string
	Error        string
	Success      string
	Form         formValues
	Destinations []models.Destination
	View         *services.DestinationView
	List         []string
}

type formValues struct {
	UserName string
}

type renderer struct {
	pages map[string]*template.Template
}

var pageNames = []string{"login", "register", "home", "destination", "list", "error"}

func newRenderer() (*renderer, error) {
	funcs := template.FuncMap{"slug": catalog.Slug}

	r := &renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name+".html").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// render executes into a buffer first so a template failure never leaves a
// half-written page behind.
func (r *renderer) render(w http.ResponseWriter, status int, name string, data pageData) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
