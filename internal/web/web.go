// Package web bundles the HTML templates and static assets into the
// binary and renders pages from them.
//
// Every page template is parsed together with base.html, which defines
// the shared layout; each page file only fills in the "content" block.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Page template names.
const (
	PageHome       = "home.html"
	PageAbout      = "about.html"
	PageResult     = "result.html"
	PagePost       = "post.html"
	PageAddStudent = "add_student.html"
)

var pages = []string{PageHome, PageAbout, PageResult, PagePost, PageAddStudent}

// Renderer holds one parsed template set per page.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page at startup, so a broken template stops
// the server from booting instead of failing on the first request.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}

	for _, page := range pages {
		tmpl, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("web.NewRenderer: parse %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}

	return r, nil
}

// Render executes page into a buffer first, so a template error can
// still produce a clean 500 instead of half a page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("web.Render: unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return fmt.Errorf("web.Render: execute %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded static directory. Mount it with
// http.StripPrefix so "/static/style.css" maps to "style.css".
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// Only possible if the embed directive above is wrong.
		panic("web: static filesystem: " + err.Error())
	}

	fileServer := http.FileServer(http.FS(sub))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path == "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	})
}
