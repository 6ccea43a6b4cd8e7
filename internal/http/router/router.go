// Package router wires every handler into one http.Handler.
//
// Route table:
//
//	GET    /                    → home page (+ flash message)
//	GET    /about               → about page
//	GET    /result              → empty result page
//	GET    /post                → text analyzer form
//	POST   /post                → analyze text, render result page
//	POST   /api/text/analyze    → analyze text, JSON result
//	GET    /students            → add-student form
//	POST   /students/add        → register from form, 303 to /
//	POST   /api/students/       → register from JSON, full list back
//	GET    /api/students/       → full list
//	GET    /static/...          → embedded CSS
//
// The student API answers with and without the trailing slash.
package router

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/text-students-api/internal/http/handlers/page"
	"github.com/aanand-mishra/text-students-api/internal/http/handlers/student"
	"github.com/aanand-mishra/text-students-api/internal/http/handlers/text"
	"github.com/aanand-mishra/text-students-api/internal/http/middleware"
	"github.com/aanand-mishra/text-students-api/internal/storage"
	"github.com/aanand-mishra/text-students-api/internal/web"
)

// DefaultMaxBodyBytes applies when Options.MaxBodyBytes is not set.
const DefaultMaxBodyBytes = 1 << 20

// Options are the router's non-handler settings.
type Options struct {
	Logger       *slog.Logger
	MaxBodyBytes int64
}

// New builds the application handler.
func New(storage storage.Storage, renderer *web.Renderer, opts Options) http.Handler {
	mux := http.NewServeMux()

	// {$} anchors "/" to exactly the root instead of matching everything.
	mux.HandleFunc("GET /{$}", page.Home(renderer))
	mux.HandleFunc("GET /about", page.About(renderer))
	mux.HandleFunc("GET /result", page.Result(renderer))

	mux.HandleFunc("GET /post", text.ShowForm(renderer))
	mux.HandleFunc("POST /post", text.Analyze(renderer))
	mux.HandleFunc("POST /api/text/analyze", text.AnalyzeJSON())

	mux.HandleFunc("GET /students", student.ShowForm(renderer))
	mux.HandleFunc("POST /students/add", student.NewFromForm(storage, renderer))

	for _, path := range []string{"/api/students", "/api/students/{$}"} {
		mux.HandleFunc("POST "+path, student.New(storage))
		mux.HandleFunc("GET "+path, student.GetList(storage))
	}

	mux.Handle("GET /static/", http.StripPrefix("/static", web.StaticHandler()))

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	return middleware.Chain(mux,
		middleware.RequestLogger(logger),
		middleware.SecurityHeaders,
		middleware.BodyLimit(maxBody),
	)
}
