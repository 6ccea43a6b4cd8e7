// Package page serves the static-content HTML pages: home, about and
// the bare result page.
package page

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/text-students-api/internal/utils/response"
	"github.com/aanand-mishra/text-students-api/internal/web"
)

// Renderer renders an HTML page. *web.Renderer satisfies it.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any) error
}

// techs is the stack listing shown on the home page.
var techs = []web.TechGroup{
	{Area: "Front end", Items: []string{"HTML", "CSS"}},
	{Area: "Back end", Items: []string{"Go", "net/http"}},
}

// Home handles GET /. A flash left by a redirect (?message=...&kind=...)
// is shown above the content.
func Home(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := web.HomeData{
			Base:  web.NewBase("Home"),
			Techs: techs,
		}
		data.Flash = response.FlashFromQuery(r.URL.Query())

		render(w, renderer, web.PageHome, data)
	}
}

// About handles GET /about.
func About(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, renderer, web.PageAbout, web.NewBase("About Us"))
	}
}

// Result handles GET /result, the result page with nothing analysed yet.
func Result(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, renderer, web.PageResult, web.AnalysisData{Base: web.NewBase("Analysis Result")})
	}
}

func render(w http.ResponseWriter, renderer Renderer, page string, data any) {
	if err := renderer.Render(w, http.StatusOK, page, data); err != nil {
		slog.Error("error rendering page",
			slog.String("page", page),
			slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
