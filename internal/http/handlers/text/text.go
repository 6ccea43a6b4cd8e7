// Package text contains the HTTP handlers of the text analyzer.
//
// Both the HTML form and the JSON endpoint accept a single "content"
// field and hand it to analyzer.Analyze. The field must be present, but
// an empty text is analysed like any other (all counts zero).
package text

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/text-students-api/internal/analyzer"
	"github.com/aanand-mishra/text-students-api/internal/types"
	"github.com/aanand-mishra/text-students-api/internal/utils/form"
	"github.com/aanand-mishra/text-students-api/internal/utils/response"
	"github.com/aanand-mishra/text-students-api/internal/web"
)

const pageTitle = "Text Analyzer"

// Renderer renders an HTML page. *web.Renderer satisfies it.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any) error
}

// ShowForm handles GET /post.
func ShowForm(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, renderer, http.StatusOK, web.PagePost, web.AnalysisData{Base: web.NewBase(pageTitle)})
	}
}

// Analyze handles POST /post: the form is analysed and the result page
// rendered with the five statistics. A request without a content field
// gets the form back with status 400.
func Analyze(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formPage := web.AnalysisData{Base: web.NewBase(pageTitle)}

		if err := form.Parse(r); err != nil {
			formPage.Flash = response.Failure("%s", err.Error())
			render(w, renderer, http.StatusBadRequest, web.PagePost, formPage)
			return
		}

		content, ok := form.Value(r, "content")
		if !ok {
			formPage.Flash = response.Failure("field content is required")
			render(w, renderer, http.StatusBadRequest, web.PagePost, formPage)
			return
		}

		result := analyzer.Analyze(content)
		slog.Info("text analyzed",
			slog.Int("chars", result.CharCount),
			slog.Int("words", result.WordCount))

		render(w, renderer, http.StatusOK, web.PageResult, web.AnalysisData{
			Base:    web.NewBase("Analysis Result"),
			Content: content,
			Result:  &result,
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// AnalyzeJSON handles POST /api/text/analyze
//
// Request body:
//
//	{ "content": "Hi! Go. Go?" }
//
// Success response (200 OK):
//
//	{ "char_count": 11, "word_count": 3, "sentence_count": 3,
//	  "most_frequent": "go", "freq": 2 }
//
// ─────────────────────────────────────────────────────────────────────────────
func AnalyzeJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AnalyzeRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErrs validator.ValidationErrors
			if errors.As(err, &validateErrs) {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(validateErrs))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, analyzer.Analyze(*req.Content))
	}
}

func render(w http.ResponseWriter, renderer Renderer, status int, page string, data web.AnalysisData) {
	if err := renderer.Render(w, status, page, data); err != nil {
		slog.Error("error rendering page", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
