// Package student contains all HTTP handlers related to the student
// registry: the JSON API and the HTML registration form.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Each exported function receives its dependencies (storage, renderer)
// once, at route registration, and returns the http.HandlerFunc that
// runs on every request:
//
//	router.HandleFunc("POST /api/students/{$}", student.New(storage))
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/text-students-api/internal/storage"
	"github.com/aanand-mishra/text-students-api/internal/types"
	"github.com/aanand-mishra/text-students-api/internal/utils/form"
	"github.com/aanand-mishra/text-students-api/internal/utils/response"
	"github.com/aanand-mishra/text-students-api/internal/web"
)

// Renderer renders an HTML page. *web.Renderer satisfies it.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any) error
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/students/
// Appends a student from the JSON request body.
//
// Request body (JSON) — every key must be present, values may be "":
//
//	{ "name": "Ada", "dob": "1815-12-10", "country": "UK", "city": "London",
//	  "skills": ["math", "engines"], "bio": "" }
//
// Success response (200 OK): the full, updated list of students.
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or a missing field
//	413 Too Large    — body over the configured limit
//	500 Internal     — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("adding a student")

		var req types.StudentRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.WriteJSON(w, http.StatusRequestEntityTooLarge, response.GeneralError(err))
			return
		}

		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErrs validator.ValidationErrors
			if errors.As(err, &validateErrs) {
				response.WriteJSON(w, http.StatusBadRequest,
					response.ValidationError(validateErrs))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		students, err := storage.AddStudent(req.Student())
		if err != nil {
			slog.Error("error adding student", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student added",
			slog.String("name", *req.Name),
			slog.Int("total", len(students)))

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/students/
// Returns a JSON array of all students in insertion order, [] when empty.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := storage.GetStudents()
		if err != nil {
			slog.Error("error getting students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// ShowForm handles GET /students and renders the empty registration form.
func ShowForm(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderForm(w, renderer, http.StatusOK, types.StudentForm{}, response.Flash{})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// NewFromForm handles POST /students/add
// Registers a student from the HTML form.
//
// Only "name" is required; the other fields default to "". "skills" is a
// single comma-separated string, split by types.ParseSkills.
//
// On success the browser is sent to "/" with a success flash (303, so a
// refresh does not resubmit). A missing name re-renders the form with
// status 400 and the values already typed.
// ─────────────────────────────────────────────────────────────────────────────
func NewFromForm(storage storage.Storage, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("adding a student from form")

		if err := form.Parse(r); err != nil {
			renderForm(w, renderer, http.StatusBadRequest, types.StudentForm{},
				response.Failure("%s", err.Error()))
			return
		}

		input := types.StudentForm{
			Name:    r.PostForm.Get("name"),
			Dob:     r.PostForm.Get("dob"),
			Country: r.PostForm.Get("country"),
			City:    r.PostForm.Get("city"),
			Skills:  r.PostForm.Get("skills"),
			Bio:     r.PostForm.Get("bio"),
		}

		if err := validator.New().Struct(input); err != nil {
			msg := err.Error()
			var validateErrs validator.ValidationErrors
			if errors.As(err, &validateErrs) {
				msg = response.ValidationMessage(validateErrs)
			}
			renderForm(w, renderer, http.StatusBadRequest, input, response.Failure("%s", msg))
			return
		}

		students, err := storage.AddStudent(input.Student())
		if err != nil {
			slog.Error("error adding student", slog.String("error", err.Error()))
			renderForm(w, renderer, http.StatusInternalServerError, input,
				response.Failure("could not add student: %s", err.Error()))
			return
		}

		slog.Info("student added",
			slog.String("name", input.Name),
			slog.Int("total", len(students)))

		response.Redirect(w, r, "/",
			response.Success("🎉 Success! %s has been added.", input.Name))
	}
}

func renderForm(w http.ResponseWriter, renderer Renderer, status int, input types.StudentForm, flash response.Flash) {
	data := web.StudentFormData{
		Base: web.NewBase("Add Student"),
		Form: input,
	}
	data.Flash = flash

	if err := renderer.Render(w, status, web.PageAddStudent, data); err != nil {
		slog.Error("error rendering page", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
