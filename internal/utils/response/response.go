// Package response provides helpers for writing consistent HTTP responses.
//
// JSON handlers use WriteJSON plus the error envelopes below. HTML
// handlers that redirect after a POST use Flash to carry a structured
// success/error message to the next page, instead of building the query
// string by hand.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the standard envelope returned for error cases.
//
// Success responses may return any JSON shape (a list of students, an
// analysis…). Error responses always look like:
//
//	{ "status": "error", "error": "field Name is required" }
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error"`  // human-readable error detail
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into our standard Response shape.
// Use this for unexpected errors (storage failures, decode errors, etc.)
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError converts the validator's per-field errors into a single
// human-readable Response:
//
//	{ "status": "error", "error": "field name is required, field bio is required" }
func ValidationError(errs validator.ValidationErrors) Response {
	return Response{
		Status: StatusError,
		Error:  ValidationMessage(errs),
	}
}

// ValidationMessage renders validation errors as one sentence. HTML
// handlers show it in a flash, JSON handlers wrap it in ValidationError.
func ValidationMessage(errs validator.ValidationErrors) string {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(errMessages, ", ")
}

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message shown on the page a redirect lands on.
type Flash struct {
	Kind string
	Text string
}

// Success builds a success flash.
func Success(format string, args ...any) Flash {
	return Flash{Kind: FlashSuccess, Text: fmt.Sprintf(format, args...)}
}

// Failure builds an error flash.
func Failure(format string, args ...any) Flash {
	return Flash{Kind: FlashError, Text: fmt.Sprintf(format, args...)}
}

// Empty reports whether there is nothing to show.
func (f Flash) Empty() bool {
	return f.Text == ""
}

// Query encodes the flash as URL query parameters.
func (f Flash) Query() string {
	return url.Values{"kind": {f.Kind}, "message": {f.Text}}.Encode()
}

// FlashFromQuery reads a flash previously encoded by Query. A message
// without a kind is shown as a success, matching plain "?message=" links.
func FlashFromQuery(q url.Values) Flash {
	f := Flash{Kind: q.Get("kind"), Text: q.Get("message")}
	if f.Kind != FlashError {
		f.Kind = FlashSuccess
	}
	return f
}

// Redirect sends a 303 See Other to path with the flash attached, the
// usual answer to a successful form POST.
func Redirect(w http.ResponseWriter, r *http.Request, path string, f Flash) {
	target := path
	if !f.Empty() {
		target += "?" + f.Query()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
