// Package form parses HTML form submissions, both
// application/x-www-form-urlencoded and multipart/form-data.
package form

import (
	"errors"
	"fmt"
	"net/http"
)

// maxMemory is how much of a multipart body is kept in memory; the
// request body itself is already capped by middleware.BodyLimit.
const maxMemory = 1 << 20

// Parse populates r.PostForm from either supported encoding.
func Parse(r *http.Request) error {
	// ParseMultipartForm would hide urlencoded errors behind
	// ErrNotMultipart, so parse the plain form on its own first.
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}

	err := r.ParseMultipartForm(maxMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return fmt.Errorf("parse form: %w", err)
	}
	return nil
}

// Value returns the posted value for key and whether the key was sent
// at all, so "" can be told apart from a missing field.
func Value(r *http.Request, key string) (string, bool) {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
