// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and utils can all import types without depending
// on each other.
package types

// Student represents a student record in the registry.
//
// There is no ID: two registrations with identical fields are two
// separate entries, and the registry keeps them in insertion order.
//
// Skills is always encoded as a JSON array. An empty list is sent as []
// rather than null so API consumers never have to special-case it.
type Student struct {
	Name    string   `json:"name"`
	Dob     string   `json:"dob"`
	Country string   `json:"country"`
	City    string   `json:"city"`
	Skills  []string `json:"skills"`
	Bio     string   `json:"bio"`
}

// StudentRequest is the JSON body accepted by POST /api/students/.
//
// Every field must be PRESENT in the payload, but an empty string is a
// valid value. Pointer fields let the validator tell the two apart:
//
//	validate:"required" on *string  → fails only when the key is missing
//	                                  (or null), "" is accepted
//	validate:"required" on []string → fails on a missing/null array,
//	                                  [] is accepted
type StudentRequest struct {
	Name    *string  `json:"name"    validate:"required"`
	Dob     *string  `json:"dob"     validate:"required"`
	Country *string  `json:"country" validate:"required"`
	City    *string  `json:"city"    validate:"required"`
	Skills  []string `json:"skills"  validate:"required"`
	Bio     *string  `json:"bio"     validate:"required"`
}

// Student converts a validated request into a registry record.
// Call it only after validation, otherwise nil fields panic.
func (r StudentRequest) Student() Student {
	skills := make([]string, len(r.Skills))
	copy(skills, r.Skills)

	return Student{
		Name:    *r.Name,
		Dob:     *r.Dob,
		Country: *r.Country,
		City:    *r.City,
		Skills:  skills,
		Bio:     *r.Bio,
	}
}

// StudentForm is the HTML form submitted to POST /students/add.
// Only the name is mandatory; everything else defaults to "".
// Skills arrives as one comma-separated string, see ParseSkills.
type StudentForm struct {
	Name    string `validate:"required"`
	Dob     string
	Country string
	City    string
	Skills  string
	Bio     string
}

// Student converts the form into a registry record.
func (f StudentForm) Student() Student {
	return Student{
		Name:    f.Name,
		Dob:     f.Dob,
		Country: f.Country,
		City:    f.City,
		Skills:  ParseSkills(f.Skills),
		Bio:     f.Bio,
	}
}

// AnalyzeRequest is the input of both text analysis endpoints.
// Content must be present; an empty text is still analysed.
type AnalyzeRequest struct {
	Content *string `json:"content" validate:"required"`
}
