// Package storage defines the Storage interface — the student registry
// contract that every backend must satisfy.
//
// Handlers depend only on this interface, so the in-memory registry and
// the SQLite one are interchangeable (main.go picks one from config),
// and tests can use either without touching handler code.
//
// The registry only grows: there is no update, delete or lookup by
// identity. It lives for as long as the process does.
package storage

import "github.com/aanand-mishra/text-students-api/internal/types"

// Storage is the student registry contract.
type Storage interface {
	// AddStudent appends a student to the end of the registry and returns
	// the full, updated list in insertion order.
	AddStudent(student types.Student) ([]types.Student, error)

	// GetStudents returns every student in insertion order.
	// Returns an empty slice (not nil) if there are no students.
	GetStudents() ([]types.Student, error)
}
