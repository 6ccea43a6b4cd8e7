// Package memory provides the default, process-local implementation of
// storage.Storage: an ordered slice guarded by a read/write mutex.
//
// net/http serves every request on its own goroutine, so all access goes
// through the mutex. Readers get a copy, never the backing slice.
//
// Nothing is shared between processes: running several instances means
// several independent registries.
package memory

import (
	"sync"

	"github.com/aanand-mishra/text-students-api/internal/types"
)

// Registry is an in-memory student registry.
// The zero value is not usable; create one with New.
type Registry struct {
	mu       sync.RWMutex
	students []types.Student
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{students: make([]types.Student, 0)}
}

// AddStudent appends student and returns a snapshot of the whole registry.
// It never fails; the error is there to satisfy storage.Storage.
func (r *Registry) AddStudent(student types.Student) ([]types.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.students = append(r.students, clone(student))

	return r.snapshot(), nil
}

// GetStudents returns a snapshot of the registry in insertion order.
func (r *Registry) GetStudents() ([]types.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot(), nil
}

// snapshot copies the registry. Callers must hold r.mu.
func (r *Registry) snapshot() []types.Student {
	out := make([]types.Student, len(r.students))
	for i, s := range r.students {
		out[i] = clone(s)
	}
	return out
}

// clone deep-copies the skills slice so no caller can reach our storage.
func clone(s types.Student) types.Student {
	skills := make([]string, len(s.Skills))
	copy(skills, s.Skills)
	s.Skills = skills
	return s
}
