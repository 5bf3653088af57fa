// Package registry holds the in-memory student and group collections
// together with their id counters.
package registry

import (
	"sync"

	"student-directory/models"
)

type StudentRegistry struct {
	mu       sync.Mutex
	students []models.Student
	nextID   int
}

func NewStudentRegistry() *StudentRegistry {
	return &StudentRegistry{students: []models.Student{}}
}

// Resolve returns the id of the first student named name, creating the
// student if none exists yet.
func (r *StudentRegistry) Resolve(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.students {
		if s.Name == name {
			return s.ID
		}
	}

	id := r.nextID
	r.students = append(r.students, models.Student{ID: id, Name: name})
	r.nextID++
	return id
}

func (r *StudentRegistry) Find(id int) (models.Student, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.students {
		if s.ID == id {
			return s, true
		}
	}
	return models.Student{}, false
}

func (r *StudentRegistry) List() []models.Student {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Student, len(r.students))
	copy(out, r.students)
	return out
}
