package handlers

import (
	"log"
	"net/http"

	"student-directory/registry"
)

type StudentHandler struct {
	students *registry.StudentRegistry
}

func NewStudentHandler(students *registry.StudentRegistry) *StudentHandler {
	return &StudentHandler{students: students}
}

func (h *StudentHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	students := h.students.List()
	log.Printf("📋 Returning %d students", len(students))
	writeJSON(w, http.StatusOK, students)
}
