package handlers

import (
	"github.com/gorilla/mux"
)

func NewRouter(studentHandler *StudentHandler, groupHandler *GroupHandler) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/students", studentHandler.GetStudents).Methods("GET")

	api.HandleFunc("/groups", groupHandler.GetGroups).Methods("GET")
	api.HandleFunc("/groups", groupHandler.CreateGroup).Methods("POST")
	api.HandleFunc("/groups/{id}", groupHandler.GetGroup).Methods("GET")
	api.HandleFunc("/groups/{id}", groupHandler.DeleteGroup).Methods("DELETE")

	r.HandleFunc("/", RootHandler).Methods("GET")
	r.HandleFunc("/health", HealthHandler).Methods("GET")

	return r
}
