package rest

import (
	"net/http"

	"github.com/dmitrijs2005/carekeeper/internal/models"
	"github.com/gorilla/mux"
)

type taskBody struct {
	Task models.Task `json:"task"`
}

type tasksBody struct {
	Tasks []models.Task `json:"tasks"`
}

func (s *HTTPServer) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.data.ListTasks(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasksBody{Tasks: tasks})
}

func (s *HTTPServer) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var nt models.NewTask
	if !decodeJSON(w, r, &nt) {
		return
	}

	task, err := s.data.CreateTask(r.Context(), userIDFrom(r.Context()), nt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, taskBody{Task: *task})
}

func (s *HTTPServer) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var patch models.TaskPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	task, err := s.data.UpdateTask(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskBody{Task: *task})
}

func (s *HTTPServer) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.data.DeleteTask(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "Task deleted successfully"})
}
