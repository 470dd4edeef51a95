package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/FrancisEgan/TodoApp/internal/core/domain"
)

// CreateTaskRequest is the payload for POST /tasks.
type CreateTaskRequest struct {
	Title string `json:"title"`
}

// UpdateTaskRequest is the payload for PUT /tasks/{id}. Nil fields are
// left unchanged.
type UpdateTaskRequest struct {
	Title      *string `json:"title"`
	IsComplete *bool   `json:"isComplete"`
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)

		return
	}

	tasks, err := s.app.ListTasks(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list tasks: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)

		return
	}

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)

		return
	}

	task, err := s.app.GetTask(r.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not found", http.StatusNotFound)
		} else {
			log.Printf("Failed to get task: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)

		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)

		return
	}

	task, err := s.app.CreateTask(r.Context(), userID, req.Title)
	if err != nil {
		log.Printf("Failed to create task: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Location", fmt.Sprintf("/tasks/%d", task.ID))
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)

		return
	}

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)

		return
	}

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)

		return
	}

	if _, err := s.app.UpdateTask(r.Context(), userID, taskID, req.Title, req.IsComplete); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not found", http.StatusNotFound)
		} else {
			log.Printf("Failed to update task: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)

		return
	}

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid task id", http.StatusBadRequest)

		return
	}

	if err := s.app.DeleteTask(r.Context(), userID, taskID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not found", http.StatusNotFound)
		} else {
			log.Printf("Failed to delete task: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
