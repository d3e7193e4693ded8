// Package project stores named beam configurations per user and replays
// them through the analysis on demand.
package project

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"Girder/internal/auth"
	"Girder/internal/calc/analysis"
	"Girder/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name  string         `json:"name"`
	Input analysis.Input `json:"input"`
}

// Save stores a named beam configuration for the authenticated user. The
// input runs through the analysis first, so nothing unanalyzable is ever
// persisted.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "Project name required", http.StatusBadRequest)
		return
	}
	if _, err := analysis.Calculate(req.Input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	raw, err := json.Marshal(req.Input)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	id, err := h.Repo.SaveProject(r.Context(), userID, req.Name, raw)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	projects, err := h.Repo.ListProjects(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if projects == nil {
		projects = []repo.Project{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	project, ok := h.lookup(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteProject(r.Context(), userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Result recomputes a saved configuration and answers with the full
// analysis payload. Nothing is cached: the stored input is the source of
// truth.
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	project, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var input analysis.Input
	if err := json.Unmarshal(project.Input, &input); err != nil {
		http.Error(w, "Stored input is unreadable", http.StatusInternalServerError)
		return
	}
	res, err := analysis.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (repo.Project, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return repo.Project{}, false
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return repo.Project{}, false
	}

	project, err := h.Repo.GetProject(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Project not found", http.StatusNotFound)
			return repo.Project{}, false
		}
		http.Error(w, "DB error", http.StatusInternalServerError)
		return repo.Project{}, false
	}
	return project, true
}
