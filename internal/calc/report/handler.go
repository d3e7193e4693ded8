package report

import (
	"encoding/json"
	"net/http"

	"Girder/internal/calc/analysis"
)

// Request combines the title block with the beam to analyze.
type Request struct {
	Meta
	analysis.Input
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := analysis.Calculate(req.Input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := Write(w, req.Meta, req.Input, res); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
