package importer

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Girder/internal/calc/analysis"
)

// MaxUploadSize caps workbook uploads at 10 MB.
const MaxUploadSize = 10 << 20

type Handler struct{}

// Import ingests a load workbook and answers with the analysis payload.
// Optional span_m and stations form fields override the inferred span and
// the default resolution.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	specs, err := Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input := analysis.Input{Loads: specs}
	if v := r.FormValue("span_m"); v != "" {
		span, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "Invalid span_m", http.StatusBadRequest)
			return
		}
		input.SpanM = span
	}
	if v := r.FormValue("stations"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid stations", http.StatusBadRequest)
			return
		}
		input.Stations = n
	}

	res, err := analysis.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
