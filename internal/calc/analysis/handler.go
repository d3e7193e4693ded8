package analysis

import (
	"encoding/json"
	"net/http"

	"Girder/internal/diagram"
	"Girder/internal/statics"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// DiagramInput selects one channel of an analysis for rendering.
type DiagramInput struct {
	Input
	Channel statics.Channel `json:"channel"`
}

// Diagram renders one channel of the analysis as a PNG image. An empty
// channel defaults to shear.
func (h *Handler) Diagram(w http.ResponseWriter, r *http.Request) {
	var input DiagramInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Channel == "" {
		input.Channel = statics.ChannelShear
	}
	if input.Channel != statics.ChannelShear && input.Channel != statics.ChannelMoment {
		http.Error(w, "Unknown diagram channel", http.StatusBadRequest)
		return
	}

	res, err := Calculate(input.Input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pts := res.Shear
	if input.Channel == statics.ChannelMoment {
		pts = res.Moment
	}
	title, ylabel := diagram.Labels(input.Channel)
	png, err := diagram.Render(pts, title, ylabel, diagram.StyleFor(input.Channel))
	if err != nil {
		http.Error(w, "Diagram rendering error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
