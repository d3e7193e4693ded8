package diagram

import (
	"github.com/guptarohit/asciigraph"

	"Girder/internal/statics"
)

// ASCII renders a terminal view of the series, decimated to roughly the
// requested width. An empty series renders as an empty string.
func ASCII(pts []statics.Point, width, height int, caption string) string {
	if len(pts) == 0 {
		return ""
	}
	pts = Decimate(pts, width)
	values := make([]float64, len(pts))
	for i, pt := range pts {
		values[i] = pt.Y
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.Precision(1),
	)
}
