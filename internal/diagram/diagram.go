// Package diagram renders shear force and bending moment series as PNG
// plots for reports and as ASCII sparklines for terminal output.
package diagram

import "Girder/internal/statics"

// Labels returns the title and vertical axis label used for a channel
// across every rendering surface.
func Labels(ch statics.Channel) (title, ylabel string) {
	if ch == statics.ChannelMoment {
		return "Bending Moment Diagram", "Moment (kNm)"
	}
	return "Shear Force Diagram", "Shear (kN)"
}

// Decimate thins a series for surfaces that cannot take the full sampling
// resolution. Every step-th point survives, with step = len/max, and the
// last point is always kept so the diagram still closes at the far
// support. Series already within max are returned unchanged.
func Decimate(pts []statics.Point, max int) []statics.Point {
	if max < 2 || len(pts) <= max {
		return pts
	}
	step := len(pts) / max
	if step < 1 {
		step = 1
	}
	out := make([]statics.Point, 0, len(pts)/step+2)
	for i := 0; i < len(pts); i += step {
		out = append(out, pts[i])
	}
	if last := pts[len(pts)-1]; out[len(out)-1] != last {
		out = append(out, last)
	}
	return out
}
