package statics

import (
	"fmt"
	"math"
)

// Channel selects which sampled quantity a diagram series carries.
type Channel string

const (
	ChannelShear  Channel = "shear"
	ChannelMoment Channel = "moment"
)

// Point is one diagram coordinate: position along the span against the
// value of the selected channel.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project reduces sampled stations to an ordered (position, value) series
// for one channel. It is a pure projection: station order is preserved
// and nothing is recomputed.
func Project(stations []Station, ch Channel) ([]Point, error) {
	pts := make([]Point, len(stations))
	switch ch {
	case ChannelShear:
		for i, s := range stations {
			pts[i] = Point{X: s.Position, Y: s.Shear}
		}
	case ChannelMoment:
		for i, s := range stations {
			pts[i] = Point{X: s.Position, Y: s.Moment}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, ch)
	}
	return pts, nil
}

// Extremes are the stations where the largest force magnitudes occur.
type Extremes struct {
	Shear  Station // station with the largest |shear|
	Moment Station // station with the largest |moment|
}

// SeriesExtremes scans sampled stations for the governing shear and moment
// stations. Signs are kept: a hogging moment larger in magnitude than any
// sagging one wins with its negative value. An empty series yields a zero
// Extremes.
func SeriesExtremes(stations []Station) Extremes {
	var ex Extremes
	if len(stations) == 0 {
		return ex
	}
	ex.Shear = stations[0]
	ex.Moment = stations[0]
	for _, s := range stations[1:] {
		if math.Abs(s.Shear) > math.Abs(ex.Shear.Shear) {
			ex.Shear = s
		}
		if math.Abs(s.Moment) > math.Abs(ex.Moment.Moment) {
			ex.Moment = s
		}
	}
	return ex
}
