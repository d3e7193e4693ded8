package statics

import "fmt"

// DefaultStationCount is the sampling resolution used when the caller does
// not ask for a specific one.
const DefaultStationCount = 500

// Station is the internal state of the beam at one position along the span.
type Station struct {
	Position float64 // m from support A
	Shear    float64 // kN
	Moment   float64 // kNm
}

// Sample evaluates shear force and bending moment at count evenly spaced
// stations covering the full span, both supports included.
//
// Positions are strictly increasing, the first station is exactly 0 and
// the last exactly the span. A station that lands on a point load reads
// the shear after the jump; a UDL contributes the resultant of the part
// left of the station, applied at that part's centroid. Fewer than two
// stations cannot describe the span and yield ErrStationCount.
func Sample(b Beam, r Reactions, count int) ([]Station, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrStationCount, count)
	}
	if !isFinite(b.Span) || b.Span <= 0 {
		return nil, fmt.Errorf("%w: got %g m", ErrDegenerateBeam, b.Span)
	}
	stations := make([]Station, count)
	for i := range stations {
		// Fraction first, so the last station lands exactly on the span.
		x := b.Span * (float64(i) / float64(count-1))
		v := r.Ra
		m := r.Ra * x
		for _, l := range b.Loads {
			v -= l.ShearAt(x)
			m -= l.MomentAt(x)
		}
		stations[i] = Station{Position: x, Shear: v, Moment: m}
	}
	return stations, nil
}

// Analyze runs the full pipeline on one beam: reactions first, then the
// sampled series.
func Analyze(b Beam, count int) (Reactions, []Station, error) {
	r, err := SolveReactions(b)
	if err != nil {
		return Reactions{}, nil, err
	}
	stations, err := Sample(b, r, count)
	if err != nil {
		return Reactions{}, nil, err
	}
	return r, stations, nil
}
