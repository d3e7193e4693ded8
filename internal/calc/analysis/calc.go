// Package analysis assembles the full beam analysis payload: reactions,
// sampled shear and moment series and their extremes, ready for JSON
// responses, reports and diagrams.
package analysis

import (
	"Girder/internal/statics"
)

// DefaultSpanM is the floor for inferred spans. A load set whose extents
// stay short of it still gets a workable beam.
const DefaultSpanM = 10.0

type Input struct {
	SpanM    float64            `json:"span_m"`
	Stations int                `json:"stations"`
	Loads    []statics.LoadSpec `json:"loads"`
}

type Result struct {
	SpanM        float64         `json:"span_m"`
	Stations     int             `json:"stations"`
	RaKN         float64         `json:"ra_kn"`
	RbKN         float64         `json:"rb_kn"`
	TotalLoadKN  float64         `json:"total_load_kn"`
	MaxShearKN   float64         `json:"max_shear_kn"`
	MaxShearAtM  float64         `json:"max_shear_at_m"`
	MaxMomentKNM float64         `json:"max_moment_knm"`
	MaxMomentAtM float64         `json:"max_moment_at_m"`
	Shear        []statics.Point `json:"shear"`
	Moment       []statics.Point `json:"moment"`
}

// Calculate runs one beam through the engine. A zero span asks for
// inference from the load extents, a zero station count means
// statics.DefaultStationCount. Errors come straight from the engine:
// *statics.ValidationError for bad loads, statics.ErrDegenerateBeam and
// statics.ErrStationCount for bad geometry and resolution.
func Calculate(in Input) (Result, error) {
	span := in.SpanM
	if span == 0 {
		span = InferSpan(in.Loads)
	}
	count := in.Stations
	if count == 0 {
		count = statics.DefaultStationCount
	}

	beam, err := statics.NewBeam(span, in.Loads)
	if err != nil {
		return Result{}, err
	}
	reactions, stations, err := statics.Analyze(beam, count)
	if err != nil {
		return Result{}, err
	}
	shear, err := statics.Project(stations, statics.ChannelShear)
	if err != nil {
		return Result{}, err
	}
	moment, err := statics.Project(stations, statics.ChannelMoment)
	if err != nil {
		return Result{}, err
	}
	ex := statics.SeriesExtremes(stations)

	return Result{
		SpanM:        span,
		Stations:     count,
		RaKN:         reactions.Ra,
		RbKN:         reactions.Rb,
		TotalLoadKN:  reactions.Ra + reactions.Rb,
		MaxShearKN:   ex.Shear.Shear,
		MaxShearAtM:  ex.Shear.Position,
		MaxMomentKNM: ex.Moment.Moment,
		MaxMomentAtM: ex.Moment.Position,
		Shear:        shear,
		Moment:       moment,
	}, nil
}

// InferSpan takes the beam length from the furthest load coordinate with a
// DefaultSpanM floor.
func InferSpan(loads []statics.LoadSpec) float64 {
	span := DefaultSpanM
	for _, l := range loads {
		switch l.Kind {
		case statics.KindPoint:
			if l.PositionM > span {
				span = l.PositionM
			}
		case statics.KindUDL:
			if l.EndM > span {
				span = l.EndM
			}
		}
	}
	return span
}
