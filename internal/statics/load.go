// Package statics computes support reactions and internal force
// distributions for a single-span simply supported beam carrying point
// loads and uniformly distributed loads.
//
// Conventions: positions are metres measured from the left support A,
// forces are kilonewtons, downward loads are positive and support
// reactions are reported upward positive. Positive shear follows the
// left-segment equilibrium sign and sagging bending moment is positive.
// The package keeps no state between calls, so concurrent analyses need
// no coordination.
package statics

import (
	"fmt"
	"math"
)

// Kind tags the wire form of a load descriptor.
type Kind string

const (
	KindPoint Kind = "point"
	KindUDL   Kind = "udl"
)

// LoadSpec is the raw load descriptor as it arrives from JSON payloads,
// workbook rows or CLI flags. Kind decides which of the remaining fields
// are meaningful: a point load reads MagnitudeKN and PositionM, a UDL
// reads IntensityKNM, StartM and EndM.
type LoadSpec struct {
	Kind         Kind    `json:"kind"`
	MagnitudeKN  float64 `json:"magnitude_kn"`
	PositionM    float64 `json:"position_m"`
	IntensityKNM float64 `json:"intensity_kn_m"`
	StartM       float64 `json:"start_m"`
	EndM         float64 `json:"end_m"`
}

// Load is one external action on the beam. The two implementations,
// PointLoad and DistributedLoad, carry their own statics so that callers
// never switch on the concrete type.
type Load interface {
	// Resultant returns the total downward force in kN.
	Resultant() float64
	// Centroid returns the position of the resultant from support A in m.
	Centroid() float64
	// ShearAt returns the part of the load acting left of a section at x,
	// in kN. A point load counts in full from its exact position on.
	ShearAt(x float64) float64
	// MomentAt returns the moment about the section at x of the part of
	// the load acting left of x, in kNm.
	MomentAt(x float64) float64

	validate(index int, span float64) error
}

// PointLoad is a concentrated force.
type PointLoad struct {
	Magnitude float64 // kN, downward positive
	Position  float64 // m from support A
}

func (p PointLoad) Resultant() float64 { return p.Magnitude }

func (p PointLoad) Centroid() float64 { return p.Position }

// ShearAt counts the load from its exact position on, so a station that
// lands on the load reads the shear after the jump.
func (p PointLoad) ShearAt(x float64) float64 {
	if x < p.Position {
		return 0
	}
	return p.Magnitude
}

func (p PointLoad) MomentAt(x float64) float64 {
	if x < p.Position {
		return 0
	}
	return p.Magnitude * (x - p.Position)
}

func (p PointLoad) validate(index int, span float64) error {
	if !isFinite(p.Magnitude) {
		return &ValidationError{Index: index, Kind: KindPoint, Reason: "magnitude is not a finite number"}
	}
	if !isFinite(p.Position) || p.Position < 0 || p.Position > span {
		return &ValidationError{
			Index:  index,
			Kind:   KindPoint,
			Reason: fmt.Sprintf("position %g m is outside the span [0, %g]", p.Position, span),
		}
	}
	return nil
}

// DistributedLoad is a uniform load over the interval [Start, End].
type DistributedLoad struct {
	Intensity float64 // kN/m, downward positive
	Start     float64 // m from support A
	End       float64 // m from support A, must exceed Start
}

func (d DistributedLoad) Resultant() float64 { return d.Intensity * (d.End - d.Start) }

func (d DistributedLoad) Centroid() float64 { return (d.Start + d.End) / 2 }

// ShearAt clips the loaded interval to the part left of x and returns the
// resultant of that part.
func (d DistributedLoad) ShearAt(x float64) float64 {
	if x <= d.Start {
		return 0
	}
	end := math.Min(x, d.End)
	return d.Intensity * (end - d.Start)
}

// MomentAt applies the clipped part of the load at its own centroid.
func (d DistributedLoad) MomentAt(x float64) float64 {
	if x <= d.Start {
		return 0
	}
	end := math.Min(x, d.End)
	force := d.Intensity * (end - d.Start)
	centroid := (d.Start + end) / 2
	return force * (x - centroid)
}

func (d DistributedLoad) validate(index int, span float64) error {
	if !isFinite(d.Intensity) {
		return &ValidationError{Index: index, Kind: KindUDL, Reason: "intensity is not a finite number"}
	}
	if !isFinite(d.Start) || !isFinite(d.End) || d.Start < 0 || d.End > span {
		return &ValidationError{
			Index:  index,
			Kind:   KindUDL,
			Reason: fmt.Sprintf("interval [%g, %g] m is outside the span [0, %g]", d.Start, d.End, span),
		}
	}
	if d.End <= d.Start {
		return &ValidationError{
			Index:  index,
			Kind:   KindUDL,
			Reason: fmt.Sprintf("interval [%g, %g] m has no positive length", d.Start, d.End),
		}
	}
	return nil
}

// Beam is a simply supported single span with its loads. Build one with
// NewBeam; the rest of the package treats a Beam as immutable.
type Beam struct {
	Span  float64 // m, always positive
	Loads []Load
}

// NewBeam checks the raw descriptors against the span and builds the
// canonical load set. A non-positive or non-finite span is
// ErrDegenerateBeam; the first invalid descriptor is returned as a
// *ValidationError. An empty load set is a valid beam.
func NewBeam(span float64, specs []LoadSpec) (Beam, error) {
	if !isFinite(span) || span <= 0 {
		return Beam{}, fmt.Errorf("%w: got %g m", ErrDegenerateBeam, span)
	}
	loads := make([]Load, 0, len(specs))
	for i, s := range specs {
		var l Load
		switch s.Kind {
		case KindPoint:
			l = PointLoad{Magnitude: s.MagnitudeKN, Position: s.PositionM}
		case KindUDL:
			l = DistributedLoad{Intensity: s.IntensityKNM, Start: s.StartM, End: s.EndM}
		default:
			return Beam{}, &ValidationError{Index: i, Kind: s.Kind, Reason: "unknown load kind"}
		}
		if err := l.validate(i, span); err != nil {
			return Beam{}, err
		}
		loads = append(loads, l)
	}
	return Beam{Span: span, Loads: loads}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
