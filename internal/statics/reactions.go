package statics

import "fmt"

// Reactions are the two support forces in kN, upward positive.
type Reactions struct {
	Ra float64 // left support A
	Rb float64 // right support B
}

// SolveReactions takes moments about the left support to find Rb and then
// applies vertical equilibrium for Ra. A beam without loads yields zero
// reactions.
func SolveReactions(b Beam) (Reactions, error) {
	if !isFinite(b.Span) || b.Span <= 0 {
		return Reactions{}, fmt.Errorf("%w: got %g m", ErrDegenerateBeam, b.Span)
	}
	var total, momentAboutA float64
	for _, l := range b.Loads {
		w := l.Resultant()
		total += w
		momentAboutA += w * l.Centroid()
	}
	rb := momentAboutA / b.Span
	return Reactions{Ra: total - rb, Rb: rb}, nil
}
