package statics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBeamRejectsDegenerateSpan(t *testing.T) {
	tests := []struct {
		name string
		span float64
	}{
		{"zero span", 0},
		{"negative span", -4},
		{"NaN span", math.NaN()},
		{"infinite span", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBeam(tt.span, nil)
			assert.ErrorIs(t, err, ErrDegenerateBeam)
		})
	}
}

func TestNewBeamRejectsInvalidLoads(t *testing.T) {
	tests := []struct {
		name   string
		specs  []LoadSpec
		index  int
		reason string
	}{
		{
			name:   "point load beyond the span",
			specs:  []LoadSpec{{Kind: KindPoint, MagnitudeKN: 10, PositionM: 12}},
			index:  0,
			reason: "outside the span",
		},
		{
			name:   "point load before the left support",
			specs:  []LoadSpec{{Kind: KindPoint, MagnitudeKN: 10, PositionM: -0.5}},
			index:  0,
			reason: "outside the span",
		},
		{
			name:   "point load with NaN magnitude",
			specs:  []LoadSpec{{Kind: KindPoint, MagnitudeKN: math.NaN(), PositionM: 5}},
			index:  0,
			reason: "not a finite number",
		},
		{
			name:   "udl running past the right support",
			specs:  []LoadSpec{{Kind: KindUDL, IntensityKNM: 4, StartM: 6, EndM: 14}},
			index:  0,
			reason: "outside the span",
		},
		{
			name:   "udl with negative start",
			specs:  []LoadSpec{{Kind: KindUDL, IntensityKNM: 4, StartM: -1, EndM: 5}},
			index:  0,
			reason: "outside the span",
		},
		{
			name:   "udl with zero length",
			specs:  []LoadSpec{{Kind: KindUDL, IntensityKNM: 4, StartM: 3, EndM: 3}},
			index:  0,
			reason: "no positive length",
		},
		{
			name:   "udl with reversed interval",
			specs:  []LoadSpec{{Kind: KindUDL, IntensityKNM: 4, StartM: 7, EndM: 2}},
			index:  0,
			reason: "no positive length",
		},
		{
			name:   "udl with infinite intensity",
			specs:  []LoadSpec{{Kind: KindUDL, IntensityKNM: math.Inf(1), StartM: 0, EndM: 5}},
			index:  0,
			reason: "not a finite number",
		},
		{
			name:   "unknown kind",
			specs:  []LoadSpec{{Kind: "torsion", MagnitudeKN: 3}},
			index:  0,
			reason: "unknown load kind",
		},
		{
			name: "second descriptor invalid",
			specs: []LoadSpec{
				{Kind: KindPoint, MagnitudeKN: 10, PositionM: 5},
				{Kind: KindPoint, MagnitudeKN: 10, PositionM: 11},
			},
			index:  1,
			reason: "outside the span",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBeam(10, tt.specs)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.index, verr.Index)
			assert.Contains(t, verr.Error(), tt.reason)
		})
	}
}

func TestNewBeamAcceptsBoundaryLoads(t *testing.T) {
	specs := []LoadSpec{
		{Kind: KindPoint, MagnitudeKN: 12, PositionM: 0},
		{Kind: KindPoint, MagnitudeKN: 8, PositionM: 10},
		{Kind: KindUDL, IntensityKNM: 4, StartM: 0, EndM: 10},
	}
	b, err := NewBeam(10, specs)
	require.NoError(t, err)
	require.Len(t, b.Loads, 3)
	assert.IsType(t, PointLoad{}, b.Loads[0])
	assert.IsType(t, PointLoad{}, b.Loads[1])
	assert.IsType(t, DistributedLoad{}, b.Loads[2])
}

func TestNewBeamAllowsEmptyLoadSet(t *testing.T) {
	b, err := NewBeam(6, nil)
	require.NoError(t, err)
	assert.Equal(t, 6.0, b.Span)
	assert.Empty(t, b.Loads)
}

func TestPointLoadStatics(t *testing.T) {
	p := PointLoad{Magnitude: 10, Position: 4}

	assert.Equal(t, 10.0, p.Resultant())
	assert.Equal(t, 4.0, p.Centroid())

	// Before the load it contributes nothing, from the load on it counts
	// in full.
	assert.Equal(t, 0.0, p.ShearAt(3.99))
	assert.Equal(t, 10.0, p.ShearAt(4))
	assert.Equal(t, 10.0, p.ShearAt(9))

	assert.Equal(t, 0.0, p.MomentAt(4))
	assert.InDelta(t, 10.0*3, p.MomentAt(7), 1e-12)
}

func TestDistributedLoadStatics(t *testing.T) {
	d := DistributedLoad{Intensity: 3, Start: 2, End: 6}

	assert.InDelta(t, 12.0, d.Resultant(), 1e-12)
	assert.InDelta(t, 4.0, d.Centroid(), 1e-12)

	assert.Equal(t, 0.0, d.ShearAt(2))
	assert.InDelta(t, 3.0, d.ShearAt(3), 1e-12)
	assert.InDelta(t, 12.0, d.ShearAt(6), 1e-12)
	assert.InDelta(t, 12.0, d.ShearAt(9), 1e-12)

	// Left of x=3 one metre of load acts at its centroid 2.5.
	assert.InDelta(t, 3.0*0.5, d.MomentAt(3), 1e-12)
	// Past the end the whole resultant acts at the full centroid.
	assert.InDelta(t, 12.0*(8-4), d.MomentAt(8), 1e-12)
}
