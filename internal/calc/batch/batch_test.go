package batch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Girder/internal/calc/analysis"
	"Girder/internal/statics"
)

func TestCalculateBatch(t *testing.T) {
	in := Input{Items: []analysis.Input{
		{
			SpanM:    10,
			Stations: 101,
			Loads:    []statics.LoadSpec{{Kind: statics.KindPoint, MagnitudeKN: 10, PositionM: 5}},
		},
		{
			SpanM:    8,
			Stations: 101,
			Loads:    []statics.LoadSpec{{Kind: statics.KindUDL, IntensityKNM: 4, StartM: 0, EndM: 8}},
		},
	}}

	out, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	require.Len(t, out.Results, 2)
	assert.InDelta(t, 5.0, out.Results[0].RaKN, 1e-9)
	assert.InDelta(t, 16.0, out.Results[1].RbKN, 1e-9)
}

func TestCalculateBatchFailsOnFirstBadItem(t *testing.T) {
	in := Input{Items: []analysis.Input{
		{SpanM: 10},
		{SpanM: -1},
	}}

	_, err := Calculate(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
	assert.ErrorIs(t, err, statics.ErrDegenerateBeam)
}

func TestCalculateBatchRejectsEmpty(t *testing.T) {
	_, err := Calculate(Input{})
	assert.Error(t, err)
}

func TestHandlerCalc(t *testing.T) {
	body := `{"items":[{"span_m":10,"stations":51,"loads":[{"kind":"point","magnitude_kn":10,"position_m":5}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/beam/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, 1, out.Count)
}

func TestHandlerCalcRejectsEmptyBatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/beam/batch", strings.NewReader(`{"items":[]}`))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
