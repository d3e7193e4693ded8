package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Girder/internal/calc/analysis"
	"Girder/internal/statics"
)

var standardHeader = []any{"Load Type", "Magnitude (kN)", "Position (m)", "Start Position (m)", "End Position (m)"}

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for ri, row := range rows {
		for ci, v := range row {
			if v == nil {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cellName, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseStandardSheet(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		standardHeader,
		{"UDL", 6.0, nil, 0.0, 15.0},
		{"Point", 10.0, 7.5, nil, nil},
	})

	specs, err := Parse(wb)
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, statics.KindUDL, specs[0].Kind)
	assert.InDelta(t, 6.0, specs[0].IntensityKNM, 1e-9)
	assert.InDelta(t, 0.0, specs[0].StartM, 1e-9)
	assert.InDelta(t, 15.0, specs[0].EndM, 1e-9)

	assert.Equal(t, statics.KindPoint, specs[1].Kind)
	assert.InDelta(t, 10.0, specs[1].MagnitudeKN, 1e-9)
	assert.InDelta(t, 7.5, specs[1].PositionM, 1e-9)
}

func TestParsePointPositionFallsBackToStartColumn(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		standardHeader,
		{"Point Load", 8.0, nil, 3.0, nil},
	})

	specs, err := Parse(wb)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.InDelta(t, 3.0, specs[0].PositionM, 1e-9)
}

func TestParseUDLStartFallsBackToPositionColumn(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		standardHeader,
		{"Distributed", 4.0, 2.0, nil, 9.0},
	})

	specs, err := Parse(wb)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.InDelta(t, 2.0, specs[0].StartM, 1e-9)
	assert.InDelta(t, 9.0, specs[0].EndM, 1e-9)
}

func TestParseSkipsUnrecognizedRows(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		standardHeader,
		{"Moment", 5.0, 2.0, nil, nil},
		{"", nil, nil, nil, nil},
		{"Point", 10.0, 5.0, nil, nil},
	})

	specs, err := Parse(wb)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, statics.KindPoint, specs[0].Kind)
}

func TestParseRejectsBadNumberInRecognizedRow(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		standardHeader,
		{"Point", 10.0, 5.0, nil, nil},
		{"Point", "heavy", 5.0, nil, nil},
	})

	_, err := Parse(wb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), "magnitude")
}

func TestParseRejectsHeaderOnlySheet(t *testing.T) {
	wb := buildWorkbook(t, [][]any{standardHeader})
	_, err := Parse(wb)
	assert.Error(t, err)
}

func TestParseRejectsSheetWithoutTypeColumn(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		{"Name", "Value"},
		{"a", 1.0},
	})
	_, err := Parse(wb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load type column")
}

func TestParseRejectsGarbageStream(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}

func multipartUpload(t *testing.T, wb *bytes.Buffer, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "loads.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(wb.Bytes())
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/beam/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandlerImport(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		standardHeader,
		{"UDL", 6.0, nil, 0.0, 15.0},
	})
	req := multipartUpload(t, wb, nil)
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Import(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res analysis.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 15.0, res.SpanM)
	assert.InDelta(t, 45.0, res.RaKN, 1e-9)
	assert.InDelta(t, 45.0, res.RbKN, 1e-9)
}

func TestHandlerImportHonorsOverrides(t *testing.T) {
	wb := buildWorkbook(t, [][]any{
		standardHeader,
		{"Point", 10.0, 5.0, nil, nil},
	})
	req := multipartUpload(t, wb, map[string]string{"span_m": "20", "stations": "101"})
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Import(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res analysis.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 20.0, res.SpanM)
	assert.Equal(t, 101, res.Stations)
	assert.Len(t, res.Shear, 101)
}

func TestHandlerImportRequiresFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/beam/import", nil)
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Import(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
