// Package importer reads beam load cases from Excel workbooks.
//
// The first sheet carries one load per row under a header row with the
// columns Load Type, Magnitude (kN), Position (m), Start Position (m) and
// End Position (m). Column order is free; headers are matched by
// substring. Rows whose type mentions neither "point" nor a distributed
// keyword are skipped, but a recognized row with an unreadable number is
// an error.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Girder/internal/statics"
)

type columns struct {
	kind      int
	magnitude int
	position  int
	start     int
	end       int
}

func resolveColumns(header []string) columns {
	cols := columns{kind: -1, magnitude: -1, position: -1, start: -1, end: -1}
	for i, raw := range header {
		h := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case strings.Contains(h, "type"):
			cols.kind = i
		case strings.Contains(h, "magnitude"), strings.Contains(h, "intensity"):
			cols.magnitude = i
		case strings.Contains(h, "start"):
			cols.start = i
		case strings.Contains(h, "end"):
			cols.end = i
		case strings.Contains(h, "position"):
			cols.position = i
		}
	}
	return cols
}

// Parse extracts the load descriptors from a workbook stream.
func Parse(r io.Reader) ([]statics.LoadSpec, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("importer: open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("importer: read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("importer: sheet %q has no load rows", sheet)
	}
	cols := resolveColumns(rows[0])
	if cols.kind < 0 {
		return nil, fmt.Errorf("importer: sheet %q has no load type column", sheet)
	}

	var specs []statics.LoadSpec
	for i := 1; i < len(rows); i++ {
		spec, ok, err := parseLoadRow(rows[i], cols)
		if err != nil {
			return nil, fmt.Errorf("importer: row %d: %w", i+1, err)
		}
		if ok {
			specs = append(specs, spec)
		}
	}
	return specs, nil
}

func parseLoadRow(row []string, cols columns) (statics.LoadSpec, bool, error) {
	kind := strings.ToLower(cell(row, cols.kind))
	switch {
	case strings.Contains(kind, "point"):
		magnitude, err := toFloat(cell(row, cols.magnitude))
		if err != nil {
			return statics.LoadSpec{}, false, fmt.Errorf("magnitude: %w", err)
		}
		// Older sheets put point load positions in the start column.
		pos := cell(row, cols.position)
		if pos == "" {
			pos = cell(row, cols.start)
		}
		position, err := toFloat(pos)
		if err != nil {
			return statics.LoadSpec{}, false, fmt.Errorf("position: %w", err)
		}
		return statics.LoadSpec{
			Kind:        statics.KindPoint,
			MagnitudeKN: magnitude,
			PositionM:   position,
		}, true, nil

	case strings.Contains(kind, "udl"), strings.Contains(kind, "distributed"), strings.Contains(kind, "uniform"):
		intensity, err := toFloat(cell(row, cols.magnitude))
		if err != nil {
			return statics.LoadSpec{}, false, fmt.Errorf("intensity: %w", err)
		}
		from := cell(row, cols.start)
		if from == "" {
			from = cell(row, cols.position)
		}
		start, err := toFloat(from)
		if err != nil {
			return statics.LoadSpec{}, false, fmt.Errorf("start position: %w", err)
		}
		end, err := toFloat(cell(row, cols.end))
		if err != nil {
			return statics.LoadSpec{}, false, fmt.Errorf("end position: %w", err)
		}
		return statics.LoadSpec{
			Kind:         statics.KindUDL,
			IntensityKNM: intensity,
			StartM:       start,
			EndM:         end,
		}, true, nil
	}
	// Blank or unrecognized rows carry no load.
	return statics.LoadSpec{}, false, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func toFloat(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}
