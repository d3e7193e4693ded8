// Package report lays out the beam analysis as a PDF document: title
// block, input data, support reactions and the two diagrams.
package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"Girder/internal/calc/analysis"
	"Girder/internal/diagram"
	"Girder/internal/statics"
)

// Meta is the title block of a generated document.
type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// Build assembles the document for one analyzed beam. The caller decides
// where the output goes: pdf.Output for streams, pdf.OutputFileAndClose
// for files.
func Build(meta Meta, in analysis.Input, res analysis.Result) (*gofpdf.Fpdf, error) {
	if meta.Title == "" {
		meta.Title = "Simply Supported Beam Analysis"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "1. Input Data")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Span: %.2f m", res.SpanM))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Sampling stations: %d", res.Stations))
	pdf.Ln(8)
	writeLoadTable(pdf, in.Loads)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "2. Support Reactions")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Ra (left support): %.2f kN", res.RaKN))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Rb (right support): %.2f kN", res.RbKN))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total applied load: %.2f kN", res.TotalLoadKN))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Max shear: %.2f kN at x = %.2f m", res.MaxShearKN, res.MaxShearAtM))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Max moment: %.2f kNm at x = %.2f m", res.MaxMomentKNM, res.MaxMomentAtM))
	pdf.Ln(10)

	if err := writeDiagram(pdf, "3. Shear Force Diagram", "sfd", res.Shear, statics.ChannelShear); err != nil {
		return nil, err
	}
	if err := writeDiagram(pdf, "4. Bending Moment Diagram", "bmd", res.Moment, statics.ChannelMoment); err != nil {
		return nil, err
	}

	if meta.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}
	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

// Write builds the document and streams it.
func Write(w io.Writer, meta Meta, in analysis.Input, res analysis.Result) error {
	pdf, err := Build(meta, in, res)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func writeLoadTable(pdf *gofpdf.Fpdf, loads []statics.LoadSpec) {
	widths := []float64{12, 38, 50, 70}
	headers := []string{"#", "Type", "Magnitude", "Placement"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	if len(loads) == 0 {
		pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 7, "No loads", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
		return
	}
	for i, l := range loads {
		var kind, magnitude, placement string
		switch l.Kind {
		case statics.KindPoint:
			kind = "Point load"
			magnitude = fmt.Sprintf("%.2f kN", l.MagnitudeKN)
			placement = fmt.Sprintf("x = %.2f m", l.PositionM)
		case statics.KindUDL:
			kind = "UDL"
			magnitude = fmt.Sprintf("%.2f kN/m", l.IntensityKNM)
			placement = fmt.Sprintf("%.2f m to %.2f m", l.StartM, l.EndM)
		default:
			kind = string(l.Kind)
		}
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, kind, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, magnitude, "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, placement, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
}

func writeDiagram(pdf *gofpdf.Fpdf, heading, name string, pts []statics.Point, ch statics.Channel) error {
	title, ylabel := diagram.Labels(ch)
	png, err := diagram.Render(pts, title, ylabel, diagram.StyleFor(ch))
	if err != nil {
		return err
	}

	// A rendered diagram takes about 95 mm; break early instead of
	// splitting it across pages.
	if pdf.GetY() > 170 {
		pdf.AddPage()
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, heading)
	pdf.Ln(10)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, 15, 0, 180, 0, true, opts, 0, "")
	pdf.Ln(6)
	return nil
}
