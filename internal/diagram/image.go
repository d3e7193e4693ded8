package diagram

import (
	"bytes"
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"Girder/internal/statics"
)

// Style bundles the line and fill colors for one channel.
type Style struct {
	Line color.RGBA
	Fill color.RGBA
}

var (
	shearStyle = Style{
		Line: color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
		Fill: color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0x2a},
	}
	momentStyle = Style{
		Line: color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff},
		Fill: color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0x2a},
	}
)

// StyleFor returns the palette for a channel: blue for shear, red for
// moment.
func StyleFor(ch statics.Channel) Style {
	if ch == statics.ChannelMoment {
		return momentStyle
	}
	return shearStyle
}

// Render draws the series as a line with the area down to the zero axis
// filled in, and returns the encoded PNG.
func Render(pts []statics.Point, title, ylabel string, style Style) ([]byte, error) {
	if len(pts) == 0 {
		return nil, errors.New("diagram: empty series")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position along beam (m)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}

	if len(xys) > 1 {
		// Close the curve onto the axis so the area under it reads as a
		// filled body.
		ring := make(plotter.XYs, 0, len(xys)+2)
		ring = append(ring, xys...)
		ring = append(ring, plotter.XY{X: xys[len(xys)-1].X}, plotter.XY{X: xys[0].X})
		fill, err := plotter.NewPolygon(ring)
		if err != nil {
			return nil, err
		}
		fill.Color = style.Fill
		fill.LineStyle.Color = color.Transparent
		p.Add(fill)
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = style.Line
	p.Add(line)

	wt, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
