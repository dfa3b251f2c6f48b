package emit

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/inkline-labs/inkline/pkg/chain"
	"github.com/inkline-labs/inkline/pkg/geom"
)

// Drawing is the finished geometry handed to an emitter: the raw lines
// (if chaining was skipped) and/or chains (if it ran), the source
// polygons (for optional outline rendering), and an optional Info block
// describing how the fill was produced. BBox may be left zero to have it
// computed from the content.
type Drawing struct {
	Lines    []geom.Line      `json:"lines,omitempty"`
	Chains   []chain.Chain    `json:"chains,omitempty"`
	Polygons []geom.Polygon   `json:"polygons,omitempty"`
	Info     *Info            `json:"info,omitempty"`
	BBox     geom.BoundingBox `json:"bbox"`
}

// Info describes the fill parameters a drawing was produced with; the
// SVG legend and the JSON result reproduce it verbatim.
type Info struct {
	Pattern string  `json:"pattern"`
	Spacing float64 `json:"spacing"`
	Angle   float64 `json:"angle"`
	Seed    *uint64 `json:"seed,omitempty"`
}

// Stats summarizes a drawing for the header block and the JSON result.
type Stats struct {
	Segments  int     `json:"segments"`
	Chains    int     `json:"chains"`
	InkLength float64 `json:"ink_length"`
	PenTravel float64 `json:"pen_travel"`
}

// ComputeStats walks the drawing once, totaling drawn length and the
// pen-up travel between consecutive strokes in emission order.
func ComputeStats(d Drawing) Stats {
	s := Stats{Segments: len(d.Lines), Chains: len(d.Chains)}

	var pen geom.Point
	down := false
	move := func(from, to geom.Point) {
		if down {
			s.PenTravel += pen.Distance(from)
		}
		s.InkLength += from.Distance(to)
		pen = to
		down = true
	}

	for _, l := range d.Lines {
		move(l.Start(), l.End())
	}
	for _, c := range d.Chains {
		for i := 1; i < len(c); i++ {
			move(c[i-1], c[i])
			s.Segments++
		}
	}
	return s
}

// SVGOptions configures SVG rendering. Cosmetic only: no bearing on the
// geometry computed upstream.
type SVGOptions struct {
	Width        int     // canvas width in pixels
	Height       int     // canvas height in pixels
	Margin       int     // canvas margin in pixels
	StrokeColor  string  // stroke color for all fill geometry
	StrokeWidth  float64 // stroke width in pixels
	Background   string  // background fill color; empty means no background rect
	Title        string  // optional title drawn across the top
	ShowOutlines bool    // draw the source polygon boundaries faintly
	OutlineColor string  // outline stroke color (default: #9b9b9b)
	ShowLegend   bool    // show the pattern/spacing/angle legend
	ShowStats    bool    // show segment/length/travel statistics
}

// DefaultSVGOptions returns sensible plotter-preview defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:        1000,
		Height:       1000,
		Margin:       40,
		StrokeColor:  "#000000",
		StrokeWidth:  1,
		Background:   "#ffffff",
		ShowOutlines: true,
		OutlineColor: "#9b9b9b",
		ShowLegend:   true,
		ShowStats:    true,
	}
}

// headerSpace is the vertical band reserved at the top of the canvas when
// a title, legend, or stats block is drawn.
const headerSpace = 56

// EmitSVG renders d to an SVG document using github.com/ajstarks/svgo.
func EmitSVG(d Drawing, opts SVGOptions) ([]byte, error) {
	if opts.Width <= 0 {
		opts.Width = 1000
	}
	if opts.Height <= 0 {
		opts.Height = 1000
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 1
	}
	if opts.OutlineColor == "" {
		opts.OutlineColor = "#9b9b9b"
	}

	bbox := d.BBox
	if bbox.IsZero() {
		bbox = contentBounds(d)
	}
	if bbox.IsZero() {
		return nil, fmt.Errorf("emit: drawing has no content to bound")
	}

	header := 0
	if opts.Title != "" || opts.ShowLegend || opts.ShowStats {
		header = headerSpace
	}
	toPixel := buildTransform(bbox, opts, header)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)

	if opts.Background != "" {
		canvas.Rect(0, 0, opts.Width, opts.Height, fmt.Sprintf("fill:%s", opts.Background))
	}

	// Outlines first so strokes draw over them.
	if opts.ShowOutlines {
		drawOutlines(canvas, d.Polygons, toPixel, opts)
	}

	style := fmt.Sprintf("stroke:%s;stroke-width:%g;fill:none", opts.StrokeColor, opts.StrokeWidth)

	for _, l := range d.Lines {
		x1, y1 := toPixel(l.Start())
		x2, y2 := toPixel(l.End())
		canvas.Line(x1, y1, x2, y2, style)
	}

	for _, c := range d.Chains {
		if len(c) < 2 {
			continue
		}
		xs := make([]int, len(c))
		ys := make([]int, len(c))
		for i, p := range c {
			xs[i], ys[i] = toPixel(p)
		}
		canvas.Polyline(xs, ys, style)
	}

	if header > 0 {
		drawHeader(canvas, d, opts)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders d and writes it to filepath with 0644 permissions.
func SaveSVGToFile(d Drawing, filepath string, opts SVGOptions) error {
	data, err := EmitSVG(d, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// drawOutlines renders each polygon boundary (outer ring and holes) as a
// thin dashed closed path behind the fill strokes.
func drawOutlines(canvas *svg.SVG, polygons []geom.Polygon, toPixel func(geom.Point) (int, int), opts SVGOptions) {
	style := fmt.Sprintf("stroke:%s;stroke-width:1;fill:none;opacity:0.6;stroke-dasharray:4,3", opts.OutlineColor)

	ring := func(r geom.Ring) {
		if len(r) < 2 {
			return
		}
		xs := make([]int, 0, len(r)+1)
		ys := make([]int, 0, len(r)+1)
		for _, p := range r {
			x, y := toPixel(p)
			xs = append(xs, x)
			ys = append(ys, y)
		}
		x0, y0 := toPixel(r[0])
		xs = append(xs, x0)
		ys = append(ys, y0)
		canvas.Polyline(xs, ys, style)
	}

	for _, poly := range polygons {
		ring(poly.Outer)
		for _, hole := range poly.Holes {
			ring(hole)
		}
	}
}

// drawHeader renders the title, the fill legend, and the drawing
// statistics across the reserved band at the top of the canvas.
func drawHeader(canvas *svg.SVG, d Drawing, opts SVGOptions) {
	x := opts.Margin
	y := 22

	if opts.Title != "" {
		canvas.Text(x, y, opts.Title,
			"font-family:sans-serif;font-size:18px;font-weight:bold;fill:#222")
		y += 20
	}

	var parts []string
	if opts.ShowLegend && d.Info != nil {
		legend := fmt.Sprintf("pattern %s · spacing %g · angle %g°",
			d.Info.Pattern, d.Info.Spacing, d.Info.Angle)
		if d.Info.Seed != nil {
			legend += fmt.Sprintf(" · seed %d", *d.Info.Seed)
		}
		parts = append(parts, legend)
	}
	if opts.ShowStats {
		s := ComputeStats(d)
		parts = append(parts, fmt.Sprintf("%d segments · %d chains · ink %.0f · travel %.0f",
			s.Segments, s.Chains, s.InkLength, s.PenTravel))
	}
	for _, p := range parts {
		canvas.Text(x, y, p, "font-family:sans-serif;font-size:12px;fill:#555")
		y += 16
	}
}

func contentBounds(d Drawing) geom.BoundingBox {
	var b geom.BoundingBox
	first := true
	extend := func(p geom.Point) {
		if first {
			b = geom.BoundingBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			first = false
			return
		}
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	for _, l := range d.Lines {
		extend(l.Start())
		extend(l.End())
	}
	for _, c := range d.Chains {
		for _, p := range c {
			extend(p)
		}
	}
	for _, poly := range d.Polygons {
		for _, p := range poly.Outer {
			extend(p)
		}
	}
	return b
}

// buildTransform returns a function mapping document coordinates inside
// bbox to integer pixel coordinates inside the margin-inset canvas,
// preserving aspect ratio and centering the content below the header
// band.
func buildTransform(bbox geom.BoundingBox, opts SVGOptions, header int) func(geom.Point) (int, int) {
	drawW := float64(opts.Width - 2*opts.Margin)
	drawH := float64(opts.Height - 2*opts.Margin - header)

	w, h := bbox.Width(), bbox.Height()
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	scale := drawW / w
	if alt := drawH / h; alt < scale {
		scale = alt
	}

	offsetX := float64(opts.Margin) + (drawW-w*scale)/2
	offsetY := float64(opts.Margin+header) + (drawH-h*scale)/2

	return func(p geom.Point) (int, int) {
		x := offsetX + (p.X-bbox.MinX)*scale
		y := offsetY + (p.Y-bbox.MinY)*scale
		return int(x + 0.5), int(y + 0.5)
	}
}
