// Package svg exports routed traces as dimensioned SVG documents.
//
// The exporter implements cpwroute.GeometrySink, so finished routes can be
// handed to it directly:
//
//	f, _ := os.Create("chip.svg")
//	ex := svg.NewExporter(f, chipBounds, "mm")
//	route.Emit(ex, "top")
//	ex.Close()
package svg

import (
	"fmt"
	"io"

	"zappem.net/pub/graphics/svgof"

	"github.com/qchip/cpwroute"
)

// Exporter writes chip geometry to one SVG document. The drawing is flipped
// vertically so that the chip's +Y (up) maps to the top of the image.
type Exporter struct {
	canvas *svgof.SVG
	bounds cpwroute.Rect
}

// NewExporter starts an SVG document covering bounds, declared in the given
// unit (conventionally "mm" or "um").
func NewExporter(w io.Writer, bounds cpwroute.Rect, unit string) *Exporter {
	canvas := svgof.New(w)
	canvas.Decimals = 3
	width := bounds.MaxX - bounds.MinX
	height := bounds.MaxY - bounds.MinY
	canvas.StartviewUnit(width, height, unit, bounds.MinX, bounds.MinY, width, height)
	return &Exporter{canvas: canvas, bounds: bounds}
}

// flipY mirrors a chip Y coordinate into SVG's downward axis.
func (e *Exporter) flipY(y float64) float64 {
	return e.bounds.MinY + e.bounds.MaxY - y
}

// EmitPath implements cpwroute.GeometrySink. The trace is drawn as a
// stroked polyline of the given width; the tag becomes the element class.
func (e *Exporter) EmitPath(points []cpwroute.Point, width, fillet float64, tag string) error {
	if len(points) < 2 {
		return fmt.Errorf("svg: path needs at least 2 points, got %d", len(points))
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = e.flipY(p.Y)
	}
	style := fmt.Sprintf(
		"fill:none;stroke:#1f3b70;stroke-width:%g;stroke-linejoin:round;stroke-linecap:butt", width)
	if tag != "" {
		e.canvas.Polyline(xs, ys, style, fmt.Sprintf("class=%q", tag))
	} else {
		e.canvas.Polyline(xs, ys, style)
	}
	return nil
}

// Obstacle draws a placed component's bounding box outline.
func (e *Exporter) Obstacle(o cpwroute.Obstacle) {
	b := o.Bounds()
	e.canvas.Rect(b.MinX, e.flipY(b.MaxY), b.MaxX-b.MinX, b.MaxY-b.MinY,
		"fill:#d9dee8;stroke:#67707f;stroke-width:1")
}

// Pin marks a pin position with a dot.
func (e *Exporter) Pin(p cpwroute.Pin, radius float64) {
	e.canvas.Circle(p.Pos.X, e.flipY(p.Pos.Y), radius, "fill:#b1362f")
}

// Close finishes the document. The Exporter must not be used afterwards.
func (e *Exporter) Close() error {
	e.canvas.End()
	return nil
}
