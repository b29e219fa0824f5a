// Package render rasterizes routed chips into PNG previews.
//
// It is a debugging sink, not a mask exporter: traces are stroked as flat
// quads without fillet arcs, obstacles as filled boxes. The rasterizer is
// golang.org/x/image/vector.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/qchip/cpwroute"
)

// Preview renders chip geometry into an in-memory RGBA image.
// Chip +Y maps to the top of the image.
type Preview struct {
	img    *image.RGBA
	bounds cpwroute.Rect
	scale  float64
	trace  color.Color
}

// NewPreview allocates a white canvas covering bounds, pxWidth pixels wide
// (height follows the aspect ratio).
func NewPreview(bounds cpwroute.Rect, pxWidth int) *Preview {
	w := bounds.MaxX - bounds.MinX
	h := bounds.MaxY - bounds.MinY
	if w <= 0 || h <= 0 || pxWidth <= 0 {
		return &Preview{img: image.NewRGBA(image.Rect(0, 0, 1, 1))}
	}
	scale := float64(pxWidth) / w
	pxHeight := int(h*scale + 0.5)
	if pxHeight < 1 {
		pxHeight = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, pxWidth, pxHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &Preview{
		img:    img,
		bounds: bounds,
		scale:  scale,
		trace:  color.RGBA{R: 0x1f, G: 0x3b, B: 0x70, A: 0xff},
	}
}

// SetTraceColor overrides the stroke color used by EmitPath.
func (p *Preview) SetTraceColor(c color.Color) { p.trace = c }

// Image exposes the canvas, e.g. for comparing against golden images.
func (p *Preview) Image() *image.RGBA { return p.img }

// toPixel maps a chip point into image coordinates, flipping Y.
func (p *Preview) toPixel(pt cpwroute.Point) (float32, float32) {
	x := (pt.X - p.bounds.MinX) * p.scale
	y := (p.bounds.MaxY - pt.Y) * p.scale
	return float32(x), float32(y)
}

// EmitPath implements cpwroute.GeometrySink: the polyline is stroked as one
// quad per segment. Corners are left square; fillet arcs are a mask-export
// concern, not a preview one.
func (p *Preview) EmitPath(points []cpwroute.Point, width, fillet float64, tag string) error {
	if len(points) < 2 {
		return fmt.Errorf("render: path needs at least 2 points, got %d", len(points))
	}
	if width <= 0 {
		width = 1 / p.scale // hairline
	}
	half := width / 2
	r := vector.NewRasterizer(p.img.Bounds().Dx(), p.img.Bounds().Dy())
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		n := b.Sub(a).Normalize().Perp().Mul(half)
		quad := [4]cpwroute.Point{a.Add(n), b.Add(n), b.Add(n.Neg()), a.Add(n.Neg())}
		x0, y0 := p.toPixel(quad[0])
		r.MoveTo(x0, y0)
		for _, q := range quad[1:] {
			r.LineTo(p.toPixel(q))
		}
		r.ClosePath()
	}
	r.Draw(p.img, p.img.Bounds(), image.NewUniform(p.trace), image.Point{})
	return nil
}

// Obstacle fills a placed component's contour.
func (p *Preview) Obstacle(o cpwroute.Obstacle, c color.Color) {
	poly := o.Contour()
	if len(poly) < 3 {
		return
	}
	r := vector.NewRasterizer(p.img.Bounds().Dx(), p.img.Bounds().Dy())
	x0, y0 := p.toPixel(poly[0])
	r.MoveTo(x0, y0)
	for _, q := range poly[1:] {
		r.LineTo(p.toPixel(q))
	}
	r.ClosePath()
	r.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{})
}

// Pin marks a pin position with a small filled square of the given
// half-width (in chip units).
func (p *Preview) Pin(pin cpwroute.Pin, radius float64, c color.Color) {
	r := vector.NewRasterizer(p.img.Bounds().Dx(), p.img.Bounds().Dy())
	cx, cy := p.toPixel(pin.Pos)
	pr := float32(radius * p.scale)
	r.MoveTo(cx-pr, cy-pr)
	r.LineTo(cx+pr, cy-pr)
	r.LineTo(cx+pr, cy+pr)
	r.LineTo(cx-pr, cy+pr)
	r.ClosePath()
	r.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{})
}

// WritePNG encodes the canvas.
func (p *Preview) WritePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// SavePNG writes the canvas to a file.
func (p *Preview) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.WritePNG(f)
}
