package cpwroute

// GeometrySink receives finalized trace geometry. Rendering backends (SVG,
// PNG previews, EM-simulator exporters) implement this; the core never
// inspects sink state.
type GeometrySink interface {
	// EmitPath receives the final polyline together with the trace width,
	// fillet radius, and an opaque layer/chip tag.
	EmitPath(points []Point, width, fillet float64, tag string) error
}
