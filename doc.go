// Package cpwroute computes the planar geometry of coplanar-waveguide (CPW)
// transmission lines connecting components on a microwave/quantum chip.
//
// # Overview
//
// cpwroute is a pure Go autorouting library. Given two named pins (each a
// position plus an outward-facing direction), optional intermediate anchor
// points, and a set of placed-component obstacles, it produces the polyline
// of a trace connecting them. Three connection strategies are available per
// segment:
//
//   - simple: a 0-, 1- or 2-corner axis-aligned elbow
//   - pathfinder: A* grid search around obstacles, with a direct-connection
//     short circuit at every expansion
//   - meander: a symmetric serpentine tuned to hit an exact target length
//
// # Quick Start
//
//	pins := cpwroute.NewPinStore()
//	pins.Add(cpwroute.Pin{Component: "q1", Name: "readout",
//		Pos: cpwroute.Pt(0, 0), Dir: cpwroute.V2(1, 0)})
//	pins.Add(cpwroute.Pin{Component: "launch", Name: "tie",
//		Pos: cpwroute.Pt(5000, 0), Dir: cpwroute.V2(-1, 0)})
//
//	router := cpwroute.New(pins)
//	route, err := router.Route(cpwroute.RouteConfig{
//		Start:       cpwroute.PinRef{Component: "q1", Pin: "readout"},
//		End:         cpwroute.PinRef{Component: "launch", Pin: "tie"},
//		Strategies:  []cpwroute.Strategy{cpwroute.StrategyMeander},
//		TotalLength: 12000,
//		Spacing:     200,
//		Fillet:      90,
//		Width:       10,
//	})
//
//	route.Points() // the finished polyline
//	route.Length() // realized length, fillet-corrected
//
// # Architecture
//
// The library is organized into:
//   - Public API: Router, Route, RouteConfig, Pin, Obstacle, GeometrySink
//   - Geometry kernel: Point, Vec2, segment intersection, length accounting
//   - Connectors: simple elbow, A* pathfinder, meander generator
//   - Sinks: svg (SVG export), render (PNG previews)
//
// # Coordinate System
//
// Coordinates are dimensionless floats; callers pick the working unit
// (conventionally micrometres). X increases right, Y increases up, angles
// are counter-clockwise.
//
// # Concurrency
//
// Route construction is single-threaded and CPU-bound. A Router is safe for
// concurrent use as long as its pin store and obstacle snapshot are not
// mutated while routes are being built.
package cpwroute

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
