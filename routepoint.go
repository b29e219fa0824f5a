package cpwroute

import (
	"fmt"
	"math"
)

// RoutePoint is a directed point: a position plus, optionally, the outward
// heading at that position. A zero Dir means no direction is assigned (bare
// anchors start out undirected). RoutePoint values are never mutated;
// transformations produce new instances.
type RoutePoint struct {
	Pos Point
	Dir Vec2
}

// Directed reports whether the point carries a direction.
func (rp RoutePoint) Directed() bool {
	return !rp.Dir.IsZero()
}

// WithDir returns a copy of rp with the given (normalized) direction.
func (rp RoutePoint) WithDir(d Vec2) RoutePoint {
	return RoutePoint{Pos: rp.Pos, Dir: d.Normalize()}
}

// Lead is a growing sequence of points extending from a pin outward,
// together with the current heading. Every Go* operation appends exactly one
// point and rotates the heading; once route assembly starts the lead is
// treated as read-only.
type Lead struct {
	pts []Point
	dir Vec2
}

// SeedFromPin starts the lead at the pin position, heading along the pin's
// outward normal.
func (l *Lead) SeedFromPin(p Pin) {
	l.pts = []Point{p.Pos}
	l.dir = p.Dir.Normalize()
}

// GoStraight extends the lead by length along the current heading.
func (l *Lead) GoStraight(length float64) {
	l.advance(0, length)
}

// GoLeft45 turns the heading 45 degrees left, then extends by length.
func (l *Lead) GoLeft45(length float64) {
	l.advance(45, length)
}

// GoLeft turns the heading 90 degrees left, then extends by length.
func (l *Lead) GoLeft(length float64) {
	l.advance(90, length)
}

// GoRight45 turns the heading 45 degrees right, then extends by length.
func (l *Lead) GoRight45(length float64) {
	l.advance(-45, length)
}

// GoRight turns the heading 90 degrees right, then extends by length.
func (l *Lead) GoRight(length float64) {
	l.advance(-90, length)
}

// GoAngle turns the heading by deg degrees (counter-clockwise positive),
// then extends by length.
func (l *Lead) GoAngle(deg, length float64) {
	l.advance(deg, length)
}

func (l *Lead) advance(deg, length float64) {
	if len(l.pts) == 0 {
		return // not seeded; nothing to extend from
	}
	d := l.dir.Rotate(deg * math.Pi / 180).Normalize()
	// Snap away the rotation's floating-point residue so axis-aligned
	// headings stay exact.
	l.dir = Vec2{X: roundTo(d.X, DefaultPrecision), Y: roundTo(d.Y, DefaultPrecision)}
	tip := l.pts[len(l.pts)-1].Add(l.dir.Mul(length))
	l.pts = append(l.pts, tip)
}

// Tip returns the lead's outermost point with its current heading.
func (l *Lead) Tip() RoutePoint {
	if len(l.pts) == 0 {
		return RoutePoint{}
	}
	return RoutePoint{Pos: l.pts[len(l.pts)-1], Dir: l.dir}
}

// Points returns a copy of the lead's point sequence.
func (l *Lead) Points() []Point {
	out := make([]Point, len(l.pts))
	copy(out, l.pts)
	return out
}

// Length returns the polyline length of the lead.
func (l *Lead) Length() float64 {
	return PathLength(l.pts)
}

// formatRoutePoint renders a directed point for error messages.
func formatRoutePoint(rp RoutePoint) string {
	if !rp.Directed() {
		return fmt.Sprintf("(%g, %g)", rp.Pos.X, rp.Pos.Y)
	}
	return fmt.Sprintf("(%g, %g) dir (%g, %g)", rp.Pos.X, rp.Pos.Y, rp.Dir.X, rp.Dir.Y)
}
