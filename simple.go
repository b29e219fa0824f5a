package cpwroute

import "math"

// ConnectSimple returns the minimal list of intermediate corner points
// (0, 1, or 2) such that start -> corners -> end is an axis-aligned polyline
// consistent with both endpoint directions. It returns ErrNoDirectRoute when
// no such elbow exists; the pathfinder uses the ok-returning directCorners
// variant internally and falls back to search instead.
func ConnectSimple(start, end RoutePoint, obs *ObstacleSet) ([]Point, error) {
	pts, ok := directCorners(start, end, obs, DefaultPrecision)
	if !ok {
		return nil, configRouteError(start, end)
	}
	return pts, nil
}

func configRouteError(start, end RoutePoint) error {
	return &routeFailure{err: ErrNoDirectRoute, start: start, end: end}
}

// directCorners is the result-typed core of the simple connector: ok=false
// means "no 1-2 segment elbow; caller may search". Candidates are tried in
// preference order: direct segment, perfectly-aligned single corner,
// perfectly-aligned S-bend, then the relaxed (perpendicular-tolerant)
// versions of each. Candidates whose segments cross an obstacle are
// discarded before the ordering applies.
func directCorners(start, end RoutePoint, obs *ObstacleSet, precision int) ([]Point, bool) {
	const eps = 1e-9
	s, e := start.Pos, end.Pos

	// Degenerate request: coincident points connect with no corners.
	if s.Approx(e, eps) {
		return []Point{}, true
	}

	// Direct connection when the two points share an axis.
	if axisAligned(s, e) {
		if headingOK(start.Dir, s, e, precision, false) &&
			headingOK(end.Dir, e, s, precision, false) &&
			!segBlocked(obs, s, e) {
			return []Point{}, true
		}
	}

	type candidate struct{ corners []Point }

	// L-corner candidates: the two corners of the rectangle spanned by the
	// endpoints. Horizontal-first when the start heading is horizontal.
	cornerH := Point{X: e.X, Y: s.Y} // leave start horizontally
	cornerV := Point{X: s.X, Y: e.Y} // leave start vertically
	elbows := []candidate{{[]Point{cornerH}}, {[]Point{cornerV}}}
	if math.Abs(start.Dir.Y) > math.Abs(start.Dir.X) {
		elbows[0], elbows[1] = elbows[1], elbows[0]
	}

	// S-bend candidates: mid-x bisector arrives horizontally, mid-y bisector
	// arrives vertically. The one matching the end direction's axis is the
	// more natural bend and is tried first.
	midX := (s.X + e.X) / 2
	midY := (s.Y + e.Y) / 2
	sBendX := candidate{[]Point{{X: midX, Y: s.Y}, {X: midX, Y: e.Y}}}
	sBendY := candidate{[]Point{{X: s.X, Y: midY}, {X: e.X, Y: midY}}}
	sBends := []candidate{sBendX, sBendY}
	if math.Abs(end.Dir.Y) > math.Abs(end.Dir.X) {
		sBends[0], sBends[1] = sBends[1], sBends[0]
	}

	groups := [][]candidate{elbows, sBends}
	for _, strict := range []bool{true, false} {
		for _, group := range groups {
			for _, c := range group {
				if elbowValid(start, end, c.corners, obs, precision, strict) {
					return c.corners, true
				}
			}
		}
	}
	return nil, false
}

// elbowValid checks a corner candidate: no degenerate segments, both
// endpoint directions respected, and no obstacle crossed.
func elbowValid(start, end RoutePoint, corners []Point, obs *ObstacleSet, precision int, strict bool) bool {
	const eps = 1e-9
	pts := make([]Point, 0, len(corners)+2)
	pts = append(pts, start.Pos)
	pts = append(pts, corners...)
	pts = append(pts, end.Pos)

	for i := 0; i+1 < len(pts); i++ {
		if pts[i].Approx(pts[i+1], eps) {
			return false // zero-length segment; elbow degenerates
		}
	}
	if !headingOK(start.Dir, pts[0], pts[1], precision, strict) {
		return false
	}
	if !headingOK(end.Dir, pts[len(pts)-1], pts[len(pts)-2], precision, strict) {
		return false
	}
	for i := 0; i+1 < len(pts); i++ {
		if segBlocked(obs, pts[i], pts[i+1]) {
			return false
		}
	}
	return true
}

// headingOK reports whether a segment leaving from toward next is
// consistent with the outward direction dir at from. Undirected points
// accept anything. Strict requires the segment to actually advance along
// dir; relaxed tolerates perpendicular departures but never backward ones.
func headingOK(dir Vec2, from, next Point, precision int, strict bool) bool {
	if dir.IsZero() {
		return true
	}
	d := dotRounded(dir, next.Sub(from).Normalize(), precision)
	if strict {
		return d > 0
	}
	return d >= 0
}

func segBlocked(obs *ObstacleSet, a, b Point) bool {
	return obs != nil && obs.SegmentBlocked(a, b)
}

// inferDirection assigns a synthetic direction to a bare anchor: the axis of
// larger absolute displacement from the previous resolved point, so the
// rectangle between the two is treated consistently as "wide" or "tall".
// A direction already present (a real pin's) is never overwritten.
func inferDirection(anchor RoutePoint, prev Point) RoutePoint {
	if anchor.Directed() {
		return anchor
	}
	return anchor.WithDir(dominantAxis(anchor.Pos.Sub(prev)))
}

// routeFailure wraps a sentinel with the pair of points that could not be
// connected, so the error message names the concrete geometry.
type routeFailure struct {
	err        error
	start, end RoutePoint
}

func (f *routeFailure) Error() string {
	return f.err.Error() + ": " + formatRoutePoint(f.start) + " -> " + formatRoutePoint(f.end)
}

func (f *routeFailure) Unwrap() error { return f.err }
