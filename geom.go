package cpwroute

import "math"

// DefaultPrecision is the number of decimal digits dot products are rounded
// to before their sign is inspected. The connector decision tree branches on
// the sign and zero-ness of dot products, so the comparison must be robust
// to floating-point noise.
const DefaultPrecision = 10

// roundTo rounds x to the given number of decimal digits.
func roundTo(x float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(x*scale) / scale
}

// dotRounded returns the dot product of v and w rounded to the given number
// of decimal digits. Precision is threaded explicitly rather than kept in
// package state so that two routers with different settings never interfere.
func dotRounded(v, w Vec2, digits int) float64 {
	return roundTo(v.Dot(w), digits)
}

// orient returns the orientation of the ordered triple (a, b, c):
// +1 counter-clockwise, -1 clockwise, 0 collinear.
func orient(a, b, c Point) int {
	cross := b.Sub(a).Cross(c.Sub(a))
	const eps = 1e-12
	switch {
	case cross > eps:
		return 1
	case cross < -eps:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether point p, known to be collinear with segment ab,
// lies within ab's bounding box.
func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// SegmentsIntersect reports whether segment ab intersects segment cd.
// Collinear overlap counts as intersecting; touching at a single shared
// endpoint also counts. The obstacle checker relies on both conventions.
func SegmentsIntersect(a, b, c, d Point) bool {
	o1 := orient(a, b, c)
	o2 := orient(a, b, d)
	o3 := orient(c, d, a)
	o4 := orient(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear cases: any endpoint of one segment lying on the other.
	if o1 == 0 && onSegment(a, b, c) {
		return true
	}
	if o2 == 0 && onSegment(a, b, d) {
		return true
	}
	if o3 == 0 && onSegment(c, d, a) {
		return true
	}
	if o4 == 0 && onSegment(c, d, b) {
		return true
	}
	return false
}

// collinear reports whether three consecutive points lie on one line,
// within a small cross-product tolerance. Used by trim to drop redundant
// interior vertices.
func collinear(a, b, c Point) bool {
	return math.Abs(b.Sub(a).Cross(c.Sub(b))) < 1e-9
}

// axisAligned reports whether the segment ab is horizontal or vertical
// within tolerance.
func axisAligned(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 || math.Abs(a.Y-b.Y) < 1e-9
}

// dominantAxis snaps v to the unit vector of its larger-magnitude component.
// Ties favor the x axis. The zero vector snaps to zero.
func dominantAxis(v Vec2) Vec2 {
	if v.IsZero() {
		return Vec2{}
	}
	if math.Abs(v.X) >= math.Abs(v.Y) {
		return Vec2{X: math.Copysign(1, v.X)}
	}
	return Vec2{Y: math.Copysign(1, v.Y)}
}
