package cpwroute

// SimplifyPath removes coincident and collinear interior points from a
// polyline. It is idempotent and order-preserving; endpoints are always
// kept. The input slice is not modified.
func SimplifyPath(pts []Point) []Point {
	if len(pts) <= 1 {
		// Always non-nil, so callers can compare simplified paths without
		// distinguishing nil from empty.
		return append(make([]Point, 0, len(pts)), pts...)
	}
	const eps = 1e-9

	// First pass: drop consecutive duplicates.
	deduped := make([]Point, 0, len(pts))
	deduped = append(deduped, pts[0])
	for _, p := range pts[1:] {
		if !p.Approx(deduped[len(deduped)-1], eps) {
			deduped = append(deduped, p)
		}
	}
	if len(deduped) <= 2 {
		return deduped
	}

	// Second pass: drop collinear interior points. Comparing against the
	// last kept point (not the raw predecessor) makes a single pass
	// sufficient for runs of collinear vertices.
	out := make([]Point, 0, len(deduped))
	out = append(out, deduped[0])
	for i := 1; i+1 < len(deduped); i++ {
		if collinear(out[len(out)-1], deduped[i], deduped[i+1]) {
			continue
		}
		out = append(out, deduped[i])
	}
	out = append(out, deduped[len(deduped)-1])
	return out
}

// collapseShortEdges removes interior points closer than minEdge to their
// predecessor. Edges shorter than twice the fillet radius cannot carry a
// well-defined fillet, so the meander generator collapses them before
// length adjustment. Endpoints are never removed.
func collapseShortEdges(pts []Point, minEdge float64) []Point {
	if len(pts) <= 2 || minEdge <= 0 {
		return pts
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for i := 1; i+1 < len(pts); i++ {
		if pts[i].Distance(out[len(out)-1]) < minEdge {
			continue
		}
		out = append(out, pts[i])
	}
	out = append(out, pts[len(pts)-1])
	return out
}
