package cpwroute

import "math"

// FilletCorrection returns the path length lost at one filleted right-angle
// corner: the two straight stubs of length fillet are replaced by a quarter
// arc, so the vertex loses 2*fillet - (pi/2)*fillet.
func FilletCorrection(fillet float64) float64 {
	return (2 - math.Pi/2) * fillet
}

// PathLength returns the sharp-corner polyline length.
func PathLength(pts []Point) float64 {
	var total float64
	for i := 0; i+1 < len(pts); i++ {
		total += pts[i].Distance(pts[i+1])
	}
	return total
}

// CountBends returns the number of interior vertices that are actual
// corners (non-collinear with their neighbors).
func CountBends(pts []Point) int {
	bends := 0
	for i := 1; i+1 < len(pts); i++ {
		if !collinear(pts[i-1], pts[i], pts[i+1]) {
			bends++
		}
	}
	return bends
}

// TotalLength returns the rendered length of the polyline once every
// interior corner is filleted: the straight-segment sum minus the fillet
// correction per bend. Planning and verification both use this function so
// the two can never drift apart.
func TotalLength(pts []Point, fillet float64) float64 {
	return PathLength(pts) - float64(CountBends(pts))*FilletCorrection(fillet)
}

// pathSelfIntersects reports whether any two non-adjacent segments of the
// polyline intersect.
func pathSelfIntersects(pts []Point) bool {
	for i := 0; i+1 < len(pts); i++ {
		for j := i + 2; j+1 < len(pts); j++ {
			if i == 0 && j+2 == len(pts) && pts[0] == pts[len(pts)-1] {
				continue // closed path: first and last segments share a point
			}
			if SegmentsIntersect(pts[i], pts[i+1], pts[j], pts[j+1]) {
				return true
			}
		}
	}
	return false
}
