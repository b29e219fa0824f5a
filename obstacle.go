package cpwroute

// Rect is an axis-aligned rectangle given by its min/max corners.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect builds a Rect from two opposite corners in any order.
func NewRect(x1, y1, x2, y2 float64) Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{MinX: x1, MinY: y1, MaxX: x2, MaxY: y2}
}

// Contains reports whether p lies inside or on the boundary of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// ContainsStrict reports whether p lies strictly inside r.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.MinX && p.X < r.MaxX && p.Y > r.MinY && p.Y < r.MaxY
}

// Corners returns the rectangle outline as a counter-clockwise polygon.
func (r Rect) Corners() []Point {
	return []Point{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}
}

// intersectsSegment reports whether segment ab touches the rectangle.
func (r Rect) intersectsSegment(a, b Point) bool {
	if r.Contains(a) || r.Contains(b) {
		return true
	}
	c := r.Corners()
	for i := 0; i < 4; i++ {
		if SegmentsIntersect(a, b, c[i], c[(i+1)%4]) {
			return true
		}
	}
	return false
}

// Obstacle is a placed component the router must not cross. Bounds is the
// cheap test; Contour is the precise outline, consulted only after a bounds
// hit to avoid false-positive collisions.
type Obstacle interface {
	// Component names the placed component, so routes can exclude their own
	// endpoints and errors can identify the blocker.
	Component() string
	// Bounds returns the axis-aligned bounding box.
	Bounds() Rect
	// Contour returns the exact outline polygon (closed implicitly).
	Contour() []Point
}

// RectObstacle is the common rectangular component footprint.
type RectObstacle struct {
	Name string
	Box  Rect
}

// Component implements Obstacle.
func (o RectObstacle) Component() string { return o.Name }

// Bounds implements Obstacle.
func (o RectObstacle) Bounds() Rect { return o.Box }

// Contour implements Obstacle.
func (o RectObstacle) Contour() []Point { return o.Box.Corners() }

// PolyObstacle is a component with a non-rectangular outline.
type PolyObstacle struct {
	Name    string
	Outline []Point
}

// Component implements Obstacle.
func (o PolyObstacle) Component() string { return o.Name }

// Bounds implements Obstacle.
func (o PolyObstacle) Bounds() Rect {
	if len(o.Outline) == 0 {
		return Rect{}
	}
	r := Rect{MinX: o.Outline[0].X, MinY: o.Outline[0].Y, MaxX: o.Outline[0].X, MaxY: o.Outline[0].Y}
	for _, p := range o.Outline[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}
	return r
}

// Contour implements Obstacle.
func (o PolyObstacle) Contour() []Point { return o.Outline }

// ObstacleSet is a read-only snapshot of the placed components a route must
// avoid, minus the excluded components (normally the route's own endpoints).
// The snapshot must not be mutated while a route is being constructed.
type ObstacleSet struct {
	obstacles []Obstacle
	excluded  map[string]bool
}

// NewObstacleSet builds a snapshot over the given obstacles.
func NewObstacleSet(obstacles ...Obstacle) *ObstacleSet {
	return &ObstacleSet{obstacles: obstacles}
}

// Exclude returns a derived set that ignores the named components.
// The underlying snapshot is shared, not copied.
func (s *ObstacleSet) Exclude(components ...string) *ObstacleSet {
	if s == nil {
		return nil
	}
	ex := make(map[string]bool, len(s.excluded)+len(components))
	for name := range s.excluded {
		ex[name] = true
	}
	for _, name := range components {
		ex[name] = true
	}
	return &ObstacleSet{obstacles: s.obstacles, excluded: ex}
}

// SegmentBlocked reports whether segment ab crosses any obstacle.
// The bounding box is checked first; only on a hit is the precise contour
// consulted.
func (s *ObstacleSet) SegmentBlocked(a, b Point) bool {
	if s == nil {
		return false
	}
	for _, o := range s.obstacles {
		if s.excluded[o.Component()] {
			continue
		}
		if !o.Bounds().intersectsSegment(a, b) {
			continue
		}
		if polygonHitsSegment(o.Contour(), a, b) {
			return true
		}
	}
	return false
}

// PathBlocked reports whether any segment of the polyline crosses an
// obstacle.
func (s *ObstacleSet) PathBlocked(pts []Point) bool {
	for i := 0; i+1 < len(pts); i++ {
		if s.SegmentBlocked(pts[i], pts[i+1]) {
			return true
		}
	}
	return false
}

// ContainsStrict reports whether p lies strictly inside any obstacle's
// bounding box. Used to detect unreachable goals before searching.
func (s *ObstacleSet) ContainsStrict(p Point) bool {
	if s == nil {
		return false
	}
	for _, o := range s.obstacles {
		if s.excluded[o.Component()] {
			continue
		}
		if o.Bounds().ContainsStrict(p) && pointInPolygon(o.Contour(), p) {
			return true
		}
	}
	return false
}

// polygonHitsSegment reports whether segment ab crosses or touches the
// polygon outline, or lies inside it.
func polygonHitsSegment(poly []Point, a, b Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if SegmentsIntersect(a, b, poly[i], poly[(i+1)%n]) {
			return true
		}
	}
	// No edge crossing: the segment is entirely inside or entirely outside.
	return pointInPolygon(poly, a.Lerp(b, 0.5))
}

// pointInPolygon is the even-odd ray cast test.
func pointInPolygon(poly []Point, p Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
