package cpwroute

import (
	"fmt"
	"log/slog"
	"math"
)

// Router builds routes against a pin store and an obstacle snapshot.
// A Router is safe for concurrent use as long as the pin store and the
// obstacle snapshot are not mutated while routes are being built.
type Router struct {
	pins      PinResolver
	obstacles *ObstacleSet
	precision int
	maxIter   int
}

// Option configures a Router during creation.
type Option func(*Router)

// WithObstacles installs the placed-component snapshot consulted when a
// route enables obstacle avoidance.
func WithObstacles(set *ObstacleSet) Option {
	return func(r *Router) { r.obstacles = set }
}

// WithPrecision overrides the decimal precision of direction dot products.
func WithPrecision(digits int) Option {
	return func(r *Router) { r.precision = digits }
}

// WithMaxIterations overrides the pathfinder's iteration cap.
func WithMaxIterations(n int) Option {
	return func(r *Router) { r.maxIter = n }
}

// New creates a Router resolving pins through the given resolver.
func New(pins PinResolver, opts ...Option) *Router {
	r := &Router{
		pins:      pins,
		precision: DefaultPrecision,
		maxIter:   DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// routePhase tracks pipeline progress for diagnostics.
type routePhase int

const (
	phaseEmpty routePhase = iota
	phasePinsResolved
	phaseLeadsBuilt
	phaseSegmentsConnected
	phaseTrimmed
	phaseFinalized
)

func (p routePhase) String() string {
	switch p {
	case phaseEmpty:
		return "empty"
	case phasePinsResolved:
		return "pins-resolved"
	case phaseLeadsBuilt:
		return "leads-built"
	case phaseSegmentsConnected:
		return "segments-connected"
	case phaseTrimmed:
		return "trimmed"
	case phaseFinalized:
		return "finalized"
	}
	return fmt.Sprintf("routePhase(%d)", int(p))
}

// Route is a finished trace: the final polyline plus its length accounting.
// Routes are rebuilt wholesale by Router.Route; there is no incremental
// update path.
type Route struct {
	cfg    RouteConfig
	head   Lead
	tail   Lead
	points []Point
	length float64
}

// Points returns a copy of the final polyline, start pin to end pin.
func (rt *Route) Points() []Point {
	out := make([]Point, len(rt.points))
	copy(out, rt.points)
	return out
}

// Length returns the realized rendered length, fillet-corrected.
func (rt *Route) Length() float64 { return rt.length }

// LengthTarget returns the configured target length (0 when unconstrained).
func (rt *Route) LengthTarget() float64 { return rt.cfg.TotalLength }

// LengthError returns realized minus target length, or 0 when the route has
// no length target.
func (rt *Route) LengthError() float64 {
	if rt.cfg.TotalLength == 0 {
		return 0
	}
	return rt.length - rt.cfg.TotalLength
}

// Width returns the configured trace width.
func (rt *Route) Width() float64 { return rt.cfg.Width }

// Fillet returns the configured fillet radius.
func (rt *Route) Fillet() float64 { return rt.cfg.Fillet }

// Emit hands the finished geometry to a sink under the given layer/chip tag.
func (rt *Route) Emit(sink GeometrySink, tag string) error {
	return sink.EmitPath(rt.Points(), rt.cfg.Width, rt.cfg.Fillet, tag)
}

// Route builds the trace described by cfg. Every invocation rebuilds from
// scratch; configuration errors, unroutable simple segments, and exhausted
// searches are returned as errors, while an unattainable length target only
// degrades the realized length (see Route.LengthError).
func (r *Router) Route(cfg RouteConfig) (*Route, error) {
	phase := phaseEmpty
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// EMPTY -> PINS_RESOLVED
	startPin, err := r.pins.ResolvePin(cfg.Start.Component, cfg.Start.Pin)
	if err != nil {
		return nil, fmt.Errorf("resolving start pin: %w", err)
	}
	endPin, err := r.pins.ResolvePin(cfg.End.Component, cfg.End.Pin)
	if err != nil {
		return nil, fmt.Errorf("resolving end pin: %w", err)
	}
	phase = phasePinsResolved
	logger().Debug("route pipeline", slog.String("phase", phase.String()),
		slog.String("start", cfg.Start.String()), slog.String("end", cfg.End.String()))

	var obs *ObstacleSet
	if cfg.AvoidObstacles {
		obs = r.obstacles.Exclude(startPin.Component, endPin.Component)
	}

	// PINS_RESOLVED -> LEADS_BUILT
	rt := &Route{cfg: cfg}
	buildLead(&rt.head, startPin, cfg.LeadStart)
	buildLead(&rt.tail, endPin, cfg.LeadEnd)
	phase = phaseLeadsBuilt
	logger().Debug("route pipeline", slog.String("phase", phase.String()))

	// Waypoints carry travel headings; anchors get a synthetic heading
	// inferred once from the previous waypoint and never overwrite a pin's.
	wps := make([]RoutePoint, 0, len(cfg.Anchors)+2)
	wps = append(wps, rt.head.Tip())
	for _, a := range cfg.Anchors {
		prev := wps[len(wps)-1].Pos
		wps = append(wps, inferDirection(RoutePoint{Pos: a}, prev))
	}
	wps = append(wps, rt.tail.Tip())

	// LEADS_BUILT -> SEGMENTS_CONNECTED
	nSeg := cfg.segments()
	segs := make([][]Point, nSeg)
	meanders := make(map[int]meanderPath)
	var fixedLen float64 = rt.head.Length() + rt.tail.Length()
	var chordSum float64

	for i := 0; i < nSeg; i++ {
		segStart, segEnd := r.segmentEndpoints(wps, i)
		switch cfg.strategyFor(i) {
		case StrategySimple:
			corners, ok := directCorners(segStart, segEnd, obs, r.precision)
			if !ok {
				return nil, fmt.Errorf("segment %d: %w", i, configRouteError(segStart, segEnd))
			}
			segs[i] = corners
			fixedLen += segSharpLength(segStart.Pos, corners, segEnd.Pos)
		case StrategyPathfinder:
			pts, err := connectAStar(segStart, segEnd, obs, cfg.Step, r.precision, r.maxIter)
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			segs[i] = pts
			fixedLen += segSharpLength(segStart.Pos, pts, segEnd.Pos)
		case StrategyMeander:
			chordSum += segStart.Pos.Distance(segEnd.Pos)
		}
	}

	// Meander segments share the remaining length budget in proportion to
	// their direct chords; the exact residual is fixed after assembly.
	for i := 0; i < nSeg; i++ {
		if cfg.strategyFor(i) != StrategyMeander {
			continue
		}
		segStart, segEnd := r.segmentEndpoints(wps, i)
		chord := segStart.Pos.Distance(segEnd.Pos)
		target := cfg.TotalLength - fixedLen
		if chordSum > 0 {
			target *= chord / chordSum
		}
		m, err := buildMeander(segStart, segEnd, MeanderConfig{
			TargetLength: target,
			Spacing:      cfg.Spacing,
			Asymmetry:    cfg.Asymmetry,
			Fillet:       cfg.Fillet,
			SnapAxis:     cfg.SnapAxis,
			Precision:    r.precision,
		})
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segs[i] = m.pts
		meanders[i] = m
	}
	phase = phaseSegmentsConnected
	logger().Debug("route pipeline", slog.String("phase", phase.String()),
		slog.Int("segments", nSeg))

	// SEGMENTS_CONNECTED -> TRIMMED
	rt.points = assembleRoute(&rt.head, &rt.tail, wps, segs)
	rt.length = TotalLength(rt.points, cfg.Fillet)
	phase = phaseTrimmed

	// Residual pass: the first meander absorbs the exact length error of
	// the assembled, trimmed route.
	if cfg.TotalLength > 0 && len(meanders) > 0 {
		delta := cfg.TotalLength - rt.length
		if math.Abs(delta) > 1e-9 {
			for i := 0; i < nSeg; i++ {
				m, ok := meanders[i]
				if !ok {
					continue
				}
				segs[i] = m.readjust(delta, cfg.Fillet)
				break
			}
			rt.points = assembleRoute(&rt.head, &rt.tail, wps, segs)
			rt.length = TotalLength(rt.points, cfg.Fillet)
		}
	}
	if cfg.TotalLength > 0 && math.Abs(rt.length-cfg.TotalLength) > 1e-6 {
		logger().Warn("route length target missed",
			slog.Float64("target", cfg.TotalLength), slog.Float64("realized", rt.length))
	}

	// TRIMMED -> FINALIZED
	phase = phaseFinalized
	logger().Debug("route pipeline", slog.String("phase", phase.String()),
		slog.Int("points", len(rt.points)), slog.Float64("length", rt.length))
	return rt, nil
}

// segmentEndpoints returns segment i's directed endpoints. Waypoints store
// travel headings; an interior anchor serving as a segment end presents the
// opposite convention (an outward direction, like a pin's), so its heading
// is negated at the use site.
func (r *Router) segmentEndpoints(wps []RoutePoint, i int) (RoutePoint, RoutePoint) {
	segStart := wps[i]
	segEnd := wps[i+1]
	if i+1 < len(wps)-1 {
		segEnd = segEnd.WithDir(segEnd.Dir.Neg())
	}
	return segStart, segEnd
}

// buildLead seeds a lead from its pin and applies the configured straight
// run and jogs.
func buildLead(l *Lead, pin Pin, cfg LeadConfig) {
	l.SeedFromPin(pin)
	if cfg.Length > 0 {
		l.GoStraight(cfg.Length)
	}
	for _, jog := range cfg.Jogs {
		applyJog(l, jog)
	}
}

// applyJog advances a lead by one jog, dispatching named turns to the
// matching lead operation.
func applyJog(l *Lead, j Jog) {
	switch j.Turn {
	case TurnStraight:
		l.GoStraight(j.Length)
	case TurnLeft:
		l.GoLeft(j.Length)
	case TurnRight:
		l.GoRight(j.Length)
	case TurnLeft45:
		l.GoLeft45(j.Length)
	case TurnRight45:
		l.GoRight45(j.Length)
	default:
		l.GoAngle(j.degrees(), j.Length)
	}
}

// segSharpLength returns the sharp-corner length of one connected segment.
func segSharpLength(start Point, mid []Point, end Point) float64 {
	pts := make([]Point, 0, len(mid)+2)
	pts = append(pts, start)
	pts = append(pts, mid...)
	pts = append(pts, end)
	return PathLength(pts)
}

// assembleRoute flattens head, segments, anchors and reversed tail into one
// simplified polyline. Segments that produced no new points contribute
// nothing; coincident and collinear junctions are trimmed.
func assembleRoute(head, tail *Lead, wps []RoutePoint, segs [][]Point) []Point {
	full := head.Points()
	for i, seg := range segs {
		full = append(full, seg...)
		if i < len(segs)-1 {
			full = append(full, wps[i+1].Pos)
		}
	}
	tailPts := tail.Points()
	for j := len(tailPts) - 1; j >= 0; j-- {
		full = append(full, tailPts[j])
	}
	return SimplifyPath(full)
}
