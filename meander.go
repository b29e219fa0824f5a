package cpwroute

import (
	"log/slog"
	"math"
)

// MeanderConfig parametrizes the serpentine generator.
type MeanderConfig struct {
	// TargetLength is the rendered length (fillet-corrected) the finished
	// serpentine should have, including its start/end stubs.
	TargetLength float64
	// Spacing is the forward distance between successive U-turns.
	Spacing float64
	// Asymmetry laterally offsets the serpentine's center line from the
	// straight start-end axis.
	Asymmetry float64
	// Fillet is the corner rounding radius; edges shorter than 2*Fillet are
	// collapsed because they cannot carry a well-defined fillet.
	Fillet float64
	// SnapAxis snaps the travel axis to the dominant x/y axis.
	SnapAxis bool
	// Precision is the dot-product rounding used for direction tests;
	// 0 means DefaultPrecision.
	Precision int
}

// ConnectMeandered returns the intermediate points of a symmetric serpentine
// from start to end whose rendered length (after fillet correction) equals
// cfg.TargetLength. If fewer than two U-turn columns fit, or the target is
// below the direct length, the unmeandered connection is returned and the
// shortfall is logged rather than raised: a slightly short trace is still a
// usable design artifact.
func ConnectMeandered(start, end RoutePoint, cfg MeanderConfig) ([]Point, error) {
	m, err := buildMeander(start, end, cfg)
	if err != nil {
		return nil, err
	}
	return m.pts, nil
}

// meanderPath carries a generated serpentine plus the frame data the
// orchestrator needs to re-run the length adjustment once the whole route
// is assembled.
type meanderPath struct {
	pts      []Point
	origin   Point
	sideways Vec2
	asym     float64
}

func buildMeander(start, end RoutePoint, cfg MeanderConfig) (meanderPath, error) {
	if cfg.Spacing <= 0 {
		return meanderPath{}, configErrorf("Spacing", cfg.Spacing, "meander spacing must be positive")
	}
	precision := cfg.Precision
	if precision == 0 {
		precision = DefaultPrecision
	}

	span := end.Pos.Sub(start.Pos)
	if span.IsZero() {
		return meanderPath{}, configErrorf("End", end.Pos, "meander endpoints coincide")
	}
	forward := span.Normalize()
	if cfg.SnapAxis {
		forward = dominantAxis(forward)
	}
	sideways := forward.Perp()

	dist := span.Dot(forward)    // forward extent
	latEnd := span.Dot(sideways) // lateral residue of the end point
	if dist <= 0 {
		return meanderPath{}, configErrorf("End", end.Pos, "end point lies behind the meander axis")
	}

	// U-turn columns sit strictly inside (0, dist) at multiples of Spacing.
	cols := int(dist / cfg.Spacing)
	if float64(cols)*cfg.Spacing >= dist-1e-9 {
		cols--
	}

	// First turn side: whichever endpoint direction has a non-zero sideways
	// component decides; ties fall to the positive normal. When both sides
	// are pinned and disagree with the parity the column count implies,
	// dropping one column flips the parity.
	startSide := dotRounded(start.Dir, sideways, precision)
	endSide := dotRounded(end.Dir, sideways, precision)
	sigma := 1.0
	switch {
	case startSide != 0:
		sigma = math.Copysign(1, startSide)
		if endSide != 0 && math.Copysign(1, endSide) != sigma*colParity(cols) {
			cols--
		}
	case endSide != 0:
		sigma = math.Copysign(1, endSide) * colParity(cols)
	}

	if cols < 2 {
		logger().Warn("meander does not fit, returning direct connection",
			slog.Float64("distance", dist), slog.Float64("spacing", cfg.Spacing))
		return meanderPath{
			pts:      directFallback(start, end, precision),
			origin:   start.Pos,
			sideways: sideways,
		}, nil
	}

	// First-order amplitude: the serpentine adds two amplitudes per interior
	// period over the direct length; asymmetry contributes only when the
	// first and last connectors sit on the same side.
	sharpDirect := dist + math.Abs(latEnd)
	asym := cfg.Asymmetry
	asymTerm := asym * (sigma + sigma*colParity(cols))
	amp := (cfg.TargetLength - sharpDirect - asymTerm) / (2 * float64(cols-1))
	if amp <= 0 {
		logger().Warn("meander target below direct length, returning direct connection",
			slog.Float64("target", cfg.TargetLength), slog.Float64("direct", sharpDirect))
		return meanderPath{
			pts:      directFallback(start, end, precision),
			origin:   start.Pos,
			sideways: sideways,
		}, nil
	}
	// Keep the first and last turns pinned to the endpoint side rather than
	// letting a large asymmetry overshoot the amplitude.
	if math.Abs(asym) > amp {
		asym = math.Copysign(amp, asym)
	}

	pts := buildSerpentine(start.Pos, forward, sideways, cfg.Spacing, amp, asym, sigma, cols, latEnd)

	full := make([]Point, 0, len(pts)+2)
	full = append(full, start.Pos)
	full = append(full, pts...)
	full = append(full, end.Pos)
	full = collapseShortEdges(full, 2*cfg.Fillet)
	pts = full[1 : len(full)-1]

	// Second pass: the exact realized length is known only now; spread the
	// residual across the extreme connectors.
	realized := TotalLength(full, cfg.Fillet)
	pts = adjustLength(cfg.TargetLength-realized, pts, start.Pos, sideways, asym, cfg.Fillet)
	return meanderPath{pts: pts, origin: start.Pos, sideways: sideways, asym: asym}, nil
}

// readjust re-runs the residual distribution against the assembled route's
// realized length.
func (m meanderPath) readjust(delta float64, fillet float64) []Point {
	return adjustLength(delta, m.pts, m.origin, m.sideways, m.asym, fillet)
}

// colParity returns the sign relating the first connector's side to the
// last one's: with n columns there are n-1 alternating connectors.
func colParity(cols int) float64 {
	if cols%2 == 0 {
		return 1
	}
	return -1
}

// directFallback returns the best unmeandered connection: an elbow when one
// exists, a bare segment otherwise.
func directFallback(start, end RoutePoint, precision int) []Point {
	if corners, ok := directCorners(start, end, nil, precision); ok {
		return corners
	}
	return nil
}

// buildSerpentine emits the meander polyline between the entry and exit
// stubs. Each column carries one lateral run; the forward connectors between
// columns alternate between the two extremes.
func buildSerpentine(origin Point, forward, sideways Vec2, spacing, amp, asym, sigma float64, cols int, latEnd float64) []Point {
	at := func(u, w float64) Point {
		return origin.Add(forward.Mul(u)).Add(sideways.Mul(w))
	}
	pts := make([]Point, 0, 2*cols)
	lat := 0.0
	for i := 1; i <= cols; i++ {
		u := float64(i) * spacing
		var next float64
		if i < cols {
			next = sigma*amp + asym
			sigma = -sigma
		} else {
			next = latEnd // final run returns to the exit stub's lateral
		}
		pts = append(pts, at(u, lat), at(u, next))
		lat = next
	}
	return pts
}

// adjustLength nudges the serpentine's extreme connectors sideways so the
// rendered length changes by exactly delta. A connector moved outward by d
// lengthens its two neighboring lateral runs by d apiece, so the residual
// divides evenly: d = delta / (2 * adjustable). Boundary connectors whose
// short first/last runs would drop below 2*fillet are zeroed out and the
// residual is re-divided among the rest. The relationship between shift and
// length is linear, which makes the adjustment exact rather than iterative.
func adjustLength(delta float64, pts []Point, origin Point, sideways Vec2, asym, fillet float64) []Point {
	if delta == 0 || len(pts) < 4 {
		return pts
	}
	lat := func(p Point) float64 {
		return p.Sub(origin).Dot(sideways)
	}

	// A connector is a forward segment whose endpoints share an extreme
	// lateral offset (relative to the asymmetry midline).
	type connector struct {
		i    int     // index of the first endpoint in pts
		sign float64 // outward direction along sideways
	}
	var conns []connector
	for i := 0; i+1 < len(pts); i++ {
		wa, wb := lat(pts[i]), lat(pts[i+1])
		if math.Abs(wa-wb) > 1e-9 {
			continue // lateral run, not a connector
		}
		if math.Abs(wa-asym) < 1e-9 {
			continue // a connector on the midline carries no amplitude
		}
		conns = append(conns, connector{i: i, sign: math.Copysign(1, wa-asym)})
	}
	if len(conns) == 0 {
		return pts
	}

	adjustable := conns
	d := delta / (2 * float64(len(adjustable)))
	if d < 0 {
		// Shrinking: drop boundary connectors whose stub-adjacent runs would
		// fall under the fillet minimum, then re-divide.
		var kept []connector
		for k, c := range adjustable {
			if k == 0 || k == len(adjustable)-1 {
				run := math.Abs(lat(pts[c.i]))
				if k == len(adjustable)-1 {
					run = math.Abs(lat(pts[c.i]) - lat(pts[len(pts)-1]))
				}
				if run-math.Abs(d) < 2*fillet {
					continue
				}
			}
			kept = append(kept, c)
		}
		if len(kept) > 0 && len(kept) != len(adjustable) {
			adjustable = kept
			d = delta / (2 * float64(len(adjustable)))
		}
	}

	out := append([]Point(nil), pts...)
	for _, c := range adjustable {
		shift := sideways.Mul(c.sign * d)
		out[c.i] = out[c.i].Add(shift)
		out[c.i+1] = out[c.i+1].Add(shift)
	}
	return out
}
