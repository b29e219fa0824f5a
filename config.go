package cpwroute

import (
	"fmt"
	"strconv"
	"strings"
)

// Strategy selects how one route segment is connected.
type Strategy int

const (
	// StrategySimple uses a 0-, 1- or 2-corner axis-aligned elbow and fails
	// when none exists.
	StrategySimple Strategy = iota
	// StrategyPathfinder falls back to A* grid search around obstacles when
	// no direct elbow exists.
	StrategyPathfinder
	// StrategyMeander synthesizes a serpentine hitting a target length.
	StrategyMeander
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategySimple:
		return "simple"
	case StrategyPathfinder:
		return "pathfinder"
	case StrategyMeander:
		return "meander"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy converts a strategy tag to a Strategy.
func ParseStrategy(tag string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "simple":
		return StrategySimple, nil
	case "pathfinder":
		return StrategyPathfinder, nil
	case "meander":
		return StrategyMeander, nil
	}
	return 0, configErrorf("Strategy", tag, "want simple, pathfinder or meander")
}

// Turn names a jog rotation in a lead extension.
type Turn int

const (
	// TurnStraight keeps the heading.
	TurnStraight Turn = iota
	// TurnLeft rotates the heading 90 degrees counter-clockwise.
	TurnLeft
	// TurnRight rotates the heading 90 degrees clockwise.
	TurnRight
	// TurnLeft45 rotates the heading 45 degrees counter-clockwise.
	TurnLeft45
	// TurnRight45 rotates the heading 45 degrees clockwise.
	TurnRight45
	// TurnAngle rotates the heading by Jog.Angle degrees.
	TurnAngle
)

// turnDegrees maps the named turns to their rotation.
var turnDegrees = map[Turn]float64{
	TurnStraight: 0,
	TurnLeft:     90,
	TurnRight:    -90,
	TurnLeft45:   45,
	TurnRight45:  -45,
}

// ParseTurn converts a textual jog direction ("S", "L", "R", "L45", "R45",
// or a number of degrees) into a Jog rotation.
func ParseTurn(tag string) (Turn, float64, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "S", "STRAIGHT":
		return TurnStraight, 0, nil
	case "L", "LEFT":
		return TurnLeft, 90, nil
	case "R", "RIGHT":
		return TurnRight, -90, nil
	case "L45":
		return TurnLeft45, 45, nil
	case "R45":
		return TurnRight45, -45, nil
	}
	deg, err := strconv.ParseFloat(strings.TrimSpace(tag), 64)
	if err != nil {
		return 0, 0, configErrorf("Jog.Turn", tag, "want S, L, R, L45, R45 or degrees")
	}
	return TurnAngle, deg, nil
}

// Jog is one turn-then-run instruction in a lead extension.
type Jog struct {
	Turn   Turn
	Angle  float64 // degrees, used only with TurnAngle
	Length float64
}

// degrees returns the rotation this jog applies.
func (j Jog) degrees() float64 {
	if j.Turn == TurnAngle {
		return j.Angle
	}
	return turnDegrees[j.Turn]
}

// LeadConfig describes a lead-in or lead-out: an optional straight run in
// the pin's outward direction followed by optional jogs.
type LeadConfig struct {
	Length float64
	Jogs   []Jog
}

// RouteConfig is the full caller-facing configuration of one route. It is
// validated once at Route() time; unrecognized combinations are reported
// with the offending field rather than parsed ad hoc downstream.
type RouteConfig struct {
	// Start and End name the pins to connect.
	Start, End PinRef

	// Anchors are ordered intermediate waypoints the route must pass
	// through; read-only once routing begins.
	Anchors []Point

	// Strategies selects the connector per segment. Empty means simple
	// everywhere; a single entry applies to every segment; otherwise the
	// length must equal len(Anchors)+1.
	Strategies []Strategy

	// Fillet is the corner rounding radius used for length accounting and
	// fabrication-validity constraints.
	Fillet float64

	// Width is the trace width handed to the geometry sink.
	Width float64

	// TotalLength is the target rendered length of the whole route
	// (0 = unconstrained). Meander segments absorb the excess.
	TotalLength float64

	// Spacing and Asymmetry parametrize meander segments.
	Spacing   float64
	Asymmetry float64

	// SnapAxis snaps meander travel axes to the dominant x/y axis.
	SnapAxis bool

	// AvoidObstacles enables collision checks against the router's obstacle
	// snapshot (minus the start/end components).
	AvoidObstacles bool

	// Step is the pathfinder grid step size.
	Step float64

	// LeadStart and LeadEnd extend the pins before routing begins.
	LeadStart, LeadEnd LeadConfig
}

// segments returns the number of waypoint-to-waypoint segments.
func (c *RouteConfig) segments() int {
	return len(c.Anchors) + 1
}

// strategyFor returns the strategy of segment i after validation.
func (c *RouteConfig) strategyFor(i int) Strategy {
	switch len(c.Strategies) {
	case 0:
		return StrategySimple
	case 1:
		return c.Strategies[0]
	default:
		return c.Strategies[i]
	}
}

// usesStrategy reports whether any segment uses the given strategy.
func (c *RouteConfig) usesStrategy(s Strategy) bool {
	for i := 0; i < c.segments(); i++ {
		if c.strategyFor(i) == s {
			return true
		}
	}
	return false
}

// validate checks the configuration once, up front.
func (c *RouteConfig) validate() error {
	if c.Start.Component == "" || c.Start.Pin == "" {
		return configErrorf("Start", c.Start, "start pin reference is incomplete")
	}
	if c.End.Component == "" || c.End.Pin == "" {
		return configErrorf("End", c.End, "end pin reference is incomplete")
	}
	if n := len(c.Strategies); n > 1 && n != c.segments() {
		return configErrorf("Strategies", n, "want 0, 1 or %d entries for %d segments",
			c.segments(), c.segments())
	}
	for i := 0; i < c.segments(); i++ {
		s := c.strategyFor(i)
		if s < StrategySimple || s > StrategyMeander {
			return configErrorf("Strategies", s, "unknown strategy for segment %d", i)
		}
	}
	if c.Fillet < 0 {
		return configErrorf("Fillet", c.Fillet, "fillet must not be negative")
	}
	if c.Width < 0 {
		return configErrorf("Width", c.Width, "trace width must not be negative")
	}
	if c.usesStrategy(StrategyPathfinder) && c.Step <= 0 {
		return configErrorf("Step", c.Step, "pathfinder needs a positive grid step")
	}
	if c.usesStrategy(StrategyMeander) {
		if c.Spacing <= 0 {
			return configErrorf("Spacing", c.Spacing, "meander needs a positive spacing")
		}
		if c.TotalLength <= 0 {
			return configErrorf("TotalLength", c.TotalLength, "meander needs a positive length target")
		}
	}
	for _, lead := range []struct {
		name string
		cfg  LeadConfig
	}{{"LeadStart", c.LeadStart}, {"LeadEnd", c.LeadEnd}} {
		if lead.cfg.Length < 0 {
			return configErrorf(lead.name+".Length", lead.cfg.Length, "lead length must not be negative")
		}
		for i, jog := range lead.cfg.Jogs {
			if jog.Length <= 0 {
				return configErrorf(fmt.Sprintf("%s.Jogs[%d].Length", lead.name, i),
					jog.Length, "jog run length must be positive")
			}
			if jog.Turn < TurnStraight || jog.Turn > TurnAngle {
				return configErrorf(fmt.Sprintf("%s.Jogs[%d].Turn", lead.name, i),
					jog.Turn, "unknown turn")
			}
		}
	}
	return nil
}
