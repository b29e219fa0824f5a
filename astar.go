package cpwroute

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"
)

// DefaultMaxIterations caps the A* search. The original search had no cap
// and a pathological obstacle layout could grind until the frontier was
// exhausted; an explicit cap turns that into a descriptive error.
const DefaultMaxIterations = 50000

// ConnectAStarOrSimple returns an obstacle-free polyline of intermediate
// points from start to end. If a direct 1-2 segment elbow exists it is
// returned immediately; otherwise an A* search over a grid of the given
// step size runs, asking "can I finish directly from here?" at every
// expansion. Returns ErrSearchExhausted (wrapped with the endpoints) if the
// goal is unreachable or the iteration cap is hit.
func ConnectAStarOrSimple(start, end RoutePoint, obs *ObstacleSet, step float64) ([]Point, error) {
	return connectAStar(start, end, obs, step, DefaultPrecision, DefaultMaxIterations)
}

// searchNode is an entry in the A* frontier.
type searchNode struct {
	pos     Point
	heading Vec2    // direction of the move that produced pos
	path    []Point // pos excluded; start included
	length  float64 // cumulative path length
	pri     float64 // length + Manhattan distance to goal
	index   int
}

type searchFrontier []*searchNode

func (f searchFrontier) Len() int { return len(f) }
func (f searchFrontier) Less(i, j int) bool {
	if f[i].pri != f[j].pri {
		return f[i].pri < f[j].pri
	}
	// Tie-break on cumulative length so deeper nodes win and the search
	// stays deterministic.
	return f[i].length > f[j].length
}
func (f searchFrontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}
func (f *searchFrontier) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*f)
	*f = append(*f, n)
}
func (f *searchFrontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*f = old[:n-1]
	return item
}

// visitKey quantizes a coordinate pair for the visited set.
type visitKey struct {
	x, y int64
}

func makeVisitKey(p Point) visitKey {
	const scale = 1e9
	return visitKey{x: int64(math.Round(p.X * scale)), y: int64(math.Round(p.Y * scale))}
}

func connectAStar(start, end RoutePoint, obs *ObstacleSet, step float64, precision, maxIter int) ([]Point, error) {
	if step <= 0 {
		return nil, configErrorf("Step", step, "pathfinder step must be positive")
	}
	goal := end.Pos

	// An end point strictly inside an obstacle can never be reached; fail
	// fast instead of flooding the grid.
	if obs.ContainsStrict(goal) {
		return nil, searchFailure(start, end, "goal lies inside an obstacle")
	}

	frontier := &searchFrontier{}
	heap.Init(frontier)
	heap.Push(frontier, &searchNode{
		pos:     start.Pos,
		heading: start.Dir.Normalize(),
		path:    []Point{},
		pri:     start.Pos.Manhattan(goal),
	})

	visited := make(map[visitKey]bool)
	steps := []Vec2{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	tol := step / 2

	for iter := 0; frontier.Len() > 0; iter++ {
		if iter >= maxIter {
			return nil, searchFailure(start, end, fmt.Sprintf("iteration cap %d reached", maxIter))
		}
		cur := heap.Pop(frontier).(*searchNode)
		key := makeVisitKey(cur.pos)
		if visited[key] {
			continue
		}
		visited[key] = true

		// Termination: close enough to the goal to count as arrived, as long
		// as the squared-off closing segments are themselves clear.
		if cur.pos.Distance(goal) < tol {
			if pts, ok := finishSearch(cur, goal, obs); ok {
				logger().Debug("pathfinder reached goal", slog.Int("iterations", iter))
				return pts, nil
			}
		}

		// Short circuit: if a direct elbow to the goal exists from here, the
		// search is over. Without this, shortest-length A* is prohibitively
		// slow at fine step sizes.
		here := RoutePoint{Pos: cur.pos, Dir: cur.heading}
		if corners, ok := directCorners(here, end, obs, precision); ok {
			logger().Debug("pathfinder short-circuit", slog.Int("iterations", iter))
			pts := append(append([]Point{}, cur.path...), cur.pos)
			pts = append(pts, corners...)
			return pts[1:], nil // drop the start position; callers re-add it
		}

		for _, d := range steps {
			// Never step backward relative to the current heading.
			if !cur.heading.IsZero() && dotRounded(d, cur.heading, precision) < 0 {
				continue
			}
			next := cur.pos.Add(d.Mul(step))
			if visited[makeVisitKey(next)] {
				continue
			}
			if segBlocked(obs, cur.pos, next) {
				continue
			}
			length := cur.length + step
			heap.Push(frontier, &searchNode{
				pos:     next,
				heading: d,
				path:    append(append([]Point{}, cur.path...), cur.pos),
				length:  length,
				pri:     length + next.Manhattan(goal),
			})
		}
	}
	return nil, searchFailure(start, end, "frontier exhausted")
}

// finishSearch converts a goal-adjacent node into the list of intermediate
// points, squaring off the final approach so every segment stays
// axis-aligned. Reports false when a closing segment would clip an
// obstacle; the node then cannot end the search.
func finishSearch(n *searchNode, goal Point, obs *ObstacleSet) ([]Point, bool) {
	pts := append(append([]Point{}, n.path...), n.pos)
	last := pts[len(pts)-1]
	if axisAligned(last, goal) {
		if segBlocked(obs, last, goal) {
			return nil, false
		}
		return pts[1:], true
	}
	corner := Point{X: last.X, Y: goal.Y}
	if segBlocked(obs, last, corner) || segBlocked(obs, corner, goal) {
		return nil, false
	}
	pts = append(pts, corner)
	return pts[1:], true
}

func searchFailure(start, end RoutePoint, reason string) error {
	return fmt.Errorf("%w: %s -> %s: %s",
		ErrSearchExhausted, formatRoutePoint(start), formatRoutePoint(end), reason)
}
