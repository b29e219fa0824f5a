package cpwroute

import (
	"errors"
	"reflect"
	"testing"
)

func TestConnectAStarShortCircuit(t *testing.T) {
	// With no obstacles the very first expansion already has a direct elbow,
	// so the pathfinder must return exactly what the simple connector would.
	start := RoutePoint{Pos: Pt(0, 0), Dir: V2(1, 0)}
	end := RoutePoint{Pos: Pt(6, 3), Dir: V2(-1, 0)}

	simple, err := ConnectSimple(start, end, nil)
	if err != nil {
		t.Fatalf("ConnectSimple: %v", err)
	}
	found, err := ConnectAStarOrSimple(start, end, nil, 0.5)
	if err != nil {
		t.Fatalf("ConnectAStarOrSimple: %v", err)
	}
	if !reflect.DeepEqual(found, simple) {
		t.Errorf("pathfinder = %v, simple = %v; want identical", found, simple)
	}
}

func TestConnectAStarDetour(t *testing.T) {
	// An obstacle straddles the straight line between facing pins; the
	// search must route around it.
	start := RoutePoint{Pos: Pt(0, 0), Dir: V2(1, 0)}
	end := RoutePoint{Pos: Pt(6, 0), Dir: V2(-1, 0)}
	obs := NewObstacleSet(RectObstacle{Name: "block", Box: NewRect(2, -1, 4, 1)})

	pts, err := ConnectAStarOrSimple(start, end, obs, 0.5)
	if err != nil {
		t.Fatalf("ConnectAStarOrSimple: %v", err)
	}
	full := append([]Point{start.Pos}, pts...)
	full = append(full, end.Pos)
	full = SimplifyPath(full)

	if obs.PathBlocked(full) {
		t.Fatalf("path %v crosses the obstacle", full)
	}
	for i := 0; i+1 < len(full); i++ {
		if !axisAligned(full[i], full[i+1]) {
			t.Fatalf("segment %v -> %v not axis-aligned", full[i], full[i+1])
		}
	}
	// Detouring over a box of half-height 1 with step 0.5 costs at most
	// 2*1.5 extra on top of the 6-unit straight line.
	if l := PathLength(full); l > 9.0+1e-9 {
		t.Errorf("path length %v, want <= 9 (reasonable detour)", l)
	}
}

func TestConnectAStarBlockedFinish(t *testing.T) {
	// The only grid node within goal tolerance sits at (0.3, 0.3), and its
	// squared-off closing corner would clip the east block. The search must
	// reject that finish and come around underneath instead of returning a
	// path through the obstacle.
	start := RoutePoint{Pos: Pt(-2.7, 0.3), Dir: V2(1, 0)}
	end := RoutePoint{Pos: Pt(0, 0)}
	obs := NewObstacleSet(
		RectObstacle{Name: "east", Box: NewRect(0.25, 0.02, 0.4, 0.28)},
		RectObstacle{Name: "mid", Box: NewRect(-0.1, 0.05, 0.1, 0.25)},
		RectObstacle{Name: "floor", Box: NewRect(-0.5, -0.1, -0.3, 0.01)},
	)

	pts, err := ConnectAStarOrSimple(start, end, obs, 1)
	if err != nil {
		t.Fatalf("ConnectAStarOrSimple: %v", err)
	}
	full := append([]Point{start.Pos}, pts...)
	full = append(full, end.Pos)
	full = SimplifyPath(full)

	if obs.PathBlocked(full) {
		t.Fatalf("path %v crosses an obstacle", full)
	}
	for i := 0; i+1 < len(full); i++ {
		if !axisAligned(full[i], full[i+1]) {
			t.Fatalf("segment %v -> %v not axis-aligned", full[i], full[i+1])
		}
	}
}

func TestConnectAStarDeterministic(t *testing.T) {
	start := RoutePoint{Pos: Pt(0, 0), Dir: V2(1, 0)}
	end := RoutePoint{Pos: Pt(6, 0), Dir: V2(-1, 0)}
	obs := NewObstacleSet(RectObstacle{Name: "block", Box: NewRect(2, -1, 4, 1)})

	first, err := ConnectAStarOrSimple(start, end, obs, 0.5)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := ConnectAStarOrSimple(start, end, obs, 0.5)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs differ:\n%v\n%v", first, second)
	}
}

func TestConnectAStarGoalInsideObstacle(t *testing.T) {
	start := RoutePoint{Pos: Pt(0, 0), Dir: V2(1, 0)}
	end := RoutePoint{Pos: Pt(3, 0)}
	obs := NewObstacleSet(RectObstacle{Name: "block", Box: NewRect(2, -1, 4, 1)})

	_, err := ConnectAStarOrSimple(start, end, obs, 0.5)
	if !errors.Is(err, ErrSearchExhausted) {
		t.Fatalf("err = %v, want ErrSearchExhausted", err)
	}
}

func TestConnectAStarIterationCap(t *testing.T) {
	// The goal sits in a pocket sealed on all four sides but is not itself
	// inside any single obstacle, so only the cap can stop the search.
	start := RoutePoint{Pos: Pt(-10, 0), Dir: V2(1, 0)}
	end := RoutePoint{Pos: Pt(0, 0)}
	obs := NewObstacleSet(
		RectObstacle{Name: "n", Box: NewRect(-2, 1, 2, 2)},
		RectObstacle{Name: "s", Box: NewRect(-2, -2, 2, -1)},
		RectObstacle{Name: "e", Box: NewRect(1, -2, 2, 2)},
		RectObstacle{Name: "w", Box: NewRect(-2, -2, -1, 2)},
	)

	_, err := connectAStar(start, end, obs, 0.5, DefaultPrecision, 500)
	if !errors.Is(err, ErrSearchExhausted) {
		t.Fatalf("err = %v, want ErrSearchExhausted", err)
	}
}

func TestConnectAStarBadStep(t *testing.T) {
	start := RoutePoint{Pos: Pt(0, 0)}
	end := RoutePoint{Pos: Pt(1, 0)}
	_, err := ConnectAStarOrSimple(start, end, nil, 0)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
}
