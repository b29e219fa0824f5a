package cpwroute

import (
	"errors"
	"reflect"
	"testing"
)

func TestConnectSimpleAligned(t *testing.T) {
	// Facing endpoints on a shared axis connect with zero corners.
	start := RoutePoint{Pos: Pt(0, 0), Dir: V2(1, 0)}
	end := RoutePoint{Pos: Pt(5, 0), Dir: V2(-1, 0)}
	got, err := ConnectSimple(start, end, nil)
	if err != nil {
		t.Fatalf("ConnectSimple: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("corners = %v, want none", got)
	}
	full := []Point{start.Pos}
	full = append(full, got...)
	full = append(full, end.Pos)
	if l := PathLength(full); l != 5 {
		t.Errorf("length = %v, want 5", l)
	}
}

func TestConnectSimpleCorners(t *testing.T) {
	tests := []struct {
		name       string
		start, end RoutePoint
		want       []Point
	}{
		{
			// The end direction points away from the start's axis, so the
			// only arrival consistent with it rounds the far corner.
			"perpendicular arrival",
			RoutePoint{Pos: Pt(0, 0), Dir: V2(1, 0)},
			RoutePoint{Pos: Pt(3, 4), Dir: V2(0, 1)},
			[]Point{Pt(0, 4)},
		},
		{
			// Both headings line up with the natural corner exactly.
			"perfect corner",
			RoutePoint{Pos: Pt(0, 0), Dir: V2(1, 0)},
			RoutePoint{Pos: Pt(3, 4), Dir: V2(0, -1)},
			[]Point{Pt(3, 0)},
		},
		{
			// Facing endpoints on parallel tracks need an S-bend.
			"s-bend",
			RoutePoint{Pos: Pt(0, 0), Dir: V2(1, 0)},
			RoutePoint{Pos: Pt(6, 3), Dir: V2(-1, 0)},
			[]Point{Pt(3, 0), Pt(3, 3)},
		},
		{
			"undirected end takes nearest corner",
			RoutePoint{Pos: Pt(0, 0), Dir: V2(1, 0)},
			RoutePoint{Pos: Pt(3, 4)},
			[]Point{Pt(3, 0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConnectSimple(tt.start, tt.end, nil)
			if err != nil {
				t.Fatalf("ConnectSimple: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("corners = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConnectSimpleNoRoute(t *testing.T) {
	// Both points face away from each other along the same axis: the direct
	// segment leaves the start backward and every elbow degenerates.
	start := RoutePoint{Pos: Pt(0, 0), Dir: V2(-1, 0)}
	end := RoutePoint{Pos: Pt(5, 0), Dir: V2(1, 0)}
	_, err := ConnectSimple(start, end, nil)
	if !errors.Is(err, ErrNoDirectRoute) {
		t.Fatalf("err = %v, want ErrNoDirectRoute", err)
	}
}

func TestConnectSimpleCoincident(t *testing.T) {
	p := RoutePoint{Pos: Pt(2, 2), Dir: V2(1, 0)}
	got, err := ConnectSimple(p, RoutePoint{Pos: Pt(2, 2)}, nil)
	if err != nil {
		t.Fatalf("ConnectSimple: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("corners = %v, want none", got)
	}
}

func TestConnectSimpleAvoidsObstacle(t *testing.T) {
	// The preferred corner at (4,0) is swallowed by an obstacle; the S-bend
	// through x=2 is the first surviving candidate.
	start := RoutePoint{Pos: Pt(0, 0), Dir: V2(1, 0)}
	end := RoutePoint{Pos: Pt(4, 3)}
	obs := NewObstacleSet(RectObstacle{Name: "block", Box: NewRect(3.5, -0.5, 4.5, 0.5)})

	got, err := ConnectSimple(start, end, obs)
	if err != nil {
		t.Fatalf("ConnectSimple: %v", err)
	}
	want := []Point{Pt(2, 0), Pt(2, 3)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("corners = %v, want %v", got, want)
	}
	full := append([]Point{start.Pos}, got...)
	full = append(full, end.Pos)
	if obs.PathBlocked(full) {
		t.Error("returned path crosses the obstacle")
	}
}

func TestHeadingOK(t *testing.T) {
	tests := []struct {
		name       string
		dir        Vec2
		from, next Point
		strict     bool
		want       bool
	}{
		{"forward strict", V2(1, 0), Pt(0, 0), Pt(5, 0), true, true},
		{"perpendicular strict", V2(1, 0), Pt(0, 0), Pt(0, 5), true, false},
		{"perpendicular relaxed", V2(1, 0), Pt(0, 0), Pt(0, 5), false, true},
		{"backward relaxed", V2(1, 0), Pt(0, 0), Pt(-5, 0), false, false},
		{"undirected", Vec2{}, Pt(0, 0), Pt(-5, 0), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := headingOK(tt.dir, tt.from, tt.next, DefaultPrecision, tt.strict)
			if got != tt.want {
				t.Errorf("headingOK = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInferDirection(t *testing.T) {
	anchor := RoutePoint{Pos: Pt(5, 2)}
	got := inferDirection(anchor, Pt(0, 0))
	if got.Dir != V2(1, 0) {
		t.Errorf("inferred dir = %v, want (1,0)", got.Dir)
	}
	// A directed point keeps its direction.
	pinned := RoutePoint{Pos: Pt(5, 2), Dir: V2(0, -1)}
	if got := inferDirection(pinned, Pt(0, 0)); got.Dir != V2(0, -1) {
		t.Errorf("directed anchor overwritten: %v", got.Dir)
	}
}
