package cpwroute

import (
	"reflect"
	"testing"
)

func TestSimplifyPath(t *testing.T) {
	tests := []struct {
		name string
		in   []Point
		want []Point
	}{
		{
			"empty",
			nil,
			[]Point{},
		},
		{
			"single",
			[]Point{Pt(1, 1)},
			[]Point{Pt(1, 1)},
		},
		{
			"duplicates",
			[]Point{Pt(0, 0), Pt(0, 0), Pt(1, 0), Pt(1, 0)},
			[]Point{Pt(0, 0), Pt(1, 0)},
		},
		{
			"collinear run",
			[]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(3, 4)},
			[]Point{Pt(0, 0), Pt(3, 0), Pt(3, 4)},
		},
		{
			"corner kept",
			[]Point{Pt(0, 0), Pt(2, 0), Pt(2, 2)},
			[]Point{Pt(0, 0), Pt(2, 0), Pt(2, 2)},
		},
		{
			"duplicate then collinear",
			[]Point{Pt(0, 0), Pt(1, 0), Pt(1, 0), Pt(2, 0)},
			[]Point{Pt(0, 0), Pt(2, 0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimplifyPath(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SimplifyPath(%v) = %v, want %v", tt.in, got, tt.want)
			}
			// Idempotence: simplifying again must be a no-op.
			again := SimplifyPath(got)
			if !reflect.DeepEqual(again, got) {
				t.Errorf("SimplifyPath not idempotent: %v -> %v", got, again)
			}
		})
	}
}

func TestSimplifyPathDoesNotModifyInput(t *testing.T) {
	in := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}
	orig := append([]Point(nil), in...)
	SimplifyPath(in)
	if !reflect.DeepEqual(in, orig) {
		t.Errorf("input modified: %v", in)
	}
}

func TestCollapseShortEdges(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(0.1, 0), Pt(5, 0), Pt(5, 5)}
	got := collapseShortEdges(pts, 1)
	want := []Point{Pt(0, 0), Pt(5, 0), Pt(5, 5)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("collapseShortEdges = %v, want %v", got, want)
	}
	// Endpoints survive even when the final edge is short.
	pts = []Point{Pt(0, 0), Pt(5, 0), Pt(5, 0.1)}
	got = collapseShortEdges(pts, 1)
	if got[len(got)-1] != Pt(5, 0.1) {
		t.Errorf("endpoint dropped: %v", got)
	}
}
