package cpwroute

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	if got := p.Add(V2(3, -1)); got != Pt(4, 1) {
		t.Errorf("Add = %v, want (4,1)", got)
	}
	if got := Pt(4, 1).Sub(p); got != V2(3, -1) {
		t.Errorf("Sub = %v, want (3,-1)", got)
	}
}

func TestPointDistance(t *testing.T) {
	if got := Pt(0, 0).Distance(Pt(3, 4)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointLerp(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 20)
	tests := []struct {
		t    float64
		want Point
	}{
		{0, a},
		{1, b},
		{0.5, Pt(5, 10)},
	}
	for _, tt := range tests {
		if got := a.Lerp(b, tt.t); !got.Approx(tt.want, 1e-12) {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestPointApprox(t *testing.T) {
	if !Pt(1, 1).Approx(Pt(1+1e-12, 1), 1e-9) {
		t.Error("nearby points not approx equal")
	}
	if Pt(1, 1).Approx(Pt(1.1, 1), 1e-9) {
		t.Error("distant points approx equal")
	}
	if math.IsNaN(Pt(0, 0).Distance(Pt(0, 0))) {
		t.Error("self distance is NaN")
	}
}
