package cpwroute

import (
	"errors"
	"reflect"
	"testing"
)

func TestPinStoreResolve(t *testing.T) {
	store := NewPinStore()
	store.Add(Pin{Component: "q1", Name: "out", Pos: Pt(1, 2), Dir: V2(0, 3)})

	p, err := store.ResolvePin("q1", "out")
	if err != nil {
		t.Fatalf("ResolvePin: %v", err)
	}
	if p.Dir != V2(0, 1) {
		t.Errorf("direction not normalized on Add: %v", p.Dir)
	}

	_, err = store.ResolvePin("q1", "missing")
	if !errors.Is(err, ErrUnknownPin) {
		t.Fatalf("err = %v, want ErrUnknownPin", err)
	}
}

func TestPinStoreReplace(t *testing.T) {
	store := NewPinStore()
	store.Add(Pin{Component: "q1", Name: "out", Pos: Pt(0, 0)})
	store.Add(Pin{Component: "q1", Name: "out", Pos: Pt(5, 5)})
	p, err := store.ResolvePin("q1", "out")
	if err != nil {
		t.Fatalf("ResolvePin: %v", err)
	}
	if p.Pos != Pt(5, 5) {
		t.Errorf("pos = %v, want replacement (5,5)", p.Pos)
	}
}

func TestPinStoreComponents(t *testing.T) {
	store := NewPinStore()
	store.Add(Pin{Component: "q2", Name: "a"})
	store.Add(Pin{Component: "q1", Name: "a"})
	store.Add(Pin{Component: "q1", Name: "b"})
	want := []string{"q1", "q2"}
	if got := store.Components(); !reflect.DeepEqual(got, want) {
		t.Errorf("Components = %v, want %v", got, want)
	}
}
