package cpwroute

import (
	"fmt"
	"sort"
)

// Pin is a named attachment point on a placed component. Dir is the
// outward-facing normal at the pin, pointing away from the parent shape.
type Pin struct {
	Component string
	Name      string
	Pos       Point
	Dir       Vec2
}

// PinRef names a pin on a component.
type PinRef struct {
	Component string
	Pin       string
}

func (r PinRef) String() string {
	return r.Component + "." + r.Pin
}

// PinResolver resolves pin references to positions and directions.
// The surrounding design database implements this; PinStore is a map-backed
// implementation for tests and small programs.
type PinResolver interface {
	ResolvePin(component, pin string) (Pin, error)
}

// PinStore is an in-memory PinResolver.
type PinStore struct {
	pins map[PinRef]Pin
}

// NewPinStore creates an empty pin store.
func NewPinStore() *PinStore {
	return &PinStore{pins: make(map[PinRef]Pin)}
}

// Add registers a pin, normalizing its direction. A later Add with the same
// component and name replaces the earlier pin.
func (s *PinStore) Add(p Pin) {
	p.Dir = p.Dir.Normalize()
	s.pins[PinRef{Component: p.Component, Pin: p.Name}] = p
}

// ResolvePin implements PinResolver.
func (s *PinStore) ResolvePin(component, pin string) (Pin, error) {
	p, ok := s.pins[PinRef{Component: component, Pin: pin}]
	if !ok {
		return Pin{}, fmt.Errorf("%w: %s.%s", ErrUnknownPin, component, pin)
	}
	return p, nil
}

// Components returns the sorted set of component names with registered pins.
func (s *PinStore) Components() []string {
	seen := make(map[string]bool)
	for ref := range s.pins {
		seen[ref.Component] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
