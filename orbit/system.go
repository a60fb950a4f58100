package orbit

import (
	"errors"
	"fmt"

	"solarsystem/quarkgl"
)

// ErrUnknownParent is returned by Add when the parent id is not registered yet.
var ErrUnknownParent = errors.New("orbit: unknown parent")

// System is an append-only registry of bodies.
//
// A parent must be added before its children, so registration order is always
// a valid update order and the parent relation cannot contain cycles.
type System struct {
	bodies []Body
	byName map[string]BodyID
}

func NewSystem() *System {
	return &System{byName: make(map[string]BodyID)}
}

// Add registers a body with angle 0 and its position already placed relative
// to the parent's current position.
func (s *System) Add(spec BodySpec) (BodyID, error) {
	if spec.Parent != NoParent && !s.valid(spec.Parent) {
		return NoParent, fmt.Errorf("%w: %d (body %q)", ErrUnknownParent, spec.Parent, spec.Name)
	}
	s.bodies = append(s.bodies, Body{spec: spec})
	id := BodyID(len(s.bodies))
	s.at(id).place(s.center(id))
	if spec.Name != "" {
		s.byName[spec.Name] = id
	}
	return id, nil
}

// MustAdd is Add for compiled-in tables; it panics on error.
func (s *System) MustAdd(spec BodySpec) BodyID {
	id, err := s.Add(spec)
	if err != nil {
		panic(err)
	}
	return id
}

func (s *System) Len() int { return len(s.bodies) }

// Body returns the body with the given id, or nil.
func (s *System) Body(id BodyID) *Body {
	if !s.valid(id) {
		return nil
	}
	return s.at(id)
}

// Lookup finds a body by name.
func (s *System) Lookup(name string) (BodyID, bool) {
	id, ok := s.byName[name]
	return id, ok
}

// Each calls fn for every body in registration order.
func (s *System) Each(fn func(id BodyID, b *Body)) {
	for i := range s.bodies {
		fn(BodyID(i+1), &s.bodies[i])
	}
}

// Advance moves every body forward by dt seconds. Parents are always advanced
// before their children, so a child orbits its parent's position of the same
// tick.
func (s *System) Advance(dt float32) {
	for i := range s.bodies {
		s.bodies[i].advance(dt, s.center(BodyID(i+1)))
	}
}

// AdvanceBody moves a single body forward by dt seconds. The parent's position
// is read as it is now: if the parent has not been advanced yet this tick, the
// child lags it by one step.
func (s *System) AdvanceBody(id BodyID, dt float32) {
	if !s.valid(id) {
		return
	}
	s.at(id).advance(dt, s.center(id))
}

func (s *System) center(id BodyID) quarkgl.Vec3 {
	p := s.at(id).spec.Parent
	if p == NoParent {
		return quarkgl.Vec3{}
	}
	return s.at(p).position
}

func (s *System) at(id BodyID) *Body { return &s.bodies[id-1] }

func (s *System) valid(id BodyID) bool {
	return id > 0 && int(id) <= len(s.bodies)
}
