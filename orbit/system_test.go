package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarsystem/quarkgl"
)

const eps = 1e-4

func assertVec(t *testing.T, want, got quarkgl.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func onCircle(center quarkgl.Vec3, r, angle float32) quarkgl.Vec3 {
	a := float64(angle)
	return center.Add(quarkgl.V3(r*float32(math.Cos(a)), r*float32(math.Sin(a)), 0))
}

func TestAddPlacesBody(t *testing.T) {
	s := NewSystem()
	id, err := s.Add(BodySpec{Name: "p", Radius: 1, OrbitRadius: 5, OrbitSpeed: 1})
	require.NoError(t, err)

	b := s.Body(id)
	require.NotNil(t, b)
	assert.Equal(t, float32(0), b.Angle())
	assertVec(t, quarkgl.V3(5, 0, 0), b.Position())
	_, hasParent := b.Parent()
	assert.False(t, hasParent)
}

func TestAddUnknownParent(t *testing.T) {
	s := NewSystem()
	_, err := s.Add(BodySpec{Name: "moon", OrbitRadius: 1, Parent: 7})
	assert.ErrorIs(t, err, ErrUnknownParent)
	assert.Equal(t, 0, s.Len())
	assert.Panics(t, func() { s.MustAdd(BodySpec{Parent: 2}) })
}

func TestAdvanceZeroKeepsPosition(t *testing.T) {
	s := NewSystem()
	id := s.MustAdd(BodySpec{OrbitRadius: 3, OrbitSpeed: 2})
	s.Advance(0.37)
	before := s.Body(id).Position()

	s.Advance(0)
	got := s.Body(id).Position()
	assert.Equal(t, before, got)
	assert.InDelta(t, 3, quarkgl.Len(got), eps)
}

func TestAdvanceAngleIsExactAndUnwrapped(t *testing.T) {
	s := NewSystem()
	id := s.MustAdd(BodySpec{OrbitRadius: 1, OrbitSpeed: 4})
	b := s.Body(id)

	for i := 0; i < 10; i++ {
		old := b.Angle()
		s.Advance(0.5)
		assert.Equal(t, old+4*float32(0.5), b.Angle())
	}
	// 10 * 2 rad is past 2pi and stays unwrapped.
	assert.Equal(t, float32(20), b.Angle())
}

func TestAdvanceHalfTurn(t *testing.T) {
	s := NewSystem()
	id := s.MustAdd(BodySpec{OrbitRadius: 10, OrbitSpeed: math.Pi})
	s.Advance(1.0)
	assertVec(t, quarkgl.V3(-10, 0, 0), s.Body(id).Position())
}

func TestChildFollowsParentSameTick(t *testing.T) {
	s := NewSystem()
	earth := s.MustAdd(BodySpec{Name: "earth", OrbitRadius: 8, OrbitSpeed: 1})
	moon := s.MustAdd(BodySpec{Name: "moon", OrbitRadius: 0.5, OrbitSpeed: 12, Parent: earth})

	for i := 0; i < 25; i++ {
		s.Advance(0.016)
		e, m := s.Body(earth), s.Body(moon)
		assertVec(t, onCircle(e.Position(), 0.5, m.Angle()), m.Position())
	}
}

func TestAdvanceBodyChildFirstLagsOneStep(t *testing.T) {
	s := NewSystem()
	earth := s.MustAdd(BodySpec{OrbitRadius: 8, OrbitSpeed: 1})
	moon := s.MustAdd(BodySpec{OrbitRadius: 0.5, OrbitSpeed: 12, Parent: earth})

	stale := s.Body(earth).Position()
	s.AdvanceBody(moon, 0.1)
	s.AdvanceBody(earth, 0.1)

	m := s.Body(moon)
	assertVec(t, onCircle(stale, 0.5, m.Angle()), m.Position())
	assert.NotEqual(t, stale, s.Body(earth).Position())

	// The next read is fresh again.
	s.AdvanceBody(moon, 0)
	assertVec(t, onCircle(s.Body(earth).Position(), 0.5, m.Angle()), m.Position())
}

func TestModelMapsUnitSphere(t *testing.T) {
	s := NewSystem()
	id := s.MustAdd(BodySpec{Radius: 0.4, OrbitRadius: 8, OrbitSpeed: 1})
	s.Advance(0.3)
	b := s.Body(id)

	p := quarkgl.Mat4MulPoint(b.Model(), quarkgl.V3(1, 0, 0))
	assertVec(t, b.Position().Add(quarkgl.V3(0.4, 0, 0)), p)
	assertVec(t, b.Position(), quarkgl.Mat4MulPoint(b.Model(), quarkgl.Vec3{}))
}

func TestLookupAndEach(t *testing.T) {
	s := DefaultSystem()
	require.Equal(t, 10, s.Len())

	moon, ok := s.Lookup("moon")
	require.True(t, ok)
	parent, ok := s.Body(moon).Parent()
	require.True(t, ok)
	assert.Equal(t, "earth", s.Body(parent).Name())

	var names []string
	s.Each(func(id BodyID, b *Body) {
		names = append(names, b.Name())
		if p, ok := b.Parent(); ok {
			assert.Less(t, p, id, "parent registered after %s", b.Name())
		}
	})
	assert.Equal(t, "sun", names[0])
	assert.Equal(t, "neptune", names[len(names)-1])

	_, ok = s.Lookup("pluto")
	assert.False(t, ok)
	assert.Nil(t, s.Body(0))
	assert.Nil(t, s.Body(99))
}

func TestDefaultSunStaysAtOrigin(t *testing.T) {
	s := DefaultSystem()
	sun, _ := s.Lookup("sun")
	for i := 0; i < 100; i++ {
		s.Advance(1.0 / 60)
	}
	assert.Equal(t, quarkgl.Vec3{}, s.Body(sun).Position())
}
