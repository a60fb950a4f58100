// Package orbit holds the circular-orbit model: bodies that sweep an angle at
// a constant rate around either the origin or another body.
package orbit

import (
	"github.com/chewxy/math32"

	"solarsystem/quarkgl"
)

// BodyID identifies a body inside its System. Ids start at 1.
type BodyID int

// NoParent marks a body orbiting the origin. It is the zero value, so a
// BodySpec without a Parent orbits the origin.
const NoParent BodyID = 0

// BodySpec is the fixed description of a body.
type BodySpec struct {
	Name        string
	Radius      float32
	Color       quarkgl.Color
	OrbitRadius float32
	OrbitSpeed  float32 // radians per second
	Parent      BodyID  // NoParent or an id already added to the System
}

// Body is a sphere moving on a circle around its parent (or the origin).
//
// The parent is referenced by id and never owned; all bodies live as long as
// their System.
type Body struct {
	spec     BodySpec
	angle    float32
	position quarkgl.Vec3
}

func (b *Body) Name() string                 { return b.spec.Name }
func (b *Body) Radius() float32              { return b.spec.Radius }
func (b *Body) Color() quarkgl.Color         { return b.spec.Color }
func (b *Body) OrbitRadius() float32         { return b.spec.OrbitRadius }
func (b *Body) OrbitSpeed() float32          { return b.spec.OrbitSpeed }
func (b *Body) Angle() float32               { return b.angle }
func (b *Body) Position() quarkgl.Vec3       { return b.position }
func (b *Body) Spec() BodySpec               { return b.spec }
func (b *Body) Parent() (id BodyID, ok bool) { return b.spec.Parent, b.spec.Parent != NoParent }

// Model returns the transform that maps the unit sphere onto this body:
// scale by the body radius, then translate to its position.
func (b *Body) Model() quarkgl.Mat4 {
	return quarkgl.Mat4ScaleTranslate(b.spec.Radius, b.position)
}

// advance steps the angle and recomputes the position around center.
// The angle is not wrapped.
func (b *Body) advance(dt float32, center quarkgl.Vec3) {
	b.angle += b.spec.OrbitSpeed * dt
	b.place(center)
}

func (b *Body) place(center quarkgl.Vec3) {
	r := b.spec.OrbitRadius
	b.position = center.Add(quarkgl.V3(r*math32.Cos(b.angle), r*math32.Sin(b.angle), 0))
}
