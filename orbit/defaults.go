package orbit

import "solarsystem/quarkgl"

// DefaultSystem returns the sun, the eight planets and the moon.
//
// Distances and radii are display units, speeds radians per second; they are
// picked for a readable animation, not to scale.
func DefaultSystem() *System {
	s := NewSystem()
	for _, spec := range DefaultSpecs() {
		s.MustAdd(spec)
	}
	return s
}

// DefaultSpecs returns the default body table. Parent ids are the ids the
// bodies get when added in order to an empty System.
func DefaultSpecs() []BodySpec {
	const earth BodyID = 4
	return []BodySpec{
		{Name: "sun", Radius: 2.0, Color: quarkgl.RGBF(1.0, 1.0, 0.0)},
		{Name: "mercury", Radius: 0.2, Color: quarkgl.RGBF(0.7, 0.7, 0.7), OrbitRadius: 4, OrbitSpeed: 4.15},
		{Name: "venus", Radius: 0.3, Color: quarkgl.RGBF(1.0, 0.8, 0.5), OrbitRadius: 6, OrbitSpeed: 1.62},
		{Name: "earth", Radius: 0.4, Color: quarkgl.RGBF(0.0, 0.5, 1.0), OrbitRadius: 8, OrbitSpeed: 1.0},
		{Name: "moon", Radius: 0.1, Color: quarkgl.RGBF(0.8, 0.8, 0.8), OrbitRadius: 0.5, OrbitSpeed: 12.0, Parent: earth},
		{Name: "mars", Radius: 0.3, Color: quarkgl.RGBF(1.0, 0.3, 0.3), OrbitRadius: 10, OrbitSpeed: 0.52},
		{Name: "jupiter", Radius: 1.0, Color: quarkgl.RGBF(0.9, 0.6, 0.3), OrbitRadius: 14, OrbitSpeed: 0.08},
		{Name: "saturn", Radius: 0.8, Color: quarkgl.RGBF(0.9, 0.8, 0.5), OrbitRadius: 18, OrbitSpeed: 0.03},
		{Name: "uranus", Radius: 0.6, Color: quarkgl.RGBF(0.5, 0.8, 0.9), OrbitRadius: 22, OrbitSpeed: 0.01},
		{Name: "neptune", Radius: 0.5, Color: quarkgl.RGBF(0.3, 0.5, 0.9), OrbitRadius: 26, OrbitSpeed: 0.006},
	}
}
