package quarkgl

import "github.com/chewxy/math32"

// SphereN returns the vertex and index counts NewSphere produces for the
// given tessellation, without generating anything.
func SphereN(sectors, stacks int) (numVertex, numIndex int) {
	if sectors < 0 || stacks < 0 {
		return 0, 0
	}
	numVertex = (stacks + 1) * (sectors + 1)
	if stacks > 1 {
		numIndex = 6 * sectors * (stacks - 1)
	}
	return
}

// NewSphere builds a latitude/longitude sphere of the given radius centered on
// the origin.
//
// Rows sweep the stack angle from +pi/2 (the +Z pole) down to -pi/2 in
// stacks+1 steps; each row sweeps the sector angle from 0 to 2pi in sectors+1
// steps, so the seam column is duplicated. Every band becomes two triangles
// per sector except next to the poles, where the collapsed half of each quad
// is skipped.
//
// Parameters are not validated: sectors < 3 or stacks < 2 give a degenerate
// but well-formed mesh.
func NewSphere(radius float32, sectors, stacks int) *Mesh {
	nv, ni := SphereN(sectors, stacks)
	m := &Mesh{
		Vertices: make([]float32, 0, nv*3),
		Indices:  make([]uint32, 0, ni),
	}
	if nv == 0 {
		return m
	}

	sectorStep := 2 * math32.Pi / float32(sectors)
	stackStep := math32.Pi / float32(stacks)

	for i := 0; i <= stacks; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		xy := radius * math32.Cos(stackAngle)
		z := radius * math32.Sin(stackAngle)

		for j := 0; j <= sectors; j++ {
			sectorAngle := float32(j) * sectorStep
			m.Vertices = append(m.Vertices,
				xy*math32.Cos(sectorAngle),
				xy*math32.Sin(sectorAngle),
				z,
			)
		}
	}

	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1

		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				m.Indices = append(m.Indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				m.Indices = append(m.Indices, k1+1, k2, k2+1)
			}
		}
	}
	return m
}
