package quarkgl

// Mesh is a position-only indexed triangle list.
//
// Vertices holds flattened x,y,z triples and Indices flattened triangle
// corners, ready for upload to a vertex/index buffer pair. A Mesh is not
// modified after construction and may be shared by any number of instances.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices (len(Vertices)/3).
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices) / 3
}

// IndexCount returns the number of index entries.
func (m *Mesh) IndexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices)
}

// Vertex returns vertex i. It panics if i is out of range.
func (m *Mesh) Vertex(i int) Vec3 {
	o := i * 3
	return Vec3{X: m.Vertices[o], Y: m.Vertices[o+1], Z: m.Vertices[o+2]}
}
