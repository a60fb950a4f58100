package quarkgl

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
	verts    []screenVertex
	stats    FrameStats
}

// FrameStats counts the work done by the last Render call.
type FrameStats struct {
	Draws     int
	Triangles int
}

type screenVertex struct {
	x, y int
	z    float32
	ok   bool
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		ClearColor: RGB(0, 0, 0),
	}
	r.EnableDepth(enableDepth, w, h)
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

// Stats returns the counters of the last Render call.
func (r *Renderer) Stats() FrameStats { return r.stats }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render clears the target and draws the scene mesh once per enabled instance.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	r.stats = FrameStats{}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := float32(w) / float32(h)
	viewProj := Mat4Mul(s.Camera.Projection(aspect), s.Camera.View())

	mesh := s.Mesh
	if mesh.VertexCount() == 0 || mesh.IndexCount() < 3 {
		return
	}
	if cap(r.verts) < mesh.VertexCount() {
		r.verts = make([]screenVertex, mesh.VertexCount())
	}
	r.verts = r.verts[:mesh.VertexCount()]

	s.eachInstance(func(in *Instance) {
		r.draw(t, w, h, mesh, Mat4Mul(viewProj, in.Transform), in.Color)
	})
}

// draw is a single draw submission: project the shared vertices with mvp and
// rasterize every triangle in the instance color.
func (r *Renderer) draw(t Target, w, h int, m *Mesh, mvp Mat4, c Color) {
	r.stats.Draws++

	for i := range r.verts {
		p := Mat4MulV4(mvp, Vec4{X: m.Vertices[i*3], Y: m.Vertices[i*3+1], Z: m.Vertices[i*3+2], W: 1})
		ndc, ok := clipToNDC(p)
		if !ok {
			r.verts[i] = screenVertex{}
			continue
		}
		x, y := ndcToScreen(ndc, w, h)
		r.verts[i] = screenVertex{x: x, y: y, z: ndc.Z, ok: true}
	}

	n := len(r.verts)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= n || i1 >= n || i2 >= n {
			continue
		}
		a, b, cc := r.verts[i0], r.verts[i1], r.verts[i2]
		if !a.ok || !b.ok || !cc.ok {
			continue
		}
		r.stats.Triangles++

		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, a.x, a.y, b.x, b.y, c)
			r.drawLine(t, b.x, b.y, cc.x, cc.y, c)
			r.drawLine(t, cc.x, cc.y, a.x, a.y, c)
		default:
			r.fillTriangleFlat(t, w, h, a, b, cc, c)
		}
	}
}

type ndcPoint struct {
	X, Y, Z float32
}

// clipToNDC drops vertices behind the eye (w <= 0).
func clipToNDC(p Vec4) (ndcPoint, bool) {
	if p.W <= 0 {
		return ndcPoint{}, false
	}
	invW := 1 / p.W
	return ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := z*0.5 + 0.5
	if d < 0 || d > 1 {
		return false
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangleFlat(t Target, w, h int, v0, v1, v2 screenVertex, c Color) {
	minX, maxX := min(v0.x, v1.x, v2.x), max(v0.x, v1.x, v2.x)
	minY, maxY := min(v0.y, v1.y, v2.y), max(v0.y, v1.y, v2.y)
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, w-1), min(maxY, h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}
	// Accept either winding.
	sign := 1
	if area < 0 {
		sign = -1
	}
	invArea := 1 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(v1.x, v1.y, v2.x, v2.y, x, y)
			w1 := edgeFn(v2.x, v2.y, v0.x, v0.y, x, y)
			w2 := edgeFn(v0.x, v0.y, v1.x, v1.y, x, y)
			if w0*sign < 0 || w1*sign < 0 || w2*sign < 0 {
				continue
			}
			z := (float32(w0)*v0.z + float32(w1)*v1.z + float32(w2)*v2.z) * invArea
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
