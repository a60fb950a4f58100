package quarkgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTarget struct {
	w, h int
	pix  []Color
}

func newMemTarget(w, h int) *memTarget {
	return &memTarget{w: w, h: h, pix: make([]Color, w*h)}
}

func (t *memTarget) Size() (int, int) { return t.w, t.h }

func (t *memTarget) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	t.pix[y*t.w+x] = c
}

func (t *memTarget) Clear(c Color) {
	for i := range t.pix {
		t.pix[i] = c
	}
}

func (t *memTarget) at(x, y int) Color { return t.pix[y*t.w+x] }

func TestRenderOneDrawPerInstance(t *testing.T) {
	s := CreateScene(NewSphere(1, 12, 6), 3)
	red := RGB(0xFF, 0, 0)
	blue := RGB(0, 0, 0xFF)
	s.AddInstance(Mat4ScaleTranslate(2, V3(0, 0, 0)), red)
	s.AddInstance(Mat4ScaleTranslate(1, V3(8, 0, 0)), blue)
	hidden := s.AddInstance(Mat4ScaleTranslate(1, V3(-8, 0, 0)), RGB(0, 0xFF, 0))
	s.SetInstanceEnabled(hidden, false)

	r := NewRenderer(64, 64, true)
	tgt := newMemTarget(64, 64)
	r.Render(tgt, s)

	assert.Equal(t, 2, r.Stats().Draws)
	assert.Equal(t, 2*s.Mesh.IndexCount()/3, r.Stats().Triangles)
	assert.Equal(t, red, tgt.at(32, 32))
	assert.Equal(t, r.ClearColor, tgt.at(0, 0))
}

func TestRenderDepthKeepsNearest(t *testing.T) {
	s := CreateScene(NewSphere(1, 16, 8), 2)
	far := RGB(0, 0, 0xFF)
	near := RGB(0xFF, 0xFF, 0)
	// Near sphere added first so painter's order alone would lose.
	s.AddInstance(Mat4ScaleTranslate(2, V3(0, 0, 10)), near)
	s.AddInstance(Mat4ScaleTranslate(4, V3(0, 0, 0)), far)

	r := NewRenderer(48, 48, true)
	tgt := newMemTarget(48, 48)
	r.Render(tgt, s)
	assert.Equal(t, near, tgt.at(24, 24))
}

func TestRenderSkipsGeometryBehindCamera(t *testing.T) {
	s := CreateScene(NewSphere(1, 8, 4), 1)
	s.AddInstance(Mat4ScaleTranslate(1, V3(0, 0, 60)), RGB(0xFF, 0, 0))

	r := NewRenderer(32, 32, true)
	tgt := newMemTarget(32, 32)
	r.Render(tgt, s)
	assert.Equal(t, 0, r.Stats().Triangles)
	for _, p := range tgt.pix {
		require.Equal(t, r.ClearColor, p)
	}
}

func TestRenderWireframe(t *testing.T) {
	s := CreateScene(NewSphere(1, 8, 4), 1)
	s.AddInstance(Mat4ScaleTranslate(3, V3(0, 0, 0)), RGB(0xFF, 0xFF, 0xFF))

	r := NewRenderer(32, 32, false)
	r.SetRenderMode(RenderWireframe)
	tgt := newMemTarget(32, 32)
	r.Render(tgt, s)

	lit := 0
	for _, p := range tgt.pix {
		if p != r.ClearColor {
			lit++
		}
	}
	assert.Positive(t, lit)
	assert.Less(t, lit, len(tgt.pix))
}

func TestRGB565Target(t *testing.T) {
	tgt := &RGB565Target{Buf: make([]byte, 4*2*2), Stride: 8, W: 4, H: 2}
	tgt.Clear(RGB(0, 0, 0))
	tgt.SetPixel(1, 1, RGB(0xFF, 0, 0))
	tgt.SetPixel(9, 9, RGB(0xFF, 0xFF, 0xFF))

	assert.Equal(t, uint16(0xF800), RGB565(RGB(0xFF, 0, 0)))
	assert.Equal(t, byte(0x00), tgt.Buf[8+2])
	assert.Equal(t, byte(0xF8), tgt.Buf[8+3])
	assert.Equal(t, byte(0), tgt.Buf[0])
}

func TestSceneInstanceAccess(t *testing.T) {
	s := CreateScene(NewSphere(1, 4, 2), 0)
	id := s.AddInstance(Mat4{}, RGB(1, 2, 3))
	in, ok := s.Instance(id)
	require.True(t, ok)
	assert.Equal(t, Mat4Identity(), in.Transform)

	s.UpdateInstanceTransform(id, Mat4Translate(V3(1, 0, 0)))
	in, _ = s.Instance(id)
	assert.Equal(t, float32(1), in.Transform[12])

	_, ok = s.Instance(5)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}
