package app

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"solarsystem/hal"
	"solarsystem/quarkgl"
)

// hud writes status lines in the top-left corner of the framebuffer.
type hud struct {
	font       tinyfont.Fonter
	lineHeight int16
	colors     [2]color.RGBA
}

func newHUD() *hud {
	return &hud{
		font:       &tinyfont.TomThumb,
		lineHeight: 8,
		colors: [2]color.RGBA{
			{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF},
			{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF},
		},
	}
}

func (h *hud) draw(fb hal.Framebuffer, lines ...string) {
	d := &fbDisplayer{fb: fb}
	for i, s := range lines {
		c := h.colors[min(i, len(h.colors)-1)]
		tinyfont.WriteLine(d, h.font, 6, 6+int16(i+1)*h.lineHeight, s, c)
	}
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

// fbDisplayer adapts an RGB565 framebuffer to the tinyfont drawing target.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	pixel := quarkgl.RGB565(quarkgl.RGB(c.R, c.G, c.B))
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }
