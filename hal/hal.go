// Package hal is the boundary between the orbit viewer and the host: a pixel
// framebuffer, keyboard events, a frame clock and the run loops that drive an
// application through plain handler functions.
package hal

import (
	"errors"
	"log/slog"
)

// ErrQuit is returned by an Update handler to stop the run loop cleanly.
var ErrQuit = errors.New("hal: quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the application and the host.
type HAL interface {
	Logger() *slog.Logger
	Display() Display
	Input() Input
}

// Handlers are the callbacks a run loop drives.
//
// Update runs once per tick with the seconds elapsed since the previous tick
// (0 on the first). Render draws the current state into the framebuffer.
// Resize is called after the framebuffer changed size. Nil handlers are
// skipped.
type Handlers struct {
	Update func(dt float64) error
	Render func(fb Framebuffer)
	Resize func(w, h int)
}

// AppFunc builds an application's handlers once the host is ready.
type AppFunc func(h HAL) (Handlers, error)

func (hs Handlers) update(dt float64) error {
	if hs.Update == nil {
		return nil
	}
	return hs.Update(dt)
}

func (hs Handlers) render(fb Framebuffer) {
	if hs.Render != nil {
		hs.Render(fb)
	}
}

func (hs Handlers) resize(w, h int) {
	if hs.Resize != nil {
		hs.Resize(w, h)
	}
}
