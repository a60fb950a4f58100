//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"solarsystem/internal/buildinfo"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string
	TPS   int
	// Scale is the number of window pixels per framebuffer pixel.
	Scale int

	Host HostConfig
}

// RunWindow opens a desktop window that shows the framebuffer and forwards
// keyboard input. It blocks until the window closes or Update returns ErrQuit.
func RunWindow(cfg WindowConfig, newApp AppFunc) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "Solar system"
	}

	h := newHost(cfg.Host)
	hs, err := newApp(h)
	if err != nil {
		return err
	}
	hs.resize(h.fb.Width(), h.fb.Height())

	g := &hostGame{h: h, hs: hs, scale: cfg.Scale}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.Width()*cfg.Scale, h.fb.Height()*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	h.logger.Info("window open", "width", h.fb.Width(), "height", h.fb.Height(), "tps", cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	hs    Handlers
	scale int

	pix   []byte
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if err := g.hs.update(g.h.clock.step()); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	g.hs.render(fb)

	w, h := fb.Width(), fb.Height()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		g.pix = make([]byte, w*h*4)
	}

	fb.snapshotRGBA(g.pix)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout follows the window size so a resized window gets a resized
// framebuffer, like a GL viewport.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth/g.scale, outsideHeight/g.scale
	if g.h.fb.resize(w, h) {
		g.hs.resize(g.h.fb.Width(), g.h.fb.Height())
	}
	return g.h.fb.Width(), g.h.fb.Height()
}
