// Package app is the orbit viewer itself: it advances the bodies every tick and
// draws the shared sphere once per body every frame.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"solarsystem/config"
	"solarsystem/hal"
	"solarsystem/orbit"
	"solarsystem/quarkgl"
	"solarsystem/telemetry"
)

// Config configures an App.
type Config struct {
	Scene config.Config

	// Publisher, when set, receives a snapshot every PublishEvery frames.
	Publisher    telemetry.Publisher
	PublishEvery int

	HideHUD bool
}

// App owns the simulation and the render state.
type App struct {
	h   hal.HAL
	log *slog.Logger
	cfg Config

	sys      *orbit.System
	mesh     *quarkgl.Mesh
	scene    *quarkgl.Scene
	r        *quarkgl.Renderer
	instance map[orbit.BodyID]int

	frame   uint64
	elapsed float64
	hud     *hud
}

// NewFunc returns the constructor a hal run loop expects.
func NewFunc(cfg Config) hal.AppFunc {
	return func(h hal.HAL) (hal.Handlers, error) {
		a, err := New(h, cfg)
		if err != nil {
			return hal.Handlers{}, err
		}
		return a.Handlers(), nil
	}
}

// New builds the orbit system, generates the shared sphere mesh and registers
// one scene instance per body.
func New(h hal.HAL, cfg Config) (*App, error) {
	if cfg.PublishEvery <= 0 {
		cfg.PublishEvery = 1
	}
	sys, err := cfg.Scene.System()
	if err != nil {
		return nil, err
	}

	v := cfg.Scene.View
	mesh := quarkgl.NewSphere(1, v.Sectors, v.Stacks)

	scene := quarkgl.CreateScene(mesh, sys.Len())
	scene.Camera.FOVYRad = quarkgl.Radians(v.FOVDeg)
	scene.Camera.Near = v.Near
	scene.Camera.Far = v.Far
	rig := quarkgl.OrbitController{Radius: v.Distance, Pitch: -quarkgl.Radians(v.TiltDeg)}
	rig.Apply(&scene.Camera)

	a := &App{
		h:        h,
		log:      h.Logger(),
		cfg:      cfg,
		sys:      sys,
		mesh:     mesh,
		scene:    scene,
		instance: make(map[orbit.BodyID]int, sys.Len()),
	}
	sys.Each(func(id orbit.BodyID, b *orbit.Body) {
		a.instance[id] = scene.AddInstance(b.Model(), b.Color())
	})

	w, ht := 0, 0
	if fb := framebuffer(h); fb != nil {
		w, ht = fb.Width(), fb.Height()
	}
	a.r = quarkgl.NewRenderer(w, ht, true)
	a.r.ClearColor = v.Background
	if v.Wireframe {
		a.r.SetRenderMode(quarkgl.RenderWireframe)
	}
	if !cfg.HideHUD {
		a.hud = newHUD()
	}

	a.log.Info("scene ready",
		"bodies", sys.Len(),
		"vertices", mesh.VertexCount(),
		"indices", mesh.IndexCount(),
		"sectors", v.Sectors,
		"stacks", v.Stacks,
	)
	return a, nil
}

// Handlers exposes the App to a hal run loop.
func (a *App) Handlers() hal.Handlers {
	return hal.Handlers{Update: a.Update, Render: a.Render, Resize: a.Resize}
}

func (a *App) System() *orbit.System { return a.sys }
func (a *App) Scene() *quarkgl.Scene { return a.scene }
func (a *App) Mesh() *quarkgl.Mesh   { return a.mesh }
func (a *App) Frame() uint64         { return a.frame }

// Update handles input, advances every body by dt seconds and refreshes the
// per-body model matrices.
func (a *App) Update(dt float64) error {
	if a.exitRequested() {
		a.log.Info("exit requested", "frame", a.frame)
		return hal.ErrQuit
	}

	a.sys.Advance(float32(dt))
	a.sys.Each(func(id orbit.BodyID, b *orbit.Body) {
		a.scene.UpdateInstanceTransform(a.instance[id], b.Model())
	})
	a.elapsed += dt
	a.frame++

	if a.cfg.Publisher != nil && a.frame%uint64(a.cfg.PublishEvery) == 0 {
		a.publish()
	}
	return nil
}

func (a *App) exitRequested() bool {
	in := a.h.Input()
	if in == nil || in.Keyboard() == nil {
		return false
	}
	events := in.Keyboard().Events()
	for {
		select {
		case ev := <-events:
			if ev.Code == hal.KeyEscape && ev.Press {
				return true
			}
		default:
			return false
		}
	}
}

func (a *App) publish() {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	snap := telemetry.Capture(a.frame, a.elapsed, a.sys)
	if err := a.cfg.Publisher.Publish(ctx, snap); err != nil {
		a.log.Warn("telemetry publish failed", "frame", a.frame, "err", err)
	}
}

// Render draws every body into fb and presents it.
func (a *App) Render(fb hal.Framebuffer) {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	target := &quarkgl.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
	a.r.Render(target, a.scene)

	if a.hud != nil {
		a.hud.draw(fb, fmt.Sprintf("t=%.1fs  bodies=%d", a.elapsed, a.sys.Len()), "ESC exit")
	}
	if err := fb.Present(); err != nil {
		a.log.Error("present failed", "err", err)
	}
}

// Resize resizes the depth buffer to the new framebuffer size. The projection
// aspect follows the target size on the next Render.
func (a *App) Resize(w, h int) {
	a.r.EnableDepth(true, w, h)
	a.log.Debug("framebuffer resized", "width", w, "height", h)
}

func framebuffer(h hal.HAL) hal.Framebuffer {
	d := h.Display()
	if d == nil {
		return nil
	}
	return d.Framebuffer()
}
