// Package config loads the scene: the body table and the view settings.
//
// Without a scene file the compiled-in solar system is used. A scene file is a
// gcfg (git-config style) document:
//
//	[view]
//	distance = 30
//	tilt = 0
//	sectors = 36
//	stacks = 18
//
//	[body "sun"]
//	radius = 2
//	color = "#ffff00"
//
//	[body "earth"]
//	radius = 0.4
//	color = "#0080ff"
//	orbit-radius = 8
//	orbit-speed = 1
//
//	[body "moon"]
//	radius = 0.1
//	color = "#cccccc"
//	orbit-radius = 0.5
//	orbit-speed = 12
//	parent = earth
//
// Colors must be quoted because # starts a comment. When a file defines any
// body, its bodies replace the defaults entirely.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	"solarsystem/orbit"
	"solarsystem/quarkgl"
)

// View holds camera and tessellation settings.
type View struct {
	Sectors    int
	Stacks     int
	Distance   float32 // camera distance from the origin
	TiltDeg    float32 // camera elevation above the orbital plane
	FOVDeg     float32
	Near, Far  float32
	Wireframe  bool
	Background quarkgl.Color
}

// Config is a fully resolved scene.
type Config struct {
	View   View
	Bodies []orbit.BodySpec // parents precede children; Parent ids index this slice from 1
}

// Default returns the compiled-in scene.
func Default() Config {
	return Config{
		View: View{
			Sectors:    36,
			Stacks:     18,
			Distance:   30,
			FOVDeg:     45,
			Near:       0.1,
			Far:        100,
			Background: quarkgl.RGBF(0.1, 0.1, 0.2),
		},
		Bodies: orbit.DefaultSpecs(),
	}
}

type sceneFile struct {
	// Zero values leave the default in place.
	View struct {
		Sectors    int
		Stacks     int
		Distance   float64
		Tilt       float64
		FOV        float64
		Near       float64
		Far        float64
		Wireframe  bool
		Background string
	}
	Body map[string]*bodySection
}

type bodySection struct {
	Radius      float64
	Color       string
	OrbitRadius float64 `gcfg:"orbit-radius"`
	OrbitSpeed  float64 `gcfg:"orbit-speed"`
	Parent      string
}

// Load reads a scene file on top of the defaults and validates the result.
func Load(path string) (Config, error) {
	var f sceneFile
	if err := gcfg.ReadFileInto(&f, path); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return fromFile(&f)
}

// Parse is Load for an in-memory document.
func Parse(doc string) (Config, error) {
	var f sceneFile
	if err := gcfg.ReadStringInto(&f, doc); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	return fromFile(&f)
}

func fromFile(f *sceneFile) (Config, error) {
	cfg := Default()
	var errs []error

	v := &cfg.View
	if f.View.Sectors != 0 {
		v.Sectors = f.View.Sectors
	}
	if f.View.Stacks != 0 {
		v.Stacks = f.View.Stacks
	}
	setF32(&v.Distance, f.View.Distance)
	setF32(&v.TiltDeg, f.View.Tilt)
	setF32(&v.FOVDeg, f.View.FOV)
	setF32(&v.Near, f.View.Near)
	setF32(&v.Far, f.View.Far)
	v.Wireframe = f.View.Wireframe
	if f.View.Background != "" {
		c, err := ParseColor(f.View.Background)
		if err != nil {
			errs = append(errs, fmt.Errorf("view background: %w", err))
		}
		v.Background = c
	}

	if len(f.Body) > 0 {
		bodies, err := resolveBodies(f.Body)
		if err != nil {
			errs = append(errs, err)
		}
		cfg.Bodies = bodies
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setF32(dst *float32, v float64) {
	if v != 0 {
		*dst = float32(v)
	}
}

// Validate reports every problem found in the scene.
func (c Config) Validate() error {
	var errs []error
	if c.View.Distance <= 0 {
		errs = append(errs, fmt.Errorf("view distance must be positive, got %g", c.View.Distance))
	}
	if c.View.FOVDeg <= 0 || c.View.FOVDeg >= 180 {
		errs = append(errs, fmt.Errorf("view fov must be in (0, 180), got %g", c.View.FOVDeg))
	}
	if c.View.Near <= 0 || c.View.Far <= c.View.Near {
		errs = append(errs, fmt.Errorf("view near/far must satisfy 0 < near < far, got %g/%g", c.View.Near, c.View.Far))
	}
	if len(c.Bodies) == 0 {
		errs = append(errs, errors.New("no bodies"))
	}
	for i, b := range c.Bodies {
		if b.Radius <= 0 {
			errs = append(errs, fmt.Errorf("body %q: radius must be positive, got %g", b.Name, b.Radius))
		}
		if b.OrbitRadius < 0 {
			errs = append(errs, fmt.Errorf("body %q: orbit-radius must not be negative, got %g", b.Name, b.OrbitRadius))
		}
		if b.Parent != orbit.NoParent && (b.Parent < 0 || int(b.Parent) > i) {
			errs = append(errs, fmt.Errorf("body %q: parent %d is not defined before it", b.Name, b.Parent))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// System builds the orbit system described by the config.
func (c Config) System() (*orbit.System, error) {
	s := orbit.NewSystem()
	for _, spec := range c.Bodies {
		if _, err := s.Add(spec); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return s, nil
}

// ParseColor parses #rrggbb (the leading # is optional).
func ParseColor(s string) (quarkgl.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return quarkgl.Color{}, fmt.Errorf("bad color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return quarkgl.Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return quarkgl.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
