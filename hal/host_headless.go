package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64 // stop after this many ticks (0 = run until ctx is done)

	// FixedStep feeds Update 1/Hz seconds per tick instead of wall-clock time.
	FixedStep bool

	Host HostConfig
}

// RunHeadless drives the application from a ticker without opening a window.
// Every tick calls Update then Render. It returns nil when Update returns
// ErrQuit or the tick budget is spent, and ctx.Err() on cancellation.
func RunHeadless(ctx context.Context, newApp AppFunc, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(cfg.Host)
	hs, err := newApp(h)
	if err != nil {
		return err
	}
	hs.resize(h.fb.Width(), h.fb.Height())

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			dt := h.clock.step()
			if cfg.FixedStep {
				dt = d.Seconds()
			}
			if err := hs.update(dt); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
			hs.render(h.fb)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
