package hal

import "log/slog"

// HostConfig sizes the host framebuffer.
type HostConfig struct {
	Width  int
	Height int
	Logger *slog.Logger
}

type hostHAL struct {
	logger *slog.Logger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	clock  *frameClock
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		clock:  newFrameClock(nil),
	}
}

func (h *hostHAL) Logger() *slog.Logger { return h.logger }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input         { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
