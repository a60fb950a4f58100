package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"solarsystem/app"
	"solarsystem/config"
	"solarsystem/hal"
	"solarsystem/internal/buildinfo"
	"solarsystem/telemetry"
)

func main() {
	var (
		headless hal.HeadlessConfig
		host     hal.HostConfig
		win      hal.WindowConfig

		scenePath    string
		sectors      int
		stacks       int
		wireframe    bool
		redisAddr    string
		channel      string
		publishEvery int
		hud          bool
		version      bool
		verbose      bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate (ticks per second).")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&host.Width, "width", 800, "Framebuffer width in pixels.")
	flag.IntVar(&host.Height, "height", 800, "Framebuffer height in pixels.")
	flag.IntVar(&win.Scale, "scale", 1, "Window pixels per framebuffer pixel.")
	flag.StringVar(&scenePath, "scene", "", "Scene file (gcfg). Empty uses the built-in solar system.")
	flag.IntVar(&sectors, "sectors", 36, "Sphere sectors (longitude subdivisions).")
	flag.IntVar(&stacks, "stacks", 18, "Sphere stacks (latitude subdivisions).")
	flag.BoolVar(&wireframe, "wireframe", false, "Draw triangle edges only.")
	flag.StringVar(&redisAddr, "redis", "", "Publish body state to this redis address (host:port).")
	flag.StringVar(&channel, "channel", telemetry.DefaultChannel, "Redis channel for body state.")
	flag.IntVar(&publishEvery, "publish-every", 1, "Publish body state every N frames.")
	flag.BoolVar(&hud, "hud", true, "Draw the status overlay.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.BoolVar(&verbose, "v", false, "Verbose logging.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Version, buildinfo.Short())
		return
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	host.Logger = logger

	scene, err := loadScene(scenePath)
	if err != nil {
		fatal(err)
	}
	// Flags only override the scene file when given explicitly.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sectors":
			scene.View.Sectors = sectors
		case "stacks":
			scene.View.Stacks = stacks
		case "wireframe":
			scene.View.Wireframe = wireframe
		}
	})
	if err := scene.Validate(); err != nil {
		fatal(err)
	}
	logger.Info("starting", "version", buildinfo.Short(), "scene", sceneName(scenePath), "bodies", len(scene.Bodies))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := app.Config{Scene: scene, PublishEvery: publishEvery, HideHUD: !hud}
	if redisAddr != "" {
		dialCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		pub, err := telemetry.NewRedis(dialCtx, redisAddr, channel)
		cancel()
		if err != nil {
			fatal(err)
		}
		defer pub.Close()
		cfg.Publisher = pub
		logger.Info("publishing body state", "redis", redisAddr, "channel", channel, "every", publishEvery)
	}

	if headless.Enabled {
		headless.Host = host
		if err := hal.RunHeadless(ctx, app.NewFunc(cfg), headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatal(err)
		}
		return
	}

	win.TPS = headless.Hz
	win.Host = host
	if err := hal.RunWindow(win, app.NewFunc(cfg)); err != nil {
		fatal(err)
	}
}

func loadScene(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func sceneName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
