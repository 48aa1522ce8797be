package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"sim-engine/internal/config"
	"sim-engine/internal/mesh"
	"sim-engine/internal/render"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "engine.toml", "path to the configuration file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	if err := glfw.Init(); err != nil {
		log.Error("glfw init failed", "err", err)
		os.Exit(1)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow(cfg.Window)
	if err != nil {
		log.Error("window setup failed", "err", err)
		closer.Close()
		os.Exit(1)
	}
	closer.Bind(window.Destroy)

	ctx, err := render.NewContext(window, cfg, mesh.NewBuiltinProvider(), log)
	if err != nil {
		log.Error("render context setup failed", "err", err)
		closer.Close()
		os.Exit(1)
	}
	closer.Bind(ctx.Release)

	titles := &titleState{base: cfg.Window.Title, show: cfg.Debug.ShowFrameRate}
	setupInputHandlers(window, ctx, titles)

	log.Info("starting main loop")
	runLoop(window, ctx, titles, log)

	closer.Close()
}
