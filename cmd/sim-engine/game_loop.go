package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"sim-engine/internal/render"
)

// runLoop drives the frame cycle until the window closes:
// poll -> update -> render -> finalize.
func runLoop(window *glfw.Window, ctx *render.Context, titles *titleState, log *slog.Logger) {
	for !window.ShouldClose() {
		glfw.PollEvents()

		ctx.Update()

		switch err := ctx.Render(); {
		case err == nil:
		case errors.Is(err, render.ErrSurfaceLost):
			// Reconfigure at the current size and keep going.
			log.Warn("surface lost, reconfiguring")
			w, h := ctx.Size()
			ctx.Resize(w, h)
		case errors.Is(err, render.ErrOutOfMemory):
			log.Error("render failed", "err", err)
			window.SetShouldClose(true)
		default:
			// Drop the frame.
			log.Error("render failed", "err", err)
		}

		ctx.Finalize()

		updateTitle(window, ctx, titles)
	}
}

func updateTitle(window *glfw.Window, ctx *render.Context, titles *titleState) {
	if titles.show {
		window.SetTitle(fmt.Sprintf("%s - %.2f FPS - %.2f AVG FPS",
			titles.base, ctx.FrameRate(), ctx.AverageFrameRate()))
	} else {
		window.SetTitle(titles.base)
	}
}
