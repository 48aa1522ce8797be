package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"sim-engine/internal/config"
)

func setupWindow(cfg config.WindowConfig) (*glfw.Window, error) {
	// The GPU owns presentation, so no client API context.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	return window, nil
}
