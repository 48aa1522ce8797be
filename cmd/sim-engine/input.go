package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"sim-engine/internal/camera"
	"sim-engine/internal/input"
	"sim-engine/internal/render"
)

// titleState tracks whether the frame rate readout replaces the plain
// window title.
type titleState struct {
	base string
	show bool
}

func setupInputHandlers(window *glfw.Window, ctx *render.Context, titles *titleState) {
	keymap := input.NewKeymap()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		ev, ok := keymap.Translate(key, action)
		if !ok {
			return
		}
		if ctx.Input(ev) {
			return
		}
		if !ev.Pressed {
			return
		}
		switch ev.Key {
		case input.KeyQuit:
			w.SetShouldClose(true)
		case input.KeyToggleFrameRate:
			titles.show = !titles.show
		case input.KeyUpAxisX:
			ctx.Camera().SetUpAxis(camera.AxisX)
		case input.KeyUpAxisY:
			ctx.Camera().SetUpAxis(camera.AxisY)
		case input.KeyUpAxisZ:
			ctx.Camera().SetUpAxis(camera.AxisZ)
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		ctx.Input(input.PointerEvent{X: xpos, Y: ypos})
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		ctx.Resize(width, height)
	})
}
