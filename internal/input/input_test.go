package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestTranslateDefaultBindings(t *testing.T) {
	km := NewKeymap()

	cases := []struct {
		physical glfw.Key
		action   glfw.Action
		want     KeyEvent
	}{
		{glfw.KeyW, glfw.Press, KeyEvent{KeyForward, true}},
		{glfw.KeyW, glfw.Release, KeyEvent{KeyForward, false}},
		{glfw.KeyS, glfw.Press, KeyEvent{KeyBackward, true}},
		{glfw.KeyA, glfw.Press, KeyEvent{KeyLeft, true}},
		{glfw.KeyD, glfw.Release, KeyEvent{KeyRight, false}},
		{glfw.KeyF, glfw.Press, KeyEvent{KeyToggleFrameRate, true}},
		{glfw.KeyUp, glfw.Press, KeyEvent{KeyUpAxisY, true}},
		{glfw.KeyLeft, glfw.Press, KeyEvent{KeyUpAxisX, true}},
		{glfw.KeyRight, glfw.Press, KeyEvent{KeyUpAxisZ, true}},
		{glfw.KeyEscape, glfw.Press, KeyEvent{KeyQuit, true}},
	}
	for _, c := range cases {
		got, ok := km.Translate(c.physical, c.action)
		if !ok {
			t.Errorf("Translate(%v, %v) not consumed", c.physical, c.action)
			continue
		}
		if got != c.want {
			t.Errorf("Translate(%v, %v) = %+v, want %+v", c.physical, c.action, got, c.want)
		}
	}
}

func TestTranslateIgnoresUnboundAndRepeats(t *testing.T) {
	km := NewKeymap()
	if _, ok := km.Translate(glfw.KeyP, glfw.Press); ok {
		t.Error("unbound key should not translate")
	}
	if _, ok := km.Translate(glfw.KeyW, glfw.Repeat); ok {
		t.Error("repeat action should not translate")
	}
}

func TestBindReplacesExisting(t *testing.T) {
	km := NewKeymap()
	km.Bind(glfw.KeyW, KeyQuit)
	got, ok := km.Translate(glfw.KeyW, glfw.Press)
	if !ok || got.Key != KeyQuit {
		t.Errorf("rebinding W: got %+v, want KeyQuit press", got)
	}
}
