// Package config loads engine settings from a TOML file, falling back
// to built-in defaults when no file is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full engine configuration.
type Config struct {
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	Scene  SceneConfig  `toml:"scene"`
	Debug  DebugConfig  `toml:"debug"`
}

// WindowConfig controls the host window and presentation.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

// CameraConfig controls the camera projection and movement speed.
type CameraConfig struct {
	Speed  float32 `toml:"speed"`
	FOVDeg float32 `toml:"fov_deg"`
	Near   float32 `toml:"near"`
	Far    float32 `toml:"far"`
}

// SceneConfig controls the instance grid and the light.
type SceneConfig struct {
	GridRows    int        `toml:"grid_rows"`
	GridCols    int        `toml:"grid_cols"`
	GridSpacing float32    `toml:"grid_spacing"`
	LightPos    [3]float32 `toml:"light_position"`
	LightColor  [3]float32 `toml:"light_color"`
}

// DebugConfig controls diagnostic surfaces.
type DebugConfig struct {
	ShowFrameRate bool `toml:"show_frame_rate"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  450,
			Height: 400,
			Title:  "Simulation Engine",
			VSync:  true,
		},
		Camera: CameraConfig{
			Speed:  30.0,
			FOVDeg: 45.0,
			Near:   0.1,
			Far:    100.0,
		},
		Scene: SceneConfig{
			GridRows:    10,
			GridCols:    10,
			GridSpacing: 3.0,
			LightPos:    [3]float32{2, 2, 2},
			LightColor:  [3]float32{1, 1, 1},
		},
		Debug: DebugConfig{
			ShowFrameRate: true,
		},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.clamp()
	return cfg, nil
}

// clamp pulls out-of-range values back to usable ones.
func (c *Config) clamp() {
	if c.Window.Width < 1 {
		c.Window.Width = 1
	}
	if c.Window.Height < 1 {
		c.Window.Height = 1
	}
	if c.Camera.Speed <= 0 {
		c.Camera.Speed = 30.0
	}
	if c.Camera.FOVDeg <= 0 || c.Camera.FOVDeg >= 180 {
		c.Camera.FOVDeg = 45.0
	}
	if c.Camera.Near <= 0 {
		c.Camera.Near = 0.1
	}
	if c.Camera.Far <= c.Camera.Near {
		c.Camera.Far = c.Camera.Near + 100.0
	}
	if c.Scene.GridRows < 1 {
		c.Scene.GridRows = 1
	}
	if c.Scene.GridCols < 1 {
		c.Scene.GridCols = 1
	}
	if c.Scene.GridSpacing <= 0 {
		c.Scene.GridSpacing = 3.0
	}
}
