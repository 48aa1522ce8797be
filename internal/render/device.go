package render

import (
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// gpuState bundles the device-level objects the renderer needs for the
// lifetime of the window.
type gpuState struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	config   *wgpu.SurfaceConfiguration
}

// newGPUState opens the GPU for the given window and configures the
// surface at the window's current framebuffer size.
func newGPUState(window *glfw.Window, vsync bool) (*gpuState, error) {
	s := &gpuState{}
	s.instance = wgpu.CreateInstance(nil)

	s.surface = s.instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))

	adapter, err := s.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: s.surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		s.release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	s.adapter = adapter

	s.device, err = s.adapter.RequestDevice(nil)
	if err != nil {
		s.release()
		return nil, fmt.Errorf("request device: %w", err)
	}
	s.queue = s.device.GetQueue()

	caps := s.surface.GetCapabilities(s.adapter)
	if len(caps.Formats) == 0 {
		s.release()
		return nil, fmt.Errorf("surface reports no texture formats")
	}

	present := wgpu.PresentModeFifo
	if !vsync {
		present = wgpu.PresentModeImmediate
	}
	width, height := window.GetFramebufferSize()
	s.config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      preferredFormat(caps.Formats),
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: present,
		AlphaMode:   caps.AlphaModes[0],
	}
	s.surface.Configure(s.adapter, s.device, s.config)

	return s, nil
}

// preferredFormat picks an sRGB surface format when one is offered.
func preferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if strings.Contains(f.String(), "Srgb") {
			return f
		}
	}
	return formats[0]
}

// reconfigure resizes the surface. Degenerate sizes are ignored so a
// minimized window does not tear down the swapchain.
func (s *gpuState) reconfigure(width, height int) bool {
	if width <= 1 || height <= 1 {
		return false
	}
	s.config.Width = uint32(width)
	s.config.Height = uint32(height)
	s.surface.Configure(s.adapter, s.device, s.config)
	return true
}

func (s *gpuState) release() {
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.device != nil {
		s.device.Release()
		s.device = nil
	}
	if s.adapter != nil {
		s.adapter.Release()
		s.adapter = nil
	}
	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
	if s.instance != nil {
		s.instance.Release()
		s.instance = nil
	}
}
