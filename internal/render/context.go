// Package render owns the GPU: device bootstrap, pipelines, per-frame
// uniform updates, and the render pass. The Context is driven from the
// main loop as Input -> Update -> Render -> Finalize.
package render

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"sim-engine/internal/camera"
	"sim-engine/internal/config"
	"sim-engine/internal/input"
	"sim-engine/internal/mesh"
	"sim-engine/internal/scene"
	"sim-engine/internal/timing"
)

//go:embed shader.wgsl
var objectShaderWGSL string

//go:embed light.wgsl
var lightShaderWGSL string

var backgroundColor = wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// Context is the renderer state for one window.
type Context struct {
	log *slog.Logger

	gpu     *gpuState
	depth   *depthTexture
	layouts *bindGroupLayouts

	objectPipeline *wgpu.RenderPipeline
	lightPipeline  *wgpu.RenderPipeline

	diffuse   *materialTexture
	normalMap *materialTexture

	vertexBuffer   *wgpu.Buffer
	indexBuffer    *wgpu.Buffer
	indexCount     uint32
	instanceBuffer *wgpu.Buffer
	instanceCount  uint32

	cameraBuffer    *wgpu.Buffer
	cameraBindGroup *wgpu.BindGroup
	lightBuffer     *wgpu.Buffer
	lightBindGroup  *wgpu.BindGroup
	materialGroup   *wgpu.BindGroup

	camera     *camera.Camera
	controller *camera.Controller
	light      *scene.Light
	instances  []scene.Instance

	history *timing.History
	frame   timing.Frame

	width  int
	height int
}

// NewContext brings up the GPU for window and uploads the scene.
func NewContext(window *glfw.Window, cfg config.Config, provider mesh.Provider, log *slog.Logger) (*Context, error) {
	c := &Context{log: log, history: timing.NewHistory()}

	var err error
	c.gpu, err = newGPUState(window, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("gpu setup: %w", err)
	}
	c.width = int(c.gpu.config.Width)
	c.height = int(c.gpu.config.Height)
	log.Info("surface configured",
		"format", c.gpu.config.Format.String(),
		"width", c.width, "height", c.height)

	c.depth, err = newDepthTexture(c.gpu.device, c.gpu.config.Width, c.gpu.config.Height)
	if err != nil {
		c.Release()
		return nil, fmt.Errorf("depth texture: %w", err)
	}

	c.layouts, err = newBindGroupLayouts(c.gpu.device)
	if err != nil {
		c.Release()
		return nil, err
	}

	if err := c.initScene(cfg, provider); err != nil {
		c.Release()
		return nil, err
	}
	if err := c.initPipelines(); err != nil {
		c.Release()
		return nil, err
	}

	c.frame = timing.NewFrame()
	return c, nil
}

func (c *Context) initScene(cfg config.Config, provider mesh.Provider) error {
	device, queue := c.gpu.device, c.gpu.queue

	m, textures, err := provider.Load("cube")
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}

	c.vertexBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "vertices",
		Contents: wgpu.ToBytes(m.Vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return fmt.Errorf("vertex buffer: %w", err)
	}
	c.indexBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "indices",
		Contents: wgpu.ToBytes(m.Indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		return fmt.Errorf("index buffer: %w", err)
	}
	c.indexCount = uint32(len(m.Indices))

	c.instances = scene.NewGrid(cfg.Scene.GridRows, cfg.Scene.GridCols, cfg.Scene.GridSpacing)
	c.instanceCount = uint32(len(c.instances))
	c.instanceBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "instances",
		Contents: wgpu.ToBytes(scene.RawAll(c.instances)),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return fmt.Errorf("instance buffer: %w", err)
	}

	c.diffuse, err = newMaterialTexture(device, queue, "diffuse", textures.Diffuse, true)
	if err != nil {
		return fmt.Errorf("diffuse texture: %w", err)
	}
	c.normalMap, err = newMaterialTexture(device, queue, "normal-map", textures.NormalMap, false)
	if err != nil {
		return fmt.Errorf("normal map texture: %w", err)
	}
	c.materialGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "material",
		Layout: c.layouts.material,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: c.diffuse.view},
			{Binding: 1, Sampler: c.diffuse.sampler},
			{Binding: 2, TextureView: c.normalMap.view},
			{Binding: 3, Sampler: c.normalMap.sampler},
		},
	})
	if err != nil {
		return fmt.Errorf("material bind group: %w", err)
	}

	cam := camera.New()
	cam.FOVDeg = cfg.Camera.FOVDeg
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.Translate(mgl32.Vec3{0, 2, 4})
	cam.SetAspect(float32(c.width), float32(c.height))
	c.camera = cam
	c.controller = camera.NewController(cfg.Camera.Speed)

	camUniform := camera.UniformFrom(c.camera)
	c.cameraBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "camera",
		Contents: structBytes(&camUniform),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("camera buffer: %w", err)
	}
	c.cameraBindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "camera",
		Layout: c.layouts.camera,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: c.cameraBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return fmt.Errorf("camera bind group: %w", err)
	}

	c.light = scene.NewLight(
		mgl32.Vec3{cfg.Scene.LightPos[0], cfg.Scene.LightPos[1], cfg.Scene.LightPos[2]},
		mgl32.Vec3{cfg.Scene.LightColor[0], cfg.Scene.LightColor[1], cfg.Scene.LightColor[2]},
	)
	lightUniform := c.light.Uniform()
	c.lightBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "light",
		Contents: structBytes(&lightUniform),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("light buffer: %w", err)
	}
	c.lightBindGroup, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "light",
		Layout: c.layouts.light,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: c.lightBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return fmt.Errorf("light bind group: %w", err)
	}

	return nil
}

func (c *Context) initPipelines() error {
	device := c.gpu.device

	objectLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "object",
		BindGroupLayouts: []*wgpu.BindGroupLayout{
			c.layouts.material, c.layouts.camera, c.layouts.light,
		},
	})
	if err != nil {
		return fmt.Errorf("object pipeline layout: %w", err)
	}
	defer objectLayout.Release()

	c.objectPipeline, err = createRenderPipeline(device, "object", objectLayout,
		objectShaderWGSL, c.gpu.config.Format,
		[]wgpu.VertexBufferLayout{vertexBufferLayout(), instanceBufferLayout()})
	if err != nil {
		return err
	}

	lightLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "light",
		BindGroupLayouts: []*wgpu.BindGroupLayout{
			c.layouts.camera, c.layouts.light,
		},
	})
	if err != nil {
		return fmt.Errorf("light pipeline layout: %w", err)
	}
	defer lightLayout.Release()

	c.lightPipeline, err = createRenderPipeline(device, "light", lightLayout,
		lightShaderWGSL, c.gpu.config.Format,
		[]wgpu.VertexBufferLayout{vertexBufferLayout()})
	return err
}

// Size returns the current surface size in pixels.
func (c *Context) Size() (width, height int) {
	return c.width, c.height
}

// Camera exposes the camera for direct adjustment, such as switching
// the up axis from a key binding.
func (c *Context) Camera() *camera.Camera {
	return c.camera
}

// Resize reconfigures the surface and rebuilds the depth texture.
// Sizes of one pixel or less are ignored.
func (c *Context) Resize(width, height int) {
	if !c.gpu.reconfigure(width, height) {
		return
	}
	c.width, c.height = width, height
	c.camera.SetAspect(float32(width), float32(height))

	c.depth.release()
	depth, err := newDepthTexture(c.gpu.device, uint32(width), uint32(height))
	if err != nil {
		c.log.Error("depth texture rebuild failed", "err", err)
		return
	}
	c.depth = depth
}

// Input offers an event to the camera controller first; unconsumed
// pointer motion recolors the light from the cursor position.
func (c *Context) Input(ev input.Event) bool {
	if c.controller.ProcessInput(ev) {
		return true
	}
	switch e := ev.(type) {
	case input.PointerEvent:
		c.light.SetColor(mgl32.Vec3{
			float32(e.X) / float32(c.width),
			float32(e.Y) / float32(c.height),
			0.5,
		})
		return true
	default:
		return false
	}
}

// Update advances the simulation by the delta of the last completed
// frame and writes the camera and light uniforms.
func (c *Context) Update() {
	dt := c.history.LastDelta()

	c.controller.Update(c.camera, dt)
	camUniform := camera.UniformFrom(c.camera)
	c.gpu.queue.WriteBuffer(c.cameraBuffer, 0, structBytes(&camUniform))

	c.light.Rotate(dt)
	lightUniform := c.light.Uniform()
	c.gpu.queue.WriteBuffer(c.lightBuffer, 0, structBytes(&lightUniform))
}

// Render draws one frame: the light mesh, then the instanced objects.
// Failures acquiring the surface are classified into ErrSurfaceLost,
// ErrOutOfMemory, or passed through.
func (c *Context) Render() error {
	texture, err := c.gpu.surface.GetCurrentTexture()
	if err != nil {
		return classifyFrameError(err)
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		return classifyFrameError(err)
	}
	defer view.Release()

	encoder, err := c.gpu.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "frame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: backgroundColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            c.depth.view,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})

	pass.SetVertexBuffer(0, c.vertexBuffer, 0, wgpu.WholeSize)
	pass.SetVertexBuffer(1, c.instanceBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(c.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)

	pass.SetPipeline(c.lightPipeline)
	pass.SetBindGroup(0, c.cameraBindGroup, nil)
	pass.SetBindGroup(1, c.lightBindGroup, nil)
	pass.DrawIndexed(c.indexCount, 1, 0, 0, 0)

	pass.SetPipeline(c.objectPipeline)
	pass.SetBindGroup(0, c.materialGroup, nil)
	pass.SetBindGroup(1, c.cameraBindGroup, nil)
	pass.SetBindGroup(2, c.lightBindGroup, nil)
	pass.DrawIndexed(c.indexCount, c.instanceCount, 0, 0, 0)

	pass.End()
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("encoder finish: %w", err)
	}
	defer cmd.Release()

	c.gpu.queue.Submit(cmd)
	c.gpu.surface.Present()
	return nil
}

// Finalize closes the current frame, records it, and opens the next.
func (c *Context) Finalize() {
	c.frame.End()
	c.history.Push(c.frame)
	c.frame = timing.NewFrame()
}

// FrameRate reports the rate over the recent frame window.
func (c *Context) FrameRate() float32 {
	return c.history.FrameRate()
}

// AverageFrameRate reports the mean of the recorded per-frame rates.
func (c *Context) AverageFrameRate() float32 {
	return c.history.AverageFrameRate()
}

// Release tears down all GPU objects. Safe to call on a partially
// constructed context.
func (c *Context) Release() {
	for _, bg := range []**wgpu.BindGroup{&c.materialGroup, &c.lightBindGroup, &c.cameraBindGroup} {
		if *bg != nil {
			(*bg).Release()
			*bg = nil
		}
	}
	for _, buf := range []**wgpu.Buffer{&c.lightBuffer, &c.cameraBuffer, &c.instanceBuffer, &c.indexBuffer, &c.vertexBuffer} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
	for _, p := range []**wgpu.RenderPipeline{&c.lightPipeline, &c.objectPipeline} {
		if *p != nil {
			(*p).Release()
			*p = nil
		}
	}
	c.normalMap.release()
	c.normalMap = nil
	c.diffuse.release()
	c.diffuse = nil
	if c.layouts != nil {
		c.layouts.release()
		c.layouts = nil
	}
	c.depth.release()
	c.depth = nil
	if c.gpu != nil {
		c.gpu.release()
		c.gpu = nil
	}
}
