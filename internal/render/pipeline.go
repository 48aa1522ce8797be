package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex buffer strides for the two slots every draw uses.
const (
	vertexStride   = 56
	instanceStride = 100
)

// vertexBufferLayout is slot 0: the mesh vertex, locations 0-4.
func vertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 20, ShaderLocation: 2},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 32, ShaderLocation: 3},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 44, ShaderLocation: 4},
		},
	}
}

// instanceBufferLayout is slot 1: the per-instance object matrix as
// four vec4 columns and the normal matrix as three vec3 columns,
// locations 5-11.
func instanceBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: instanceStride,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 5},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 6},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 7},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 8},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 64, ShaderLocation: 9},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 76, ShaderLocation: 10},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 88, ShaderLocation: 11},
		},
	}
}

// bindGroupLayouts holds the layouts shared by both pipelines.
type bindGroupLayouts struct {
	material *wgpu.BindGroupLayout
	camera   *wgpu.BindGroupLayout
	light    *wgpu.BindGroupLayout
}

func newBindGroupLayouts(device *wgpu.Device) (*bindGroupLayouts, error) {
	l := &bindGroupLayouts{}

	var err error
	l.material, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "material",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler:    wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingTypeFiltering},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    3,
				Visibility: wgpu.ShaderStageFragment,
				Sampler:    wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("material bind group layout: %w", err)
	}

	l.camera, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "camera",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		l.release()
		return nil, fmt.Errorf("camera bind group layout: %w", err)
	}

	l.light, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "light",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		l.release()
		return nil, fmt.Errorf("light bind group layout: %w", err)
	}

	return l, nil
}

func (l *bindGroupLayouts) release() {
	if l.light != nil {
		l.light.Release()
		l.light = nil
	}
	if l.camera != nil {
		l.camera.Release()
		l.camera = nil
	}
	if l.material != nil {
		l.material.Release()
		l.material = nil
	}
}

// createRenderPipeline builds one pipeline in the fixed configuration
// both passes share: triangle list, back-face culling, depth test with
// write, opaque color.
func createRenderPipeline(
	device *wgpu.Device,
	label string,
	layout *wgpu.PipelineLayout,
	wgsl string,
	format wgpu.TextureFormat,
	buffers []wgpu.VertexBufferLayout,
) (*wgpu.RenderPipeline, error) {
	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: wgsl},
	})
	if err != nil {
		return nil, fmt.Errorf("shader module %s: %w", label, err)
	}
	defer shader.Release()

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  label,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
			StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render pipeline %s: %w", label, err)
	}
	return pipeline, nil
}
