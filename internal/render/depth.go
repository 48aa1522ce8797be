package render

import "github.com/cogentcore/webgpu/wgpu"

const depthFormat = wgpu.TextureFormatDepth32Float

// depthTexture is the depth attachment, recreated on every resize to
// track the surface dimensions.
type depthTexture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

func newDepthTexture(device *wgpu.Device, width, height uint32) (*depthTexture, error) {
	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "depth",
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        depthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, err
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, err
	}
	return &depthTexture{texture: tex, view: view}, nil
}

func (d *depthTexture) release() {
	if d == nil {
		return
	}
	if d.view != nil {
		d.view.Release()
		d.view = nil
	}
	if d.texture != nil {
		d.texture.Release()
		d.texture = nil
	}
}
