package render

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"golang.org/x/image/draw"
)

// materialTexture is an RGBA texture with a full mip chain plus its
// sampler, as bound by the material bind group.
type materialTexture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	sampler *wgpu.Sampler
}

// mipLevelCount returns the number of mips down to 1x1.
func mipLevelCount(width, height int) uint32 {
	n := uint32(1)
	for width > 1 || height > 1 {
		width = max(width/2, 1)
		height = max(height/2, 1)
		n++
	}
	return n
}

// newMaterialTexture uploads img and its downscaled mip chain.
func newMaterialTexture(device *wgpu.Device, queue *wgpu.Queue, label string, img *image.RGBA, srgb bool) (*materialTexture, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mips := mipLevelCount(w, h)

	format := wgpu.TextureFormatRGBA8Unorm
	if srgb {
		format = wgpu.TextureFormatRGBA8UnormSrgb
	}

	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(w),
			Height:             uint32(h),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: mips,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}

	level := img
	for mip := uint32(0); mip < mips; mip++ {
		lb := level.Bounds()
		queue.WriteTexture(
			&wgpu.ImageCopyTexture{
				Texture:  tex,
				MipLevel: mip,
				Origin:   wgpu.Origin3D{},
				Aspect:   wgpu.TextureAspectAll,
			},
			level.Pix,
			&wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  uint32(level.Stride),
				RowsPerImage: uint32(lb.Dy()),
			},
			&wgpu.Extent3D{
				Width:              uint32(lb.Dx()),
				Height:             uint32(lb.Dy()),
				DepthOrArrayLayers: 1,
			},
		)
		if mip+1 < mips {
			level = halve(level)
		}
	}

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, err
	}

	sampler, err := device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         label,
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		view.Release()
		tex.Release()
		return nil, err
	}

	return &materialTexture{texture: tex, view: view, sampler: sampler}, nil
}

// halve downscales one mip step with bilinear filtering.
func halve(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, max(b.Dx()/2, 1), max(b.Dy()/2, 1)))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func (t *materialTexture) release() {
	if t == nil {
		return
	}
	if t.sampler != nil {
		t.sampler.Release()
		t.sampler = nil
	}
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}
