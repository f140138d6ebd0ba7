package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"

	"lightdrift/flow"
)

var TheGraphicsContext struct {
	BlendStack  []eb.Blend
	FilterStack []eb.Filter
	AntiAlias   bool
}

func init() {
	ctx := &TheGraphicsContext

	ctx.BlendStack = append(ctx.BlendStack, eb.Blend{})
	ctx.FilterStack = append(ctx.FilterStack, eb.FilterLinear)
	ctx.AntiAlias = true
}

func BeginBlend(blend eb.Blend) {
	ctx := &TheGraphicsContext

	ctx.BlendStack = append(ctx.BlendStack, blend)
}

func EndBlend() {
	ctx := &TheGraphicsContext

	ctx.BlendStack = ctx.BlendStack[0 : len(ctx.BlendStack)-1]
}

func CurrentBlend() eb.Blend {
	ctx := &TheGraphicsContext

	return ctx.BlendStack[len(ctx.BlendStack)-1]
}

func BeginFilter(filter eb.Filter) {
	ctx := &TheGraphicsContext

	ctx.FilterStack = append(ctx.FilterStack, filter)
}

func EndFilter() {
	ctx := &TheGraphicsContext

	ctx.FilterStack = ctx.FilterStack[0 : len(ctx.FilterStack)-1]
}

func CurrentFilter() eb.Filter {
	ctx := &TheGraphicsContext

	return ctx.FilterStack[len(ctx.FilterStack)-1]
}

func IsAntiAliasOn() bool {
	return TheGraphicsContext.AntiAlias
}

func SetAntiAlias(onOff bool) {
	TheGraphicsContext.AntiAlias = onOff
}

type DrawImageOptions struct {
	GeoM eb.GeoM

	ColorScale eb.ColorScale
}

type DrawRectShaderOptions struct {
	GeoM eb.GeoM

	ColorScale eb.ColorScale

	Uniforms map[string]any

	Images [4]*eb.Image
}

type DrawTrianglesOptions struct {
	ColorScaleMode eb.ColorScaleMode

	Address eb.Address

	FillRule eb.FillRule
}

type DrawTrianglesShaderOptions struct {
	Uniforms map[string]any

	Images [4]*eb.Image

	FillRule eb.FillRule
}

func DrawImage(dst *eb.Image, src *eb.Image, options *DrawImageOptions) {
	if options == nil {
		options = &DrawImageOptions{}
	}
	op := &eb.DrawImageOptions{}
	op.GeoM = options.GeoM
	op.ColorScale = options.ColorScale
	op.Blend = CurrentBlend()
	op.Filter = CurrentFilter()
	dst.DrawImage(src, op)
}

func DrawRectShader(
	dst *eb.Image,
	width, height int,
	shader *eb.Shader,
	options *DrawRectShaderOptions,
) {
	if options == nil {
		options = &DrawRectShaderOptions{}
	}
	op := &eb.DrawRectShaderOptions{}
	op.GeoM = options.GeoM
	op.ColorScale = options.ColorScale
	op.Blend = CurrentBlend()
	op.Uniforms = options.Uniforms
	op.Images = options.Images
	dst.DrawRectShader(width, height, shader, op)
}

func DrawTriangles(
	dst *eb.Image,
	vertices []eb.Vertex, indices []uint16,
	img *eb.Image,
	options *DrawTrianglesOptions,
) {
	if options == nil {
		options = &DrawTrianglesOptions{}
	}
	op := &eb.DrawTrianglesOptions{}
	op.ColorScaleMode = options.ColorScaleMode
	op.Blend = CurrentBlend()
	op.Filter = CurrentFilter()
	op.Address = options.Address
	op.FillRule = options.FillRule
	op.AntiAlias = TheGraphicsContext.AntiAlias

	dst.DrawTriangles(vertices, indices, img, op)
}

func DrawTrianglesShader(
	dst *eb.Image,
	vertices []eb.Vertex, indices []uint16,
	shader *eb.Shader,
	options *DrawTrianglesShaderOptions,
) {
	if options == nil {
		options = &DrawTrianglesShaderOptions{}
	}
	op := &eb.DrawTrianglesShaderOptions{}
	op.Blend = CurrentBlend()
	op.Uniforms = options.Uniforms
	op.Images = options.Images
	op.FillRule = options.FillRule
	op.AntiAlias = TheGraphicsContext.AntiAlias

	dst.DrawTrianglesShader(vertices, indices, shader, op)
}

// =================================
// vertex and index buffer
// =================================

type VIBuffer struct {
	Vertices []eb.Vertex
	Indices  []uint16
}

func NewVIBuffer(vertCap int, indexCap int) *VIBuffer {
	vi := new(VIBuffer)

	vi.Vertices = make([]eb.Vertex, 0, vertCap)
	vi.Indices = make([]uint16, 0, indexCap)

	return vi
}

func (vi *VIBuffer) Reset() {
	vi.Vertices = vi.Vertices[:0]
	vi.Indices = vi.Indices[:0]
}

// assumes you will use WhiteImage
// so it will set SrcX and SrcY to 1
func VIaddRect(buffer *VIBuffer, rect FRectangle, clr color.Color) {
	indexStart := uint16(len(buffer.Vertices))

	r, g, b, a := clr.RGBA()

	rf := float32(r) / 0xffff
	gf := float32(g) / 0xffff
	bf := float32(b) / 0xffff
	af := float32(a) / 0xffff

	buffer.Vertices = append(
		buffer.Vertices,
		eb.Vertex{
			SrcX: 1, SrcY: 1, DstX: f32(rect.Min.X), DstY: f32(rect.Min.Y),
			ColorR: rf, ColorG: gf, ColorB: bf, ColorA: af,
		},
		eb.Vertex{
			SrcX: 1, SrcY: 1, DstX: f32(rect.Max.X), DstY: f32(rect.Min.Y),
			ColorR: rf, ColorG: gf, ColorB: bf, ColorA: af,
		},
		eb.Vertex{
			SrcX: 1, SrcY: 1, DstX: f32(rect.Max.X), DstY: f32(rect.Max.Y),
			ColorR: rf, ColorG: gf, ColorB: bf, ColorA: af,
		},
		eb.Vertex{
			SrcX: 1, SrcY: 1, DstX: f32(rect.Min.X), DstY: f32(rect.Max.Y),
			ColorR: rf, ColorG: gf, ColorB: bf, ColorA: af,
		},
	)

	buffer.Indices = append(
		buffer.Indices,
		indexStart+0, indexStart+1, indexStart+2, indexStart+0, indexStart+2, indexStart+3,
	)
}

// assumes you will use WhiteImage
// so it will set SrcX and SrcY to 1
func VIaddRectVerticalGradient(buffer *VIBuffer, rect FRectangle, top, bottom color.Color) {
	indexStart := uint16(len(buffer.Vertices))

	r0, g0, b0, a0 := top.RGBA()
	r1, g1, b1, a1 := bottom.RGBA()

	tr := float32(r0) / 0xffff
	tg := float32(g0) / 0xffff
	tb := float32(b0) / 0xffff
	ta := float32(a0) / 0xffff

	br := float32(r1) / 0xffff
	bg := float32(g1) / 0xffff
	bb := float32(b1) / 0xffff
	ba := float32(a1) / 0xffff

	buffer.Vertices = append(
		buffer.Vertices,
		eb.Vertex{
			SrcX: 1, SrcY: 1, DstX: f32(rect.Min.X), DstY: f32(rect.Min.Y),
			ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta,
		},
		eb.Vertex{
			SrcX: 1, SrcY: 1, DstX: f32(rect.Max.X), DstY: f32(rect.Min.Y),
			ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta,
		},
		eb.Vertex{
			SrcX: 1, SrcY: 1, DstX: f32(rect.Max.X), DstY: f32(rect.Max.Y),
			ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba,
		},
		eb.Vertex{
			SrcX: 1, SrcY: 1, DstX: f32(rect.Min.X), DstY: f32(rect.Max.Y),
			ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba,
		},
	)

	buffer.Indices = append(
		buffer.Indices,
		indexStart+0, indexStart+1, indexStart+2, indexStart+0, indexStart+2, indexStart+3,
	)
}

// VIaddRibbon encodes trail geometry for the trail shader. Distance
// along the spine rides in ColorR, the signed cross position remapped
// to 0 - 1 in ColorG. The shader unpacks both from the varying color.
func VIaddRibbon(buffer *VIBuffer, ribbon flow.Ribbon) {
	indexStart := uint16(len(buffer.Vertices))

	for _, v := range ribbon.Verts {
		buffer.Vertices = append(buffer.Vertices, eb.Vertex{
			DstX:   f32(v.X),
			DstY:   f32(v.Y),
			ColorR: f32(v.Along),
			ColorG: f32(v.Cross*0.5 + 0.5),
			ColorB: 1,
			ColorA: 1,
		})
	}

	for _, index := range ribbon.Indices {
		buffer.Indices = append(buffer.Indices, indexStart+index)
	}
}
