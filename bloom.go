package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	bloomKnee = 0.35

	// weight of the wide quarter res halo relative to the half res glow
	bloomWideWeight = 0.6
)

// BloomRenderer lifts the bright parts of the scene out at reduced
// resolution, blurs them and adds them back on top.
//
// half holds a tight glow, quarter a wide halo. Both are kept as
// ping pong pairs for the separable blur.
type BloomRenderer struct {
	halfA    *eb.Image
	halfB    *eb.Image
	quarterA *eb.Image
	quarterB *eb.Image

	width  int
	height int
}

func NewBloomRenderer() *BloomRenderer {
	return new(BloomRenderer)
}

func (br *BloomRenderer) resizeTargets(width, height int) {
	if br.width == width && br.height == height {
		return
	}

	br.width = width
	br.height = height

	for _, img := range []*eb.Image{br.halfA, br.halfB, br.quarterA, br.quarterB} {
		if img != nil {
			img.Deallocate()
		}
	}

	halfW := max(width/2, 1)
	halfH := max(height/2, 1)
	quarterW := max(halfW/2, 1)
	quarterH := max(halfH/2, 1)

	newTarget := func(w, h int) *eb.Image {
		return eb.NewImageWithOptions(
			RectWH(w, h),
			&eb.NewImageOptions{Unmanaged: true},
		)
	}

	br.halfA = newTarget(halfW, halfH)
	br.halfB = newTarget(halfW, halfH)
	br.quarterA = newTarget(quarterW, quarterH)
	br.quarterB = newTarget(quarterW, quarterH)
}

// blurPass runs the separable gaussian once per axis, ping ponging
// between a and b. The blurred result ends up back in a.
//
// Raw ebiten options on purpose. The pass needs plain source over
// blending onto cleared targets no matter what the graphics context
// stacks currently say.
func blurPass(a, b *eb.Image) {
	w, h := ImageSize(a)

	op := &eb.DrawRectShaderOptions{}
	op.Images[0] = a
	op.Uniforms = map[string]any{
		"Direction": [2]float64{1, 0},
	}

	b.Clear()
	b.DrawRectShader(w, h, BloomBlurShader, op)

	op = &eb.DrawRectShaderOptions{}
	op.Images[0] = b
	op.Uniforms = map[string]any{
		"Direction": [2]float64{0, 1},
	}

	a.Clear()
	a.DrawRectShader(w, h, BloomBlurShader, op)
}

// Draw adds the glow of src's bright spots onto dst.
// src and dst may be the same image.
func (br *BloomRenderer) Draw(dst, src *eb.Image, threshold, strength float64) {
	if strength <= 0 {
		return
	}

	srcW, srcH := ImageSize(src)
	br.resizeTargets(srcW, srcH)

	// bright pass into half resolution
	{
		op := &eb.DrawRectShaderOptions{}
		op.Images[0] = src
		op.Uniforms = map[string]any{
			"Threshold": threshold,
			"Knee":      bloomKnee,
		}
		op.GeoM.Scale(0.5, 0.5)

		br.halfA.Clear()
		br.halfA.DrawRectShader(srcW, srcH, BloomPrefilterShader, op)
	}

	blurPass(br.halfA, br.halfB)

	// carry the blurred half pass down for the wide halo
	{
		op := &eb.DrawImageOptions{}
		op.GeoM.Scale(0.5, 0.5)
		op.Filter = eb.FilterLinear

		br.quarterA.Clear()
		br.quarterA.DrawImage(br.halfA, op)
	}

	blurPass(br.quarterA, br.quarterB)

	// composite both layers back, additively
	{
		halfW, halfH := ImageSize(br.halfA)

		op := &eb.DrawImageOptions{}
		op.GeoM.Scale(f64(srcW)/f64(halfW), f64(srcH)/f64(halfH))
		op.Filter = eb.FilterLinear
		op.Blend = eb.BlendLighter

		s := f32(strength)
		op.ColorScale.Scale(s, s, s, s)

		dst.DrawImage(br.halfA, op)
	}
	{
		quarterW, quarterH := ImageSize(br.quarterA)

		op := &eb.DrawImageOptions{}
		op.GeoM.Scale(f64(srcW)/f64(quarterW), f64(srcH)/f64(quarterH))
		op.Filter = eb.FilterLinear
		op.Blend = eb.BlendLighter

		s := f32(strength * bloomWideWeight)
		op.ColorScale.Scale(s, s, s, s)

		dst.DrawImage(br.quarterA, op)
	}
}
