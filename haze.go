package main

import (
	"image/color"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// DrawHazeRect fills rect with slowly drifting fog. The two noise
// tiles displace each other so the motion never reads as a loop.
func DrawHazeRect(
	dst *eb.Image,
	rect FRectangle,
	timeOffset time.Duration,
	colors [2]color.Color,
	offset FPoint,
	strength float64,
) {
	op := &DrawRectShaderOptions{}

	op.Images[0] = HazeNoiseImage1
	op.Images[1] = HazeNoiseImage2

	c1 := ColorNormalized(colors[0], true)
	c2 := ColorNormalized(colors[1], true)

	op.Uniforms = make(map[string]any)
	op.Uniforms["Time"] = f64(timeOffset) / f64(time.Second)
	op.Uniforms["Offset"] = [2]float64{offset.X, offset.Y}
	op.Uniforms["Colors"] = [8]float64{
		c1[0], c1[1], c1[2], c1[3],
		c2[0], c2[1], c2[2], c2[3],
	}
	op.Uniforms["Strength"] = strength

	op.Uniforms["ScreenHeight"] = ScreenHeight

	imgRect := HazeNoiseImage1.Bounds()
	imgFRect := RectToFRect(imgRect)

	op.GeoM.Scale(rect.Dx()/imgFRect.Dx(), rect.Dy()/imgFRect.Dy())
	op.GeoM.Translate(rect.Min.X, rect.Min.Y)

	DrawRectShader(dst, imgRect.Dx(), imgRect.Dy(), HazeShader, op)
}
