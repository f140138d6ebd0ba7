package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

// Thin wrappers around the vector package. Antialiasing follows the
// graphics context so overlays don't have to thread it through.

func FillRect(
	dst *eb.Image,
	rect FRectangle,
	clr color.Color,
) {
	ebv.DrawFilledRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		clr,
		IsAntiAliasOn(),
	)
}

func StrokeRect(
	dst *eb.Image,
	rect FRectangle,
	strokeWidth float64,
	clr color.Color,
) {
	ebv.StrokeRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		f32(strokeWidth),
		clr,
		IsAntiAliasOn(),
	)
}

func StrokeLine(
	dst *eb.Image,
	x0, y0, x1, y1 float64,
	strokeWidth float64,
	clr color.Color,
) {
	ebv.StrokeLine(
		dst,
		f32(x0), f32(y0), f32(x1), f32(y1),
		f32(strokeWidth),
		clr,
		IsAntiAliasOn(),
	)
}

func DrawFilledCircle(
	dst *eb.Image,
	x, y, r float64,
	clr color.Color,
) {
	ebv.DrawFilledCircle(
		dst, f32(x), f32(y), f32(r), clr, IsAntiAliasOn())
}

func StrokeCircle(
	dst *eb.Image,
	x, y, r float64,
	strokeWidth float64,
	clr color.Color,
) {
	ebv.StrokeCircle(
		dst, f32(x), f32(y), f32(r), f32(strokeWidth), clr, IsAntiAliasOn())
}
