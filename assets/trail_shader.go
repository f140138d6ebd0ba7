//go:build ignore

//kage:unit pixels

package main

const Pi = 3.141592

// Uniform variables.
var Time float
var Visibility float
var Opacity float
var Intensity float
var Phase float
var ColorShift float
var Core float
var Boost float
var Colors [4]vec4

func colorRamp(t float) vec4 {
	t = clamp(t, 0, 1)
	if t < 1.0/3.0 {
		return mix(Colors[0], Colors[1], t*3)
	} else if t < 2.0/3.0 {
		return mix(Colors[1], Colors[2], t*3-1)
	}
	return mix(Colors[2], Colors[3], t*3-2)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	// distance along the spine rides in color.r
	// signed cross position rides in color.g remapped to 0 - 1
	along := color.r
	side := color.g*2 - 1

	// soft edges with a hot line in the center
	edge := 1 - smoothstep(0.55, 1, abs(side))
	center := exp(-side*side*18) * Core

	pulse := 0.82 + 0.18*sin(Time*0.9+Phase*2*Pi)

	// close the ribbon tips
	tip := smoothstep(0, 0.08, along) * (1 - smoothstep(0.92, 1, along))

	clr := colorRamp(along + ColorShift)

	glow := (edge + center) * pulse * tip
	glow *= Visibility * Opacity * Intensity * (1 + Boost)

	return clr * glow
}
