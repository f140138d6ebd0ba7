//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Threshold float
var Knee float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	// rendered at half size so the 4 taps cover every source pixel
	c := imageSrc0At(srcPos + vec2(-0.5, -0.5))
	c += imageSrc0At(srcPos + vec2(0.5, -0.5))
	c += imageSrc0At(srcPos + vec2(-0.5, 0.5))
	c += imageSrc0At(srcPos + vec2(0.5, 0.5))
	c *= 0.25

	lum := dot(c.rgb, vec3(0.2126, 0.7152, 0.0722))

	return c * smoothstep(Threshold, Threshold+Knee, lum)
}
