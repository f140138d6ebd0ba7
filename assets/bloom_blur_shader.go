//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Direction vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	// 9 tap gaussian, run once per axis
	c := imageSrc0At(srcPos) * 0.227027
	c += imageSrc0At(srcPos+Direction*1) * 0.1945946
	c += imageSrc0At(srcPos-Direction*1) * 0.1945946
	c += imageSrc0At(srcPos+Direction*2) * 0.1216216
	c += imageSrc0At(srcPos-Direction*2) * 0.1216216
	c += imageSrc0At(srcPos+Direction*3) * 0.054054
	c += imageSrc0At(srcPos-Direction*3) * 0.054054
	c += imageSrc0At(srcPos+Direction*4) * 0.016216
	c += imageSrc0At(srcPos-Direction*4) * 0.016216

	return c
}
