//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Time float
var Offset vec2
var Colors [2]vec4
var Strength float

var ScreenHeight float

func imageSrc0At01(at vec2) vec4 {
	origin := imageSrc0Origin()
	imgSize := imageSrc0Size()
	return imageSrc0UnsafeAt(mod(imgSize*at, imgSize) + origin)
}

func imageSrc1At01(at vec2) vec4 {
	origin := imageSrc1Origin()
	imgSize := imageSrc1Size()
	return imageSrc1UnsafeAt(mod(imgSize*at, imgSize) + origin)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	time := Time * 0.05

	pos := (dstPos.xy + Offset - imageDstOrigin()) / ScreenHeight

	drift1 := pos*1.4 + vec2(time*0.31, -time*0.17)
	drift2 := pos*0.6 + vec2(-time*0.11, time*0.23)

	n1 := imageSrc0At01(drift1 * 0.35).r
	n2 := imageSrc1At01(drift2*0.5 + vec2(n1*0.2, 0)).r

	n := n1*0.65 + n2*0.35

	haze := mix(Colors[0], Colors[1], smoothstep(0.2, 0.8, n2))
	density := smoothstep(0.35, 0.9, n)

	return haze * (density * Strength)
}
