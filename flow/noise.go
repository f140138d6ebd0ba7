package flow

import (
	"image"
	"image/color"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

func Fract(x float64) float64 {
	return x - math.Floor(x)
}

// Hash11 hashes a scalar into [0, 1).
func Hash11(x float64) float64 {
	return Fract(math.Sin(x*12.9898) * 43758.5453)
}

// Hash21 hashes a 2D coordinate into [0, 1).
func Hash21(x, y float64) float64 {
	return Fract(math.Sin(x*12.9898+y*78.233) * 43758.5453)
}

func smoothUnit(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Smoothstep is the usual hermite ramp from edge0 to edge1.
func Smoothstep(edge0, edge1, t float64) float64 {
	if edge0 == edge1 {
		if t < edge0 {
			return 0
		}
		return 1
	}
	t = Clamp((t-edge0)/(edge1-edge0), 0, 1)
	return smoothUnit(t)
}

// ValueNoise2 interpolates lattice hashes, giving smooth
// pseudo-random values in [0, 1).
func ValueNoise2(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)

	tx := smoothUnit(x - x0)
	ty := smoothUnit(y - y0)

	n00 := Hash21(x0, y0)
	n10 := Hash21(x0+1, y0)
	n01 := Hash21(x0, y0+1)
	n11 := Hash21(x0+1, y0+1)

	nx0 := n00 + (n10-n00)*tx
	nx1 := n01 + (n11-n01)*tx

	return nx0 + (nx1-nx0)*ty
}

// Fbm2 stacks octaves of ValueNoise2, each one half the amplitude and
// twice the frequency of the last, normalized back into [0, 1).
func Fbm2(x, y float64, octaves int) float64 {
	var total float64
	var maxValue float64

	amplitude := 1.0
	frequency := 1.0

	for range octaves {
		total += ValueNoise2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2
	}

	if maxValue <= 0 {
		return 0
	}

	return total / maxValue
}

// NoiseImage renders seamless fbm into a grayscale tile by walking the
// simplex noise around a torus. Used for the background haze textures
// instead of shipping baked noise images.
func NoiseImage(seed int64, size int, octaves int) *image.Gray {
	noise := opensimplex.NewNormalized(seed)
	img := image.NewGray(image.Rect(0, 0, size, size))

	const tau = 2 * math.Pi

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			u := float64(x) / float64(size)
			v := float64(y) / float64(size)

			nx := math.Cos(u * tau)
			ny := math.Sin(u * tau)
			nz := math.Cos(v * tau)
			nw := math.Sin(v * tau)

			var total float64
			var maxValue float64

			amplitude := 1.0
			frequency := 1.0

			for range octaves {
				total += noise.Eval4(nx*frequency, ny*frequency, nz*frequency, nw*frequency) * amplitude
				maxValue += amplitude
				amplitude *= 0.5
				frequency *= 2
			}

			g := Clamp(total/maxValue, 0, 1)
			img.SetGray(x, y, color.Gray{Y: uint8(g * 255)})
		}
	}

	return img
}
